package core

import "errors"

// CalculationInput holds the seven worksheet figures entered by the user.
// Blank form fields arrive as zero; no range validation is applied, so
// negative amounts or rates above 1 compute through unchanged.
type CalculationInput struct {
	Income               float64 `json:"income"`
	Addbacks             float64 `json:"addbacks"`
	TemporaryDifferences float64 `json:"temporaryDifferences"`
	Deductions           float64 `json:"deductions"`
	NetOperatingLoss     float64 `json:"netOperatingLoss"`
	TaxRate              float64 `json:"taxRate"`
	Payments             float64 `json:"payments"`
}

// TaxResult carries the three figures derived from a CalculationInput.
// A negative TaxDue represents a refund.
type TaxResult struct {
	TaxableIncome     float64 `json:"taxableIncome"`
	TaxBeforePayments float64 `json:"taxBeforePayments"`
	TaxDue            float64 `json:"taxDue"`
}

var ErrEmptyReport = errors.New("report is empty")
