package core

// Compute derives the worksheet result from its inputs.
//
// The formula is fixed and branch-free:
//
//	taxableIncome     = income + addbacks + temporaryDifferences - deductions - netOperatingLoss
//	taxBeforePayments = taxableIncome * taxRate
//	taxDue            = taxBeforePayments - payments
//
// Compute is pure; record creation and report accumulation belong to the
// calculate pipeline in the HTTP layer.
func Compute(in CalculationInput) TaxResult {
	taxable := in.Income + in.Addbacks + in.TemporaryDifferences - in.Deductions - in.NetOperatingLoss
	before := taxable * in.TaxRate
	return TaxResult{
		TaxableIncome:     taxable,
		TaxBeforePayments: before,
		TaxDue:            before - in.Payments,
	}
}
