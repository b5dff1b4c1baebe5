package core

// Summary aggregates the accumulated worksheet results.
//
// AverageTaxableIncome is only defined for a non-empty report: callers must
// branch on Count before reading it. Summarize never divides by zero.
type Summary struct {
	Count                int
	TotalTaxDue          float64
	AverageTaxableIncome float64
}

// Summarize folds the results into count, total tax due, and average taxable
// income. An empty input yields Count 0 and TotalTaxDue 0 with no average
// computed.
func Summarize(results []TaxResult) Summary {
	s := Summary{Count: len(results)}
	var sumTaxable float64
	for _, r := range results {
		s.TotalTaxDue += r.TaxDue
		sumTaxable += r.TaxableIncome
	}
	if s.Count > 0 {
		s.AverageTaxableIncome = sumTaxable / float64(s.Count)
	}
	return s
}
