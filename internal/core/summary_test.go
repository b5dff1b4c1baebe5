package core

import "testing"

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 {
		t.Fatalf("expected count 0, got %d", s.Count)
	}
	if s.TotalTaxDue != 0 {
		t.Fatalf("expected total 0, got %v", s.TotalTaxDue)
	}
	// the average must stay at its zero value, never NaN from a 0/0
	if s.AverageTaxableIncome != 0 {
		t.Fatalf("expected no average on empty input, got %v", s.AverageTaxableIncome)
	}
}

func TestSummarizeTotals(t *testing.T) {
	s := Summarize([]TaxResult{
		{TaxDue: 100},
		{TaxDue: -50},
		{TaxDue: 25},
	})
	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	if s.TotalTaxDue != 75 {
		t.Fatalf("expected total 75, got %v", s.TotalTaxDue)
	}
}

func TestSummarizeAverage(t *testing.T) {
	s := Summarize([]TaxResult{
		{TaxableIncome: 1000},
		{TaxableIncome: 2000},
	})
	if s.AverageTaxableIncome != 1500 {
		t.Fatalf("expected average 1500, got %v", s.AverageTaxableIncome)
	}
}
