package report

import (
	"time"

	"trex/internal/core"
)

// timestampLayout is the human-readable rendering of a record's creation
// instant used in the table and exports.
const timestampLayout = "Jan 2, 2006 3:04:05 PM"

// TableRow is the display projection of one record.
type TableRow struct {
	Index         int
	Income        string
	TaxableIncome string
	TaxDue        string
	CreatedAt     string
}

// SummaryView is the display projection of the report aggregates. When the
// report is empty only Empty is meaningful and export actions must be
// disabled.
type SummaryView struct {
	Empty                bool
	Count                int
	TotalTaxDue          string
	AverageTaxableIncome string
}

// BuildTable projects records into table rows with 1-based indexes.
// It is a pure function of its inputs: calling it twice over the same
// records yields identical rows.
func BuildTable(records []Record, f core.Formatter) []TableRow {
	rows := make([]TableRow, len(records))
	for i, r := range records {
		rows[i] = TableRow{
			Index:         i + 1,
			Income:        f.Format(r.Income),
			TaxableIncome: f.Format(r.TaxableIncome),
			TaxDue:        f.Format(r.TaxDue),
			CreatedAt:     FormatTimestamp(r.CreatedAt),
		}
	}
	return rows
}

// BuildSummary projects the report aggregates, signalling the empty state
// distinctly from a populated one.
func BuildSummary(records []Record, f core.Formatter) SummaryView {
	sum := core.Summarize(Results(records))
	if sum.Count == 0 {
		return SummaryView{Empty: true}
	}
	return SummaryView{
		Count:                sum.Count,
		TotalTaxDue:          f.Format(sum.TotalTaxDue),
		AverageTaxableIncome: f.Format(sum.AverageTaxableIncome),
	}
}

// Results extracts the computed figures from the records for aggregation.
func Results(records []Record) []core.TaxResult {
	results := make([]core.TaxResult, len(records))
	for i, r := range records {
		results[i] = r.TaxResult
	}
	return results
}

// FormatTimestamp renders a record's creation instant for display.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
