package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"trex/internal/core"
	"trex/internal/report"
)

const (
	PDFFilename    = "trex_report.pdf"
	PDFContentType = "application/pdf"
)

// Vertical layout of the PDF artifact. Lines advance by pdfLineStep; once
// the cursor passes pdfBreakY the writer starts a new page at pdfResetY so
// text is never clipped at the page bottom.
const (
	pdfLeftMargin = 10.0
	pdfStartY     = 25.0
	pdfLineStep   = 6.0
	pdfBreakY     = 270.0
	pdfResetY     = 20.0
)

// PDF renders the full record sequence as a paginated text report. The
// output is deterministic for a given record sequence. An empty report is
// rejected with core.ErrEmptyReport.
func PDF(records []report.Record, f core.Formatter) ([]byte, error) {
	if len(records) == 0 {
		return nil, core.ErrEmptyReport
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	y := pdfStartY
	line := func(s string) {
		if y > pdfBreakY {
			doc.AddPage()
			y = pdfResetY
		}
		if s != "" {
			doc.Text(pdfLeftMargin, y, s)
		}
		y += pdfLineStep
	}

	sum := core.Summarize(report.Results(records))

	doc.SetFont("Arial", "B", 14)
	line("Tax Calculation Report")
	doc.SetFont("Arial", "", 11)
	line(fmt.Sprintf("Calculations: %d", sum.Count))
	line(fmt.Sprintf("Total tax due: %s", f.Format(sum.TotalTaxDue)))
	line(fmt.Sprintf("Average taxable income: %s", f.Format(sum.AverageTaxableIncome)))
	line("")

	for i, r := range records {
		line(fmt.Sprintf("Row %d - %s", i+1, report.FormatTimestamp(r.CreatedAt)))
		line(fmt.Sprintf("  Income: %s", f.Format(r.Income)))
		line(fmt.Sprintf("  Taxable income: %s", f.Format(r.TaxableIncome)))
		line(fmt.Sprintf("  Tax before payments: %s", f.Format(r.TaxBeforePayments)))
		line(fmt.Sprintf("  Tax due: %s", f.Format(r.TaxDue)))
		line("")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
