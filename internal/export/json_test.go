package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"trex/internal/core"
	"trex/internal/report"
)

func testRecords() []report.Record {
	inputs := []core.CalculationInput{
		{Income: 100000, Addbacks: 5000, Deductions: 20000, TaxRate: 0.21, Payments: 10000},
		{Income: 50000, TemporaryDifferences: 1500, NetOperatingLoss: 2000, TaxRate: 0.19, Payments: 0},
	}
	records := make([]report.Record, len(inputs))
	for i, in := range inputs {
		records[i] = report.NewRecord(in, core.Compute(in))
	}
	return records
}

func TestJSONEmptyReport(t *testing.T) {
	_, err := JSON(nil)
	if !errors.Is(err, core.ErrEmptyReport) {
		t.Fatalf("expected ErrEmptyReport, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	records := testRecords()

	data, err := JSON(records)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var parsed []report.Record
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("exported document does not parse: %v", err)
	}
	if len(parsed) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(parsed))
	}
	for i := range records {
		if parsed[i].CalculationInput != records[i].CalculationInput {
			t.Fatalf("record %d inputs differ: %+v != %+v", i, parsed[i].CalculationInput, records[i].CalculationInput)
		}
		if parsed[i].TaxResult != records[i].TaxResult {
			t.Fatalf("record %d results differ: %+v != %+v", i, parsed[i].TaxResult, records[i].TaxResult)
		}
		if !parsed[i].CreatedAt.Equal(records[i].CreatedAt) {
			t.Fatalf("record %d timestamp differs: %v != %v", i, parsed[i].CreatedAt, records[i].CreatedAt)
		}
	}
}

func TestJSONIndentation(t *testing.T) {
	data, err := JSON(testRecords())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  {") {
		t.Fatal("expected two-space indented output")
	}
}
