// Package export serializes the accumulated report into downloadable
// artifacts.
package export

import (
	"encoding/json"
	"fmt"

	"trex/internal/core"
	"trex/internal/report"
)

const (
	JSONFilename    = "trex_report.json"
	JSONContentType = "application/json"
)

// JSON serializes the full record sequence in insertion order with
// two-space indentation. An empty report is a user-facing error, never an
// empty file.
func JSON(records []report.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, core.ErrEmptyReport
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}
