package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"trex/internal/core"
)

type contextKey string

const requestIDKey contextKey = "request_id"

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// parseCalculationInput reads the seven worksheet fields from the form.
// Blank or unparsable values become zero.
func parseCalculationInput(form url.Values) core.CalculationInput {
	return core.CalculationInput{
		Income:               core.ParseAmount(form.Get("income")),
		Addbacks:             core.ParseAmount(form.Get("addbacks")),
		TemporaryDifferences: core.ParseAmount(form.Get("temporaryDifferences")),
		Deductions:           core.ParseAmount(form.Get("deductions")),
		NetOperatingLoss:     core.ParseAmount(form.Get("netOperatingLoss")),
		TaxRate:              core.ParseAmount(form.Get("taxRate")),
		Payments:             core.ParseAmount(form.Get("payments")),
	}
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
