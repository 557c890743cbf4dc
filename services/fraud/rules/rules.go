// Package rules holds the fraud heuristics shared by the real-time
// evaluator and the batch rescanner. Keeping them in one place guarantees
// both paths reach identical decisions for identical inputs.
package rules

import (
	"fmt"
	"time"

	"github.com/averros/digiwallet/internal/pkg/models"
)

// Fraud reasons recorded on flagged transactions
const (
	ReasonLargeWithdrawal = "Sudden large withdrawal detected"
	ReasonLargeTransfer   = "Unusually large transfer detected"
	ReasonRateWindow      = "Multiple transfers in a short period"
	ReasonBatchRateWindow = "Multiple transfers in short time (daily scan)"
)

// ReasonBatchLargeWithdrawal is the reason recorded by the batch scan's
// large-withdrawal rule
func ReasonBatchLargeWithdrawal(currency string) string {
	return fmt.Sprintf("Large withdrawal detected in %s (daily scan)", currency)
}

// ExceedsMaxAmount reports whether the amount is strictly greater than the
// configured per-currency threshold. An amount exactly at the threshold is
// not flagged.
func ExceedsMaxAmount(cfg models.FraudConfig, currency string, amount float64) bool {
	threshold, ok := cfg.MaxAmount[currency]
	return ok && amount > threshold
}

// RateExceeded reports whether a sender's transfer count inside the window
// has reached the configured maximum
func RateExceeded(cfg models.FraudConfig, countInWindow int) bool {
	return countInWindow >= cfg.MaxTransfersInWindow
}

// WithinWindow reports whether two creation times fall inside the rate
// window. The boundary is inclusive: a gap exactly equal to the window
// still counts.
func WithinWindow(cfg models.FraudConfig, earlier, later time.Time) bool {
	return later.Sub(earlier) <= cfg.TransferWindow
}
