package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/averros/digiwallet/internal/pkg/models"
)

func testConfig() models.FraudConfig {
	return models.FraudConfig{
		TransferWindow:       time.Minute,
		MaxTransfersInWindow: 5,
		MaxAmount: map[string]float64{
			models.CurrencyUSD: 5000,
			models.CurrencyINR: 200000,
			models.CurrencyEUR: 4500,
		},
	}
}

func TestExceedsMaxAmount_BelowThreshold(t *testing.T) {
	assert.False(t, ExceedsMaxAmount(testConfig(), models.CurrencyUSD, 4999.99))
}

func TestExceedsMaxAmount_ExactlyAtThreshold(t *testing.T) {
	// The boundary is strict: an amount exactly at the threshold passes
	assert.False(t, ExceedsMaxAmount(testConfig(), models.CurrencyUSD, 5000))
	assert.False(t, ExceedsMaxAmount(testConfig(), models.CurrencyINR, 200000))
	assert.False(t, ExceedsMaxAmount(testConfig(), models.CurrencyEUR, 4500))
}

func TestExceedsMaxAmount_AboveThreshold(t *testing.T) {
	assert.True(t, ExceedsMaxAmount(testConfig(), models.CurrencyUSD, 5000.01))
	assert.True(t, ExceedsMaxAmount(testConfig(), models.CurrencyINR, 200000.01))
	assert.True(t, ExceedsMaxAmount(testConfig(), models.CurrencyEUR, 4500.01))
}

func TestExceedsMaxAmount_UnknownCurrency(t *testing.T) {
	// No threshold means no flag, whatever the amount
	assert.False(t, ExceedsMaxAmount(testConfig(), "GBP", 1e12))
}

func TestRateExceeded(t *testing.T) {
	cfg := testConfig()

	assert.False(t, RateExceeded(cfg, 0))
	assert.False(t, RateExceeded(cfg, 4))
	assert.True(t, RateExceeded(cfg, 5))
	assert.True(t, RateExceeded(cfg, 6))
}

func TestWithinWindow(t *testing.T) {
	cfg := testConfig()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, WithinWindow(cfg, base, base.Add(30*time.Second)))
	// Inclusive boundary: a gap exactly equal to the window counts
	assert.True(t, WithinWindow(cfg, base, base.Add(time.Minute)))
	assert.False(t, WithinWindow(cfg, base, base.Add(time.Minute+time.Nanosecond)))
}

func TestReasonBatchLargeWithdrawal(t *testing.T) {
	assert.Equal(t, "Large withdrawal detected in USD (daily scan)", ReasonBatchLargeWithdrawal(models.CurrencyUSD))
}
