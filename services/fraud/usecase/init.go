package usecase

import (
	"github.com/averros/digiwallet/internal/pkg/metrics"
	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/fraud"
)

// FraudDetectionUC implements fraud.FraudUC: the real-time evaluator
// consulted inside ledger operations, and the batch rescanner that walks the
// trailing 24-hour window
type FraudDetectionUC struct {
	cfg       models.FraudConfig
	history   fraud.TransactionHistory
	alertGW   fraud.AlertGW
	collector *metrics.Collector
}

// NewFraudDetectionUC creates a new fraud detection use case
func NewFraudDetectionUC(
	cfg models.FraudConfig,
	history fraud.TransactionHistory,
	alertGW fraud.AlertGW,
	collector *metrics.Collector,
) *FraudDetectionUC {
	return &FraudDetectionUC{
		cfg:       cfg,
		history:   history,
		alertGW:   alertGW,
		collector: collector,
	}
}
