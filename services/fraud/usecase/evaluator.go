package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/fraud/rules"
)

// EvaluateWithdrawal applies the large-amount rule to a pending withdrawal.
// It only reads; the caller persists the decision together with the record.
func (uc *FraudDetectionUC) EvaluateWithdrawal(ctx context.Context, accountID uuid.UUID, amount float64, currency string) models.FraudDecision {
	if rules.ExceedsMaxAmount(uc.cfg, currency, amount) {
		return models.FraudDecision{Flagged: true, Reason: rules.ReasonLargeWithdrawal}
	}

	return models.FraudDecision{}
}

// EvaluateTransfer applies the large-amount rule and then the rate-window
// rule to a pending transfer. The first rule to trigger supplies the single
// recorded reason.
//
// A failed history read never blocks the money movement: the decision
// degrades to unflagged and the failure is logged for review.
func (uc *FraudDetectionUC) EvaluateTransfer(ctx context.Context, senderID uuid.UUID, amount float64, currency string) models.FraudDecision {
	if rules.ExceedsMaxAmount(uc.cfg, currency, amount) {
		return models.FraudDecision{Flagged: true, Reason: rules.ReasonLargeTransfer}
	}

	since := time.Now().Add(-uc.cfg.TransferWindow)
	count, err := uc.history.CountRecentTransfers(ctx, senderID, since)
	if err != nil {
		logger.Error("fraud history read failed, proceeding unflagged",
			logger.String("sender", senderID.String()),
			logger.Err(err))
		return models.FraudDecision{}
	}

	if rules.RateExceeded(uc.cfg, count) {
		return models.FraudDecision{Flagged: true, Reason: rules.ReasonRateWindow}
	}

	return models.FraudDecision{}
}

// ListFlagged returns flagged transactions for administrative review
func (uc *FraudDetectionUC) ListFlagged(ctx context.Context, limit int) ([]models.Transaction, error) {
	return uc.history.ListFlagged(ctx, limit)
}
