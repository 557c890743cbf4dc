package fraud

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/averros/digiwallet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_fraud.go -package=mocks github.com/averros/digiwallet/services/fraud FraudUC,TransactionHistory,AlertGW

// FraudUC combines the real-time evaluator and the batch rescanner. Both
// paths share one heuristics library so that identical inputs always yield
// identical decisions.
type FraudUC interface {
	EvaluateWithdrawal(ctx context.Context, accountID uuid.UUID, amount float64, currency string) models.FraudDecision
	EvaluateTransfer(ctx context.Context, senderID uuid.UUID, amount float64, currency string) models.FraudDecision
	Rescan(ctx context.Context) (*models.RescanSummary, error)
	ListFlagged(ctx context.Context, limit int) ([]models.Transaction, error)
}

// TransactionHistory is the read/flag surface of the transaction record
// store that the fraud subsystem needs. The evaluator only reads; the
// rescanner additionally updates flag fields in place.
type TransactionHistory interface {
	CountRecentTransfers(ctx context.Context, senderID uuid.UUID, since time.Time) (int, error)
	ListSince(ctx context.Context, since time.Time) ([]models.Transaction, error)
	ListFlagged(ctx context.Context, limit int) ([]models.Transaction, error)
	MarkFlagged(ctx context.Context, id uuid.UUID, reason string) (bool, error)
}

// AlertGW publishes fraud alerts for flagged transactions
type AlertGW interface {
	PublishFraudAlert(ctx context.Context, record *models.Transaction, reason, source string) error
}
