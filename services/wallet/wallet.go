package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/averros/digiwallet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/averros/digiwallet/services/wallet WalletUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/averros/digiwallet/services/wallet WalletRepo,TransactionRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/averros/digiwallet/services/wallet WalletGW,FraudEvaluator

// WalletUC is the ledger engine interface
type WalletUC interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount float64, currency string) (*models.Transaction, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount float64, currency string) (*models.Transaction, error)
	Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount float64, currency string) (*models.TransferResult, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (*models.BalanceSnapshot, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error)
	ProvisionWallet(ctx context.Context, accountID uuid.UUID) error
}

// WalletRepo is the account balance store. The mutating methods commit the
// balance change(s) and the transaction record as one atomic unit: a failure
// at any step leaves neither in place.
type WalletRepo interface {
	CreateWallet(ctx context.Context, accountID uuid.UUID) error
	GetBalanceSnapshot(ctx context.Context, accountID uuid.UUID) (*models.BalanceSnapshot, error)
	Deposit(ctx context.Context, record *models.Transaction) error
	Withdraw(ctx context.Context, record *models.Transaction) error
	Transfer(ctx context.Context, record *models.Transaction) error
}

// TransactionRepo is the transaction record store
type TransactionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error)
	ListFlagged(ctx context.Context, limit int) ([]models.Transaction, error)
	ListSince(ctx context.Context, since time.Time) ([]models.Transaction, error)
	CountRecentTransfers(ctx context.Context, senderID uuid.UUID, since time.Time) (int, error)
	MarkFlagged(ctx context.Context, id uuid.UUID, reason string) (bool, error)
}

// WalletGW publishes wallet events to downstream consumers
type WalletGW interface {
	PublishTransactionCompleted(ctx context.Context, record *models.Transaction) error
	PublishFraudAlert(ctx context.Context, record *models.Transaction, reason, source string) error
}

// FraudEvaluator is the real-time fraud decision function consulted inside
// withdraw and transfer before the record is persisted
type FraudEvaluator interface {
	EvaluateWithdrawal(ctx context.Context, accountID uuid.UUID, amount float64, currency string) models.FraudDecision
	EvaluateTransfer(ctx context.Context, senderID uuid.UUID, amount float64, currency string) models.FraudDecision
}
