package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/models"
)

// ProvisionWallet creates zero balance rows for a new account. Invoked once
// per account by the external provisioning flow.
func (uc *LedgerUC) ProvisionWallet(ctx context.Context, accountID uuid.UUID) error {
	if accountID == uuid.Nil {
		return fmt.Errorf("%w: account id is required", apperrors.ErrInvalidInput)
	}
	return uc.walletRepo.CreateWallet(ctx, accountID)
}

// GetBalance returns the account's multi-currency balance snapshot
func (uc *LedgerUC) GetBalance(ctx context.Context, accountID uuid.UUID) (*models.BalanceSnapshot, error) {
	return uc.walletRepo.GetBalanceSnapshot(ctx, accountID)
}

// ListTransactions returns the account's transaction history, most recent
// first
func (uc *LedgerUC) ListTransactions(ctx context.Context, accountID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error) {
	return uc.txRepo.ListByAccount(ctx, accountID, filter)
}

// Deposit credits virtual cash into the account. Deposits are recorded
// unflagged; the fraud heuristics only watch outbound money movement.
func (uc *LedgerUC) Deposit(ctx context.Context, accountID uuid.UUID, amount float64, currency string) (*models.Transaction, error) {
	if err := validateOperation(accountID, amount, currency); err != nil {
		return nil, err
	}

	record := newRecord(models.TransactionTypeDeposit, amount, currency)
	record.Receiver = &accountID

	if err := uc.commit(ctx, record, uc.walletRepo.Deposit); err != nil {
		return nil, err
	}

	return record, nil
}

// Withdraw debits virtual cash from the account. The large-amount rule is
// consulted before the record is persisted; a flagged withdrawal still
// completes, carrying the flag and reason on its record.
func (uc *LedgerUC) Withdraw(ctx context.Context, accountID uuid.UUID, amount float64, currency string) (*models.Transaction, error) {
	if err := validateOperation(accountID, amount, currency); err != nil {
		return nil, err
	}

	decision := uc.fraud.EvaluateWithdrawal(ctx, accountID, amount, currency)

	record := newRecord(models.TransactionTypeWithdraw, amount, currency)
	record.Sender = &accountID
	applyDecision(record, decision)

	if err := uc.commit(ctx, record, uc.walletRepo.Withdraw); err != nil {
		return nil, err
	}

	uc.reportFlag(ctx, record, decision)

	return record, nil
}

// Transfer moves virtual cash between two accounts. The debit, the credit
// and the record write commit as a single atomic unit; a failed transfer
// leaves both balances unchanged.
func (uc *LedgerUC) Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount float64, currency string) (*models.TransferResult, error) {
	if err := validateOperation(senderID, amount, currency); err != nil {
		return nil, err
	}
	if receiverID == uuid.Nil {
		return nil, fmt.Errorf("%w: receiver id is required", apperrors.ErrInvalidInput)
	}
	if senderID == receiverID {
		return nil, fmt.Errorf("%w: sender and receiver must differ", apperrors.ErrInvalidInput)
	}

	decision := uc.fraud.EvaluateTransfer(ctx, senderID, amount, currency)

	record := newRecord(models.TransactionTypeTransfer, amount, currency)
	record.Sender = &senderID
	record.Receiver = &receiverID
	applyDecision(record, decision)

	if err := uc.commit(ctx, record, uc.walletRepo.Transfer); err != nil {
		return nil, err
	}

	uc.reportFlag(ctx, record, decision)

	senderBalance, err := uc.walletRepo.GetBalanceSnapshot(ctx, senderID)
	if err != nil {
		return nil, err
	}
	receiverBalance, err := uc.walletRepo.GetBalanceSnapshot(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	return &models.TransferResult{
		Transaction:     record,
		SenderBalance:   senderBalance,
		ReceiverBalance: receiverBalance,
	}, nil
}

// commit runs the repository's atomic unit with bounded retry on
// serialization conflicts, and records the operation outcome
func (uc *LedgerUC) commit(ctx context.Context, record *models.Transaction, op func(context.Context, *models.Transaction) error) error {
	start := time.Now()

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return op(ctx, record)
	})

	if uc.collector != nil {
		status := "completed"
		if err != nil {
			status = "failed"
		}
		uc.collector.RecordOperation(string(record.Type), status, time.Since(start))
	}

	if err != nil {
		return err
	}

	uc.publishCompleted(ctx, record)

	return nil
}

// reportFlag records metrics and publishes an alert for a transaction that
// completed flagged. Publish failures are logged, never surfaced: fraud
// detection is advisory and must not fail the money movement.
func (uc *LedgerUC) reportFlag(ctx context.Context, record *models.Transaction, decision models.FraudDecision) {
	if !decision.Flagged {
		return
	}

	if uc.collector != nil {
		uc.collector.RecordFlagged("realtime")
	}

	if uc.gw != nil {
		if err := uc.gw.PublishFraudAlert(ctx, record, decision.Reason, "realtime"); err != nil {
			logger.Error("failed to publish fraud alert",
				logger.String("transaction_id", record.ID.String()),
				logger.Err(err))
		}
	}
}

func (uc *LedgerUC) publishCompleted(ctx context.Context, record *models.Transaction) {
	if uc.gw == nil {
		return
	}
	if err := uc.gw.PublishTransactionCompleted(ctx, record); err != nil {
		logger.Error("failed to publish transaction event",
			logger.String("transaction_id", record.ID.String()),
			logger.Err(err))
	}
}

func validateOperation(accountID uuid.UUID, amount float64, currency string) error {
	if accountID == uuid.Nil {
		return fmt.Errorf("%w: account id is required", apperrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	if !models.IsSupportedCurrency(currency) {
		return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrInvalidInput, currency)
	}
	return nil
}

func newRecord(txType models.TransactionType, amount float64, currency string) *models.Transaction {
	now := time.Now()
	return &models.Transaction{
		ID:        uuid.New(),
		Type:      txType,
		Amount:    amount,
		Currency:  currency,
		Status:    models.TransactionStatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func applyDecision(record *models.Transaction, decision models.FraudDecision) {
	if !decision.Flagged {
		return
	}
	record.IsFlagged = true
	reason := decision.Reason
	record.FraudReason = &reason
}
