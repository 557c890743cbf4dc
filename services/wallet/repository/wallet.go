package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/models"
)

const (
	balanceCacheTTL    = 30 * time.Second
	balanceCachePrefix = "wallet:balance:"
)

func balanceCacheKey(accountID uuid.UUID) string {
	return balanceCachePrefix + accountID.String()
}

// CreateWallet provisions zero balance rows for every supported currency.
// Provisioning is idempotent: re-running for an existing account is a no-op.
func (r *WalletRepo) CreateWallet(ctx context.Context, accountID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classifyStorageErr(err, "begin create wallet")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO balances (account_id, currency, amount, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (account_id, currency) DO NOTHING
	`
	for _, currency := range models.SupportedCurrencies {
		if _, err := tx.ExecContext(ctx, query, accountID, currency); err != nil {
			return classifyStorageErr(err, "insert balance row")
		}
	}

	if err := tx.Commit(); err != nil {
		return classifyStorageErr(err, "commit create wallet")
	}

	return nil
}

// GetBalanceSnapshot returns the full multi-currency balance view for one
// account, served from cache when fresh
func (r *WalletRepo) GetBalanceSnapshot(ctx context.Context, accountID uuid.UUID) (*models.BalanceSnapshot, error) {
	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, balanceCacheKey(accountID)); err == nil {
			var snapshot models.BalanceSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	query := `
		SELECT currency, amount, updated_at
		FROM balances
		WHERE account_id = $1
		ORDER BY currency
	`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, classifyStorageErr(err, "query balances")
	}
	defer rows.Close()

	snapshot := &models.BalanceSnapshot{
		AccountID: accountID,
		Balances:  make(map[string]float64),
	}

	for rows.Next() {
		var currency string
		var amount float64
		var updatedAt time.Time
		if err := rows.Scan(&currency, &amount, &updatedAt); err != nil {
			return nil, classifyStorageErr(err, "scan balance row")
		}
		snapshot.Balances[currency] = amount
		if updatedAt.After(snapshot.UpdatedAt) {
			snapshot.UpdatedAt = updatedAt
		}
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr(err, "iterate balance rows")
	}

	if len(snapshot.Balances) == 0 {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	r.cacheSnapshot(ctx, snapshot)

	return snapshot, nil
}

// Deposit credits the account balance and inserts the transaction record in
// one database transaction
func (r *WalletRepo) Deposit(ctx context.Context, record *models.Transaction) error {
	if record.Receiver == nil {
		return fmt.Errorf("%w: deposit requires a receiver", apperrors.ErrInvalidInput)
	}
	accountID := *record.Receiver

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classifyStorageErr(err, "begin deposit")
	}
	defer tx.Rollback()

	if _, err := r.lockBalance(ctx, tx, accountID, record.Currency); err != nil {
		return err
	}

	if err := r.credit(ctx, tx, accountID, record.Currency, record.Amount); err != nil {
		return err
	}

	if err := insertTransaction(ctx, tx, record); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyStorageErr(err, "commit deposit")
	}

	r.invalidateSnapshot(ctx, accountID)

	return nil
}

// Withdraw debits the account balance and inserts the transaction record in
// one database transaction. Sufficiency is checked on the locked row, so
// concurrent withdrawals cannot jointly overdraw the account.
func (r *WalletRepo) Withdraw(ctx context.Context, record *models.Transaction) error {
	if record.Sender == nil {
		return fmt.Errorf("%w: withdrawal requires a sender", apperrors.ErrInvalidInput)
	}
	accountID := *record.Sender

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classifyStorageErr(err, "begin withdraw")
	}
	defer tx.Rollback()

	balance, err := r.lockBalance(ctx, tx, accountID, record.Currency)
	if err != nil {
		return err
	}

	if balance < record.Amount {
		return fmt.Errorf("%w: have %.2f %s, need %.2f",
			apperrors.ErrInsufficientFunds, balance, record.Currency, record.Amount)
	}

	if err := r.debit(ctx, tx, accountID, record.Currency, record.Amount); err != nil {
		return err
	}

	if err := insertTransaction(ctx, tx, record); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyStorageErr(err, "commit withdraw")
	}

	r.invalidateSnapshot(ctx, accountID)

	return nil
}

// Transfer debits the sender, credits the receiver and inserts the
// transaction record in one database transaction: all three take effect or
// none do. Balance rows are locked in ascending account-id order so that two
// opposing transfers cannot deadlock.
func (r *WalletRepo) Transfer(ctx context.Context, record *models.Transaction) error {
	if record.Sender == nil || record.Receiver == nil {
		return fmt.Errorf("%w: transfer requires sender and receiver", apperrors.ErrInvalidInput)
	}
	senderID := *record.Sender
	receiverID := *record.Receiver

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classifyStorageErr(err, "begin transfer")
	}
	defer tx.Rollback()

	first, second := senderID, receiverID
	if second.String() < first.String() {
		first, second = second, first
	}

	balances := make(map[uuid.UUID]float64, 2)
	for _, accountID := range []uuid.UUID{first, second} {
		balance, err := r.lockBalance(ctx, tx, accountID, record.Currency)
		if err != nil {
			return err
		}
		balances[accountID] = balance
	}

	if balances[senderID] < record.Amount {
		return fmt.Errorf("%w: have %.2f %s, need %.2f",
			apperrors.ErrInsufficientFunds, balances[senderID], record.Currency, record.Amount)
	}

	if err := r.debit(ctx, tx, senderID, record.Currency, record.Amount); err != nil {
		return err
	}
	if err := r.credit(ctx, tx, receiverID, record.Currency, record.Amount); err != nil {
		return err
	}

	if err := insertTransaction(ctx, tx, record); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyStorageErr(err, "commit transfer")
	}

	r.invalidateSnapshot(ctx, senderID)
	r.invalidateSnapshot(ctx, receiverID)

	return nil
}

// lockBalance reads one balance row under FOR UPDATE, serializing all
// concurrent mutations of the same account/currency pair
func (r *WalletRepo) lockBalance(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, currency string) (float64, error) {
	query := `
		SELECT amount FROM balances
		WHERE account_id = $1 AND currency = $2
		FOR UPDATE
	`
	var balance float64
	err := tx.QueryRowContext(ctx, query, accountID, currency).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return 0, classifyStorageErr(err, "lock balance row")
	}

	return balance, nil
}

func (r *WalletRepo) credit(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, currency string, amount float64) error {
	query := `
		UPDATE balances
		SET amount = amount + $1, updated_at = NOW()
		WHERE account_id = $2 AND currency = $3
	`
	if _, err := tx.ExecContext(ctx, query, amount, accountID, currency); err != nil {
		return classifyStorageErr(err, "credit balance")
	}
	return nil
}

func (r *WalletRepo) debit(ctx context.Context, tx *sqlx.Tx, accountID uuid.UUID, currency string, amount float64) error {
	query := `
		UPDATE balances
		SET amount = amount - $1, updated_at = NOW()
		WHERE account_id = $2 AND currency = $3
	`
	if _, err := tx.ExecContext(ctx, query, amount, accountID, currency); err != nil {
		return classifyStorageErr(err, "debit balance")
	}
	return nil
}

func (r *WalletRepo) cacheSnapshot(ctx context.Context, snapshot *models.BalanceSnapshot) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, balanceCacheKey(snapshot.AccountID), data, balanceCacheTTL); err != nil {
		logger.Debug("failed to cache balance snapshot", logger.Err(err))
	}
}

func (r *WalletRepo) invalidateSnapshot(ctx context.Context, accountID uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, balanceCacheKey(accountID)); err != nil {
		logger.Debug("failed to invalidate balance snapshot", logger.Err(err))
	}
}
