package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/models"
)

const transactionColumns = `id, type, amount, currency, sender, receiver, status,
	is_flagged, fraud_reason, is_deleted, deleted_at, created_at, updated_at`

// insertTransaction writes a transaction record inside the caller's
// database transaction, so the record commits or rolls back together with
// the balance mutation
func insertTransaction(ctx context.Context, tx *sqlx.Tx, record *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, amount, currency, sender, receiver,
			status, is_flagged, fraud_reason, is_deleted, deleted_at,
			created_at, updated_at
		) VALUES (:id, :type, :amount, :currency, :sender, :receiver,
			:status, :is_flagged, :fraud_reason, :is_deleted, :deleted_at,
			:created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, record); err != nil {
		return classifyStorageErr(err, "insert transaction")
	}
	return nil
}

// GetByID retrieves a transaction record by id
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1`, transactionColumns)

	var record models.Transaction
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, id)
		}
		return nil, classifyStorageErr(err, "get transaction")
	}

	return &record, nil
}

// ListByAccount returns the account's transaction history, most recent
// first. Soft-deleted records are excluded.
func (r *TransactionRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM transactions WHERE (sender = $1 OR receiver = $1) AND is_deleted = FALSE`, transactionColumns)

	args := []interface{}{accountID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if filter.Flagged != nil {
		args = append(args, *filter.Flagged)
		fmt.Fprintf(&sb, " AND is_flagged = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND created_at <= $%d", len(args))
	}

	sb.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	records := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &records, sb.String(), args...); err != nil {
		return nil, classifyStorageErr(err, "list transactions")
	}

	return records, nil
}

// ListFlagged returns flagged transactions across all accounts, most recent
// first
func (r *TransactionRepo) ListFlagged(ctx context.Context, limit int) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE is_flagged = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`, transactionColumns)

	records := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, classifyStorageErr(err, "list flagged transactions")
	}

	return records, nil
}

// ListSince returns every record created at or after the given time,
// oldest first. Used by the batch fraud rescan.
func (r *TransactionRepo) ListSince(ctx context.Context, since time.Time) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE created_at >= $1
		ORDER BY created_at ASC
	`, transactionColumns)

	records := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &records, query, since); err != nil {
		return nil, classifyStorageErr(err, "list transactions since")
	}

	return records, nil
}

// CountRecentTransfers counts the sender's transfer records created at or
// after the given time. Used by the real-time rate-window rule.
func (r *TransactionRepo) CountRecentTransfers(ctx context.Context, senderID uuid.UUID, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM transactions
		WHERE sender = $1 AND type = $2 AND created_at >= $3
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, senderID, models.TransactionTypeTransfer, since)
	if err != nil {
		return 0, classifyStorageErr(err, "count recent transfers")
	}

	return count, nil
}

// MarkFlagged sets the fraud flag and reason on a record that is not yet
// flagged. The flag guard in the WHERE clause makes concurrent flag writers
// safe: only one of them observes a row update. Returns false when the
// record was already flagged.
func (r *TransactionRepo) MarkFlagged(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE transactions
		SET is_flagged = TRUE, fraud_reason = $1, updated_at = NOW()
		WHERE id = $2 AND is_flagged = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, reason, id)
	if err != nil {
		return false, classifyStorageErr(err, "mark transaction flagged")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, classifyStorageErr(err, "mark transaction flagged rows")
	}

	return rowsAffected == 1, nil
}
