package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	repo := &TransactionRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	return repo, mock
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "type", "amount", "currency", "sender", "receiver", "status",
		"is_flagged", "fraud_reason", "is_deleted", "deleted_at", "created_at", "updated_at",
	})
}

func TestGetByID_Success(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	id := uuid.New()
	sender := uuid.New()
	now := time.Now()

	rows := transactionRows().
		AddRow(id, "withdraw", 75.0, "USD", sender, nil, "completed",
			false, nil, false, nil, now, now)
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, models.TransactionTypeWithdraw, record.Type)
	assert.Equal(t, 75.0, record.Amount)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(transactionRows())

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListByAccount_NoFilters(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	accountID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE \(sender = \$1 OR receiver = \$1\) AND is_deleted = FALSE ORDER BY created_at DESC`).
		WithArgs(accountID).
		WillReturnRows(transactionRows())

	records, err := repo.ListByAccount(context.Background(), accountID, models.TransactionFilter{})

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListByAccount_AllFilters(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	accountID := uuid.New()
	txType := models.TransactionTypeTransfer
	flagged := true
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()

	filter := models.TransactionFilter{
		Type:    &txType,
		Flagged: &flagged,
		From:    &from,
		To:      &to,
		Limit:   10,
	}

	mock.ExpectQuery(`AND type = \$2 AND is_flagged = \$3 AND created_at >= \$4 AND created_at <= \$5 ORDER BY created_at DESC LIMIT \$6`).
		WithArgs(accountID, txType, flagged, from, to, 10).
		WillReturnRows(transactionRows())

	_, err := repo.ListByAccount(context.Background(), accountID, filter)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSince_OrdersOldestFirst(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	since := time.Now().Add(-24 * time.Hour)
	mock.ExpectQuery(`WHERE created_at >= \$1\s+ORDER BY created_at ASC`).
		WithArgs(since).
		WillReturnRows(transactionRows())

	_, err := repo.ListSince(context.Background(), since)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRecentTransfers(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	senderID := uuid.New()
	since := time.Now().Add(-time.Minute)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM transactions`).
		WithArgs(senderID, models.TransactionTypeTransfer, since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountRecentTransfers(context.Background(), senderID, since)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestMarkFlagged_NewFlag(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE transactions").
		WithArgs("Multiple transfers in short time (daily scan)", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	newly, err := repo.MarkFlagged(context.Background(), id, "Multiple transfers in short time (daily scan)")

	require.NoError(t, err)
	assert.True(t, newly)
}

func TestMarkFlagged_AlreadyFlagged(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	id := uuid.New()
	// The flag guard matched no rows: some other writer flagged it first
	mock.ExpectExec("UPDATE transactions").
		WithArgs("Large withdrawal detected in USD (daily scan)", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	newly, err := repo.MarkFlagged(context.Background(), id, "Large withdrawal detected in USD (daily scan)")

	require.NoError(t, err)
	assert.False(t, newly)
}
