package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/averros/digiwallet/internal/pkg/database"
	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/models"
)

// WalletRepo implements the wallet.WalletRepo interface over Postgres,
// with a short-TTL redis cache for balance snapshots
type WalletRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewWalletRepo creates a new wallet repository
func NewWalletRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *WalletRepo {
	return &WalletRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

// TransactionRepo implements the wallet.TransactionRepo interface over Postgres
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction record repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// Postgres error codes surfaced as retryable conflicts
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// classifyStorageErr maps driver errors onto the ledger error taxonomy.
// Serialization failures and deadlocks become ErrConflict so the caller can
// retry; everything else is a storage failure.
func classifyStorageErr(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected {
			return fmt.Errorf("%w: %s: %v", apperrors.ErrConflict, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStorage, op, err)
}
