package usecase

import (
	"errors"

	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/metrics"
	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/internal/pkg/retry"
	"github.com/averros/digiwallet/services/wallet"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
)

// LedgerUC implements the wallet.WalletUC interface: the ledger engine that
// orchestrates deposits, withdrawals and transfers as atomic operations
type LedgerUC struct {
	cfg        *models.Config
	walletRepo wallet.WalletRepo
	txRepo     wallet.TransactionRepo
	fraud      wallet.FraudEvaluator
	gw         wallet.WalletGW
	collector  *metrics.Collector
	retrier    *retry.Retrier
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(
	cfg *models.Config,
	walletRepo wallet.WalletRepo,
	txRepo wallet.TransactionRepo,
	fraud wallet.FraudEvaluator,
	gw wallet.WalletGW,
	collector *metrics.Collector,
) *LedgerUC {
	retryCfg := retry.DefaultConfig()
	// Only serialization conflicts are worth retrying; expected failures
	// (invalid input, missing wallet, short funds) surface immediately.
	retryCfg.RetryableFunc = func(err error) bool {
		return errors.Is(err, apperrors.ErrConflict)
	}

	return &LedgerUC{
		cfg:        cfg,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		fraud:      fraud,
		gw:         gw,
		collector:  collector,
		retrier:    retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}
