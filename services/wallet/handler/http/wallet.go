package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/httputil"
	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

// MoneyRequest is the payload for deposits and withdrawals
type MoneyRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// TransferRequest is the payload for transfers between accounts
type TransferRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
}

// ProvisionRequest is the admin payload for creating wallet rows
type ProvisionRequest struct {
	AccountID uuid.UUID `json:"account_id"`
}

// GetWallet handles balance snapshot requests for the authenticated account
func (h *WalletHandler) GetWallet(c echo.Context) error {
	accountID, err := accountFromContext(c)
	if err != nil {
		return httputil.UnauthorizedResponse(c, "")
	}

	snapshot, err := h.walletUC.GetBalance(c.Request().Context(), accountID)
	if err != nil {
		return h.operationError(c, "GetWallet", err)
	}

	return httputil.SuccessResponse(c, http.StatusOK, "Wallet fetched successfully", snapshot)
}

// Deposit handles virtual cash deposit requests
func (h *WalletHandler) Deposit(c echo.Context) error {
	accountID, err := accountFromContext(c)
	if err != nil {
		return httputil.UnauthorizedResponse(c, "")
	}

	var req MoneyRequest
	if err := c.Bind(&req); err != nil {
		return httputil.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.walletUC.Deposit(c.Request().Context(), accountID, req.Amount, req.Currency)
	if err != nil {
		return h.operationError(c, "Deposit", err)
	}

	return httputil.SuccessResponse(c, http.StatusCreated, "Virtual cash deposited successfully", record)
}

// Withdraw handles virtual cash withdrawal requests. A withdrawal flagged by
// the fraud evaluator still succeeds; the response message says so.
func (h *WalletHandler) Withdraw(c echo.Context) error {
	accountID, err := accountFromContext(c)
	if err != nil {
		return httputil.UnauthorizedResponse(c, "")
	}

	var req MoneyRequest
	if err := c.Bind(&req); err != nil {
		return httputil.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.walletUC.Withdraw(c.Request().Context(), accountID, req.Amount, req.Currency)
	if err != nil {
		return h.operationError(c, "Withdraw", err)
	}

	message := "Virtual cash withdrawn successfully"
	if record.IsFlagged {
		message = "Withdrawal processed with suspicious activity flagged"
	}

	return httputil.SuccessResponse(c, http.StatusCreated, message, record)
}

// Transfer handles transfer requests between accounts
func (h *WalletHandler) Transfer(c echo.Context) error {
	accountID, err := accountFromContext(c)
	if err != nil {
		return httputil.UnauthorizedResponse(c, "")
	}

	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return httputil.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.walletUC.Transfer(c.Request().Context(), accountID, req.ReceiverID, req.Amount, req.Currency)
	if err != nil {
		return h.operationError(c, "Transfer", err)
	}

	message := "Transfer completed successfully"
	if result.Transaction.IsFlagged {
		message = "Transfer processed with suspicious activity flagged"
	}

	return httputil.SuccessResponse(c, http.StatusCreated, message, result)
}

// ListTransactions handles transaction history requests for the authenticated
// account. Filters come from query parameters; all are optional.
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	accountID, err := accountFromContext(c)
	if err != nil {
		return httputil.UnauthorizedResponse(c, "")
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		return httputil.BadRequestResponse(c, err.Error())
	}

	records, err := h.walletUC.ListTransactions(c.Request().Context(), accountID, filter)
	if err != nil {
		return h.operationError(c, "ListTransactions", err)
	}

	return httputil.SuccessResponse(c, http.StatusOK, "Transactions fetched successfully", records)
}

// ProvisionWallet handles admin requests to create balance rows for a new
// account
func (h *WalletHandler) ProvisionWallet(c echo.Context) error {
	var req ProvisionRequest
	if err := c.Bind(&req); err != nil {
		return httputil.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.walletUC.ProvisionWallet(c.Request().Context(), req.AccountID); err != nil {
		return h.operationError(c, "ProvisionWallet", err)
	}

	return httputil.SuccessResponse(c, http.StatusCreated, "Wallet provisioned successfully", map[string]string{
		"account_id": req.AccountID.String(),
	})
}

// operationError maps ledger errors to HTTP responses
func (h *WalletHandler) operationError(c echo.Context, endpoint string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return httputil.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return httputil.BadRequestResponse(c, "Insufficient funds")
	case errors.Is(err, apperrors.ErrNotFound):
		return httputil.NotFoundResponse(c, "Wallet not found")
	case errors.Is(err, apperrors.ErrConflict):
		return httputil.ConflictResponse(c, "Operation conflicted, please retry")
	default:
		logger.Error("wallet operation failed",
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return httputil.InternalServerErrorResponse(c, "")
	}
}

func accountFromContext(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get("account_id").(uuid.UUID)
	if !ok || accountID == uuid.Nil {
		return uuid.Nil, errors.New("missing account id in context")
	}
	return accountID, nil
}

func filterFromQuery(c echo.Context) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	if raw := c.QueryParam("type"); raw != "" {
		txType := models.TransactionType(raw)
		filter.Type = &txType
	}
	if raw := c.QueryParam("flagged"); raw != "" {
		flagged := raw == "true"
		filter.Flagged = &flagged
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid from timestamp, want RFC3339")
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid to timestamp, want RFC3339")
		}
		filter.To = &to
	}

	return filter, nil
}
