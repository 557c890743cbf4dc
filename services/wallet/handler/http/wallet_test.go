package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/averros/digiwallet/internal/pkg/errors"
	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/wallet/mocks"
)

func newRequestContext(t *testing.T, method, target, body string, accountID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if accountID != uuid.Nil {
		c.Set("account_id", accountID)
	}
	return c, rec
}

func TestGetWallet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		GetBalance(gomock.Any(), accountID).
		Return(&models.BalanceSnapshot{
			AccountID: accountID,
			Balances:  map[string]float64{models.CurrencyUSD: 120.5},
			UpdatedAt: time.Now(),
		}, nil)

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodGet, "/api/v1/wallet", "", accountID)

	require.NoError(t, h.GetWallet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestGetWallet_MissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodGet, "/api/v1/wallet", "", uuid.Nil)

	require.NoError(t, h.GetWallet(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetWallet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		GetBalance(gomock.Any(), accountID).
		Return(nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID))

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodGet, "/api/v1/wallet", "", accountID)

	require.NoError(t, h.GetWallet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		Deposit(gomock.Any(), accountID, 100.0, models.CurrencyUSD).
		Return(&models.Transaction{
			ID:       uuid.New(),
			Type:     models.TransactionTypeDeposit,
			Amount:   100,
			Currency: models.CurrencyUSD,
			Status:   models.TransactionStatusCompleted,
		}, nil)

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/wallet/deposit",
		`{"amount":100,"currency":"USD"}`, accountID)

	require.NoError(t, h.Deposit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Virtual cash deposited successfully")
}

func TestDeposit_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		Deposit(gomock.Any(), accountID, -5.0, models.CurrencyUSD).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput))

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/wallet/deposit",
		`{"amount":-5,"currency":"USD"}`, accountID)

	require.NoError(t, h.Deposit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithdraw_FlaggedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	reason := "Sudden large withdrawal detected"
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		Withdraw(gomock.Any(), accountID, 6000.0, models.CurrencyUSD).
		Return(&models.Transaction{
			ID:          uuid.New(),
			Type:        models.TransactionTypeWithdraw,
			Amount:      6000,
			Currency:    models.CurrencyUSD,
			Status:      models.TransactionStatusCompleted,
			IsFlagged:   true,
			FraudReason: &reason,
		}, nil)

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/wallet/withdraw",
		`{"amount":6000,"currency":"USD"}`, accountID)

	require.NoError(t, h.Withdraw(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Withdrawal processed with suspicious activity flagged")
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		Withdraw(gomock.Any(), accountID, 100.0, models.CurrencyUSD).
		Return(nil, fmt.Errorf("%w: have 50.00 USD, need 100.00", apperrors.ErrInsufficientFunds))

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/wallet/withdraw",
		`{"amount":100,"currency":"USD"}`, accountID)

	require.NoError(t, h.Withdraw(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient funds")
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	receiverID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		Transfer(gomock.Any(), accountID, receiverID, 30.0, models.CurrencyEUR).
		Return(&models.TransferResult{
			Transaction:     &models.Transaction{ID: uuid.New(), Type: models.TransactionTypeTransfer},
			SenderBalance:   &models.BalanceSnapshot{AccountID: accountID},
			ReceiverBalance: &models.BalanceSnapshot{AccountID: receiverID},
		}, nil)

	h := NewWalletHandler(mockUC)
	body := fmt.Sprintf(`{"receiver_id":"%s","amount":30,"currency":"EUR"}`, receiverID)
	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/wallet/transfer", body, accountID)

	require.NoError(t, h.Transfer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transfer completed successfully")
	assert.Contains(t, rec.Body.String(), "sender_wallet")
	assert.Contains(t, rec.Body.String(), "receiver_wallet")
}

func TestTransfer_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	receiverID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		Transfer(gomock.Any(), accountID, receiverID, 30.0, models.CurrencyEUR).
		Return(nil, fmt.Errorf("%w: transfer aborted", apperrors.ErrConflict))

	h := NewWalletHandler(mockUC)
	body := fmt.Sprintf(`{"receiver_id":"%s","amount":30,"currency":"EUR"}`, receiverID)
	c, rec := newRequestContext(t, http.MethodPost, "/api/v1/wallet/transfer", body, accountID)

	require.NoError(t, h.Transfer(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListTransactions_ParsesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)
	mockUC.EXPECT().
		ListTransactions(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error) {
			require.NotNil(t, filter.Type)
			assert.Equal(t, models.TransactionTypeTransfer, *filter.Type)
			require.NotNil(t, filter.Flagged)
			assert.True(t, *filter.Flagged)
			return []models.Transaction{}, nil
		})

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodGet,
		"/api/v1/wallet/transactions?type=transfer&flagged=true", "", accountID)

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTransactions_BadTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	mockUC := mocks.NewMockWalletUC(ctrl)

	h := NewWalletHandler(mockUC)
	c, rec := newRequestContext(t, http.MethodGet,
		"/api/v1/wallet/transactions?from=yesterday", "", accountID)

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
