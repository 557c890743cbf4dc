package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/fraud/mocks"
	"github.com/averros/digiwallet/services/fraud/rules"
)

func transferAt(sender uuid.UUID, at time.Time) models.Transaction {
	receiver := uuid.New()
	return models.Transaction{
		ID:        uuid.New(),
		Type:      models.TransactionTypeTransfer,
		Amount:    100,
		Currency:  models.CurrencyUSD,
		Sender:    &sender,
		Receiver:  &receiver,
		Status:    models.TransactionStatusCompleted,
		CreatedAt: at,
	}
}

func withdrawalAt(sender uuid.UUID, amount float64, currency string, at time.Time) models.Transaction {
	return models.Transaction{
		ID:        uuid.New(),
		Type:      models.TransactionTypeWithdraw,
		Amount:    amount,
		Currency:  currency,
		Sender:    &sender,
		Status:    models.TransactionStatusCompleted,
		CreatedAt: at,
	}
}

func TestRescan_FlagsRapidTransferPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := uuid.New()
	base := time.Now().Add(-2 * time.Hour)

	// Gaps of 30s and 60s fall inside the one minute window; the 90s
	// jump from t=60 to t=150 does not.
	records := []models.Transaction{
		transferAt(sender, base),
		transferAt(sender, base.Add(30*time.Second)),
		transferAt(sender, base.Add(60*time.Second)),
		transferAt(sender, base.Add(150*time.Second)),
	}

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(records, nil)
	mockHistory.EXPECT().MarkFlagged(gomock.Any(), records[1].ID, rules.ReasonBatchRateWindow).Return(true, nil)
	mockHistory.EXPECT().MarkFlagged(gomock.Any(), records[2].ID, rules.ReasonBatchRateWindow).Return(true, nil)

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ScannedSenders)
	assert.Equal(t, 2, summary.NewlyFlagged)
}

func TestRescan_FlagsLargeWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := uuid.New()
	base := time.Now().Add(-3 * time.Hour)

	big := withdrawalAt(sender, 5000.01, models.CurrencyUSD, base)
	small := withdrawalAt(sender, 5000, models.CurrencyUSD, base.Add(time.Hour))

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).
		Return([]models.Transaction{big, small}, nil)
	mockHistory.EXPECT().
		MarkFlagged(gomock.Any(), big.ID, rules.ReasonBatchLargeWithdrawal(models.CurrencyUSD)).
		Return(true, nil)

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.NewlyFlagged)
}

func TestRescan_SkipsAlreadyFlaggedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := uuid.New()
	base := time.Now().Add(-time.Hour)

	first := transferAt(sender, base)
	second := transferAt(sender, base.Add(10*time.Second))
	reason := rules.ReasonRateWindow
	second.IsFlagged = true
	second.FraudReason = &reason

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).
		Return([]models.Transaction{first, second}, nil)
	// No MarkFlagged call: the only candidate already carries a flag

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.NewlyFlagged)
}

func TestRescan_SkipsRecordsWithoutSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiver := uuid.New()
	deposit := models.Transaction{
		ID:        uuid.New(),
		Type:      models.TransactionTypeDeposit,
		Amount:    9999999,
		Currency:  models.CurrencyUSD,
		Receiver:  &receiver,
		Status:    models.TransactionStatusCompleted,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).
		Return([]models.Transaction{deposit}, nil)

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.ScannedSenders)
	assert.Equal(t, 0, summary.NewlyFlagged)
}

func TestRescan_ContinuesAfterFlagFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := uuid.New()
	base := time.Now().Add(-time.Hour)

	records := []models.Transaction{
		transferAt(sender, base),
		transferAt(sender, base.Add(10*time.Second)),
		transferAt(sender, base.Add(20*time.Second)),
	}

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(records, nil)
	mockHistory.EXPECT().
		MarkFlagged(gomock.Any(), records[1].ID, rules.ReasonBatchRateWindow).
		Return(false, errors.New("write timeout"))
	mockHistory.EXPECT().
		MarkFlagged(gomock.Any(), records[2].ID, rules.ReasonBatchRateWindow).
		Return(true, nil)

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.NewlyFlagged)
}

func TestRescan_ConcurrentlyFlaggedNotDoubleCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := uuid.New()
	base := time.Now().Add(-time.Hour)

	records := []models.Transaction{
		transferAt(sender, base),
		transferAt(sender, base.Add(10*time.Second)),
	}

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(records, nil)
	// Another writer got there first: MarkFlagged reports nothing changed
	mockHistory.EXPECT().
		MarkFlagged(gomock.Any(), records[1].ID, rules.ReasonBatchRateWindow).
		Return(false, nil)

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.NewlyFlagged)
}

func TestRescan_PublishesAlertForNewFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := uuid.New()
	base := time.Now().Add(-time.Hour)

	big := withdrawalAt(sender, 300000, models.CurrencyINR, base)

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockAlertGW := mocks.NewMockAlertGW(ctrl)

	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).
		Return([]models.Transaction{big}, nil)
	mockHistory.EXPECT().
		MarkFlagged(gomock.Any(), big.ID, rules.ReasonBatchLargeWithdrawal(models.CurrencyINR)).
		Return(true, nil)
	mockAlertGW.EXPECT().
		PublishFraudAlert(gomock.Any(), gomock.Any(), rules.ReasonBatchLargeWithdrawal(models.CurrencyINR), "batch").
		Return(nil)

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, mockAlertGW, nil)

	summary, err := uc.Rescan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.NewlyFlagged)
}

func TestRescan_ListFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockTransactionHistory(ctrl)
	mockHistory.EXPECT().ListSince(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("read timeout"))

	uc := NewFraudDetectionUC(testFraudConfig(), mockHistory, nil, nil)

	summary, err := uc.Rescan(context.Background())

	assert.Error(t, err)
	assert.Nil(t, summary)
}
