package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/models"
	"github.com/averros/digiwallet/services/fraud/rules"
)

// rescanWindow is the trailing period of records the batch scan walks
const rescanWindow = 24 * time.Hour

// Rescan re-derives fraud flags over the trailing 24 hours of transaction
// records. Records are grouped by sender (pure deposits carry no sender and
// are skipped), each group is walked oldest-first, and only flag fields are
// updated; balances and monetary fields are never touched.
//
// A failure flagging one record does not abort the scan: it is logged and
// the scan continues, reporting partial success through the summary counts.
func (uc *FraudDetectionUC) Rescan(ctx context.Context) (*models.RescanSummary, error) {
	start := time.Now()
	since := start.Add(-rescanWindow)

	records, err := uc.history.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	bySender := make(map[uuid.UUID][]models.Transaction)
	for _, record := range records {
		if record.Sender == nil {
			continue
		}
		bySender[*record.Sender] = append(bySender[*record.Sender], record)
	}

	summary := &models.RescanSummary{ScannedSenders: len(bySender)}

	for sender, group := range bySender {
		sort.Slice(group, func(i, j int) bool {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})

		uc.flagRapidTransfers(ctx, sender, group, summary)
		uc.flagLargeWithdrawals(ctx, sender, group, summary)
	}

	if uc.collector != nil {
		uc.collector.RecordRescan(summary.ScannedSenders, summary.NewlyFlagged, time.Since(start))
	}

	logger.Info("daily fraud scan completed",
		logger.Int("scanned_senders", summary.ScannedSenders),
		logger.Int("newly_flagged", summary.NewlyFlagged))

	return summary, nil
}

// flagRapidTransfers flags the later of each adjacent pair of transfer
// records whose creation gap is within the rate window (inclusive)
func (uc *FraudDetectionUC) flagRapidTransfers(ctx context.Context, sender uuid.UUID, group []models.Transaction, summary *models.RescanSummary) {
	transfers := make([]models.Transaction, 0, len(group))
	for _, record := range group {
		if record.Type == models.TransactionTypeTransfer {
			transfers = append(transfers, record)
		}
	}

	for i := 1; i < len(transfers); i++ {
		if !rules.WithinWindow(uc.cfg, transfers[i-1].CreatedAt, transfers[i].CreatedAt) {
			continue
		}
		if transfers[i].IsFlagged {
			continue
		}
		uc.flagRecord(ctx, &transfers[i], rules.ReasonBatchRateWindow, summary)
	}
}

// flagLargeWithdrawals flags withdraw records whose amount exceeds the
// per-currency threshold
func (uc *FraudDetectionUC) flagLargeWithdrawals(ctx context.Context, sender uuid.UUID, group []models.Transaction, summary *models.RescanSummary) {
	for i := range group {
		record := &group[i]
		if record.Type != models.TransactionTypeWithdraw || record.IsFlagged {
			continue
		}
		if !rules.ExceedsMaxAmount(uc.cfg, record.Currency, record.Amount) {
			continue
		}
		uc.flagRecord(ctx, record, rules.ReasonBatchLargeWithdrawal(record.Currency), summary)
	}
}

// flagRecord updates one record's flag fields in place. MarkFlagged only
// touches unflagged rows, so a concurrent flag writer cannot be overwritten
// and a record is never counted twice.
func (uc *FraudDetectionUC) flagRecord(ctx context.Context, record *models.Transaction, reason string, summary *models.RescanSummary) {
	newly, err := uc.history.MarkFlagged(ctx, record.ID, reason)
	if err != nil {
		logger.Error("failed to flag transaction, continuing scan",
			logger.String("transaction_id", record.ID.String()),
			logger.Err(err))
		return
	}
	if !newly {
		return
	}

	record.IsFlagged = true
	summary.NewlyFlagged++

	if uc.collector != nil {
		uc.collector.RecordFlagged("batch")
	}

	if uc.alertGW != nil {
		if err := uc.alertGW.PublishFraudAlert(ctx, record, reason, "batch"); err != nil {
			logger.Error("failed to publish fraud alert",
				logger.String("transaction_id", record.ID.String()),
				logger.Err(err))
		}
	}
}
