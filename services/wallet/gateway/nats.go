package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/models"
	natspkg "github.com/averros/digiwallet/internal/pkg/nats"
)

const (
	// SubjectTransactionCompleted carries a TransactionEvent for every
	// committed ledger operation
	SubjectTransactionCompleted = "wallet.transaction.completed"

	// SubjectFraudFlagged carries a FraudAlertEvent whenever a transaction
	// is flagged, in real time or by the daily scan
	SubjectFraudFlagged = "wallet.fraud.flagged"
)

// NATSGateway publishes wallet events to NATS. It implements both the
// wallet.WalletGW and fraud.AlertGW contracts.
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishTransactionCompleted publishes a completed ledger operation
func (g *NATSGateway) PublishTransactionCompleted(ctx context.Context, record *models.Transaction) error {
	event := models.TransactionEvent{
		ID:        record.ID,
		Type:      record.Type,
		Amount:    record.Amount,
		Currency:  record.Currency,
		Flagged:   record.IsFlagged,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}

	if err := g.client.Publish(SubjectTransactionCompleted, data); err != nil {
		return fmt.Errorf("failed to publish transaction event: %w", err)
	}

	logger.Debug("published transaction event",
		logger.String("transaction_id", record.ID.String()),
		logger.String("type", string(record.Type)))

	return nil
}

// PublishFraudAlert publishes a fraud alert for a flagged transaction
func (g *NATSGateway) PublishFraudAlert(ctx context.Context, record *models.Transaction, reason string, source string) error {
	event := models.FraudAlertEvent{
		TransactionID: record.ID,
		Type:          record.Type,
		Amount:        record.Amount,
		Currency:      record.Currency,
		Reason:        reason,
		Source:        source,
		Timestamp:     time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fraud alert event: %w", err)
	}

	if err := g.client.Publish(SubjectFraudFlagged, data); err != nil {
		return fmt.Errorf("failed to publish fraud alert event: %w", err)
	}

	logger.Info("published fraud alert",
		logger.String("transaction_id", record.ID.String()),
		logger.String("reason", reason),
		logger.String("source", source))

	return nil
}
