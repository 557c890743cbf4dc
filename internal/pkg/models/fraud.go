package models

import (
	"time"

	"github.com/google/uuid"
)

// FraudConfig holds the fraud heuristic thresholds. It is loaded once at
// startup and injected read-only into the evaluator and the rescanner.
type FraudConfig struct {
	// TransferWindow is the trailing window used by the rate rule,
	// for both the real-time check and the batch rescan.
	TransferWindow time.Duration
	// MaxTransfersInWindow is the allowed transfer count inside the window;
	// reaching it flags the operation.
	MaxTransfersInWindow int
	// MaxAmount maps currency code to the largest unflagged single amount.
	MaxAmount map[string]float64
}

// FraudDecision is the outcome of a real-time fraud evaluation
type FraudDecision struct {
	Flagged bool   `json:"flagged"`
	Reason  string `json:"reason,omitempty"`
}

// RescanSummary reports the outcome of one batch fraud rescan
type RescanSummary struct {
	ScannedSenders int `json:"scanned_senders"`
	NewlyFlagged   int `json:"newly_flagged"`
}

// TransactionEvent is published after every completed ledger operation
type TransactionEvent struct {
	ID        uuid.UUID       `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"`
	Currency  string          `json:"currency"`
	Flagged   bool            `json:"flagged"`
	Timestamp time.Time       `json:"timestamp"`
}

// FraudAlertEvent is published when a transaction is flagged, either by the
// real-time evaluator or by the batch rescanner
type FraudAlertEvent struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Reason        string          `json:"reason"`
	Source        string          `json:"source"` // "realtime" or "batch"
	Timestamp     time.Time       `json:"timestamp"`
}
