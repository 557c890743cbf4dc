package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType identifies the kind of ledger operation
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus identifies the settlement state of a record
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// CanTransitionTo reports whether a status change is allowed.
// Transitions only move forward: pending -> completed or pending -> failed.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s == next {
		return true
	}
	return s == TransactionStatusPending &&
		(next == TransactionStatusCompleted || next == TransactionStatusFailed)
}

// Transaction represents a financial transaction record.
// Once completed, the monetary fields (type, amount, currency, sender,
// receiver) are immutable; only the fraud flag and soft-delete fields
// change after creation.
type Transaction struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	Type        TransactionType   `json:"type" db:"type"`
	Amount      float64           `json:"amount" db:"amount"`
	Currency    string            `json:"currency" db:"currency"`
	Sender      *uuid.UUID        `json:"sender,omitempty" db:"sender"`
	Receiver    *uuid.UUID        `json:"receiver,omitempty" db:"receiver"`
	Status      TransactionStatus `json:"status" db:"status"`
	IsFlagged   bool              `json:"is_flagged" db:"is_flagged"`
	FraudReason *string           `json:"fraud_reason,omitempty" db:"fraud_reason"`
	IsDeleted   bool              `json:"-" db:"is_deleted"`
	DeletedAt   *time.Time        `json:"-" db:"deleted_at"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// TransactionFilter narrows transaction history listings
type TransactionFilter struct {
	Type    *TransactionType
	Flagged *bool
	From    *time.Time
	To      *time.Time
	Limit   int
}
