package errors

import "errors"

// Ledger error taxonomy. Expected conditions (invalid input, not found,
// insufficient funds) are returned without retry; conflicts are retried a
// bounded number of times before surfacing; storage errors always mean the
// operation was rolled back in full.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrConflict          = errors.New("concurrent update conflict")
	ErrStorage           = errors.New("storage failure")
)
