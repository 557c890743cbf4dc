package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported wallet currencies
const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
	CurrencyEUR = "EUR"
)

// SupportedCurrencies lists every currency a wallet holds a balance in.
// Wallet provisioning creates one zero balance row per entry.
var SupportedCurrencies = []string{CurrencyUSD, CurrencyINR, CurrencyEUR}

// IsSupportedCurrency reports whether the given currency code is supported
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}

// Balance represents a single per-account, per-currency balance row
type Balance struct {
	AccountID uuid.UUID `json:"account_id" db:"account_id"`
	Currency  string    `json:"currency" db:"currency"`
	Amount    float64   `json:"amount" db:"amount"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BalanceSnapshot is the full multi-currency view of one account's wallet
type BalanceSnapshot struct {
	AccountID uuid.UUID          `json:"account_id"`
	Balances  map[string]float64 `json:"balances"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// TransferResult bundles the outcome of a completed transfer
type TransferResult struct {
	Transaction     *Transaction     `json:"transaction"`
	SenderBalance   *BalanceSnapshot `json:"sender_wallet"`
	ReceiverBalance *BalanceSnapshot `json:"receiver_wallet"`
}
