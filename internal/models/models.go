// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single statement row after normalization.
// Amount is negative for debits and positive for credits. DateValid and
// AmountValid record per-row coercion failures: an invalid date keeps the
// row out of date-based aggregates, an invalid amount keeps it out of sums.
type Transaction struct {
	ID          string          `json:"id,omitempty"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DateValid   bool            `json:"-"`
	AmountValid bool            `json:"-"`
}

// IsDebit returns true if the transaction is a valid outflow.
func (t Transaction) IsDebit() bool {
	return t.AmountValid && t.Amount.IsNegative()
}

// IsCredit returns true if the transaction is a valid inflow.
func (t Transaction) IsCredit() bool {
	return t.AmountValid && t.Amount.IsPositive()
}
