package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType marks the direction of a ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Valid reports whether t is one of the two supported directions.
func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// DateLayout is the display date stamped on each transaction: day and
// month only, no year. Entries older than one year are ambiguous by
// date alone; this is an accepted limitation of the format, ordering
// relies on the auto-increment ID instead.
const DateLayout = "02/01"

// Transaction is a single append-only ledger entry. The amount is a
// non-negative magnitude; direction is carried solely by Type.
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Type        TransactionType `json:"type" gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Description string          `json:"description" gorm:"size:255;not null"`
	UserID      uint            `json:"userId" gorm:"not null;index"`
	Date        string          `json:"date" gorm:"size:5;not null"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Signed returns the amount with its direction applied: positive for
// credits, negative for debits.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
