package models

import (
	"github.com/james997788/monyfun/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry.
//
// The ID is the millisecond timestamp of creation and is the immutable
// identity of the record, all other fields can be replaced by an update.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        types.Date      `json:"date"`
}

// Validate checks the user-editable fields of the transaction.
func (t Transaction) Validate() error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Description == "" {
		return ErrDescriptionEmpty
	}

	if t.Date.IsZero() {
		return ErrDateNotSet
	}

	return nil
}
