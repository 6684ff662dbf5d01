package models

import (
	"strings"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense.
//
// The amount is always positive, the direction is encoded in Type only.
type Transaction struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	TransactionCreate
}

type TransactionCreate struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03"`
	Description string          `json:"description" example:"Groceries"`
	Category    string          `json:"category" example:"Food"`
	Date        types.Date      `json:"date" example:"2024-05-12"`
	Type        TransactionType `json:"type" example:"expense"`
}

// Normalized returns the transaction with whitespace trimmed from all text fields.
func (t TransactionCreate) Normalized() TransactionCreate {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	return t
}

// Validate checks all fields except the existence of the category, which
// depends on the state of the store.
func (t TransactionCreate) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionEmpty
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryEmpty
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}
