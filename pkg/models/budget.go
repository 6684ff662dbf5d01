package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Budget is the monthly spending limit for one category.
//
// Spent is maintained by the store and always equals the sum of all expenses
// in the category within the same month.
type Budget struct {
	BudgetCreate
	Spent decimal.Decimal `json:"spent" example:"133.70"`
}

type BudgetCreate struct {
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" example:"600"`
}

func (b BudgetCreate) Normalized() BudgetCreate {
	b.Category = strings.TrimSpace(b.Category)
	return b
}

func (b BudgetCreate) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrCategoryEmpty
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if IsIncomeCategory(strings.TrimSpace(b.Category)) {
		return ErrBudgetIncomeCategory
	}

	return nil
}
