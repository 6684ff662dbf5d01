package models

import (
	"errors"
)

// Validation errors. Commands failing with one of these did not change any state.
var (
	ErrAmountNotPositive        = errors.New("the amount must be larger than zero")
	ErrDescriptionEmpty         = errors.New("the description must not be empty")
	ErrCategoryEmpty            = errors.New("the category must not be empty")
	ErrDateMissing              = errors.New("the date must be set")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be either income or expense")
	ErrNameEmpty                = errors.New("the name must not be empty")
	ErrGoalAmountNotPositive    = errors.New("goal target amounts must be larger than zero")
	ErrGoalCurrentNegative      = errors.New("the current amount of a goal must not be negative")
	ErrDebtAmountNotPositive    = errors.New("debt total amounts must be larger than zero")
	ErrDebtPaidOutOfRange       = errors.New("the paid amount of a debt must be between zero and the total amount")
	ErrDebtInterestNegative     = errors.New("the interest rate must not be negative")
	ErrBudgetIncomeCategory     = errors.New("budgets can only be set for expense categories")
	ErrCategoryNameNotUnique    = errors.New("the category name must be unique")
	ErrDashboardWidgetEmpty     = errors.New("dashboard widget identifiers must not be empty")
	ErrDashboardWidgetNotUnique = errors.New("dashboard widget identifiers must be unique")
)
