package ledger

import "errors"

// Referential errors.
var (
	ErrCategoryNotFound = errors.New("there is no category with this name")
	ErrCategoryInUse    = errors.New("the category is still used by transactions or budgets")
	ErrCategoryIndex    = errors.New("there is no category at this position")
	ErrCategoryReserved = errors.New("the category records goal contributions and debt payments and can not be renamed or deleted")
)

// Lookup errors.
var (
	ErrTransactionNotFound = errors.New("there is no transaction with this ID in the month")
	ErrBudgetNotFound      = errors.New("there is no budget for this category in the month")
	ErrGoalNotFound        = errors.New("there is no savings goal with this ID")
	ErrDebtNotFound        = errors.New("there is no debt with this ID")
)

// Command specific errors.
var (
	ErrNoPreviousBudgets       = errors.New("the previous month has no budgets to copy")
	ErrPaymentExceedsRemaining = errors.New("the payment exceeds the remaining debt")
	ErrProgressDecrease        = errors.New("saved and paid amounts can not be decreased")
	ErrBudgetNotUnique         = errors.New("there can only be one budget per category and month")
	ErrIDNotUnique             = errors.New("the ID is used more than once")
)
