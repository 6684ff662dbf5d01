package aggregate

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/budget-tracker/backend/pkg/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// TransactionFilter selects transactions. Zero values match everything.
type TransactionFilter struct {
	Type   models.TransactionType `form:"type" example:"expense"`
	Search string                 `form:"search" example:"groc*"` // Case-insensitive substring, or a glob pattern if it contains '*'
}

// Filter returns the transactions matching f in their original order.
//
// Search is matched against description, category and amount.
func Filter(transactions []models.Transaction, f TransactionFilter) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Type != "" && t.Type != f.Type {
			continue
		}

		if search != "" && !matches(search, t) {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered
}

func matches(search string, t models.Transaction) bool {
	for _, field := range []string{t.Description, t.Category, t.Amount.String()} {
		field = strings.ToLower(field)

		if strings.Contains(search, "*") {
			if glob.Glob(search, field) {
				return true
			}
		} else if strings.Contains(field, search) {
			return true
		}
	}

	return false
}

// SortField is a field an expense report can be sorted by.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

var (
	ErrSortField = errors.New("sorting is only possible by date, amount or category")
	ErrDirection = errors.New("the sort direction must be asc or desc")
)

// ReportOptions configure an expense report.
type ReportOptions struct {
	Categories []string  // Categories to include. Empty includes all
	SortBy     SortField // Defaults to date
	Direction  Direction // Defaults to desc
}

// Report is a sorted list of expenses with their sums.
type Report struct {
	Expenses   []models.Transaction       `json:"expenses"`
	Categories map[string]decimal.Decimal `json:"categories"` // Sum per category
	Total      decimal.Decimal            `json:"total" example:"512.40"`
}

// ExpenseReport selects the expenses in the requested categories and sorts
// them. Ties are kept in their original order.
func ExpenseReport(transactions []models.Transaction, opts ReportOptions) (Report, error) {
	if opts.SortBy == "" {
		opts.SortBy = SortByDate
	}

	if opts.Direction == "" {
		opts.Direction = Descending
	}

	if !slices.Contains([]SortField{SortByDate, SortByAmount, SortByCategory}, opts.SortBy) {
		return Report{}, fmt.Errorf("%w: %s", ErrSortField, opts.SortBy)
	}

	if opts.Direction != Ascending && opts.Direction != Descending {
		return Report{}, fmt.Errorf("%w: %s", ErrDirection, opts.Direction)
	}

	r := Report{
		Expenses:   []models.Transaction{},
		Categories: make(map[string]decimal.Decimal),
		Total:      decimal.Zero,
	}

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, t.Category) {
			continue
		}

		r.Expenses = append(r.Expenses, t)
		r.Categories[t.Category] = r.Categories[t.Category].Add(t.Amount)
		r.Total = r.Total.Add(t.Amount)
	}

	slices.SortStableFunc(r.Expenses, func(a, b models.Transaction) int {
		var c int
		switch opts.SortBy {
		case SortByAmount:
			c = a.Amount.Cmp(b.Amount)
		case SortByCategory:
			c = strings.Compare(a.Category, b.Category)
		default:
			c = a.Date.Time().Compare(b.Date.Time())
		}

		if opts.Direction == Descending {
			return -c
		}
		return c
	})

	return r, nil
}
