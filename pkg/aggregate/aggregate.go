// Package aggregate derives summaries from budget state.
//
// All functions are pure and compute their result from the values passed in
// on every call.
package aggregate

import (
	"slices"
	"strings"
	"time"

	"github.com/budget-tracker/backend/pkg/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary holds the sums of a set of transactions.
type Summary struct {
	Income   decimal.Decimal `json:"income" example:"1000"`
	Expenses decimal.Decimal `json:"expenses" example:"200"`
	Balance  decimal.Decimal `json:"balance" example:"800"` // Income minus expenses
}

// Totals sums income and expenses.
func Totals(transactions []models.Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range transactions {
		if t.IsExpense() {
			s.Expenses = s.Expenses.Add(t.Amount)
		} else {
			s.Income = s.Income.Add(t.Amount)
		}
	}

	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// CategoryTotal is the sum of the expenses in one category.
type CategoryTotal struct {
	Category   string          `json:"category" example:"Food"`
	Total      decimal.Decimal `json:"total" example:"200"`
	Percentage decimal.Decimal `json:"percentage" example:"40"` // Share of all expenses in percent, rounded to two places
}

// CategoryBreakdown groups expenses by category. The result is sorted by
// total, largest first. Categories with equal totals are sorted by name.
func CategoryBreakdown(transactions []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		sums[t.Category] = sums[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(sums))
	for category, sum := range sums {
		breakdown = append(breakdown, CategoryTotal{
			Category:   category,
			Total:      sum,
			Percentage: percentOf(sum, total),
		})
	}

	slices.SortFunc(breakdown, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})

	return breakdown
}

// MonthTotals are the sums for one month of a year.
type MonthTotals struct {
	Month    string          `json:"month" example:"05/2024"` // Partition key of the month
	Name     string          `json:"name" example:"May"`      // Short month name
	Income   decimal.Decimal `json:"income" example:"3000"`
	Expenses decimal.Decimal `json:"expenses" example:"1800"`
	Savings  decimal.Decimal `json:"savings" example:"1200"` // Income minus expenses
}

// MonthlySeries sums the transactions of year per calendar month of their
// date. The result always has 12 entries, January first.
func MonthlySeries(transactions []models.Transaction, year int) []MonthTotals {
	series := make([]MonthTotals, 12)
	for i := range series {
		month := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		series[i] = MonthTotals{
			Month:    month.Format("01/2006"),
			Name:     month.Format("Jan"),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
	}

	for _, t := range transactions {
		if t.Date.IsZero() || t.Date.Year() != year {
			continue
		}

		m := &series[t.Date.Month()-1]
		if t.IsExpense() {
			m.Expenses = m.Expenses.Add(t.Amount)
		} else {
			m.Income = m.Income.Add(t.Amount)
		}
	}

	for i := range series {
		series[i].Savings = series[i].Income.Sub(series[i].Expenses)
	}

	return series
}

// YearTotals are the sums of a monthly series.
type YearTotals struct {
	Income   decimal.Decimal `json:"income" example:"36000"`
	Expenses decimal.Decimal `json:"expenses" example:"21600"`
	Savings  decimal.Decimal `json:"savings" example:"14400"`
}

// YearlyTotals sums a monthly series.
func YearlyTotals(series []MonthTotals) YearTotals {
	y := YearTotals{Income: decimal.Zero, Expenses: decimal.Zero, Savings: decimal.Zero}
	for _, m := range series {
		y.Income = y.Income.Add(m.Income)
		y.Expenses = y.Expenses.Add(m.Expenses)
		y.Savings = y.Savings.Add(m.Savings)
	}

	return y
}

// AvailableYears returns every year that has a transaction, newest first.
func AvailableYears(transactions []models.Transaction) []int {
	years := []int{}
	for _, t := range transactions {
		if t.Date.IsZero() || slices.Contains(years, t.Date.Year()) {
			continue
		}
		years = append(years, t.Date.Year())
	}

	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// percentOf returns part as percentage of total, rounded to two places.
// A zero total yields zero.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Mul(hundred).Div(total).Round(2)
}
