package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Partition holds the transactions and budgets of one month.
type Partition struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
}

// Clone returns a deep copy of the partition.
func (p Partition) Clone() Partition {
	return Partition{
		Transactions: append(make([]Transaction, 0, len(p.Transactions)), p.Transactions...),
		Budgets:      append(make([]Budget, 0, len(p.Budgets)), p.Budgets...),
	}
}

// IsEmpty reports whether the partition holds neither transactions nor budgets.
func (p Partition) IsEmpty() bool {
	return len(p.Transactions) == 0 && len(p.Budgets) == 0
}

// SpentIn sums all expenses in category.
func (p Partition) SpentIn(category string) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range p.Transactions {
		if t.IsExpense() && t.Category == category {
			spent = spent.Add(t.Amount)
		}
	}

	return spent
}

// References reports whether a transaction or budget uses category.
func (p Partition) References(category string) bool {
	if slices.ContainsFunc(p.Transactions, func(t Transaction) bool { return t.Category == category }) {
		return true
	}

	return slices.ContainsFunc(p.Budgets, func(b Budget) bool { return b.Category == category })
}
