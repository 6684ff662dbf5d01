package models

import (
	"slices"
	"strings"
)

// DefaultCategories are used until the categories have been edited.
var DefaultCategories = []string{
	"Housing", "Transportation", "Food", "Utilities",
	"Insurance", "Healthcare", "Savings", "Personal",
	"Entertainment", "Debt", "Education", "Gifts/Donations",
	"Salary", "Investments", "Side Hustle", "Refunds",
}

// IncomeCategories are the categories for income. All other categories are
// expense categories.
var IncomeCategories = []string{"Salary", "Investments", "Side Hustle", "Refunds"}

const (
	// SavingsCategory is used for transactions recording goal contributions.
	SavingsCategory = "Savings"

	// DebtCategory is used for transactions recording debt payments.
	DebtCategory = "Debt"
)

// ReservedCategories are required by goal contributions and debt payments.
var ReservedCategories = []string{SavingsCategory, DebtCategory}

// IsIncomeCategory reports whether name is an income category.
func IsIncomeCategory(name string) bool {
	return slices.Contains(IncomeCategories, name)
}

// NormalizeCategoryName trims the name and rejects empty names.
func NormalizeCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameEmpty
	}

	return name, nil
}
