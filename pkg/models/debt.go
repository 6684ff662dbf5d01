package models

import (
	"strings"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type Debt struct {
	ID uuid.UUID `json:"id" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`
	DebtCreate
}

type DebtCreate struct {
	Name         string          `json:"name" example:"Credit Card"`
	TotalAmount  decimal.Decimal `json:"totalAmount" example:"1000"`
	PaidAmount   decimal.Decimal `json:"paidAmount" example:"200"`
	InterestRate decimal.Decimal `json:"interestRate" example:"19.9"` // Yearly interest rate in percent
	DueDate      *types.Date     `json:"dueDate,omitempty" example:"2025-01-31"`
}

// Remaining returns the amount that is still to be paid.
func (d DebtCreate) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

func (d DebtCreate) Normalized() DebtCreate {
	d.Name = strings.TrimSpace(d.Name)
	return d
}

func (d DebtCreate) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameEmpty
	}

	if !d.TotalAmount.IsPositive() {
		return ErrDebtAmountNotPositive
	}

	if d.PaidAmount.IsNegative() || d.PaidAmount.GreaterThan(d.TotalAmount) {
		return ErrDebtPaidOutOfRange
	}

	if d.InterestRate.IsNegative() {
		return ErrDebtInterestNegative
	}

	return nil
}
