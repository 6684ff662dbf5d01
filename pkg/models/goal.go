package models

import (
	"strings"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type SavingsGoal struct {
	ID uuid.UUID `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	SavingsGoalCreate
}

type SavingsGoalCreate struct {
	Name          string          `json:"name" example:"New bike"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"1200"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"350"`
	Deadline      *types.Date     `json:"deadline,omitempty" example:"2025-06-01"`
}

func (g SavingsGoalCreate) Normalized() SavingsGoalCreate {
	g.Name = strings.TrimSpace(g.Name)
	return g
}

func (g SavingsGoalCreate) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}
