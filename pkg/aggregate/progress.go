package aggregate

import (
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// warningPercent is the usage above which a budget is reported as close to
// its limit.
var warningPercent = decimal.NewFromInt(80)

// BudgetStatus is a budget with its usage.
type BudgetStatus struct {
	models.Budget
	Remaining   decimal.Decimal `json:"remaining" example:"150"`    // Negative when over budget
	PercentUsed decimal.Decimal `json:"percentUsed" example:"75"`   // Rounded to two places
	Warning     bool            `json:"warning" example:"false"`    // More than 80 percent used
	OverBudget  bool            `json:"overBudget" example:"false"` // More than 100 percent used
}

func BudgetStatuses(budgets []models.Budget) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		used := percentOf(b.Spent, b.Amount)
		statuses = append(statuses, BudgetStatus{
			Budget:      b,
			Remaining:   b.Amount.Sub(b.Spent),
			PercentUsed: used,
			Warning:     used.GreaterThan(warningPercent),
			OverBudget:  b.Spent.GreaterThan(b.Amount),
		})
	}

	return statuses
}

// GoalStatus is a savings goal with its progress.
type GoalStatus struct {
	models.SavingsGoal
	Remaining decimal.Decimal `json:"remaining" example:"850"` // Never negative
	Percent   decimal.Decimal `json:"percent" example:"29.17"`
	Complete  bool            `json:"complete" example:"false"`
}

func GoalProgress(goals []models.SavingsGoal) []GoalStatus {
	statuses := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, GoalStatus{
			SavingsGoal: g,
			Remaining:   decimal.Max(decimal.Zero, g.TargetAmount.Sub(g.CurrentAmount)),
			Percent:     percentOf(g.CurrentAmount, g.TargetAmount),
			Complete:    g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount),
		})
	}

	return statuses
}

// DebtStatus is a debt with its repayment progress.
type DebtStatus struct {
	models.Debt
	Remaining   decimal.Decimal `json:"remaining" example:"650"`
	PercentPaid decimal.Decimal `json:"percentPaid" example:"35"`
	PaidOff     bool            `json:"paidOff" example:"false"`
}

func DebtProgress(debts []models.Debt) []DebtStatus {
	statuses := make([]DebtStatus, 0, len(debts))
	for _, d := range debts {
		statuses = append(statuses, DebtStatus{
			Debt:        d,
			Remaining:   d.Remaining(),
			PercentPaid: percentOf(d.PaidAmount, d.TotalAmount),
			PaidOff:     !d.Remaining().IsPositive(),
		})
	}

	return statuses
}
