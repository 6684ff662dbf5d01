package ledger

import (
	"fmt"
	"slices"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/shopspring/decimal"
)

// SavingsGoals returns all savings goals.
func (s *Store) SavingsGoals() []models.SavingsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.SavingsGoal{}, s.goals...)
}

// SavingsGoal returns the savings goal with id.
func (s *Store) SavingsGoal(id uuid.UUID) (models.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfGoal(id)
	if i < 0 {
		return models.SavingsGoal{}, ErrGoalNotFound
	}

	return s.goals[i], nil
}

func (s *Store) AddSavingsGoal(create models.SavingsGoalCreate) (models.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	create = create.Normalized()
	if err := create.Validate(); err != nil {
		return models.SavingsGoal{}, err
	}

	goal := models.SavingsGoal{ID: uuid.New(), SavingsGoalCreate: create}
	s.goals = append(s.goals, goal)

	s.logger.Debug().Str("id", goal.ID.String()).Msg("savings goal added")
	return goal, s.save(storage.KeySavingsGoals)
}

// UpdateSavingsGoal replaces the goal with the same ID. The current amount
// can only grow.
func (s *Store) UpdateSavingsGoal(goal models.SavingsGoal) (models.SavingsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfGoal(goal.ID)
	if i < 0 {
		return models.SavingsGoal{}, ErrGoalNotFound
	}

	goal.SavingsGoalCreate = goal.Normalized()
	if err := goal.Validate(); err != nil {
		return models.SavingsGoal{}, err
	}

	if goal.CurrentAmount.LessThan(s.goals[i].CurrentAmount) {
		return models.SavingsGoal{}, ErrProgressDecrease
	}

	s.goals[i] = goal

	s.logger.Debug().Str("id", goal.ID.String()).Msg("savings goal updated")
	return goal, s.save(storage.KeySavingsGoals)
}

func (s *Store) DeleteSavingsGoal(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfGoal(id)
	if i < 0 {
		return ErrGoalNotFound
	}
	s.goals = slices.Delete(s.goals, i, i+1)

	s.logger.Debug().Str("id", id.String()).Msg("savings goal deleted")
	return s.save(storage.KeySavingsGoals)
}

// ContributeSavingsGoal adds amount to the goal and records it as an expense
// in the Savings category of the month. Either both happen or neither.
func (sc *Scope) ContributeSavingsGoal(id uuid.UUID, amount decimal.Decimal) (models.SavingsGoal, models.Transaction, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return models.SavingsGoal{}, models.Transaction{}, models.ErrAmountNotPositive
	}

	i := s.indexOfGoal(id)
	if i < 0 {
		return models.SavingsGoal{}, models.Transaction{}, ErrGoalNotFound
	}

	create, err := s.validateTransaction(models.TransactionCreate{
		Amount:      amount,
		Description: fmt.Sprintf("Contribution to %s", s.goals[i].Name),
		Category:    models.SavingsCategory,
		Date:        sc.today(),
		Type:        models.Expense,
	})
	if err != nil {
		return models.SavingsGoal{}, models.Transaction{}, err
	}

	s.goals[i].CurrentAmount = s.goals[i].CurrentAmount.Add(amount)
	transaction := models.Transaction{ID: uuid.New(), TransactionCreate: create}
	s.applyTransaction(sc.month, transaction)

	s.logger.Debug().Str("id", id.String()).Str("amount", amount.String()).Msg("contribution to savings goal")
	return s.goals[i], transaction, s.save(storage.KeySavingsGoals, storage.KeyMonthlyData)
}

func (s *Store) indexOfGoal(id uuid.UUID) int {
	return slices.IndexFunc(s.goals, func(g models.SavingsGoal) bool { return g.ID == id })
}

// today returns the current date if it lies in the scope's month and the
// first day of the month otherwise, so that derived transactions are always
// dated within the month they are recorded in.
func (sc *Scope) today() types.Date {
	today := types.DateOf(sc.store.clock())
	if sc.month.Contains(today) {
		return today
	}

	return types.NewDate(sc.month.Year(), sc.month.Month(), 1)
}
