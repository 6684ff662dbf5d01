package ledger

import (
	"fmt"
	"slices"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
)

// Snapshot is the complete persisted state of a Store.
//
// The JSON field names are the storage keys the values are persisted under.
type Snapshot struct {
	Months          map[string]models.Partition `json:"monthlyData"`
	SavingsGoals    []models.SavingsGoal        `json:"savingsGoals"`
	Debts           []models.Debt               `json:"debts"`
	Categories      []string                    `json:"categories"`
	DashboardLayout []string                    `json:"dashboardLayout"`
}

// Snapshot returns a deep copy of the state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Months:          s.monthlyData(),
		SavingsGoals:    append([]models.SavingsGoal{}, s.goals...),
		Debts:           append([]models.Debt{}, s.debts...),
		Categories:      slices.Clone(s.categories),
		DashboardLayout: append([]string{}, s.layout...),
	}
}

// Restore creates a Store holding snapshot and persists every key to handle.
//
// The snapshot is checked completely before the Store is built: categories
// must be unique and include models.ReservedCategories, every transaction,
// budget, goal and debt must be valid and reference existing categories.
// Budget.Spent is recomputed from the expenses of its month.
//
// The returned Store is usable even when persisting fails.
func Restore(handle storage.Handle, snapshot Snapshot, opts ...Option) (*Store, error) {
	categories, err := restoreCategories(snapshot.Categories)
	if err != nil {
		return nil, err
	}

	months := make(map[string]*models.Partition, len(snapshot.Months))
	transactionIDs := make(map[uuid.UUID]bool)
	for key, partition := range snapshot.Months {
		month, err := types.ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("month %q: %w", key, err)
		}

		p, err := restorePartition(partition, categories, transactionIDs)
		if err != nil {
			return nil, fmt.Errorf("month %s: %w", month.Key(), err)
		}
		months[month.Key()] = p
	}

	goals := make([]models.SavingsGoal, 0, len(snapshot.SavingsGoals))
	for _, g := range snapshot.SavingsGoals {
		g.SavingsGoalCreate = g.Normalized()
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("savings goal %s: %w", g.ID, err)
		}

		if slices.ContainsFunc(goals, func(o models.SavingsGoal) bool { return o.ID == g.ID }) {
			return nil, fmt.Errorf("%w: savings goal %s", ErrIDNotUnique, g.ID)
		}
		goals = append(goals, g)
	}

	debts := make([]models.Debt, 0, len(snapshot.Debts))
	for _, d := range snapshot.Debts {
		d.DebtCreate = d.Normalized()
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("debt %s: %w", d.ID, err)
		}

		if slices.ContainsFunc(debts, func(o models.Debt) bool { return o.ID == d.ID }) {
			return nil, fmt.Errorf("%w: debt %s", ErrIDNotUnique, d.ID)
		}
		debts = append(debts, d)
	}

	layout, err := normalizeLayout(snapshot.DashboardLayout)
	if err != nil {
		return nil, err
	}

	s := newStore(handle, opts...)
	s.months = months
	s.categories = categories
	s.goals = goals
	s.debts = debts
	s.layout = layout

	s.mu.Lock()
	defer s.mu.Unlock()

	return s, s.save(storage.Keys...)
}

// restoreCategories trims the names and rejects empty and duplicate names.
// A nil list selects models.DefaultCategories.
func restoreCategories(names []string) ([]string, error) {
	if names == nil {
		return slices.Clone(models.DefaultCategories), nil
	}

	categories := make([]string, 0, len(names))
	for _, name := range names {
		name, err := models.NormalizeCategoryName(name)
		if err != nil {
			return nil, fmt.Errorf("categories: %w", err)
		}

		if slices.Contains(categories, name) {
			return nil, fmt.Errorf("%w: %s", models.ErrCategoryNameNotUnique, name)
		}
		categories = append(categories, name)
	}

	for _, name := range models.ReservedCategories {
		if !slices.Contains(categories, name) {
			return nil, fmt.Errorf("%w: %s is required", ErrCategoryNotFound, name)
		}
	}

	return categories, nil
}

// restorePartition validates the partition against categories and returns a
// copy with normalized entries and recomputed budget spending. IDs are
// recorded in ids and must be unique across all partitions.
func restorePartition(partition models.Partition, categories []string, ids map[uuid.UUID]bool) (*models.Partition, error) {
	p := models.Partition{
		Transactions: make([]models.Transaction, 0, len(partition.Transactions)),
		Budgets:      make([]models.Budget, 0, len(partition.Budgets)),
	}

	for _, t := range partition.Transactions {
		t.TransactionCreate = t.Normalized()
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}

		if !slices.Contains(categories, t.Category) {
			return nil, fmt.Errorf("transaction %s: %w: %s", t.ID, ErrCategoryNotFound, t.Category)
		}

		if ids[t.ID] {
			return nil, fmt.Errorf("%w: transaction %s", ErrIDNotUnique, t.ID)
		}
		ids[t.ID] = true

		p.Transactions = append(p.Transactions, t)
	}

	for _, b := range partition.Budgets {
		create := b.Normalized()
		if err := create.Validate(); err != nil {
			return nil, fmt.Errorf("budget %s: %w", create.Category, err)
		}

		if !slices.Contains(categories, create.Category) {
			return nil, fmt.Errorf("budget: %w: %s", ErrCategoryNotFound, create.Category)
		}

		if indexOfBudget(p.Budgets, create.Category) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrBudgetNotUnique, create.Category)
		}

		p.Budgets = append(p.Budgets, models.Budget{BudgetCreate: create})
	}

	for i := range p.Budgets {
		p.Budgets[i].Spent = p.SpentIn(p.Budgets[i].Category)
	}

	return &p, nil
}
