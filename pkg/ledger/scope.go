package ledger

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/shopspring/decimal"
)

// Scope is a view of a Store bound to one month. Transaction and budget
// commands on a Scope act on that month's partition only.
type Scope struct {
	store *Store
	month types.Month
}

// In returns a Scope for month.
func (s *Store) In(month types.Month) *Scope {
	return &Scope{store: s, month: types.MonthOf(time.Time(month))}
}

// Month returns the month of the scope.
func (sc *Scope) Month() types.Month {
	return sc.month
}

// Partition returns a copy of the month's transactions and budgets.
func (sc *Scope) Partition() models.Partition {
	sc.store.mu.Lock()
	defer sc.store.mu.Unlock()

	return sc.store.partition(sc.month)
}

// Transactions returns the month's transactions, most recent first.
func (sc *Scope) Transactions() []models.Transaction {
	return sc.Partition().Transactions
}

// Budgets returns the month's budgets.
func (sc *Scope) Budgets() []models.Budget {
	return sc.Partition().Budgets
}

// Budget returns the budget for category.
func (sc *Scope) Budget(category string) (models.Budget, bool) {
	budgets := sc.Budgets()
	i := slices.IndexFunc(budgets, func(b models.Budget) bool { return b.Category == category })
	if i < 0 {
		return models.Budget{}, false
	}

	return budgets[i], true
}

// AddTransaction records a new transaction in the month.
//
// Expenses are added to the spent amount of the category's budget.
func (sc *Scope) AddTransaction(create models.TransactionCreate) (models.Transaction, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	create, err := s.validateTransaction(create)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{ID: uuid.New(), TransactionCreate: create}
	s.applyTransaction(sc.month, transaction)

	s.logger.Debug().Str("month", sc.month.String()).Str("id", transaction.ID.String()).Msg("transaction added")
	return transaction, s.save(storage.KeyMonthlyData)
}

// AddTransactions records several transactions in the month. Either all of
// them are added or, if any is invalid, none.
func (sc *Scope) AddTransactions(creates []models.TransactionCreate) ([]models.Transaction, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]models.Transaction, 0, len(creates))
	for i, create := range creates {
		create, err := s.validateTransaction(create)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}

		transactions = append(transactions, models.Transaction{ID: uuid.New(), TransactionCreate: create})
	}

	if len(transactions) == 0 {
		return transactions, nil
	}

	for _, transaction := range transactions {
		s.applyTransaction(sc.month, transaction)
	}

	s.logger.Debug().Str("month", sc.month.String()).Int("count", len(transactions)).Msg("transactions added")
	return transactions, s.save(storage.KeyMonthlyData)
}

// DeleteTransaction removes the transaction from the month.
//
// Expenses are subtracted from the spent amount of the category's budget.
func (sc *Scope) DeleteTransaction(id uuid.UUID) error {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.months[sc.month.Key()]
	if !ok {
		return ErrTransactionNotFound
	}

	i := indexOfTransaction(p.Transactions, id)
	if i < 0 {
		return ErrTransactionNotFound
	}

	old := p.Transactions[i]
	if old.IsExpense() {
		subtractSpent(p, old.Category, old.Amount)
	}
	p.Transactions = slices.Delete(p.Transactions, i, i+1)

	s.logger.Debug().Str("month", sc.month.String()).Str("id", id.String()).Msg("transaction deleted")
	return s.save(storage.KeyMonthlyData)
}

// UpdateTransaction replaces the transaction with the same ID.
//
// The effect of the old version on budgets is reversed before the effect of
// the new version is applied, so changes of amount, category and type are
// all accounted for.
func (sc *Scope) UpdateTransaction(transaction models.Transaction) (models.Transaction, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.months[sc.month.Key()]
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}

	i := indexOfTransaction(p.Transactions, transaction.ID)
	if i < 0 {
		return models.Transaction{}, ErrTransactionNotFound
	}

	create, err := s.validateTransaction(transaction.TransactionCreate)
	if err != nil {
		return models.Transaction{}, err
	}

	old := p.Transactions[i]
	if old.IsExpense() {
		subtractSpent(p, old.Category, old.Amount)
	}

	updated := models.Transaction{ID: old.ID, TransactionCreate: create}
	p.Transactions[i] = updated
	if updated.IsExpense() {
		addSpent(p, updated.Category, updated.Amount)
	}

	s.logger.Debug().Str("month", sc.month.String()).Str("id", updated.ID.String()).Msg("transaction updated")
	return updated, s.save(storage.KeyMonthlyData)
}

// AddBudget sets the budget for a category. An existing budget for the
// category is overwritten.
func (sc *Scope) AddBudget(create models.BudgetCreate) (models.Budget, error) {
	return sc.upsertBudget(create)
}

// UpdateBudget is the same as AddBudget.
func (sc *Scope) UpdateBudget(create models.BudgetCreate) (models.Budget, error) {
	return sc.upsertBudget(create)
}

func (sc *Scope) upsertBudget(create models.BudgetCreate) (models.Budget, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	create = create.Normalized()
	if err := create.Validate(); err != nil {
		return models.Budget{}, err
	}

	if !slices.Contains(s.categories, create.Category) {
		return models.Budget{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, create.Category)
	}

	budget := setBudget(s.writablePartition(sc.month), create)

	s.logger.Debug().Str("month", sc.month.String()).Str("category", budget.Category).Msg("budget set")
	return budget, s.save(storage.KeyMonthlyData)
}

// DeleteBudget removes the budget for category. Transactions are not touched.
func (sc *Scope) DeleteBudget(category string) error {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	category = strings.TrimSpace(category)

	p, ok := s.months[sc.month.Key()]
	if !ok {
		return ErrBudgetNotFound
	}

	i := indexOfBudget(p.Budgets, category)
	if i < 0 {
		return ErrBudgetNotFound
	}
	p.Budgets = slices.Delete(p.Budgets, i, i+1)

	s.logger.Debug().Str("month", sc.month.String()).Str("category", category).Msg("budget deleted")
	return s.save(storage.KeyMonthlyData)
}

// CopyPreviousMonthBudgets copies the limits of all budgets of the previous
// month into this month. Spending is not carried over: the copied budgets
// only account for this month's expenses.
func (sc *Scope) CopyPreviousMonthBudgets() ([]models.Budget, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.months[sc.month.AddDate(0, -1).Key()]
	if !ok || len(previous.Budgets) == 0 {
		return nil, ErrNoPreviousBudgets
	}

	p := s.writablePartition(sc.month)
	for _, b := range previous.Budgets {
		setBudget(p, b.BudgetCreate)
	}

	s.logger.Debug().Str("month", sc.month.String()).Int("count", len(previous.Budgets)).Msg("budgets copied from previous month")
	return slices.Clone(p.Budgets), s.save(storage.KeyMonthlyData)
}

// validateTransaction normalizes the transaction and checks it against the
// store's categories.
func (s *Store) validateTransaction(create models.TransactionCreate) (models.TransactionCreate, error) {
	create = create.Normalized()
	if err := create.Validate(); err != nil {
		return models.TransactionCreate{}, err
	}

	if !slices.Contains(s.categories, create.Category) {
		return models.TransactionCreate{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, create.Category)
	}

	return create, nil
}

// applyTransaction adds an already validated transaction to the month.
func (s *Store) applyTransaction(month types.Month, transaction models.Transaction) {
	p := s.writablePartition(month)
	p.Transactions = slices.Insert(p.Transactions, 0, transaction)

	if transaction.IsExpense() {
		addSpent(p, transaction.Category, transaction.Amount)
	}
}

// setBudget creates or overwrites the budget for a category. New budgets
// start with the expenses already recorded in the month.
func setBudget(p *models.Partition, create models.BudgetCreate) models.Budget {
	if i := indexOfBudget(p.Budgets, create.Category); i >= 0 {
		p.Budgets[i].Amount = create.Amount
		return p.Budgets[i]
	}

	budget := models.Budget{BudgetCreate: create, Spent: p.SpentIn(create.Category)}
	p.Budgets = append(p.Budgets, budget)
	return budget
}

func addSpent(p *models.Partition, category string, amount decimal.Decimal) {
	if i := indexOfBudget(p.Budgets, category); i >= 0 {
		p.Budgets[i].Spent = p.Budgets[i].Spent.Add(amount)
	}
}

// subtractSpent never lets spent drop below zero.
func subtractSpent(p *models.Partition, category string, amount decimal.Decimal) {
	if i := indexOfBudget(p.Budgets, category); i >= 0 {
		p.Budgets[i].Spent = decimal.Max(decimal.Zero, p.Budgets[i].Spent.Sub(amount))
	}
}

func indexOfTransaction(transactions []models.Transaction, id uuid.UUID) int {
	return slices.IndexFunc(transactions, func(t models.Transaction) bool { return t.ID == id })
}

func indexOfBudget(budgets []models.Budget, category string) int {
	return slices.IndexFunc(budgets, func(b models.Budget) bool { return b.Category == category })
}
