// Package ledger implements the budget state of one identity.
//
// A Store owns categories, the month partitions with their transactions and
// budgets, savings goals and debts. Every command validates its input
// completely before changing any state, keeps Budget.Spent in sync with the
// expenses of its month and writes the changed aggregate through to storage.
package ledger

import (
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Store is the budget state of one identity.
type Store struct {
	mu     sync.Mutex
	handle storage.Handle
	clock  func() time.Time
	logger zerolog.Logger

	active     types.Month
	months     map[string]*models.Partition
	goals      []models.SavingsGoal
	debts      []models.Debt
	categories []string
	layout     []string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for the initial active month and the dates
// of contributions and payments.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithLogger sets the logger of the store.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func newStore(handle storage.Handle, opts ...Option) *Store {
	s := &Store{
		handle: handle,
		clock:  time.Now,
		logger: log.Logger,
		months: make(map[string]*models.Partition),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With().Str("identity", handle.Identity()).Logger()
	s.active = types.MonthOf(s.clock())
	return s
}

// New loads the state stored in handle.
//
// Missing keys start out empty, categories default to models.DefaultCategories.
// Keys that can not be read or decoded are logged and treated as missing.
func New(handle storage.Handle, opts ...Option) *Store {
	s := newStore(handle, opts...)

	var months map[string]models.Partition
	if s.load(storage.KeyMonthlyData, &months) {
		for key, partition := range months {
			month, err := types.ParseKey(key)
			if err != nil {
				s.logger.Warn().Str("key", key).Err(err).Msg("skipping month with invalid key")
				continue
			}

			p := partition.Clone()
			s.months[month.Key()] = &p
		}
	}

	s.categories = slices.Clone(models.DefaultCategories)
	var categories []string
	if s.load(storage.KeyCategories, &categories) {
		s.categories = categories
	}

	var goals []models.SavingsGoal
	if s.load(storage.KeySavingsGoals, &goals) {
		s.goals = goals
	}

	var debts []models.Debt
	if s.load(storage.KeyDebts, &debts) {
		s.debts = debts
	}

	var layout []string
	if s.load(storage.KeyDashboardLayout, &layout) {
		s.layout = layout
	}

	return s
}

// load reads key into target and reports whether a value was found.
func (s *Store) load(key storage.Key, target any) bool {
	err := s.handle.Load(key, target)
	if err == nil {
		return true
	}

	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn().Err(err).Str("key", string(key)).Msg("discarding unreadable stored value")
	}

	return false
}

// save writes the aggregates for keys. All keys are written even if one of
// them fails, the in-memory state stays authoritative either way.
func (s *Store) save(keys ...storage.Key) error {
	var errs []error
	for _, key := range keys {
		var err error
		switch key {
		case storage.KeyMonthlyData:
			err = s.handle.Save(key, s.monthlyData())
		case storage.KeySavingsGoals:
			err = s.handle.Save(key, s.goals)
		case storage.KeyDebts:
			err = s.handle.Save(key, s.debts)
		case storage.KeyCategories:
			err = s.handle.Save(key, s.categories)
		case storage.KeyDashboardLayout:
			err = s.handle.Save(key, s.layout)
		}

		if err != nil {
			s.logger.Error().Err(err).Str("key", string(key)).Msg("state could not be persisted")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// monthlyData returns the partitions keyed by month, leaving out empty ones.
func (s *Store) monthlyData() map[string]models.Partition {
	data := make(map[string]models.Partition, len(s.months))
	for key, p := range s.months {
		if p.IsEmpty() {
			continue
		}
		data[key] = p.Clone()
	}

	return data
}

// partition returns the partition for month for reading. A month without
// data yields an empty partition.
func (s *Store) partition(month types.Month) models.Partition {
	p, ok := s.months[month.Key()]
	if !ok {
		return models.Partition{Transactions: []models.Transaction{}, Budgets: []models.Budget{}}
	}

	return p.Clone()
}

// writablePartition returns the partition for month, creating it if needed.
func (s *Store) writablePartition(month types.Month) *models.Partition {
	p, ok := s.months[month.Key()]
	if !ok {
		p = &models.Partition{}
		s.months[month.Key()] = p
	}

	return p
}

// ActiveMonth returns the month that commands on the Store act on.
func (s *Store) ActiveMonth() types.Month {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// SetActiveMonth moves the cursor to month. No data is changed.
func (s *Store) SetActiveMonth(month types.Month) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = types.MonthOf(time.Time(month))
	s.logger.Debug().Str("month", s.active.String()).Msg("active month changed")
}

// Active returns a Scope for the active month.
func (s *Store) Active() *Scope {
	return s.In(s.ActiveMonth())
}

// Identity returns the identity the store belongs to.
func (s *Store) Identity() string {
	return s.handle.Identity()
}

// Months returns all months that hold data, oldest first.
func (s *Store) Months() []types.Month {
	s.mu.Lock()
	defer s.mu.Unlock()

	months := make([]types.Month, 0, len(s.months))
	for key, p := range s.months {
		if p.IsEmpty() {
			continue
		}

		month, err := types.ParseKey(key)
		if err != nil {
			continue
		}
		months = append(months, month)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	return months
}

// AllTransactions returns the transactions of every month.
func (s *Store) AllTransactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []models.Transaction
	for _, p := range s.months {
		transactions = append(transactions, p.Transactions...)
	}

	return transactions
}

// The following methods act on the active month, see Scope.

func (s *Store) Partition() models.Partition {
	return s.Active().Partition()
}

func (s *Store) Transactions() []models.Transaction {
	return s.Active().Transactions()
}

func (s *Store) Budgets() []models.Budget {
	return s.Active().Budgets()
}

func (s *Store) Budget(category string) (models.Budget, bool) {
	return s.Active().Budget(category)
}

func (s *Store) AddTransaction(create models.TransactionCreate) (models.Transaction, error) {
	return s.Active().AddTransaction(create)
}

func (s *Store) DeleteTransaction(id uuid.UUID) error {
	return s.Active().DeleteTransaction(id)
}

func (s *Store) UpdateTransaction(transaction models.Transaction) (models.Transaction, error) {
	return s.Active().UpdateTransaction(transaction)
}

func (s *Store) AddBudget(create models.BudgetCreate) (models.Budget, error) {
	return s.Active().AddBudget(create)
}

func (s *Store) UpdateBudget(create models.BudgetCreate) (models.Budget, error) {
	return s.Active().UpdateBudget(create)
}

func (s *Store) DeleteBudget(category string) error {
	return s.Active().DeleteBudget(category)
}

func (s *Store) CopyPreviousMonthBudgets() ([]models.Budget, error) {
	return s.Active().CopyPreviousMonthBudgets()
}

func (s *Store) ContributeSavingsGoal(id uuid.UUID, amount decimal.Decimal) (models.SavingsGoal, models.Transaction, error) {
	return s.Active().ContributeSavingsGoal(id, amount)
}

func (s *Store) MakeDebtPayment(id uuid.UUID, amount decimal.Decimal) (models.Debt, models.Transaction, error) {
	return s.Active().MakeDebtPayment(id, amount)
}
