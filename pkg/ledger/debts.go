package ledger

import (
	"fmt"
	"slices"

	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
	"github.com/shopspring/decimal"
)

// Debts returns all debts.
func (s *Store) Debts() []models.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Debt{}, s.debts...)
}

// Debt returns the debt with id.
func (s *Store) Debt(id uuid.UUID) (models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfDebt(id)
	if i < 0 {
		return models.Debt{}, ErrDebtNotFound
	}

	return s.debts[i], nil
}

func (s *Store) AddDebt(create models.DebtCreate) (models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	create = create.Normalized()
	if err := create.Validate(); err != nil {
		return models.Debt{}, err
	}

	debt := models.Debt{ID: uuid.New(), DebtCreate: create}
	s.debts = append(s.debts, debt)

	s.logger.Debug().Str("id", debt.ID.String()).Msg("debt added")
	return debt, s.save(storage.KeyDebts)
}

// UpdateDebt replaces the debt with the same ID. The paid amount can only grow.
func (s *Store) UpdateDebt(debt models.Debt) (models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfDebt(debt.ID)
	if i < 0 {
		return models.Debt{}, ErrDebtNotFound
	}

	debt.DebtCreate = debt.Normalized()
	if err := debt.Validate(); err != nil {
		return models.Debt{}, err
	}

	if debt.PaidAmount.LessThan(s.debts[i].PaidAmount) {
		return models.Debt{}, ErrProgressDecrease
	}

	s.debts[i] = debt

	s.logger.Debug().Str("id", debt.ID.String()).Msg("debt updated")
	return debt, s.save(storage.KeyDebts)
}

func (s *Store) DeleteDebt(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfDebt(id)
	if i < 0 {
		return ErrDebtNotFound
	}
	s.debts = slices.Delete(s.debts, i, i+1)

	s.logger.Debug().Str("id", id.String()).Msg("debt deleted")
	return s.save(storage.KeyDebts)
}

// MakeDebtPayment adds amount to the paid amount of the debt and records it
// as an expense in the Debt category of the month. Either both happen or
// neither. Payments larger than the remaining debt are refused.
func (sc *Scope) MakeDebtPayment(id uuid.UUID, amount decimal.Decimal) (models.Debt, models.Transaction, error) {
	s := sc.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return models.Debt{}, models.Transaction{}, models.ErrAmountNotPositive
	}

	i := s.indexOfDebt(id)
	if i < 0 {
		return models.Debt{}, models.Transaction{}, ErrDebtNotFound
	}

	if remaining := s.debts[i].Remaining(); amount.GreaterThan(remaining) {
		return models.Debt{}, models.Transaction{}, fmt.Errorf("%w: %s remaining", ErrPaymentExceedsRemaining, remaining)
	}

	create, err := s.validateTransaction(models.TransactionCreate{
		Amount:      amount,
		Description: fmt.Sprintf("Payment to %s", s.debts[i].Name),
		Category:    models.DebtCategory,
		Date:        sc.today(),
		Type:        models.Expense,
	})
	if err != nil {
		return models.Debt{}, models.Transaction{}, err
	}

	s.debts[i].PaidAmount = s.debts[i].PaidAmount.Add(amount)
	transaction := models.Transaction{ID: uuid.New(), TransactionCreate: create}
	s.applyTransaction(sc.month, transaction)

	s.logger.Debug().Str("id", id.String()).Str("amount", amount.String()).Msg("debt payment")
	return s.debts[i], transaction, s.save(storage.KeyDebts, storage.KeyMonthlyData)
}

func (s *Store) indexOfDebt(id uuid.UUID) int {
	return slices.IndexFunc(s.debts, func(d models.Debt) bool { return d.ID == id })
}
