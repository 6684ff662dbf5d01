package ledger

import (
	"fmt"
	"slices"

	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
)

// Categories returns the category names in their configured order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.categories)
}

// AddCategory appends a new category.
func (s *Store) AddCategory(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := models.NormalizeCategoryName(name)
	if err != nil {
		return "", err
	}

	if slices.Contains(s.categories, name) {
		return "", fmt.Errorf("%w: %s", models.ErrCategoryNameNotUnique, name)
	}

	s.categories = append(s.categories, name)

	s.logger.Debug().Str("category", name).Msg("category added")
	return name, s.save(storage.KeyCategories)
}

// UpdateCategory renames the category at index. Transactions and budgets of
// every month that reference the old name are renamed as well.
// models.ReservedCategories keep their name.
func (s *Store) UpdateCategory(index int, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.categories) {
		return "", ErrCategoryIndex
	}

	name, err := models.NormalizeCategoryName(name)
	if err != nil {
		return "", err
	}

	old := s.categories[index]
	if old == name {
		return name, nil
	}

	if slices.Contains(models.ReservedCategories, old) {
		return "", fmt.Errorf("%w: %s", ErrCategoryReserved, old)
	}

	if slices.Contains(s.categories, name) {
		return "", fmt.Errorf("%w: %s", models.ErrCategoryNameNotUnique, name)
	}

	s.categories[index] = name

	renamed := 0
	for _, p := range s.months {
		for i := range p.Transactions {
			if p.Transactions[i].Category == old {
				p.Transactions[i].Category = name
				renamed++
			}
		}

		for i := range p.Budgets {
			if p.Budgets[i].Category == old {
				p.Budgets[i].Category = name
				renamed++
			}
		}
	}

	s.logger.Debug().Str("from", old).Str("to", name).Int("references", renamed).Msg("category renamed")
	return name, s.save(storage.KeyCategories, storage.KeyMonthlyData)
}

// DeleteCategory removes the category at index. Categories that are still
// referenced by a transaction or budget in any month can not be deleted,
// neither can models.ReservedCategories.
func (s *Store) DeleteCategory(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.categories) {
		return ErrCategoryIndex
	}

	name := s.categories[index]
	if slices.Contains(models.ReservedCategories, name) {
		return fmt.Errorf("%w: %s", ErrCategoryReserved, name)
	}

	for key, p := range s.months {
		if p.References(name) {
			return fmt.Errorf("%w: %s is used in %s", ErrCategoryInUse, name, key)
		}
	}

	s.categories = slices.Delete(s.categories, index, index+1)

	s.logger.Debug().Str("category", name).Msg("category deleted")
	return s.save(storage.KeyCategories)
}
