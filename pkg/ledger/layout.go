package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/budget-tracker/backend/pkg/models"
	"github.com/budget-tracker/backend/pkg/storage"
)

// DashboardLayout returns the widget identifiers in display order.
func (s *Store) DashboardLayout() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string{}, s.layout...)
}

// SetDashboardLayout replaces the widget order.
func (s *Store) SetDashboardLayout(widgets []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layout, err := normalizeLayout(widgets)
	if err != nil {
		return nil, err
	}

	s.layout = layout
	return append([]string{}, layout...), s.save(storage.KeyDashboardLayout)
}

// normalizeLayout trims the widget identifiers and rejects empty and
// duplicate ones.
func normalizeLayout(widgets []string) ([]string, error) {
	layout := make([]string, 0, len(widgets))
	for _, w := range widgets {
		w = strings.TrimSpace(w)
		if w == "" {
			return nil, models.ErrDashboardWidgetEmpty
		}

		if slices.Contains(layout, w) {
			return nil, fmt.Errorf("%w: %s", models.ErrDashboardWidgetNotUnique, w)
		}
		layout = append(layout, w)
	}

	return layout, nil
}
