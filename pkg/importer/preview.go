package importer

import (
	"strings"

	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
)

// Prepare marks duplicates and recommends categories for all previews.
func Prepare(previews []TransactionPreview, existing []models.Transaction) []TransactionPreview {
	for i := range previews {
		duplicateTransactions(&previews[i], existing)
		recommendCategory(&previews[i], existing)
	}

	return previews
}

// duplicateTransactions sets the IDs of all existing transactions with the
// same date, amount, type and description as the preview.
func duplicateTransactions(preview *TransactionPreview, existing []models.Transaction) {
	// When there are no duplicates, we want an empty list, not null
	duplicateIDs := make([]uuid.UUID, 0)
	for _, t := range existing {
		if t.Date.Equal(preview.Transaction.Date) &&
			t.Type == preview.Transaction.Type &&
			t.Amount.Equal(preview.Transaction.Amount) &&
			strings.EqualFold(t.Description, preview.Transaction.Description) {
			duplicateIDs = append(duplicateIDs, t.ID)
		}
	}

	preview.DuplicateTransactionIDs = duplicateIDs
}

// recommendCategory presets the category of the most recent existing
// transaction with the same description and type.
func recommendCategory(preview *TransactionPreview, existing []models.Transaction) {
	if preview.Transaction.Category != "" {
		return
	}

	var recent *models.Transaction
	for i, t := range existing {
		if t.Type != preview.Transaction.Type || !strings.EqualFold(t.Description, preview.Transaction.Description) {
			continue
		}

		if recent == nil || recent.Date.Before(t.Date) {
			recent = &existing[i]
		}
	}

	if recent != nil {
		preview.Transaction.Category = recent.Category
	}
}
