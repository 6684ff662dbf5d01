// Package importer prepares transactions from bank statement files for
// review before they are added to a month.
package importer

import (
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/budget-tracker/backend/pkg/models"
)

// TransactionPreview is used to preview transactions that will be imported to allow for editing.
type TransactionPreview struct {
	Transaction             models.TransactionCreate `json:"transaction"`
	Payee                   string                   `json:"payee" example:"Deutsche Bahn"` // Payee or payer as given in the file
	Memo                    string                   `json:"memo" example:"Ticket to Berlin"`
	DuplicateTransactionIDs []uuid.UUID              `json:"duplicateTransactionIds"` // IDs of existing transactions that this transaction duplicates
}
