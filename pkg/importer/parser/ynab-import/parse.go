package ynabimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/pkg/importer"
	"github.com/budget-tracker/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Columns of the YNAB import format.
const (
	Date int = iota
	Payee
	Memo
	Outflow
	Inflow
)

// Parse parses CSV files in the YNAB import format. Outflows become
// expenses and inflows become income. Categories are left empty.
func Parse(f io.Reader) ([]importer.TransactionPreview, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 5

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	transactions := []importer.TransactionPreview{}

	// Skip the first line
	_, err := reader.Read()
	if err == io.EOF {
		return transactions, nil
	}
	if err != nil {
		return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := time.Parse("01/02/2006", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		t := importer.TransactionPreview{
			Payee: strings.TrimSpace(record[Payee]),
			Memo:  strings.TrimSpace(record[Memo]),
			Transaction: models.TransactionCreate{
				Date: types.DateOf(date),
			},
		}

		t.Transaction.Description = t.Payee
		if t.Transaction.Description == "" {
			t.Transaction.Description = t.Memo
		}

		var column string
		if record[Outflow] != "" && record[Inflow] != "" {
			return csvReadError(reader, errors.New("both outflow and inflow are set for the transaction"))
		} else if record[Outflow] == "" && record[Inflow] == "" {
			return csvReadError(reader, errors.New("no amount is set for the transaction"))
		} else if record[Outflow] != "" {
			t.Transaction.Type = models.Expense
			column = "outflow"
		} else {
			t.Transaction.Type = models.Income
			column = "inflow"
		}

		amount, err := decimal.NewFromString(record[Outflow] + record[Inflow])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("%s could not be parsed to a decimal", column))
		}

		if !amount.IsPositive() {
			return csvReadError(reader, errors.New("the amount for a transaction must be positive"))
		}
		t.Transaction.Amount = amount

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// csvReadError returns the an error with the format string, including the line of the input
// the error occurred in in the message.
func csvReadError(r *csv.Reader, err error) ([]importer.TransactionPreview, error) {
	// Malformed lines have no field positions
	var line int
	var parseError *csv.ParseError
	if errors.As(err, &parseError) {
		line = parseError.StartLine
	} else {
		// always use the first field, we are only interested in the line
		line, _ = r.FieldPos(0)
	}

	return []importer.TransactionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
