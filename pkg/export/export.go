// Package export writes expense reports as spreadsheets.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/budget-tracker/backend/internal/types"
	"github.com/budget-tracker/backend/pkg/aggregate"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format is a file format an expense report can be exported in.
type Format string

const (
	XLSX Format = "xlsx"
	CSV  Format = "csv"
)

var ErrFormat = errors.New("the export format must be xlsx or csv")

// ParseFormat returns the Format for s. An empty string selects XLSX.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", XLSX:
		return XLSX, nil
	case CSV:
		return CSV, nil
	}

	return "", fmt.Errorf("%w: %s", ErrFormat, s)
}

// ContentType returns the media type of files in the format.
func (f Format) ContentType() string {
	if f == CSV {
		return "text/csv; charset=utf-8"
	}

	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename returns the name of the export file for month.
func Filename(month types.Month, f Format) string {
	return fmt.Sprintf("expenses_%04d_%02d.%s", month.Year(), month.Month(), f)
}

var header = []string{"Date", "Description", "Category", "Amount"}

// Exporter writes reports. Amounts in CSV files are formatted for Locale.
type Exporter struct {
	Locale language.Tag
}

// Write writes report to w in format f.
func (e Exporter) Write(w io.Writer, f Format, report aggregate.Report) error {
	if f == CSV {
		return e.CSV(w, report)
	}

	return e.XLSX(w, report)
}

// CSV writes one row per expense followed by a total row.
func (e Exporter) CSV(w io.Writer, report aggregate.Report) error {
	p := message.NewPrinter(e.Locale)
	amount := func(v float64) string {
		return p.Sprint(number.Decimal(v, number.Scale(2)))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, t := range report.Expenses {
		err := writer.Write([]string{
			t.Date.String(),
			t.Description,
			t.Category,
			amount(t.Amount.InexactFloat64()),
		})
		if err != nil {
			return err
		}
	}

	if err := writer.Write([]string{"", "Total", "", amount(report.Total.InexactFloat64())}); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

const (
	expenseSheet  = "Expenses"
	categorySheet = "Categories"
)

// XLSX writes a workbook with the expenses on the first sheet and the sum
// per category on the second.
func (e Exporter) XLSX(w io.Writer, report aggregate.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return err
	}

	if _, err := f.NewSheet(categorySheet); err != nil {
		return err
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	for col, width := range map[string]float64{"A": 12, "B": 30, "C": 18, "D": 14} {
		if err := f.SetColWidth(expenseSheet, col, col, width); err != nil {
			return err
		}
	}

	rows := [][]any{}
	for _, t := range report.Expenses {
		rows = append(rows, []any{t.Date.String(), t.Description, t.Category, t.Amount.InexactFloat64()})
	}
	if err := writeTable(f, expenseSheet, header, rows, []any{"Total", "", "", report.Total.InexactFloat64()}, styles); err != nil {
		return err
	}

	categories := slices.Sorted(maps.Keys(report.Categories))
	rows = [][]any{}
	for _, c := range categories {
		rows = append(rows, []any{c, report.Categories[c].InexactFloat64()})
	}
	if err := f.SetColWidth(categorySheet, "A", "B", 18); err != nil {
		return err
	}
	if err := writeTable(f, categorySheet, []string{"Category", "Amount"}, rows, []any{"Total", report.Total.InexactFloat64()}, styles); err != nil {
		return err
	}

	return f.Write(w)
}

type styles struct {
	header, data, amount, total, totalAmount int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	amountFormat := 4 // #,##0.00

	definitions := []*excelize.Style{
		{
			Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		},
		{Border: border},
		{Border: border, NumFmt: amountFormat},
		{
			Font:   &excelize.Font{Bold: true, Size: 11},
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
			Border: border,
		},
		{
			Font:   &excelize.Font{Bold: true, Size: 11},
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
			Border: border,
			NumFmt: amountFormat,
		},
	}

	ids := make([]int, len(definitions))
	for i, d := range definitions {
		id, err := f.NewStyle(d)
		if err != nil {
			return styles{}, err
		}
		ids[i] = id
	}

	return styles{header: ids[0], data: ids[1], amount: ids[2], total: ids[3], totalAmount: ids[4]}, nil
}

// writeTable writes a header row, the data rows and a total row. The last
// column holds amounts.
func writeTable(f *excelize.File, sheet string, header []string, rows [][]any, total []any, s styles) error {
	last := len(header)

	write := func(row int, values []any, style, amountStyle int) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}

			cellStyle := style
			if col+1 == last {
				cellStyle = amountStyle
			}
			if err := f.SetCellStyle(sheet, cell, cell, cellStyle); err != nil {
				return err
			}
		}
		return nil
	}

	values := make([]any, 0, len(header))
	for _, h := range header {
		values = append(values, h)
	}
	if err := write(1, values, s.header, s.header); err != nil {
		return err
	}

	for i, r := range rows {
		if err := write(i+2, r, s.data, s.amount); err != nil {
			return err
		}
	}

	return write(len(rows)+2, total, s.total, s.totalAmount)
}
