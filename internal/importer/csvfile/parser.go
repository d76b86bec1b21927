// Package csvfile parses generic transaction CSV exports. The expected
// header is title,amount,date,category,type with optional frequency and
// description columns, in any order.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/spendwise/spendwise/internal/encoding"
	"github.com/spendwise/spendwise/internal/importer"
	"github.com/spendwise/spendwise/internal/transaction"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var requiredColumns = []string{"title", "amount", "date", "category", "type"}

// colIndex maps lowercased column names to their position in the row.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols, err := header(rows[0])
	if err != nil {
		return nil, err
	}

	return parseRows(cols, rows[1:])
}

func header(row []string) (colIndex, error) {
	cols := make(colIndex)

	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}

	return cols, nil
}

func parseRows(cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	var params []transaction.CreateParams

	for i, row := range rows {
		if blank(row) {
			continue
		}

		p, err := parseRow(cols, row)
		if err != nil {
			return nil, &importer.RowError{Row: i + 1, Err: err}
		}

		params = append(params, p)
	}

	return params, nil
}

func parseRow(cols colIndex, row []string) (transaction.CreateParams, error) {
	cell := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	amount, err := decimal.NewFromString(cell("amount"))
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("parse amount %q: %w", cell("amount"), err)
	}

	date, err := time.Parse(time.DateOnly, cell("date"))
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("parse date %q: %w", cell("date"), err)
	}

	return transaction.CreateParams{
		Title:       cell("title"),
		Amount:      amount,
		Date:        date,
		Category:    transaction.Category(cell("category")),
		Type:        transaction.Type(cell("type")),
		Frequency:   transaction.Frequency(cell("frequency")),
		Description: cell("description"),
	}, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
