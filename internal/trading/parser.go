package trading

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/oolnhq/insights-service/internal/domain"
)

// Column headers of the brokerage activity export.
const (
	colDate        = "Activity Date"
	colDescription = "Description"
	colTransCode   = "Trans Code"
	colQuantity    = "Quantity"
	colPrice       = "Price"
	colAmount      = "Amount"
)

// ParseCSV reads a brokerage activity export into transactions, preserving
// file order. Columns are resolved by header name, not position. No data row
// is ever rejected: unreadable records are skipped, missing text fields
// default to empty, unparseable numbers default to 0, and a missing amount
// defaults to "$0.00" so every consumer can parse it.
func ParseCSV(raw string) ([]domain.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		amount := field(colAmount)
		if amount == "" {
			amount = "$0.00"
		}

		transactions = append(transactions, domain.Transaction{
			Date:        field(colDate),
			Description: field(colDescription),
			TransCode:   field(colTransCode),
			Quantity:    parseNumber(field(colQuantity)),
			Price:       parseNumber(field(colPrice)),
			Amount:      amount,
		})
	}

	return transactions, nil
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
