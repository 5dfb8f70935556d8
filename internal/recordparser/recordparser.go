// Package recordparser coerces normalized statement rows into typed,
// categorized transactions.
package recordparser

import (
	"strings"

	"fjacquet/nubank-analyzer/internal/categorizer"
	"fjacquet/nubank-analyzer/internal/currencyutils"
	"fjacquet/nubank-analyzer/internal/dateutils"
	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"
	"fjacquet/nubank-analyzer/internal/schema"
)

// sanitizer strips characters that could carry markup into later
// rendering. Running it twice is a no-op.
var sanitizer = strings.NewReplacer("<", "", ">", "", "{", "", "}", "")

// Result carries the parsed transactions plus diagnostic counts of rows
// that failed date or amount coercion. Failed rows are retained in
// Transactions with the corresponding Valid flag cleared; they are only
// excluded from the aggregates that need the failed field.
type Result struct {
	Transactions   []models.Transaction
	DateFailures   int
	AmountFailures int
}

// Parser turns a schema-normalized table into transactions.
type Parser struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
}

// New creates a Parser.
func New(cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Parser{categorizer: cat, logger: logger}
}

// Parse converts every row of the table. Per-row coercion failures never
// abort the run: the row stays in the result with DateValid or AmountValid
// cleared. Every transaction leaves this function with a category tag.
func (p *Parser) Parse(table *schema.Table) Result {
	result := Result{
		Transactions: make([]models.Transaction, 0, len(table.Rows)),
	}

	for i, row := range table.Rows {
		tx := models.Transaction{
			ID:          Sanitize(row[schema.FieldID]),
			Description: Sanitize(row[schema.FieldDescription]),
		}

		date, err := dateutils.ParseStatementDate(row[schema.FieldDate])
		if err != nil {
			result.DateFailures++
			p.logger.WithFields(
				logging.Field{Key: "row", Value: i},
				logging.Field{Key: "value", Value: row[schema.FieldDate]},
			).Warn("Row excluded from date-based aggregates: unparseable date")
		} else {
			tx.Date = date
			tx.DateValid = true
		}

		amount, err := currencyutils.ParseAmount(Sanitize(row[schema.FieldAmount]))
		if err != nil {
			result.AmountFailures++
			p.logger.WithFields(
				logging.Field{Key: "row", Value: i},
				logging.Field{Key: "value", Value: row[schema.FieldAmount]},
			).Warn("Row excluded from sums: non-numeric amount")
		} else {
			tx.Amount = amount
			tx.AmountValid = true
		}

		tx.Category = p.categorizer.Classify(tx.Description)
		result.Transactions = append(result.Transactions, tx)
	}

	return result
}

// Sanitize strips the characters <, >, { and } from a text value.
func Sanitize(value string) string {
	return sanitizer.Replace(value)
}
