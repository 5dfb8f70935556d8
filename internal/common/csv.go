// Package common provides shared CSV input and output helpers.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/nubank-analyzer/internal/dateutils"
	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"
	"fjacquet/nubank-analyzer/internal/schema"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.NewLogrusAdapterFromLogger(nil)

// Delimiter used for CSV output, configurable via config/environment.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logging.NewLogrusAdapterFromLogger(logger)
}

// ReadTableFromCSV reads a statement export into a schema.Table.
// Column names are kept exactly as found; the table records them in file
// order because alias resolution depends on that order. This reader
// deliberately does not map onto structs: the input column names are
// arbitrary until the schema normalizer has run.
func ReadTableFromCSV(filePath string) (*schema.Table, error) {
	log.WithField("file", filePath).Info("Reading statement CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file: %s", filePath)
	}

	columns := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	log.WithField("count", len(rows)).Info("Successfully read statement rows")
	return schema.NewTable(columns, rows), nil
}

// csvRow is the flat record written by WriteTransactionsToCSV. Headers
// match the canonical Nubank export spelling.
type csvRow struct {
	Date        string `csv:"data"`
	Description string `csv:"descricao"`
	Amount      string `csv:"valor"`
	Category    string `csv:"categoria"`
	ID          string `csv:"identificador"`
}

// WriteTransactionsToCSV writes categorized transactions to a CSV file.
// Rows with an invalid date are written with an empty date column.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]csvRow, 0, len(transactions))
	for _, tx := range transactions {
		row := csvRow{
			Description: tx.Description,
			Category:    tx.Category,
			ID:          tx.ID,
		}
		if tx.DateValid {
			row.Date = tx.Date.Format(dateutils.DateLayoutStatement)
		}
		if tx.AmountValid {
			row.Amount = tx.Amount.StringFixed(2)
		}
		rows = append(rows, row)
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote transactions to CSV file")
	return nil
}
