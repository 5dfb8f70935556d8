package schema

import (
	"strings"

	"fjacquet/nubank-analyzer/internal/analyzererror"
	"fjacquet/nubank-analyzer/internal/logging"
)

// Canonical field names.
const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldID          = "id"
)

// CanonicalField pairs a canonical field name with the raw column
// spellings it accepts. Aliases are matched exactly against the
// lower-cased header, so only the lower-case spellings can hit; the
// capitalized Nubank originals are kept for documentation.
type CanonicalField struct {
	Name      string
	Aliases   []string
	Mandatory bool
}

// CanonicalSchema is the fixed schema for Nubank statement exports.
// Constructed once, read-only.
var CanonicalSchema = []CanonicalField{
	{Name: FieldDate, Aliases: []string{"Data", "data"}, Mandatory: true},
	{Name: FieldDescription, Aliases: []string{"Descrição", "descricao", "descrição"}, Mandatory: true},
	{Name: FieldAmount, Aliases: []string{"Valor", "valor"}, Mandatory: true},
	{Name: FieldID, Aliases: []string{"Identificador", "identificador"}},
}

// Normalize lower-cases every column name and renames alias matches to
// their canonical field name, in place. Columns with no matching alias are
// passed through unchanged. When several columns match the same canonical
// field only the first one in table order is renamed; the later ones keep
// their original name and can silently shadow data. That precedence is
// deliberate and relied on downstream, so it must not be "fixed" here.
// Returns a SchemaError if a mandatory field is still missing afterwards.
func Normalize(table *Table, log logging.Logger) error {
	lowercaseColumns(table)

	for _, field := range CanonicalSchema {
		aliases := make(map[string]bool, len(field.Aliases))
		for _, alias := range field.Aliases {
			aliases[alias] = true
		}

		for _, col := range table.Columns {
			if aliases[col] {
				log.WithFields(
					logging.Field{Key: "column", Value: col},
					logging.Field{Key: "field", Value: field.Name},
				).Debug("Mapped statement column to canonical field")
				table.renameColumn(col, field.Name)
				break
			}
		}
	}

	for _, field := range CanonicalSchema {
		if field.Mandatory && !table.hasColumn(field.Name) {
			return &analyzererror.SchemaError{Field: field.Name, Columns: table.Columns}
		}
	}
	return nil
}

// lowercaseColumns folds the whole header (and row keys) to lower case
// before any alias lookup happens.
func lowercaseColumns(table *Table) {
	for i, col := range table.Columns {
		table.Columns[i] = strings.ToLower(col)
	}
	for i, row := range table.Rows {
		lowered := make(map[string]string, len(row))
		for key, value := range row {
			lowered[strings.ToLower(key)] = value
		}
		table.Rows[i] = lowered
	}
}
