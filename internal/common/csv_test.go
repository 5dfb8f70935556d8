package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/nubank-analyzer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadTableFromCSV(t *testing.T) {
	path := writeTempCSV(t,
		"Data,Descrição,Valor,Identificador\n"+
			"15/03/2024,COMPRA EM RESTAURANTE SABOR LTDA,\"-600,00\",abc-1\n"+
			"01/03/2024,Salário,\"1000,00\",abc-2\n")

	table, err := ReadTableFromCSV(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Descrição", "Valor", "Identificador"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "COMPRA EM RESTAURANTE SABOR LTDA", table.Rows[0]["Descrição"])
	assert.Equal(t, "-600,00", table.Rows[0]["Valor"])
}

func TestReadTableFromCSVPreservesColumnOrder(t *testing.T) {
	path := writeTempCSV(t, "Valor,Data,Descrição\n\"-1,00\",01/03/2024,x\n")

	table, err := ReadTableFromCSV(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Valor", "Data", "Descrição"}, table.Columns)
}

func TestReadTableFromCSVShortRow(t *testing.T) {
	path := writeTempCSV(t, "Data,Descrição,Valor\n15/03/2024,loja\n")

	table, err := ReadTableFromCSV(path)

	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "loja", table.Rows[0]["Descrição"])
	_, hasAmount := table.Rows[0]["Valor"]
	assert.False(t, hasAmount)
}

func TestReadTableFromCSVEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := ReadTableFromCSV(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty CSV file")
}

func TestReadTableFromCSVMissingFile(t *testing.T) {
	_, err := ReadTableFromCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")
	transactions := []models.Transaction{
		{
			ID:          "abc-1",
			Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			DateValid:   true,
			Description: "Restaurante Sabor",
			Amount:      decimal.NewFromFloat(-600),
			AmountValid: true,
			Category:    models.CategoryDining,
		},
		{
			ID:          "abc-2",
			Description: "linha inválida",
			Category:    models.CategoryOther,
		},
	}

	require.NoError(t, WriteTransactionsToCSV(transactions, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "data,descricao,valor,categoria,identificador", lines[0])
	assert.Equal(t, "15/03/2024,Restaurante Sabor,-600.00,restaurantes,abc-1", lines[1])
	// Invalid date and amount come out as empty columns.
	assert.Equal(t, ",linha inválida,,outros,abc-2", lines[2])
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
