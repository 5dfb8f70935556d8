// Package export implements the export command: write the categorized
// statement back out as CSV.
package export

import (
	"fjacquet/nubank-analyzer/cmd/root"
	"fjacquet/nubank-analyzer/internal/categorizer"
	"fjacquet/nubank-analyzer/internal/common"
	"fjacquet/nubank-analyzer/internal/recordparser"
	"fjacquet/nubank-analyzer/internal/schema"

	"github.com/spf13/cobra"
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a categorized statement as CSV",
	Long: `Read a Nubank statement export, categorize every transaction, and write
the rows back out as CSV with a category column appended.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	table, err := common.ReadTableFromCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading statement: %v", err)
	}

	if err := schema.Normalize(table, root.Logger()); err != nil {
		root.Log.Fatalf("Error normalizing statement columns: %v", err)
	}

	opts := root.AnalyzerOptions()
	parser := recordparser.New(categorizer.New(opts.Taxonomy, root.Logger()), root.Logger())
	parsed := parser.Parse(table)

	if err := common.WriteTransactionsToCSV(parsed.Transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing categorized CSV: %v", err)
	}
	root.Log.Infof("Exported %d categorized transactions", len(parsed.Transactions))
}
