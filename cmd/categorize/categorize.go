// Package categorize handles the single-description categorization command.
package categorize

import (
	"fjacquet/nubank-analyzer/cmd/root"
	"fjacquet/nubank-analyzer/internal/categorizer"
	"fjacquet/nubank-analyzer/internal/textutils"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a transaction description against the ordered keyword
taxonomy and print the resulting category tag.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	if err := Cmd.MarkFlagRequired("description"); err != nil {
		panic(err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	opts := root.AnalyzerOptions()
	cat := categorizer.New(opts.Taxonomy, root.Logger())

	category := cat.Classify(root.Description)
	root.Log.Infof("Category: %s", category)
	root.Log.Infof("Simplified label: %s", textutils.SimplifyDescription(root.Description))
}
