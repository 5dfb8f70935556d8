// Package analyze implements the analyze command: statement in, analysis
// report out.
package analyze

import (
	"fmt"
	"os"

	"fjacquet/nubank-analyzer/cmd/root"
	"fjacquet/nubank-analyzer/internal/analyzer"
	"fjacquet/nubank-analyzer/internal/common"
	"fjacquet/nubank-analyzer/internal/models"
	"fjacquet/nubank-analyzer/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a Nubank statement CSV",
	Long: `Analyze a Nubank statement export: normalize columns, categorize every
transaction, and write the resulting totals, insights and recommendations.`,
	Run: analyzeFunc,
}

var format string

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "json", "Report format (json or yaml)")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}

	table, err := common.ReadTableFromCSV(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading statement: %v", err)
	}

	a := analyzer.New(root.AnalyzerOptions(), root.Logger())
	result, err := a.Analyze(table)
	if err != nil {
		root.Log.Fatalf("Error analyzing statement: %v", err)
	}

	if err := writeReport(result, format, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	root.Log.Info("Statement analysis completed successfully!")
}

func writeReport(result *models.AnalysisResult, format, output string) error {
	generator := report.NewGenerator(root.Logger())
	data, err := generator.Generate(result, format)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(output, data, models.PermissionReportFile)
}
