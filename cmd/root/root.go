// Package root contains the root command for the application.
package root

import (
	"fjacquet/nubank-analyzer/internal/analyzer"
	"fjacquet/nubank-analyzer/internal/common"
	"fjacquet/nubank-analyzer/internal/config"
	"fjacquet/nubank-analyzer/internal/insights"
	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/recommend"
	"fjacquet/nubank-analyzer/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "nubank-analyzer",
		Short: "A CLI tool to analyze Nubank statement exports.",
		Long: `nubank-analyzer reads a Nubank CSV statement export, categorizes every
transaction against an ordered keyword taxonomy, and produces aggregate
totals, spending insights and prioritized recommendations.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to nubank-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			common.SetLogger(Log)
			if Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags holds common flag values accessible to all commands.
	SharedFlags = CommonFlags{}

	// Description is the categorize command input.
	Description string
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (defaults to stdout)")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// AnalyzerOptions builds the analyzer configuration from the loaded
// application config, including the taxonomy from the category store when
// a categories file exists.
func AnalyzerOptions() analyzer.Options {
	opts := analyzer.DefaultOptions()
	if Cfg == nil {
		return opts
	}

	opts.InsightCfg = insights.Config{
		TopCategories:      Cfg.Analysis.TopCategories,
		TopMerchants:       Cfg.Analysis.TopMerchants,
		TopExpenses:        Cfg.Analysis.TopExpenses,
		HighShareThreshold: Cfg.Analysis.HighShareThreshold,
		LargeExpenseFloor:  decimal.NewFromFloat(Cfg.Analysis.LargeExpenseFloor),
	}
	opts.RecommendCfg = recommend.Config{
		DiningThreshold: decimal.NewFromFloat(Cfg.Analysis.DiningThreshold),
	}

	categoryStore := store.NewCategoryStore(Cfg.Categories.File, Logger())
	taxonomy, err := categoryStore.LoadCategories()
	if err != nil {
		Log.Warnf("Failed to load categories file, using built-in taxonomy: %v", err)
	} else {
		opts.Taxonomy = taxonomy
	}

	return opts
}
