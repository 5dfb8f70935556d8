// Package analyzer orchestrates the statement analysis pipeline:
// schema normalization, record parsing, aggregation, and insight and
// recommendation generation. Data flows strictly forward; each invocation
// owns its working set and shares nothing mutable with other invocations.
package analyzer

import (
	"fjacquet/nubank-analyzer/internal/aggregator"
	"fjacquet/nubank-analyzer/internal/analyzererror"
	"fjacquet/nubank-analyzer/internal/categorizer"
	"fjacquet/nubank-analyzer/internal/insights"
	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"
	"fjacquet/nubank-analyzer/internal/recommend"
	"fjacquet/nubank-analyzer/internal/recordparser"
	"fjacquet/nubank-analyzer/internal/schema"
)

// Analyzer runs the full pipeline over one statement table.
type Analyzer struct {
	parser    *recordparser.Parser
	insights  *insights.Generator
	recommend *recommend.Generator
	logger    logging.Logger
}

// Options bundles the immutable configuration for an Analyzer.
type Options struct {
	Taxonomy     []models.CategoryConfig // nil means the built-in taxonomy
	InsightCfg   insights.Config
	RecommendCfg recommend.Config
}

// DefaultOptions returns the standard analyzer configuration.
func DefaultOptions() Options {
	return Options{
		InsightCfg:   insights.DefaultConfig(),
		RecommendCfg: recommend.DefaultConfig(),
	}
}

// New creates an Analyzer.
func New(opts Options, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	cat := categorizer.New(opts.Taxonomy, logger)
	return &Analyzer{
		parser:    recordparser.New(cat, logger),
		insights:  insights.NewGenerator(opts.InsightCfg),
		recommend: recommend.NewGenerator(opts.RecommendCfg),
		logger:    logger,
	}
}

// Analyze normalizes, parses and aggregates the table and produces the
// final analysis result. Structural problems (missing mandatory columns,
// empty table) abort before any aggregation; per-row parse failures only
// exclude the affected rows from the relevant aggregates.
func (a *Analyzer) Analyze(table *schema.Table) (*models.AnalysisResult, error) {
	if table.IsEmpty() {
		return nil, analyzererror.ErrEmptyTable
	}

	if err := schema.Normalize(table, a.logger); err != nil {
		return nil, err
	}

	parsed := a.parser.Parse(table)
	transactions := parsed.Transactions
	if parsed.DateFailures > 0 || parsed.AmountFailures > 0 {
		a.logger.WithFields(
			logging.Field{Key: "date_failures", Value: parsed.DateFailures},
			logging.Field{Key: "amount_failures", Value: parsed.AmountFailures},
		).Warn("Some rows were excluded from aggregates")
	}

	return a.generate(transactions)
}

// AnalyzeTransactions runs aggregation and generation over already parsed
// transactions. Useful when the caller has its own ingestion path.
func (a *Analyzer) AnalyzeTransactions(transactions []models.Transaction) (*models.AnalysisResult, error) {
	if len(transactions) == 0 {
		return nil, analyzererror.ErrEmptyTable
	}
	return a.generate(transactions)
}

// generate computes aggregates and renders insights and recommendations.
// A panic anywhere in generation is recovered into a ProcessingError so
// internal state never leaks into the response.
func (a *Analyzer) generate(transactions []models.Transaction) (result *models.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.WithField("panic", r).Error("Analysis generation failed")
			result = nil
			err = analyzererror.NewProcessingError("analysis", panicError(r))
		}
	}()

	summary := aggregator.Summarize(transactions)

	categories := make(map[string]float64, len(summary.CategorySums))
	for category, amount := range summary.CategorySums {
		categories[category] = amount.Round(2).InexactFloat64()
	}

	result = &models.AnalysisResult{
		TotalSpent:      summary.TotalDebits.Abs().Round(2).InexactFloat64(),
		TotalReceived:   summary.TotalCredits.Round(2).InexactFloat64(),
		NetBalance:      summary.NetBalance.Round(2).InexactFloat64(),
		Categories:      categories,
		Insights:        a.insights.Generate(transactions, summary),
		Recommendations: a.recommend.Generate(summary),
	}

	a.logger.WithFields(
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "insights", Value: len(result.Insights)},
		logging.Field{Key: "recommendations", Value: len(result.Recommendations)},
	).Info("Statement analysis completed")
	return result, nil
}

type recoveredPanic struct {
	value interface{}
}

func (p recoveredPanic) Error() string {
	return "recovered panic during analysis"
}

func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return recoveredPanic{value: r}
}
