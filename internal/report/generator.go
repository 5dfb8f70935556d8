// Package report serializes analysis results for output.
package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

// Generator renders an AnalysisResult in a supported output format.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Generator{logger: logger}
}

// Generate renders the result in the given format ("json" or "yaml").
func (g *Generator) Generate(result *models.AnalysisResult, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(result)
	case "yaml":
		return g.generateYAML(result)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(result *models.AnalysisResult) ([]byte, error) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateYAML(result *models.AnalysisResult) ([]byte, error) {
	out, err := yaml.Marshal(result)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
