package report

import (
	"encoding/json"
	"testing"

	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		TotalSpent:    600,
		TotalReceived: 1000,
		NetBalance:    400,
		Categories:    map[string]float64{models.CategoryDining: 600},
		Insights:      []string{"💰 Total gasto: R$ 600,00"},
		Recommendations: []models.Recommendation{
			{
				Priority: models.PriorityLow,
				Category: "poupança",
				Title:    "💰 Construindo Segurança Financeira",
				Actions:  []string{"Crie um fundo de emergência"},
			},
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := NewGenerator(&logging.MockLogger{}).Generate(sampleResult(), "json")
	require.NoError(t, err)

	var decoded models.AnalysisResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, *sampleResult(), decoded)

	assert.Contains(t, string(out), `"total_spent": 600`)
	assert.Contains(t, string(out), `"net_balance": 400`)
}

func TestGenerateYAML(t *testing.T) {
	out, err := NewGenerator(nil).Generate(sampleResult(), "yaml")
	require.NoError(t, err)

	var decoded models.AnalysisResult
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, *sampleResult(), decoded)

	assert.Contains(t, string(out), "total_received: 1000")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := NewGenerator(nil).Generate(sampleResult(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
