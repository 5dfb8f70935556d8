package analyze_test

import (
	"testing"

	"fjacquet/nubank-analyzer/cmd/analyze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "analyze", analyze.Cmd.Use)
	assert.Contains(t, analyze.Cmd.Short, "Analyze a Nubank statement CSV")
	assert.Contains(t, analyze.Cmd.Long, "totals, insights and recommendations")
	assert.NotNil(t, analyze.Cmd.Run)
}

func TestAnalyzeCommand_Flags(t *testing.T) {
	formatFlag := analyze.Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "json", formatFlag.DefValue)
	assert.Contains(t, formatFlag.Usage, "json or yaml")
}
