package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 500.0, cfg.Analysis.DiningThreshold)
	assert.Equal(t, -100.0, cfg.Analysis.LargeExpenseFloor)
	assert.Equal(t, 30.0, cfg.Analysis.HighShareThreshold)
	assert.Equal(t, 3, cfg.Analysis.TopCategories)
	assert.Equal(t, 5, cfg.Analysis.TopMerchants)
	assert.Equal(t, 3, cfg.Analysis.TopExpenses)
	assert.Equal(t, "categories.yaml", cfg.Categories.File)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("NUBANK_LOG_LEVEL", "debug")
	t.Setenv("NUBANK_ANALYSIS_DINING_THRESHOLD", "800")
	t.Setenv("NUBANK_CATEGORIES_FILE", "custom.yaml")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 800.0, cfg.Analysis.DiningThreshold)
	assert.Equal(t, "custom.yaml", cfg.Categories.File)
}

func TestInitializeConfigRejectsBadEnvValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"Bad log level":       {key: "NUBANK_LOG_LEVEL", value: "loud"},
		"Bad log format":      {key: "NUBANK_LOG_FORMAT", value: "xml"},
		"Long delimiter":      {key: "NUBANK_CSV_DELIMITER", value: ";;"},
		"Negative threshold":  {key: "NUBANK_ANALYSIS_DINING_THRESHOLD", value: "-10"},
		"Positive floor":      {key: "NUBANK_ANALYSIS_LARGE_EXPENSE_FLOOR", value: "50"},
		"Share over hundred":  {key: "NUBANK_ANALYSIS_HIGH_SHARE_THRESHOLD", value: "150"},
		"Zero top categories": {key: "NUBANK_ANALYSIS_TOP_CATEGORIES", value: "0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfigBadLevelFallsBack(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "shout"
	cfg.Log.Format = "text"

	logger := ConfigureLoggingFromConfig(&cfg)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("NUBANK_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("NUBANK_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("NUBANK_TEST_MISSING_KEY", "fallback"))
}
