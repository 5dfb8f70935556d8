// Package config provides Viper-based hierarchical configuration
// management for the analyzer CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration. Analysis
// thresholds live here so the pipeline receives them as explicit values
// rather than reading ambient state.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Analysis struct {
		DiningThreshold    float64 `mapstructure:"dining_threshold" yaml:"dining_threshold"`
		LargeExpenseFloor  float64 `mapstructure:"large_expense_floor" yaml:"large_expense_floor"`
		HighShareThreshold float64 `mapstructure:"high_share_threshold" yaml:"high_share_threshold"`
		TopCategories      int     `mapstructure:"top_categories" yaml:"top_categories"`
		TopMerchants       int     `mapstructure:"top_merchants" yaml:"top_merchants"`
		TopExpenses        int     `mapstructure:"top_expenses" yaml:"top_expenses"`
	} `mapstructure:"analysis" yaml:"analysis"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config.yaml, then environment
// variables prefixed with NUBANK.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.nubank-analyzer")
	v.AddConfigPath(".nubank-analyzer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NUBANK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("analysis.dining_threshold", 500)
	v.SetDefault("analysis.large_expense_floor", -100)
	v.SetDefault("analysis.high_share_threshold", 30)
	v.SetDefault("analysis.top_categories", 3)
	v.SetDefault("analysis.top_merchants", 5)
	v.SetDefault("analysis.top_expenses", 3)

	v.SetDefault("categories.file", "categories.yaml")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Analysis.DiningThreshold < 0 {
		return fmt.Errorf("analysis.dining_threshold must not be negative, got: %f", config.Analysis.DiningThreshold)
	}

	if config.Analysis.LargeExpenseFloor > 0 {
		return fmt.Errorf("analysis.large_expense_floor must be zero or negative, got: %f", config.Analysis.LargeExpenseFloor)
	}

	if config.Analysis.HighShareThreshold <= 0 || config.Analysis.HighShareThreshold > 100 {
		return fmt.Errorf("analysis.high_share_threshold must be in (0, 100], got: %f", config.Analysis.HighShareThreshold)
	}

	for name, value := range map[string]int{
		"analysis.top_categories": config.Analysis.TopCategories,
		"analysis.top_merchants":  config.Analysis.TopMerchants,
		"analysis.top_expenses":   config.Analysis.TopExpenses,
	} {
		if value < 1 {
			return fmt.Errorf("%s must be at least 1, got: %d", name, value)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
