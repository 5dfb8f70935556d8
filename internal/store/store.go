// Package store provides loading and saving of the category taxonomy.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore manages the taxonomy YAML file. The taxonomy must stay an
// ordered list on disk: a YAML mapping would lose the category precedence
// the categorizer depends on.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the given taxonomy file. An empty
// filename defaults to "categories.yaml".
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if categoriesFile == "" {
		categoriesFile = "categories.yaml"
	}
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &CategoryStore{CategoriesFile: categoriesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "nubank-analyzer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the ordered taxonomy from the YAML file. A missing
// file is not an error: the caller falls back to the built-in taxonomy.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filePath, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.CategoriesFile).Debug("Categories file not found, using built-in taxonomy")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logger.WithFields(
			logging.Field{Key: "count", Value: len(categoriesConfig.Categories)},
			logging.Field{Key: "file", Value: filePath},
		).Debug("Loaded categories")
		return categoriesConfig.Categories, nil
	}

	// Fallback: the file may contain the bare list without the top-level key.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return categories, nil
}

// SaveCategories writes the taxonomy back to disk, preserving order.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	dir := filepath.Dir(s.CategoriesFile)
	if dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(s.CategoriesFile, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}
	return nil
}
