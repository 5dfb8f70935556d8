package models

// CategoryConfig represents one category entry in the taxonomy YAML file.
// The position of the entry in the list is significant: earlier categories
// take precedence when keywords from several categories match.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the taxonomy YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
