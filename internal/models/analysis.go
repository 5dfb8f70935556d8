package models

// Recommendation is a single prioritized action item produced by the
// recommendation rules.
type Recommendation struct {
	Priority    string   `json:"priority" yaml:"priority"`
	Category    string   `json:"category" yaml:"category"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Actions     []string `json:"actions" yaml:"actions"`
}

// AnalysisResult is the terminal output of the analysis pipeline.
// TotalSpent is reported as a positive magnitude; NetBalance keeps its sign.
// Monetary fields are float64 only at this JSON boundary - everything
// upstream works on decimal.Decimal.
type AnalysisResult struct {
	TotalSpent      float64            `json:"total_spent" yaml:"total_spent"`
	TotalReceived   float64            `json:"total_received" yaml:"total_received"`
	NetBalance      float64            `json:"net_balance" yaml:"net_balance"`
	Categories      map[string]float64 `json:"categories" yaml:"categories"`
	Insights        []string           `json:"insights" yaml:"insights"`
	Recommendations []Recommendation   `json:"recommendations" yaml:"recommendations"`
}
