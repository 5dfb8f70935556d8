// Package recommend evaluates spending rules and produces prioritized
// action recommendations.
package recommend

import (
	"fmt"

	"fjacquet/nubank-analyzer/internal/aggregator"
	"fjacquet/nubank-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// Config holds the rule thresholds. Immutable after construction.
type Config struct {
	DiningThreshold decimal.Decimal // monthly restaurant spend that triggers advice
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{DiningThreshold: decimal.NewFromInt(500)}
}

// Generator evaluates the recommendation rules for one analyzed statement.
type Generator struct {
	cfg Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate runs every rule independently; all applicable rules fire.
// Emission order is fixed: balance crisis first, then category rules in
// category first-appearance order, then the volatility rule, and the
// unconditional savings advice always last.
func (g *Generator) Generate(summary aggregator.Summary) []models.Recommendation {
	var recommendations []models.Recommendation

	if summary.NetBalance.IsNegative() {
		recommendations = append(recommendations, models.Recommendation{
			Priority:    models.PriorityHigh,
			Category:    "orçamento",
			Title:       "🚨 Urgente: Saldo Negativo",
			Description: "Seus gastos excederam sua receita. Considere ajustes imediatos no orçamento.",
			Actions: []string{
				"Revise todas as assinaturas e cancele as não essenciais",
				"Implemente um congelamento de gastos não essenciais",
				"Procure fontes adicionais de renda",
			},
		})
	}

	for _, category := range summary.CategoryOrder {
		amount := summary.CategorySums[category]
		if category == models.CategoryDining && amount.GreaterThan(g.cfg.DiningThreshold) {
			recommendations = append(recommendations, models.Recommendation{
				Priority:    models.PriorityMedium,
				Category:    "alimentação",
				Title:       "🍽️ Alto Gasto com Restaurantes",
				Description: fmt.Sprintf("Você gastou R$ %s em restaurantes este mês.", amount.StringFixed(2)),
				Actions: []string{
					"Prepare mais refeições em casa",
					"Use planejamento de refeições para reduzir desperdício",
					"Procure promoções e pratos do dia",
				},
			})
		}
	}

	if summary.DailyVolatility.Irregular {
		recommendations = append(recommendations, models.Recommendation{
			Priority:    models.PriorityMedium,
			Category:    "hábitos",
			Title:       "📊 Padrão Irregular de Gastos",
			Description: "Seus gastos diários variam significativamente.",
			Actions: []string{
				"Crie um orçamento diário",
				"Acompanhe despesas em tempo real",
				"Planeje compras maiores com antecedência",
			},
		})
	}

	recommendations = append(recommendations, models.Recommendation{
		Priority:    models.PriorityLow,
		Category:    "poupança",
		Title:       "💰 Construindo Segurança Financeira",
		Description: "Recomendações para saúde financeira a longo prazo",
		Actions: []string{
			"Configure poupança automática de 20% da renda",
			"Crie um fundo de emergência",
			"Revise e ajuste seu orçamento mensalmente",
		},
	})

	return recommendations
}
