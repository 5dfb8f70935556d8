// Package insights turns statement aggregates into an ordered list of
// narrative findings. The emission order of the sections is part of the
// output contract, not incidental.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/nubank-analyzer/internal/aggregator"
	"fjacquet/nubank-analyzer/internal/currencyutils"
	"fjacquet/nubank-analyzer/internal/dateutils"
	"fjacquet/nubank-analyzer/internal/models"
	"fjacquet/nubank-analyzer/internal/textutils"

	"github.com/shopspring/decimal"
)

// transferTerms excludes transfer-like rows from the merchant-frequency
// and large-expense sections. Matched case-insensitively as substrings.
var transferTerms = []string{"pix", "transferencia", "pagamento", "ted", "doc"}

// Config holds the insight-generation knobs. Values come from the
// application configuration and are immutable after construction.
type Config struct {
	TopCategories      int
	TopMerchants       int
	TopExpenses        int
	HighShareThreshold float64         // category share (%) that triggers a warning
	LargeExpenseFloor  decimal.Decimal // debits strictly below this are "large"
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TopCategories:      3,
		TopMerchants:       5,
		TopExpenses:        3,
		HighShareThreshold: 30,
		LargeExpenseFloor:  decimal.NewFromInt(-100),
	}
}

// Generator produces the insight list for one analyzed statement.
type Generator struct {
	cfg Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate builds the ordered insight list: balance alert, totals,
// category breakdown, frequent merchants, large expenses, weekday pattern.
func (g *Generator) Generate(transactions []models.Transaction, summary aggregator.Summary) []string {
	var insights []string

	if summary.NetBalance.IsNegative() {
		insights = append(insights, "🚨 ALERTA: Seus gastos excederam sua receita este mês! 🚨")
	}

	insights = append(insights,
		"💰 Total gasto: "+currencyutils.FormatBRL(summary.TotalDebits),
		"📈 Total recebido: "+currencyutils.FormatBRL(summary.TotalCredits),
		"🏦 Saldo: "+currencyutils.FormatBRL(summary.NetBalance),
	)

	insights = append(insights, g.categoryInsights(summary)...)

	excluded := transferExcludedDebits(transactions)
	insights = append(insights, g.frequentMerchants(excluded)...)
	insights = append(insights, g.largeExpenses(excluded)...)
	insights = append(insights, weekdayPattern(summary)...)

	return insights
}

// categoryInsights lists the top spending categories with their share of
// total spending, then warns about any category above the share threshold.
func (g *Generator) categoryInsights(summary aggregator.Summary) []string {
	if len(summary.CategorySums) == 0 {
		return nil
	}

	ranked := append([]string(nil), summary.CategoryOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return summary.CategorySums[ranked[i]].GreaterThan(summary.CategorySums[ranked[j]])
	})

	out := []string{"\n📊 Principais categorias de gastos:"}
	totalSpent := summary.TotalDebits.Abs().InexactFloat64()
	for i, category := range ranked {
		if i >= g.cfg.TopCategories {
			break
		}
		amount := summary.CategorySums[category]
		percentage := 0.0
		if totalSpent > 0 {
			percentage = amount.InexactFloat64() / totalSpent * 100
		}
		out = append(out, fmt.Sprintf("- %s: %s (%.1f%%)",
			category, currencyutils.FormatBRL(amount), percentage))
	}

	var categoryTotal float64
	for _, amount := range summary.CategorySums {
		categoryTotal += amount.InexactFloat64()
	}
	for _, category := range summary.CategoryOrder {
		percentage := summary.CategorySums[category].InexactFloat64() / categoryTotal * 100
		if percentage > g.cfg.HighShareThreshold {
			out = append(out, fmt.Sprintf("⚠️ Alerta de gasto alto: %s representa %.1f%% de suas despesas",
				category, percentage))
		}
	}
	return out
}

// frequentMerchants counts simplified descriptions among the
// transfer-excluded debits and lists the most frequent ones.
func (g *Generator) frequentMerchants(excluded []models.Transaction) []string {
	if len(excluded) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tx := range excluded {
		label := textutils.SimplifyDescription(tx.Description)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := []string{"\n🏪 Lugares mais frequentes:"}
	for i, place := range order {
		if i >= g.cfg.TopMerchants {
			break
		}
		count := counts[place]
		unit := "vezes"
		if count == 1 {
			unit = "vez"
		}
		out = append(out, fmt.Sprintf("- %s: %d %s", place, count, unit))
	}
	return out
}

// largeExpenses lists the biggest debits among the transfer-excluded set,
// most negative first.
func (g *Generator) largeExpenses(excluded []models.Transaction) []string {
	var large []models.Transaction
	for _, tx := range excluded {
		if tx.Amount.LessThan(g.cfg.LargeExpenseFloor) {
			large = append(large, tx)
		}
	}
	if len(large) == 0 {
		return nil
	}

	sort.SliceStable(large, func(i, j int) bool {
		return large[i].Amount.LessThan(large[j].Amount)
	})

	out := []string{"\n💸 Maiores despesas:"}
	for i, tx := range large {
		if i >= g.cfg.TopExpenses {
			break
		}
		out = append(out, fmt.Sprintf("- %s em %s",
			currencyutils.FormatBRL(tx.Amount), textutils.SimplifyDescription(tx.Description)))
	}
	return out
}

// weekdayPattern reports the weekdays with the highest and lowest debit
// totals, scanning the fixed weekday order so ties resolve the same way
// on every run.
func weekdayPattern(summary aggregator.Summary) []string {
	if len(summary.WeekdayDebitSums) == 0 {
		return nil
	}

	var maxDay, minDay string
	for _, day := range dateutils.WeekdayOrder {
		total, ok := summary.WeekdayDebitSums[day]
		if !ok {
			continue
		}
		if maxDay == "" || total.GreaterThan(summary.WeekdayDebitSums[maxDay]) {
			maxDay = day
		}
		if minDay == "" || total.LessThan(summary.WeekdayDebitSums[minDay]) {
			minDay = day
		}
	}

	return []string{
		"\n📅 Padrões de gasto:",
		"- Dia com mais gastos: " + maxDay,
		"- Dia com menos gastos: " + minDay,
	}
}

// transferExcludedDebits filters to valid debit rows whose description does
// not look like a transfer or bill payment.
func transferExcludedDebits(transactions []models.Transaction) []models.Transaction {
	var out []models.Transaction
	for _, tx := range transactions {
		if !tx.IsDebit() {
			continue
		}
		if containsTransferTerm(tx.Description) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func containsTransferTerm(description string) bool {
	desc := strings.ToLower(description)
	for _, term := range transferTerms {
		if strings.Contains(desc, term) {
			return true
		}
	}
	return false
}
