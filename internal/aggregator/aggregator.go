// Package aggregator computes totals, per-category and per-weekday sums,
// and spend-volatility statistics over a parsed statement.
package aggregator

import (
	"math"

	"fjacquet/nubank-analyzer/internal/dateutils"
	"fjacquet/nubank-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// volatilityRatio is the threshold for the irregular-spending signal:
// irregular when stddev > ratio * mean of daily debit totals.
const volatilityRatio = 0.5

// Volatility is the daily-spend dispersion signal. Mean and StdDev are
// over per-calendar-day absolute debit totals; StdDev uses the sample
// (n-1) definition. Irregular is false when there are fewer than two days
// of data or the mean is zero.
type Volatility struct {
	Mean      float64
	StdDev    float64
	Irregular bool
}

// Summary holds every aggregate the insight and recommendation generators
// consume. CategoryOrder preserves the first-appearance order of debit
// categories so recommendation emission stays deterministic.
type Summary struct {
	TotalDebits      decimal.Decimal // sum of negative amounts, reported negative
	TotalCredits     decimal.Decimal
	NetBalance       decimal.Decimal
	CategorySums     map[string]decimal.Decimal // absolute debit sums per category
	CategoryOrder    []string
	WeekdayDebitSums map[string]decimal.Decimal // localized weekday name -> absolute debit sum
	DailyVolatility  Volatility
}

// Summarize computes all aggregates in one pass over the transactions.
// Rows with an invalid amount are excluded from every sum; rows with an
// invalid date are excluded from weekday and volatility statistics but
// still count toward the totals.
func Summarize(transactions []models.Transaction) Summary {
	summary := Summary{
		TotalDebits:      decimal.Zero,
		TotalCredits:     decimal.Zero,
		CategorySums:     make(map[string]decimal.Decimal),
		WeekdayDebitSums: make(map[string]decimal.Decimal),
	}

	dailyTotals := make(map[string]decimal.Decimal)
	var dayOrder []string

	for _, tx := range transactions {
		if !tx.AmountValid {
			continue
		}

		if tx.Amount.IsNegative() {
			summary.TotalDebits = summary.TotalDebits.Add(tx.Amount)

			abs := tx.Amount.Abs()
			if _, seen := summary.CategorySums[tx.Category]; !seen {
				summary.CategoryOrder = append(summary.CategoryOrder, tx.Category)
			}
			summary.CategorySums[tx.Category] = summary.CategorySums[tx.Category].Add(abs)

			if tx.DateValid {
				weekday := dateutils.WeekdayName(tx.Date)
				summary.WeekdayDebitSums[weekday] = summary.WeekdayDebitSums[weekday].Add(abs)

				day := dateutils.DayKey(tx.Date)
				if _, seen := dailyTotals[day]; !seen {
					dayOrder = append(dayOrder, day)
				}
				dailyTotals[day] = dailyTotals[day].Add(abs)
			}
		} else if tx.Amount.IsPositive() {
			summary.TotalCredits = summary.TotalCredits.Add(tx.Amount)
		}
	}

	summary.NetBalance = summary.TotalCredits.Add(summary.TotalDebits)
	summary.DailyVolatility = computeVolatility(dailyTotals, dayOrder)
	return summary
}

// computeVolatility derives the irregular-spending signal from the daily
// debit totals.
func computeVolatility(dailyTotals map[string]decimal.Decimal, dayOrder []string) Volatility {
	n := len(dayOrder)
	if n == 0 {
		return Volatility{}
	}

	var sum float64
	values := make([]float64, 0, n)
	for _, day := range dayOrder {
		v := dailyTotals[day].InexactFloat64()
		values = append(values, v)
		sum += v
	}
	mean := sum / float64(n)

	vol := Volatility{Mean: mean}
	if n < 2 || mean == 0 {
		return vol
	}

	var sqDiff float64
	for _, v := range values {
		sqDiff += (v - mean) * (v - mean)
	}
	vol.StdDev = math.Sqrt(sqDiff / float64(n-1))
	vol.Irregular = vol.StdDev > volatilityRatio*mean
	return vol
}
