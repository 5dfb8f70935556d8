// Package currencyutils provides amount parsing and Brazilian-real
// formatting used throughout the application.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix is the fixed prefix used when rendering amounts.
const CurrencyPrefix = "R$"

// ParseAmount parses a statement amount string into a decimal value.
// It accepts both "1234.56" and "1234,56"; anything else is an error so
// the caller can mark the row as non-numeric.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := standardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// standardizeAmount normalizes an amount string to a form decimal can parse.
func standardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.TrimPrefix(amountStr, CurrencyPrefix)
	amountStr = strings.TrimSpace(amountStr)

	// Brazilian format 1.234,56: dot is the thousands separator.
	if strings.Contains(amountStr, ",") {
		amountStr = strings.ReplaceAll(amountStr, ".", "")
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}
	return amountStr
}

// FormatBRL renders the absolute value of an amount in the fixed
// "R$ 1.234,56" style. The sign is conveyed separately by the caller.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	// Insert dots every three digits from the right.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return CurrencyPrefix + " " + strings.Join(groups, ".") + "," + decPart
}
