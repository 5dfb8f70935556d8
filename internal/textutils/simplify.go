// Package textutils provides text manipulation helpers for transaction
// descriptions.
package textutils

import (
	"strings"
)

// descriptionPrefixes are stripped from the front of a lower-cased
// description before extracting the merchant name. Only the first matching
// prefix is removed, so order matters: longer, more specific prefixes come
// before their shorter variants.
var descriptionPrefixes = []string{
	"pagamento em ",
	"compra em ",
	"compra com cartao ",
	"compra cartao ",
	"compra ",
	"pgto ",
	"pag ",
	"pagto ",
	"transferência enviada pelo pix - ",
	"transferência recebida pelo pix - ",
	"transferência enviada - ",
	"transferência recebida - ",
	"pagamento da fatura - ",
	"pagamento fatura - ",
}

// descriptionSeparators cut the description short at the first occurrence,
// dropping company-form suffixes and trailing detail.
var descriptionSeparators = []string{" - ", "ltda", "s.a.", "s/a"}

// SimplifyDescription derives a short merchant label from a raw statement
// description. It is used only for display and frequency grouping, never
// for categorization. The result may be empty when the input was entirely
// prefix and separator; callers must tolerate that.
func SimplifyDescription(description string) string {
	desc := strings.ToLower(description)

	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(desc, prefix) {
			desc = desc[len(prefix):]
			break
		}
	}

	for _, sep := range descriptionSeparators {
		if idx := strings.Index(desc, sep); idx >= 0 {
			desc = desc[:idx]
		}
	}

	desc = strings.TrimSpace(desc)

	words := strings.Fields(desc)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first rune of an already lower-cased word.
func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
