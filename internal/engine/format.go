package engine

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a dollar amount with thousands grouping and no cents,
// e.g. 56550 -> "$56,550". Scripts and reports use whole-dollar figures.
func FormatUSD(v float64) string {
	return usd.Sprintf("$%.0f", v)
}
