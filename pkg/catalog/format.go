// ABOUTME: Locale-aware display formatting for catalog values
// ABOUTME: Prices render in US dollars with grouping and two fraction digits

package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders p as "$1,234.50".
func FormatPrice(p Price) string {
	f, _ := p.Float64()
	return displayPrinter.Sprintf("$%v", number.Decimal(f, number.Scale(2)))
}

// FormatRating renders a rating the way product cards show it: "3.9 (120)".
func FormatRating(r Rating) string {
	return displayPrinter.Sprintf("%v (%d)", number.Decimal(r.Rate, number.MaxFractionDigits(1)), r.Count)
}
