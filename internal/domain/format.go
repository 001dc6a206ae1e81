package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySuffix = "₽"

var ruPrinter = message.NewPrinter(language.Russian)

// FormatPrice — сумма с разделителями разрядов по русской локали и знаком рубля
func FormatPrice(v int64) string {
	return ruPrinter.Sprintf("%d", v) + " " + CurrencySuffix
}
