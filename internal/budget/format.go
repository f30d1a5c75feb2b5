package budget

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are whole Vietnamese dong; the vi locale groups thousands with
// dots, e.g. 1.000.000 ₫.
var amountPrinter = message.NewPrinter(language.Vietnamese)

// FormatAmount renders an amount for warning messages.
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d ₫", amount)
}

// percentOf returns amount as a whole-number percentage of max, rounded.
func percentOf(amount, max int64) int {
	return int(math.Round(float64(amount) / float64(max) * 100))
}
