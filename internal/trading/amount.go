package trading

import (
	"strconv"
	"strings"
)

var amountCleaner = strings.NewReplacer("$", "", ",", "", "(", "-", ")", "")

// ParseAmount converts broker currency text to a signed value. Currency
// symbols and thousands separators are stripped, and accounting-style
// parentheses mean negative: "($500.00)" → -500. Parsing is total; malformed
// input yields 0, never an error. Already-clean numeric strings pass through
// unchanged.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(amountCleaner.Replace(raw))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
