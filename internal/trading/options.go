package trading

import (
	"regexp"
	"strings"

	"github.com/oolnhq/insights-service/internal/domain"
)

// Matches "symbol M/D/YYYY put|call $strike" inside a lower-cased
// description, e.g. "aapl 1/19/2024 call $150.00".
var optionRe = regexp.MustCompile(`([a-z0-9]+)\s+(\d{1,2}/\d{1,2}/\d{4})\s+(put|call)\s+\$?([0-9][0-9,]*(?:\.[0-9]+)?)`)

// ParseOptionDetails extracts the option contract from a transaction
// description. The second result is false when the description does not
// contain the contract pattern; there is no partial match.
func ParseOptionDetails(description string) (domain.OptionDetails, bool) {
	m := optionRe.FindStringSubmatch(strings.ToLower(description))
	if m == nil {
		return domain.OptionDetails{}, false
	}
	return domain.OptionDetails{
		Symbol:         m[1],
		ExpirationDate: m[2],
		OptionType:     m[3],
		Strike:         strings.ReplaceAll(m[4], ",", ""),
	}, true
}

// OptionsMatch reports whether two descriptions refer to the same option
// contract. Both must contain the contract pattern and agree on symbol,
// expiration, type and strike. The expiration is compared as text, so
// "1/19/2024" and "01/19/2024" are different contracts. Strikes are compared
// numerically after comma stripping, so "$150" equals "150.00".
func OptionsMatch(descA, descB string) bool {
	a, okA := ParseOptionDetails(descA)
	b, okB := ParseOptionDetails(descB)
	if !okA || !okB {
		return false
	}
	return a.Symbol == b.Symbol &&
		a.ExpirationDate == b.ExpirationDate &&
		a.OptionType == b.OptionType &&
		ParseAmount(a.Strike) == ParseAmount(b.Strike)
}
