package trading

import (
	"math"
	"strings"

	"github.com/oolnhq/insights-service/internal/domain"
)

// TotalDeposits sums every transaction whose description mentions a deposit.
func TotalDeposits(transactions []domain.Transaction) float64 {
	var sum float64
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Description), "deposit") {
			sum += ParseAmount(t.Amount)
		}
	}
	return sum
}

// TotalWithdrawals sums absolute amounts of withdrawal transactions. A
// transaction counts when its description mentions a withdrawal, or when it
// is a negative ACH transfer.
func TotalWithdrawals(transactions []domain.Transaction) float64 {
	var sum float64
	for _, t := range transactions {
		desc := strings.ToLower(t.Description)
		amount := ParseAmount(t.Amount)
		if strings.Contains(desc, "withdraw") || (amount < 0 && strings.Contains(desc, "ach")) {
			sum += math.Abs(amount)
		}
	}
	return sum
}

// NetProfit is the unfiltered sum of all amounts.
func NetProfit(transactions []domain.Transaction) float64 {
	var sum float64
	for _, t := range transactions {
		sum += ParseAmount(t.Amount)
	}
	return sum
}

func isClosingCode(code string) bool {
	switch code {
	case domain.CodeSellToClose, domain.CodeSell, domain.CodeBuyToOpen, domain.CodeBuy:
		return true
	}
	return false
}

// WinRate is the percentage of trade executions (BTO, BUY, SELL, STC) with a
// positive amount. Returns 0 when there are no executions.
func WinRate(transactions []domain.Transaction) float64 {
	var wins, total int
	for _, t := range transactions {
		if !isClosingCode(t.TransCode) {
			continue
		}
		total++
		if ParseAmount(t.Amount) > 0 {
			wins++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// MostProfitableTrade returns the transaction with the largest positive
// amount, excluding deposits and ACH transfers. Ties keep the earliest
// transaction. The second result is false when no transaction qualifies.
func MostProfitableTrade(transactions []domain.Transaction) (domain.Transaction, bool) {
	var best domain.Transaction
	bestAmount := 0.0
	found := false
	for _, t := range transactions {
		desc := strings.ToLower(t.Description)
		if strings.Contains(desc, "deposit") || strings.Contains(desc, "ach") {
			continue
		}
		amount := ParseAmount(t.Amount)
		if amount <= 0 {
			continue
		}
		if !found || amount > bestAmount {
			best = t
			bestAmount = amount
			found = true
		}
	}
	return best, found
}

// AveragePositionSize is the mean absolute amount across transactions with a
// non-zero amount. Returns 0 when every amount is zero.
func AveragePositionSize(transactions []domain.Transaction) float64 {
	var sum float64
	var count int
	for _, t := range transactions {
		amount := ParseAmount(t.Amount)
		if amount == 0 {
			continue
		}
		sum += math.Abs(amount)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// TradeCount is the total number of transactions, unfiltered.
func TradeCount(transactions []domain.Transaction) float64 {
	return float64(len(transactions))
}

// position accumulates the money flow of one description across the export.
type position struct {
	openCost     float64
	closeRevenue float64
	expired      bool
}

func isOpeningCode(code string) bool {
	return code == domain.CodeBuyToOpen || code == domain.CodeBuy
}

func isSellingCode(code string) bool {
	return code == domain.CodeSellToClose || code == domain.CodeSell
}

// ExpiredLossPercent attributes losing capital to option expiration. The
// cost basis of every position whose contract matches an OEXP event counts
// as expired capital; positions that were closed for less than they cost
// count as ordinary losing capital. The result is expired capital as a
// percentage of all losing capital, or 0 when nothing was lost.
func ExpiredLossPercent(transactions []domain.Transaction) float64 {
	var expirations []domain.Transaction
	for _, t := range transactions {
		if t.TransCode == domain.CodeExpired {
			expirations = append(expirations, t)
		}
	}

	var expiredCost float64
	for _, exp := range expirations {
		for _, t := range transactions {
			if t.TransCode == domain.CodeBuyToOpen && OptionsMatch(t.Description, exp.Description) {
				expiredCost += math.Abs(ParseAmount(t.Amount))
			}
		}
	}

	ledger := make(map[string]*position)
	order := make([]string, 0)
	get := func(desc string) *position {
		p, ok := ledger[desc]
		if !ok {
			p = &position{}
			ledger[desc] = p
			order = append(order, desc)
		}
		return p
	}
	for _, t := range transactions {
		switch {
		case isOpeningCode(t.TransCode):
			get(t.Description).openCost += math.Abs(ParseAmount(t.Amount))
		case isSellingCode(t.TransCode):
			get(t.Description).closeRevenue += ParseAmount(t.Amount)
		}
	}
	for desc, p := range ledger {
		for _, exp := range expirations {
			if OptionsMatch(desc, exp.Description) {
				p.expired = true
				break
			}
		}
	}

	totalLosingCapital := expiredCost
	for _, desc := range order {
		p := ledger[desc]
		if p.expired || p.closeRevenue <= 0 {
			continue
		}
		if p.closeRevenue-p.openCost < 0 {
			totalLosingCapital += p.openCost
		}
	}

	if totalLosingCapital == 0 {
		return 0
	}
	return expiredCost / totalLosingCapital * 100
}

// ROI is net profit as a percentage of total deposits, 0 when nothing was
// deposited.
func ROI(transactions []domain.Transaction) float64 {
	deposits := TotalDeposits(transactions)
	if deposits <= 0 {
		return 0
	}
	return NetProfit(transactions) / deposits * 100
}

// Compute resolves an intent category to its metric over the transaction
// list. The second result is false for an unknown category, and for
// mostProfitable when no transaction qualifies.
func Compute(category string, transactions []domain.Transaction) (domain.IntentResult, bool) {
	switch category {
	case domain.IntentDeposit:
		return domain.IntentResult{Type: category, Value: TotalDeposits(transactions)}, true
	case domain.IntentWithdrawal:
		return domain.IntentResult{Type: category, Value: TotalWithdrawals(transactions)}, true
	case domain.IntentProfit:
		return domain.IntentResult{Type: category, Value: NetProfit(transactions)}, true
	case domain.IntentWinRate:
		return domain.IntentResult{Type: category, Value: WinRate(transactions)}, true
	case domain.IntentPositionSize:
		return domain.IntentResult{Type: category, Value: AveragePositionSize(transactions)}, true
	case domain.IntentTradeCount:
		return domain.IntentResult{Type: category, Value: TradeCount(transactions)}, true
	case domain.IntentExpiredLossPercent:
		return domain.IntentResult{Type: category, Value: ExpiredLossPercent(transactions)}, true
	case domain.IntentMostProfitable:
		best, ok := MostProfitableTrade(transactions)
		if !ok {
			return domain.IntentResult{}, false
		}
		return domain.IntentResult{
			Type:        category,
			Value:       ParseAmount(best.Amount),
			Description: best.Description,
		}, true
	}
	return domain.IntentResult{}, false
}

// Summary is the full metric set, computed in one call for the generic
// advisor prompt.
type Summary struct {
	TotalDeposits       float64
	TotalWithdrawals    float64
	NetProfit           float64
	WinRate             float64
	ROI                 float64
	AveragePositionSize float64
	TradeCount          float64
	ExpiredLossPercent  float64
	MostProfitable      *domain.Transaction
}

// Summarize computes every metric over the transaction list.
func Summarize(transactions []domain.Transaction) Summary {
	s := Summary{
		TotalDeposits:       TotalDeposits(transactions),
		TotalWithdrawals:    TotalWithdrawals(transactions),
		NetProfit:           NetProfit(transactions),
		WinRate:             WinRate(transactions),
		ROI:                 ROI(transactions),
		AveragePositionSize: AveragePositionSize(transactions),
		TradeCount:          TradeCount(transactions),
		ExpiredLossPercent:  ExpiredLossPercent(transactions),
	}
	if best, ok := MostProfitableTrade(transactions); ok {
		s.MostProfitable = &best
	}
	return s
}
