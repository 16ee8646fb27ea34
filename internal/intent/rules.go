package intent

import (
	"strings"

	"github.com/oolnhq/insights-service/internal/domain"
	"github.com/oolnhq/insights-service/internal/trading"
)

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// MatchRules resolves a question against the keyword rules, first match
// wins. The second result is false when no rule fires and the question
// should escalate to the embedding classifier.
//
// The expired-option rule is deliberately checked before the generic
// profit/loss rule so "losses from expired options" is not swallowed by it.
// The most-profitable rule only fires when a qualifying trade exists;
// otherwise the question keeps falling through the remaining rules.
func MatchRules(question string, transactions []domain.Transaction) (domain.IntentResult, bool) {
	q := strings.ToLower(question)

	if strings.Contains(q, "deposit") {
		return mustCompute(domain.IntentDeposit, transactions)
	}

	if strings.Contains(q, "withdrawal") {
		return mustCompute(domain.IntentWithdrawal, transactions)
	}

	if containsAny(q, "most profitable", "best trade", "top trade", "highest profit") {
		if result, ok := trading.Compute(domain.IntentMostProfitable, transactions); ok {
			return result, true
		}
	}

	// "expir" covers expire, expired, expiring and expiration.
	if strings.Contains(q, "expir") && containsAny(q, "loss", "option", "percentage") {
		return mustCompute(domain.IntentExpiredLossPercent, transactions)
	}

	if containsAny(q, "profit", "loss") {
		return mustCompute(domain.IntentProfit, transactions)
	}

	if strings.Contains(q, "win rate") {
		return mustCompute(domain.IntentWinRate, transactions)
	}

	if strings.Contains(q, "average") && strings.Contains(q, "position") {
		return mustCompute(domain.IntentPositionSize, transactions)
	}

	if containsAny(q, "how many trades", "number of trades") {
		return mustCompute(domain.IntentTradeCount, transactions)
	}

	return domain.IntentResult{}, false
}

func mustCompute(category string, transactions []domain.Transaction) (domain.IntentResult, bool) {
	result, _ := trading.Compute(category, transactions)
	return result, true
}
