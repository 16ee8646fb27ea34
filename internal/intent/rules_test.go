package intent

import (
	"testing"

	"github.com/oolnhq/insights-service/internal/domain"
)

func tx(desc, code, amount string) domain.Transaction {
	return domain.Transaction{Description: desc, TransCode: code, Amount: amount}
}

func TestMatchRules(t *testing.T) {
	transactions := []domain.Transaction{
		tx("ACH Deposit", "", "$500.00"),
		tx("Withdrawal to bank", "", "($100.00)"),
		tx("AAPL 1/19/2024 Call $150.00", "BTO", "($125.00)"),
		tx("AAPL 1/19/2024 Call $150.00", "STC", "$200.00"),
	}

	tests := []struct {
		name     string
		question string
		wantType string
	}{
		{"deposit keyword", "How much did I deposit?", domain.IntentDeposit},
		{"withdrawal keyword", "What were my withdrawals this month?", domain.IntentWithdrawal},
		{"best trade phrasing", "Show me my best trade", domain.IntentMostProfitable},
		{"highest profit phrasing", "Which trade had the highest profit?", domain.IntentMostProfitable},
		{"expired loss routes before generic loss", "What percent of my losses came from expired options?", domain.IntentExpiredLossPercent},
		{"expiration phrasing", "How much did option expiration cost me?", domain.IntentExpiredLossPercent},
		{"generic profit", "Am I in profit?", domain.IntentProfit},
		{"generic loss", "What is my total loss?", domain.IntentProfit},
		{"win rate", "What is my win rate?", domain.IntentWinRate},
		{"average position", "What's my average position size?", domain.IntentPositionSize},
		{"trade count", "how many trades did I place?", domain.IntentTradeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := MatchRules(tt.question, transactions)
			if !ok {
				t.Fatalf("MatchRules(%q) did not match", tt.question)
			}
			if result.Type != tt.wantType {
				t.Errorf("MatchRules(%q) = %q, want %q", tt.question, result.Type, tt.wantType)
			}
		})
	}
}

func TestMatchRules_DepositValue(t *testing.T) {
	transactions := []domain.Transaction{tx("ACH Deposit", "", "$500.00")}

	result, ok := MatchRules("How much did I deposit?", transactions)
	if !ok {
		t.Fatal("expected deposit rule to match")
	}
	if result.Type != domain.IntentDeposit || result.Value != 500 {
		t.Errorf("got %+v, want deposit of 500", result)
	}
}

func TestMatchRules_NoMatch(t *testing.T) {
	if _, ok := MatchRules("Tell me a joke about the stock market", nil); ok {
		t.Error("expected no rule to match")
	}
}

func TestMatchRules_MostProfitableFallsThrough(t *testing.T) {
	// No qualifying trade exists, so "best trade" cannot resolve to
	// mostProfitable. No later rule fires either, so the question escalates.
	transactions := []domain.Transaction{tx("ACH Deposit", "", "$500.00")}
	if _, ok := MatchRules("What was my best trade?", transactions); ok {
		t.Error("expected fallthrough past the most-profitable rule")
	}

	// With "profit" wording the generic profit rule catches the fallthrough.
	result, ok := MatchRules("Which trade had the highest profit?", transactions)
	if !ok {
		t.Fatal("expected the generic profit rule to catch the question")
	}
	if result.Type != domain.IntentProfit {
		t.Errorf("got %q, want %q", result.Type, domain.IntentProfit)
	}
}
