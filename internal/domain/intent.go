package domain

// Intent categories. Both the rule matcher and the embedding classifier
// resolve a question to one of these names; the metrics engine maps the name
// to a computation.
const (
	IntentDeposit            = "deposit"
	IntentWithdrawal         = "withdrawal"
	IntentProfit             = "profit"
	IntentWinRate            = "winRate"
	IntentPositionSize       = "positionSize"
	IntentTradeCount         = "tradeCount"
	IntentMostProfitable     = "mostProfitable"
	IntentExpiredLossPercent = "expiredLossPercent"
	IntentFallback           = "fallback"
)

// IntentResult is the outcome of resolving a question against the
// transaction list. Exactly one variant applies: Type names the intent,
// Value carries the computed metric, and Description is set only for
// mostProfitable. A fallback result carries no value; the caller must
// produce a generic response instead.
type IntentResult struct {
	Type        string  `json:"type"`
	Value       float64 `json:"value,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Fallback is the IntentResult returned when no computed metric applies.
func Fallback() IntentResult {
	return IntentResult{Type: IntentFallback}
}

// IntentExample pairs an example question with its precomputed embedding.
type IntentExample struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// IntentCorpus maps an intent category to its example questions. Loaded once
// at startup and never mutated, so it is safe for concurrent readers.
type IntentCorpus map[string][]IntentExample
