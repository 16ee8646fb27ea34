package domain

// Transaction is one row of a brokerage activity export. Amount keeps the
// raw currency text ("$1,234.56", "($500.00)"); consumers parse it on demand
// with trading.ParseAmount.
type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	TransCode   string  `json:"transCode"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      string  `json:"amount"`
}

// Broker transaction codes observed in the export. The set is open ended;
// deposits and withdrawals arrive as free-text descriptions instead.
const (
	CodeBuyToOpen   = "BTO"
	CodeSellToClose = "STC"
	CodeBuy         = "BUY"
	CodeSell        = "SELL"
	CodeExpired     = "OEXP"
)

// OptionDetails is an option contract extracted from a transaction
// description of the form "SYMBOL M/D/YYYY put|call $STRIKE".
type OptionDetails struct {
	Symbol         string
	ExpirationDate string
	OptionType     string // "put" or "call"
	Strike         string
}
