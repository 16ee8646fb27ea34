package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oolnhq/insights-service/internal/domain"
	"github.com/oolnhq/insights-service/internal/intent"
	"github.com/oolnhq/insights-service/internal/ports"
	"github.com/oolnhq/insights-service/internal/trading"
)

// InsightService answers a natural-language question about the trader's
// activity export: parse the export, resolve the intent, and either format
// the computed metric or hand a metrics summary to the advisor model.
type InsightService struct {
	source  ports.TransactionSource
	router  *intent.Router
	advisor ports.Advisor
	log     zerolog.Logger

	advisorSem chan struct{} // limit concurrent advisor calls
}

func NewInsightService(source ports.TransactionSource, router *intent.Router, advisor ports.Advisor, log zerolog.Logger) *InsightService {
	return &InsightService{
		source:     source,
		router:     router,
		advisor:    advisor,
		log:        log,
		advisorSem: make(chan struct{}, 3),
	}
}

// Answer is the user-facing response plus the intent that produced it.
type Answer struct {
	Text   string `json:"answer"`
	Intent string `json:"intent"`
}

// Answer resolves one question end to end. Metric intents are answered from
// the live transaction list; fallback questions go to the advisor with a
// summary of every metric. Embedder or advisor failures propagate.
func (s *InsightService) Answer(ctx context.Context, question string) (Answer, error) {
	raw, err := s.source.Read(ctx)
	if err != nil {
		return Answer{}, err
	}
	transactions, err := trading.ParseCSV(raw)
	if err != nil {
		return Answer{}, fmt.Errorf("parsing transaction export: %w", err)
	}

	result, err := s.router.Resolve(ctx, question, transactions)
	if err != nil {
		return Answer{}, err
	}

	if result.Type != domain.IntentFallback {
		return Answer{Text: formatResult(result), Intent: result.Type}, nil
	}

	s.log.Info().Str("question", question).Msg("no intent matched, asking advisor")

	text, err := s.advise(ctx, question, trading.Summarize(transactions))
	if err != nil {
		return Answer{}, err
	}
	return Answer{Text: text, Intent: domain.IntentFallback}, nil
}

func (s *InsightService) advise(ctx context.Context, question string, summary trading.Summary) (string, error) {
	s.advisorSem <- struct{}{}
	defer func() { <-s.advisorSem }()

	text, err := s.advisor.Advise(ctx, buildAdvisorPrompt(question, summary))
	if err != nil {
		return "", fmt.Errorf("advisor request: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func formatResult(r domain.IntentResult) string {
	switch r.Type {
	case domain.IntentDeposit:
		return fmt.Sprintf("A total of $%.2f was deposited.", r.Value)
	case domain.IntentWithdrawal:
		return fmt.Sprintf("A total of $%.2f was withdrawn.", r.Value)
	case domain.IntentProfit:
		return fmt.Sprintf("Your net realized profit/loss is $%.2f.", r.Value)
	case domain.IntentWinRate:
		return fmt.Sprintf("Your win rate is %.2f%%.", r.Value)
	case domain.IntentPositionSize:
		return fmt.Sprintf("Your average position size is $%.2f.", r.Value)
	case domain.IntentTradeCount:
		return fmt.Sprintf("You made a total of %d trades.", int(r.Value))
	case domain.IntentMostProfitable:
		return fmt.Sprintf("Your most profitable trade was %q, earning $%.2f.", r.Description, r.Value)
	case domain.IntentExpiredLossPercent:
		return fmt.Sprintf("%.2f%% of total losses came from options that expired worthless.", r.Value)
	}
	return ""
}

func buildAdvisorPrompt(question string, s trading.Summary) string {
	mostProfitable := "N/A"
	mostProfitableAmount := 0.0
	if s.MostProfitable != nil {
		mostProfitable = s.MostProfitable.Description
		mostProfitableAmount = trading.ParseAmount(s.MostProfitable.Amount)
	}

	return fmt.Sprintf(`The user asked: %q

Here is a summary of the trade data:

- Total Deposits: $%.2f
- Total Withdrawals: $%.2f
- Net Profit/Loss: $%.2f
- Win Rate: %.2f%%
- ROI: %.2f%%
- Average Position Size: $%.2f
- Trade Count: %d
- Most Profitable Trade: %s ($%.2f)
- %% of Losses from Expired Options: %.2f%%

---

Please answer the user's question using only the summary above.

Speak like a professional financial advisor coaching a retail trader. Be constructive, concise, and encouraging.

Use clean Markdown formatting, and split sections like this, dont forget to leave space between every section:

**Position Sizing**
- ...

**Leverage Control**
- ...

**Risk Management**
- ...
`,
		question,
		s.TotalDeposits,
		s.TotalWithdrawals,
		s.NetProfit,
		s.WinRate,
		s.ROI,
		s.AveragePositionSize,
		int(s.TradeCount),
		mostProfitable,
		mostProfitableAmount,
		s.ExpiredLossPercent,
	)
}
