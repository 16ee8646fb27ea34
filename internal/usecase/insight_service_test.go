package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/oolnhq/insights-service/internal/domain"
	"github.com/oolnhq/insights-service/internal/intent"
	"github.com/oolnhq/insights-service/internal/logger"
)

const sampleCSV = `Activity Date,Description,Trans Code,Quantity,Price,Amount
1/2/2024,ACH Deposit,,0,0,$500.00
1/3/2024,AAPL 1/19/2024 Call $150.00,BTO,1,1.25,($125.00)
1/10/2024,AAPL 1/19/2024 Call $150.00,STC,1,2.00,$200.00
`

type mockSource struct {
	raw string
	err error
}

func (m *mockSource) Read(ctx context.Context) (string, error) {
	return m.raw, m.err
}

type mockEmbedder struct {
	vector []float64
	err    error
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return m.vector, m.err
}

type mockAdvisor struct {
	prompt string
	reply  string
	err    error
	calls  int
}

func (m *mockAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	return m.reply, m.err
}

func newTestService(source *mockSource, embedder *mockEmbedder, advisor *mockAdvisor) *InsightService {
	log := logger.New()
	corpus := domain.IntentCorpus{
		domain.IntentDeposit: {
			{Text: "How much did I deposit?", Embedding: []float64{1, 0, 0}},
		},
	}
	classifier := intent.NewClassifier(embedder, corpus, log)
	return NewInsightService(source, intent.NewRouter(classifier), advisor, log)
}

func TestAnswer_MetricIntent(t *testing.T) {
	advisor := &mockAdvisor{}
	service := newTestService(&mockSource{raw: sampleCSV}, &mockEmbedder{}, advisor)

	answer, err := service.Answer(context.Background(), "How much did I deposit?")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if answer.Intent != domain.IntentDeposit {
		t.Errorf("intent = %q, want %q", answer.Intent, domain.IntentDeposit)
	}
	if answer.Text != "A total of $500.00 was deposited." {
		t.Errorf("unexpected answer text: %q", answer.Text)
	}
	if advisor.calls != 0 {
		t.Errorf("advisor called %d times for a metric intent", advisor.calls)
	}
}

func TestAnswer_FallbackAsksAdvisor(t *testing.T) {
	advisor := &mockAdvisor{reply: "Keep position sizes small."}
	// Orthogonal vector: classifier stays under the threshold.
	embedder := &mockEmbedder{vector: []float64{0, 0, 1}}
	service := newTestService(&mockSource{raw: sampleCSV}, embedder, advisor)

	answer, err := service.Answer(context.Background(), "Any advice for next month?")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if answer.Intent != domain.IntentFallback {
		t.Errorf("intent = %q, want fallback", answer.Intent)
	}
	if answer.Text != "Keep position sizes small." {
		t.Errorf("unexpected answer text: %q", answer.Text)
	}
	for _, fragment := range []string{
		`"Any advice for next month?"`,
		"Total Deposits: $500.00",
		"Net Profit/Loss: $575.00",
		"Most Profitable Trade: AAPL 1/19/2024 Call $150.00 ($200.00)",
	} {
		if !strings.Contains(advisor.prompt, fragment) {
			t.Errorf("advisor prompt missing %q:\n%s", fragment, advisor.prompt)
		}
	}
}

func TestAnswer_AdvisorErrorPropagates(t *testing.T) {
	wantErr := errors.New("chat model down")
	advisor := &mockAdvisor{err: wantErr}
	service := newTestService(&mockSource{raw: sampleCSV}, &mockEmbedder{vector: []float64{0, 0, 1}}, advisor)

	if _, err := service.Answer(context.Background(), "Any advice?"); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped advisor error, got %v", err)
	}
}

func TestAnswer_EmbedderErrorPropagates(t *testing.T) {
	wantErr := errors.New("embedding service down")
	service := newTestService(&mockSource{raw: sampleCSV}, &mockEmbedder{err: wantErr}, &mockAdvisor{})

	if _, err := service.Answer(context.Background(), "Any advice?"); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped embedder error, got %v", err)
	}
}

func TestAnswer_SourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("export missing")
	service := newTestService(&mockSource{err: wantErr}, &mockEmbedder{}, &mockAdvisor{})

	if _, err := service.Answer(context.Background(), "How much did I deposit?"); !errors.Is(err, wantErr) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name   string
		result domain.IntentResult
		want   string
	}{
		{
			"withdrawal",
			domain.IntentResult{Type: domain.IntentWithdrawal, Value: 100},
			"A total of $100.00 was withdrawn.",
		},
		{
			"win rate",
			domain.IntentResult{Type: domain.IntentWinRate, Value: 62.5},
			"Your win rate is 62.50%.",
		},
		{
			"trade count formats as integer",
			domain.IntentResult{Type: domain.IntentTradeCount, Value: 42},
			"You made a total of 42 trades.",
		},
		{
			"most profitable",
			domain.IntentResult{Type: domain.IntentMostProfitable, Description: "AAPL 1/19/2024 Call $150.00", Value: 200},
			`Your most profitable trade was "AAPL 1/19/2024 Call $150.00", earning $200.00.`,
		},
		{
			"expired loss percent",
			domain.IntentResult{Type: domain.IntentExpiredLossPercent, Value: 37.5},
			"37.50% of total losses came from options that expired worthless.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatResult(tt.result); got != tt.want {
				t.Errorf("formatResult = %q, want %q", got, tt.want)
			}
		})
	}
}
