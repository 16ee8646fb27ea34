package intent

import (
	"context"

	"github.com/oolnhq/insights-service/internal/domain"
	"github.com/oolnhq/insights-service/internal/trading"
)

// Router resolves a question to an IntentResult: keyword rules first, then
// the embedding classifier. Both paths dispatch to the same metric
// computations; the classifier only ever selects a category.
type Router struct {
	classifier *Classifier
}

func NewRouter(classifier *Classifier) *Router {
	return &Router{classifier: classifier}
}

// Resolve computes the intent for a question against the live transaction
// list. A classifier category with no computable metric (unknown name, or
// mostProfitable without a qualifying trade) resolves to fallback. An
// embedding failure propagates as an error.
func (r *Router) Resolve(ctx context.Context, question string, transactions []domain.Transaction) (domain.IntentResult, error) {
	if result, ok := MatchRules(question, transactions); ok {
		return result, nil
	}

	prediction, err := r.classifier.Classify(ctx, question)
	if err != nil {
		return domain.IntentResult{}, err
	}
	if prediction.Category == domain.IntentFallback {
		return domain.Fallback(), nil
	}

	result, ok := trading.Compute(prediction.Category, transactions)
	if !ok {
		return domain.Fallback(), nil
	}
	return result, nil
}
