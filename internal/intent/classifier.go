package intent

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/oolnhq/insights-service/internal/domain"
	"github.com/oolnhq/insights-service/internal/ports"
)

// scoreThreshold is the minimum cosine similarity a corpus example must beat
// for its category to be chosen; anything at or below it is a fallback.
const scoreThreshold = 0.7

// Prediction is the classifier's best guess for a question.
type Prediction struct {
	Category string
	Score    float64
}

type example struct {
	category  string
	text      string
	embedding []float64
}

// Classifier assigns a question to an intent category by comparing its
// embedding against a precomputed example corpus.
type Classifier struct {
	embedder ports.Embedder
	examples []example
	log      zerolog.Logger
}

// NewClassifier flattens the corpus once; the classifier never mutates it
// afterwards, so a single instance is safe for concurrent requests.
func NewClassifier(embedder ports.Embedder, corpus domain.IntentCorpus, log zerolog.Logger) *Classifier {
	var examples []example
	for category, entries := range corpus {
		for _, e := range entries {
			examples = append(examples, example{
				category:  category,
				text:      e.Text,
				embedding: e.Embedding,
			})
		}
	}
	return &Classifier{embedder: embedder, examples: examples, log: log}
}

// Classify embeds the question and returns the best-scoring category, or
// fallback when no example scores above the threshold. An embedding failure
// propagates: classification is unavailable, not wrong.
func (c *Classifier) Classify(ctx context.Context, question string) (Prediction, error) {
	vector, err := c.embedder.Embed(ctx, question)
	if err != nil {
		return Prediction{}, fmt.Errorf("embedding question: %w", err)
	}

	best := Prediction{Category: domain.IntentFallback, Score: scoreThreshold}
	for _, e := range c.examples {
		score := cosineSimilarity(vector, e.embedding)
		if score > best.Score {
			best = Prediction{Category: e.category, Score: score}
		}
	}

	c.log.Debug().
		Str("category", best.Category).
		Float64("score", best.Score).
		Msg("classified question")

	return best, nil
}

// cosineSimilarity is the dot product of two vectors over the product of
// their magnitudes. Mismatched or zero-length vectors score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
