package ports

import "context"

type Embedder interface {
	// Embed turns text into a vector. Failures propagate; the caller decides
	// how to degrade.
	Embed(ctx context.Context, text string) ([]float64, error)
}
