package ports

import "context"

type Advisor interface {
	// Advise asks the hosted chat model for prose built from the prompt.
	Advise(ctx context.Context, prompt string) (string, error)
}
