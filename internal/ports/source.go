package ports

import "context"

type TransactionSource interface {
	// Read supplies the raw CSV text of the brokerage activity export.
	Read(ctx context.Context) (string, error)
}
