package txn

import "context"

// Manager runs fn as one all-or-nothing unit against the store. The
// transaction travels in the context handed to fn; repositories called
// with that context join it. Nested calls reuse the outer transaction.
type Manager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
