package repositories

import "context"

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// WithinTransaction runs fn inside one storage transaction. The context passed
	// to fn carries the transaction; repositories called with it join the unit.
	// A nested call joins the outer unit instead of opening a new one. fn's error
	// rolls back every write made through the context.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
