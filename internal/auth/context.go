package auth

import "context"

// Operator is the authenticated staff member driving a terminal. It is
// injected into the request context by the JWT middleware and passed
// explicitly to any component that needs it.
type Operator struct {
	ID         string
	Name       string
	Role       string
	LocationID string
}

type contextKey struct{}

func WithOperator(ctx context.Context, op Operator) context.Context {
	return context.WithValue(ctx, contextKey{}, op)
}

func OperatorFrom(ctx context.Context) (Operator, bool) {
	op, ok := ctx.Value(contextKey{}).(Operator)
	return op, ok
}
