package auth

import (
	"context"
)

// `contextKey` is a custom type for context keys. Using a custom type prevents collisions
// with context keys defined in other packages.
type contextKey string

const identityContextKey contextKey = "auth_identity"

// Identity is the authenticated caller, as extracted from a verified token.
type Identity struct {
	UserID int64
	Email  string
}

// NewContextWithIdentity returns a child context carrying the identity.
func NewContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext extracts the identity stored by the Guard.
// The second return value is false outside guarded routes.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
