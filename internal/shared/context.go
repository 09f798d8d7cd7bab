package shared

import "context"

// Role values understood by the API.
const (
	RoleAdmin        = "admin"
	RoleComisionista = "comisionista"
	RoleCliente      = "cliente"
)

// Identity describes the authenticated caller of a request.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

type identityContextKey struct{}

// ContextWithIdentity stores the caller identity in context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the caller identity from context. The second
// return value reports whether an identity was present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
