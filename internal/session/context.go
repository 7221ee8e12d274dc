package session

import "context"

type contextKey string

const principalContextKey contextKey = "quizhub_principal"

// WithPrincipal threads the request's principal through the context so
// gated handlers read it explicitly instead of re-parsing the cookie.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}
