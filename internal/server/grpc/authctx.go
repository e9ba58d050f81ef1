package grpcserver

import (
	"context"

	"github.com/and161185/officehub/internal/model"
)

type ctxKey string

const principalKey ctxKey = "hub.principal"

// WithPrincipal stores the authenticated caller in context.
func WithPrincipal(ctx context.Context, p model.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx fetches the caller stored by the auth interceptor.
func PrincipalFromCtx(ctx context.Context) (model.Principal, bool) {
	p, ok := ctx.Value(principalKey).(model.Principal)
	return p, ok && p.UserID != 0
}
