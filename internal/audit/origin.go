package audit

import "context"

// Origin is where a request came from.
type Origin struct {
	IP        string
	UserAgent string
}

type originKey struct{}

// WithOrigin stores the request origin in ctx. Transports call it once per request.
func WithOrigin(ctx context.Context, o Origin) context.Context {
	return context.WithValue(ctx, originKey{}, o)
}

// OriginFrom returns the stored origin or the zero value.
func OriginFrom(ctx context.Context) Origin {
	o, _ := ctx.Value(originKey{}).(Origin)
	return o
}
