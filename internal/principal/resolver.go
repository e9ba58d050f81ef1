package principal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officehub_principal_cache_hits_total",
		Help: "Principal lookups served from cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officehub_principal_cache_misses_total",
		Help: "Principal lookups that went to the users table",
	})
)

// UserLookup is the part of the user repository the resolver needs.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// Resolver maps a user id to a Principal, caching role lookups for ttl.
type Resolver struct {
	users UserLookup
	cache *expirable.LRU[int64, model.Principal]
}

// NewResolver creates a resolver with a bounded cache.
func NewResolver(users UserLookup, size int, ttl time.Duration) *Resolver {
	if size <= 0 {
		size = 1024
	}
	return &Resolver{
		users: users,
		cache: expirable.NewLRU[int64, model.Principal](size, nil, ttl),
	}
}

// Resolve returns the principal for userID. Unknown and inactive users are unauthorized.
func (r *Resolver) Resolve(ctx context.Context, userID int64) (model.Principal, error) {
	if p, ok := r.cache.Get(userID); ok {
		cacheHits.Inc()
		return p, nil
	}
	cacheMisses.Inc()

	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Principal{}, fmt.Errorf("%w: unknown user", errs.ErrUnauthorized)
		}
		return model.Principal{}, err
	}
	if !u.Active {
		return model.Principal{}, fmt.Errorf("%w: inactive user", errs.ErrUnauthorized)
	}
	p := model.Principal{UserID: u.ID, Role: u.Role}
	r.cache.Add(userID, p)
	return p, nil
}

// Authenticator verifies a token and resolves its principal.
type Authenticator struct {
	Verifier *Verifier
	Resolver *Resolver
}

// Authenticate is the single entry point used by transports.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	id, err := a.Verifier.Subject(token)
	if err != nil {
		return model.Principal{}, err
	}
	return a.Resolver.Resolve(ctx, id)
}
