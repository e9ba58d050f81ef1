package fanout

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry indexes live sessions by user and topic and delivers events to them.
type Registry struct {
	mu          sync.RWMutex
	byUser      map[int64]map[string]Session
	byTopic     map[string]map[string]Session
	topicsOf    map[string][]string
	sendTimeout time.Duration
	log         *zap.Logger
}

var _ Sink = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(sendTimeout time.Duration, log *zap.Logger) *Registry {
	if sendTimeout <= 0 {
		sendTimeout = 2 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		byUser:      make(map[int64]map[string]Session),
		byTopic:     make(map[string]map[string]Session),
		topicsOf:    make(map[string][]string),
		sendTimeout: sendTimeout,
		log:         log.Named("registry"),
	}
}

// Add registers a session and subscribes it to topics.
func (r *Registry) Add(s Session, topics ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.topicsOf[s.ID()]; dup {
		return
	}
	m := r.byUser[s.UserID()]
	if m == nil {
		m = make(map[string]Session)
		r.byUser[s.UserID()] = m
	}
	m[s.ID()] = s
	for _, t := range topics {
		tm := r.byTopic[t]
		if tm == nil {
			tm = make(map[string]Session)
			r.byTopic[t] = tm
		}
		tm[s.ID()] = s
	}
	r.topicsOf[s.ID()] = topics
	activeSessions.Inc()
}

// Remove unregisters a session. Unknown sessions are ignored.
func (r *Registry) Remove(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	topics, ok := r.topicsOf[s.ID()]
	if !ok {
		return
	}
	delete(r.topicsOf, s.ID())
	if m := r.byUser[s.UserID()]; m != nil {
		delete(m, s.ID())
		if len(m) == 0 {
			delete(r.byUser, s.UserID())
		}
	}
	for _, t := range topics {
		if tm := r.byTopic[t]; tm != nil {
			delete(tm, s.ID())
			if len(tm) == 0 {
				delete(r.byTopic, t)
			}
		}
	}
	activeSessions.Dec()
}

// SessionsFor returns a snapshot of a user's sessions.
func (r *Registry) SessionsFor(userID int64) []Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collect(r.byUser[userID])
}

// SessionsForTopic returns a snapshot of a topic's subscribers.
func (r *Registry) SessionsForTopic(topic string) []Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return collect(r.byTopic[topic])
}

func collect(m map[string]Session) []Session {
	out := make([]Session, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	return out
}

// Deliver sends e to every targeted session. Per-session failures are
// logged and counted; the event still reaches the other sessions.
func (r *Registry) Deliver(ctx context.Context, e Event) error {
	var targets []Session
	if e.Target.Topic != "" {
		targets = r.SessionsForTopic(e.Target.Topic)
	}
	for _, uid := range e.Target.UserIDs {
		targets = append(targets, r.SessionsFor(uid)...)
	}

	for _, s := range targets {
		sctx, cancel := context.WithTimeout(ctx, r.sendTimeout)
		err := s.Send(sctx, e)
		cancel()
		switch {
		case err == nil:
			deliveries.Inc()
		case errors.Is(err, ErrSessionFull):
			eventsDropped.WithLabelValues(dropSessionFull).Inc()
			r.log.Warn("session outbox full", zap.String("session", s.ID()), zap.Int64("user", s.UserID()), zap.String("kind", string(e.Kind)))
		default:
			eventsDropped.WithLabelValues(dropSendError).Inc()
			r.log.Debug("session send failed", zap.String("session", s.ID()), zap.Error(err))
		}
	}
	return nil
}
