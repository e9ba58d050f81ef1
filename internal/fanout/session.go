package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/uuid/v5"
)

var (
	// ErrSessionFull is returned when a session outbox has no room.
	ErrSessionFull = errors.New("session outbox full")
	// ErrSessionClosed is returned after the session has gone away.
	ErrSessionClosed = errors.New("session closed")
)

// Session is one live client connection.
type Session interface {
	ID() string
	UserID() int64
	Send(ctx context.Context, e Event) error
}

// Outbox is a Session backed by a bounded queue. The transport runs a
// writer goroutine that drains Events until Done is closed.
type Outbox struct {
	id     string
	userID int64
	ch     chan Event
	done   chan struct{}
	once   sync.Once
}

var _ Session = (*Outbox)(nil)

var newSessionID = uuid.NewV4

// NewOutbox creates a session queue for a user.
func NewOutbox(userID int64, size int) (*Outbox, error) {
	if size <= 0 {
		size = 64
	}
	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	return &Outbox{
		id:     id.String(),
		userID: userID,
		ch:     make(chan Event, size),
		done:   make(chan struct{}),
	}, nil
}

func (o *Outbox) ID() string    { return o.id }
func (o *Outbox) UserID() int64 { return o.userID }

// Send enqueues without waiting for the writer.
func (o *Outbox) Send(ctx context.Context, e Event) error {
	select {
	case <-o.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case o.ch <- e:
		return nil
	default:
		return ErrSessionFull
	}
}

// Events is drained by the transport writer.
func (o *Outbox) Events() <-chan Event { return o.ch }

// Done is closed by Close.
func (o *Outbox) Done() <-chan struct{} { return o.done }

// Close marks the session gone. Safe to call more than once.
func (o *Outbox) Close() { o.once.Do(func() { close(o.done) }) }
