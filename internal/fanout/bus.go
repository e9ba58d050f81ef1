package fanout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Sink receives events drained from the bus.
type Sink interface {
	Deliver(ctx context.Context, e Event) error
}

// Bus is a bounded outbox with a single dispatcher.
type Bus struct {
	queue chan Event
	sink  Sink
	log   *zap.Logger
	now   func() time.Time
}

// NewBus creates a bus holding at most size pending events.
func NewBus(size int, sink Sink, log *zap.Logger) *Bus {
	if size <= 0 {
		size = 1024
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Bus{
		queue: make(chan Event, size),
		sink:  sink,
		log:   log.Named("fanout"),
		now:   time.Now,
	}
}

// Publish enqueues an event and never blocks. A full queue drops the event.
func (b *Bus) Publish(target Target, kind Kind, payload any) {
	e := Event{Kind: kind, Target: target, CreatedAt: b.now().UTC()}
	if id, err := uuid.NewV4(); err == nil {
		e.ID = id.String()
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			eventsDropped.WithLabelValues(dropEncode).Inc()
			b.log.Warn("encode event payload", zap.String("kind", string(kind)), zap.Error(err))
			return
		}
		e.Payload = raw
	}

	select {
	case b.queue <- e:
		eventsPublished.WithLabelValues(string(kind)).Inc()
	default:
		eventsDropped.WithLabelValues(dropQueueFull).Inc()
		b.log.Warn("fan-out queue full, event dropped",
			zap.String("kind", string(kind)),
			zap.Int64s("users", target.UserIDs),
			zap.String("topic", target.Topic))
	}
}

// Pending reports the number of queued events.
func (b *Bus) Pending() int { return len(b.queue) }

// Run dispatches queued events in order until ctx is done.
func (b *Bus) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-b.queue:
			if err := b.sink.Deliver(ctx, e); err != nil {
				eventsDropped.WithLabelValues(dropSendError).Inc()
				b.log.Warn("deliver event", zap.String("id", e.ID), zap.String("kind", string(e.Kind)), zap.Error(err))
			}
		}
	}
}
