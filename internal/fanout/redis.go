package fanout

import (
	"context"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisRelay publishes events to a Redis channel and delivers what it hears
// on that channel into a local sink. Every instance, including the
// publisher, receives each event exactly once through Listen.
type RedisRelay struct {
	rdb     *redis.Client
	channel string
	local   Sink
	log     *zap.Logger
}

var _ Sink = (*RedisRelay)(nil)

// NewRedisRelay wires a relay between rdb and local.
func NewRedisRelay(rdb *redis.Client, channel string, local Sink, log *zap.Logger) *RedisRelay {
	if channel == "" {
		channel = "officehub:events"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisRelay{rdb: rdb, channel: channel, local: local, log: log.Named("relay")}
}

// Deliver publishes e for every instance.
func (r *RedisRelay) Deliver(ctx context.Context, e Event) error {
	b, err := encodeEvent(e)
	if err != nil {
		return err
	}
	return r.rdb.Publish(ctx, r.channel, b).Err()
}

// Listen subscribes to the channel and forwards events until ctx is done.
func (r *RedisRelay) Listen(ctx context.Context) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(ctx, []byte(m.Payload))
		}
	}
}

func (r *RedisRelay) handle(ctx context.Context, raw []byte) {
	e, err := decodeEvent(raw)
	if err != nil {
		eventsDropped.WithLabelValues(dropEncode).Inc()
		r.log.Warn("decode relayed event", zap.Error(err))
		return
	}
	if err := r.local.Deliver(ctx, e); err != nil {
		r.log.Warn("deliver relayed event", zap.String("id", e.ID), zap.Error(err))
	}
}

// relayEnc writes timestamps as RFC 3339 with nanoseconds.
var relayEnc, relayDec = func() (cbor.EncMode, cbor.DecMode) {
	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	enc, err := opts.EncMode()
	if err != nil {
		panic("fanout: cbor encoder: " + err.Error())
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("fanout: cbor decoder: " + err.Error())
	}
	return enc, dec
}()

func encodeEvent(e Event) ([]byte, error) { return relayEnc.Marshal(e) }

func decodeEvent(b []byte) (Event, error) {
	var e Event
	err := relayDec.Unmarshal(b, &e)
	return e, err
}
