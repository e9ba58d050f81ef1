// Package fanout delivers ephemeral events to live client sessions.
//
// Services publish into a bounded in-memory queue; a dispatcher drains it
// and hands every event to a Sink. The local Registry is the default sink.
// With Redis configured, RedisRelay sits in front of the registry so every
// instance sees every event.
package fanout

import (
	"encoding/json"
	"time"
)

// Kind names the event type seen by clients.
type Kind string

const (
	KindMessageNew      Kind = "message.new"
	KindShareNew        Kind = "share.new"
	KindNotificationNew Kind = "notification.new"
	KindAnnouncement    Kind = "announcement"
)

// TopicAnnouncements is joined by every session.
const TopicAnnouncements = "announcements"

// Target addresses either a set of users or a topic.
type Target struct {
	UserIDs []int64 `json:"user_ids,omitempty" cbor:"user_ids,omitempty"`
	Topic   string  `json:"topic,omitempty" cbor:"topic,omitempty"`
}

// ToUsers targets the sessions of the given users.
func ToUsers(ids ...int64) Target { return Target{UserIDs: ids} }

// ToTopic targets every session subscribed to topic.
func ToTopic(topic string) Target { return Target{Topic: topic} }

// Event is one delivery unit. Payload is JSON so websocket and gRPC
// clients can forward it untouched.
type Event struct {
	ID        string          `json:"id" cbor:"id"`
	Kind      Kind            `json:"kind" cbor:"kind"`
	Target    Target          `json:"-" cbor:"target"`
	Payload   json.RawMessage `json:"payload,omitempty" cbor:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at" cbor:"created_at"`
}
