package model

import "time"

// Severity grades a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeveritySuccess Severity = "SUCCESS"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// Related entity types referenced by notifications and activity entries.
const (
	EntityFile    = "FILE"
	EntityMessage = "MESSAGE"
)

// Notification is a per-recipient record derived from a share or a message.
type Notification struct {
	ID          int64
	UserID      int64
	Title       string
	Body        string
	Severity    Severity
	RelatedType string
	RelatedID   int64
	Read        bool
	CreatedAt   time.Time
}

// ActivityEntry is one append-only audit record.
type ActivityEntry struct {
	ID         int64
	UserID     int64
	Action     string
	EntityType string
	EntityID   int64
	Details    []byte // JSON object or nil
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}
