package service

import (
	"context"
	"time"

	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
)

// Publisher enqueues delivery events. Implementations must not block.
type Publisher interface {
	Publish(target fanout.Target, kind fanout.Kind, payload any)
}

// Auditor appends activity entries. Implementations must not fail the caller.
type Auditor interface {
	Record(ctx context.Context, e audit.Entry)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type notificationPayload struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Severity    string    `json:"severity"`
	RelatedType string    `json:"related_type,omitempty"`
	RelatedID   int64     `json:"related_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func notificationView(n model.Notification) notificationPayload {
	return notificationPayload{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Severity:    string(n.Severity),
		RelatedType: n.RelatedType,
		RelatedID:   n.RelatedID,
		CreatedAt:   n.CreatedAt,
	}
}

type messagePayload struct {
	ID           int64     `json:"id"`
	SenderID     int64     `json:"sender_id"`
	Type         string    `json:"type"`
	RecipientID  int64     `json:"recipient_id,omitempty"`
	DepartmentID int64     `json:"department_id,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func messageView(m model.Message) messagePayload {
	return messagePayload{
		ID:           m.ID,
		SenderID:     m.SenderID,
		Type:         string(m.Audience.Kind()),
		RecipientID:  m.RecipientID(),
		DepartmentID: m.DepartmentID(),
		Subject:      m.Subject,
		CreatedAt:    m.CreatedAt,
	}
}

type messageEvent struct {
	Notification notificationPayload `json:"notification"`
	Message      messagePayload      `json:"message"`
}

type shareEvent struct {
	Notification notificationPayload `json:"notification"`
	FileID       int64               `json:"file_id"`
	FileName     string              `json:"file_name"`
	Capability   string              `json:"capability"`
	GrantedBy    int64               `json:"granted_by"`
}

type notificationEvent struct {
	Notification notificationPayload `json:"notification"`
}
