package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/and161185/officehub/internal/errs"
)

// MessageKind is the persisted discriminator of an audience.
type MessageKind string

const (
	KindDirect       MessageKind = "DIRECT"
	KindDepartment   MessageKind = "DEPARTMENT"
	KindAnnouncement MessageKind = "ANNOUNCEMENT"
)

// Audience is the recipient set of a message. Implemented only by
// Direct, DepartmentAudience and Announcement.
type Audience interface {
	Kind() MessageKind
	audience()
}

// Direct addresses a single user.
type Direct struct{ RecipientID int64 }

// DepartmentAudience addresses the members of a department at send time.
type DepartmentAudience struct{ DepartmentID int64 }

// Announcement addresses all active users.
type Announcement struct{}

func (Direct) Kind() MessageKind             { return KindDirect }
func (DepartmentAudience) Kind() MessageKind { return KindDepartment }
func (Announcement) Kind() MessageKind       { return KindAnnouncement }

func (Direct) audience()             {}
func (DepartmentAudience) audience() {}
func (Announcement) audience()       {}

// ParseAudience builds an audience from its wire form. Ids of zero mean absent.
func ParseAudience(kind string, recipientID, departmentID int64) (Audience, error) {
	switch MessageKind(strings.ToUpper(strings.TrimSpace(kind))) {
	case KindDirect:
		if recipientID == 0 {
			return nil, fmt.Errorf("recipient id is required for direct messages: %w", errs.ErrMissingField)
		}
		return Direct{RecipientID: recipientID}, nil
	case KindDepartment:
		if departmentID == 0 {
			return nil, fmt.Errorf("department id is required for department messages: %w", errs.ErrMissingField)
		}
		return DepartmentAudience{DepartmentID: departmentID}, nil
	case KindAnnouncement:
		return Announcement{}, nil
	default:
		return nil, fmt.Errorf("message type %q: %w", kind, errs.ErrInvalidArgument)
	}
}

// Message is a persisted internal message.
type Message struct {
	ID        int64
	SenderID  int64
	Audience  Audience
	Subject   string
	Content   string
	Read      bool
	CreatedAt time.Time
}

// RecipientID returns the direct recipient, or 0 for other audiences.
func (m Message) RecipientID() int64 {
	if d, ok := m.Audience.(Direct); ok {
		return d.RecipientID
	}
	return 0
}

// DepartmentID returns the addressed department, or 0 for other audiences.
func (m Message) DepartmentID() int64 {
	if d, ok := m.Audience.(DepartmentAudience); ok {
		return d.DepartmentID
	}
	return 0
}
