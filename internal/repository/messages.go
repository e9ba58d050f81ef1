package repository

import (
	"context"

	"github.com/and161185/officehub/internal/model"
)

// MessageRepository persists messages.
type MessageRepository interface {
	// Create inserts a message and fills ID and CreatedAt.
	Create(ctx context.Context, m *model.Message) error
	// GetByID loads a message by ID.
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	// ListDirect returns direct messages sent or received by userID, newest first.
	ListDirect(ctx context.Context, userID int64, p model.Page) ([]model.Message, error)
	// ListByDepartments returns department messages addressed to any of departmentIDs.
	ListByDepartments(ctx context.Context, departmentIDs []int64, p model.Page) ([]model.Message, error)
	// ListAnnouncements returns announcements, newest first.
	ListAnnouncements(ctx context.Context, p model.Page) ([]model.Message, error)
	// MarkRead sets the read flag.
	MarkRead(ctx context.Context, id int64) error
	// CountUnreadDirect counts unread direct messages addressed to userID.
	CountUnreadDirect(ctx context.Context, userID int64) (int64, error)
}

// NotificationRepository persists per-recipient notifications.
type NotificationRepository interface {
	// CreateBatch inserts all rows in one transaction and returns them with IDs.
	CreateBatch(ctx context.Context, ns []model.Notification) ([]model.Notification, error)
	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, p model.Page) ([]model.Notification, error)
	// FindUnreadByUser returns every unread notification of a user.
	FindUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	// CountUnread counts unread notifications of a user.
	CountUnread(ctx context.Context, userID int64) (int64, error)
	// MarkRead marks one notification read if it belongs to userID.
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
	// OwnerOf returns the recipient of a notification.
	OwnerOf(ctx context.Context, id int64) (int64, error)
	// MarkAllRead marks all of a user's notifications read.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

// ActivityRepository is the append-only audit trail.
type ActivityRepository interface {
	// Append stores one entry.
	Append(ctx context.Context, e model.ActivityEntry) error
	// List returns entries newest first; userID 0 means all users.
	List(ctx context.Context, userID int64, p model.Page) ([]model.ActivityEntry, error)
}
