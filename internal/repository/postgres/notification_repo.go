package postgres

import (
	"context"
	"fmt"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/jackc/pgx/v5"
)

// NotificationRepo implements NotificationRepository using PostgreSQL.
type NotificationRepo struct{ db *DB }

// NewNotificationRepo constructs a notification repository.
func NewNotificationRepo(db *DB) *NotificationRepo { return &NotificationRepo{db: db} }

const notificationColumns = `id, user_id, title, message, notification_type, COALESCE(related_entity_type, ''), COALESCE(related_entity_id, 0), is_read, created_at`

func scanNotification(row scanner) (*model.Notification, error) {
	var (
		n   model.Notification
		sev string
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &sev, &n.RelatedType, &n.RelatedID, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Severity = model.Severity(sev)
	return &n, nil
}

// CreateBatch inserts every row in one transaction.
func (r *NotificationRepo) CreateBatch(ctx context.Context, ns []model.Notification) ([]model.Notification, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	const ins = `
INSERT INTO notifications (user_id, title, message, notification_type, related_entity_type, related_entity_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

	out := make([]model.Notification, 0, len(ns))
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		for i, n := range ns {
			err := tx.QueryRow(ctx, ins, n.UserID, n.Title, n.Body, string(n.Severity),
				nullString(n.RelatedType), nullID(n.RelatedID)).Scan(&n.ID, &n.CreatedAt)
			if err != nil {
				if isForeignKeyViolation(err) {
					return fmt.Errorf("notification[%d] user %d: %w", i, n.UserID, errs.ErrNotFound)
				}
				return err
			}
			out = append(out, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns notifications newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64, unreadOnly bool, p model.Page) ([]model.Notification, error) {
	const q = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1 AND ($2::boolean = false OR is_read = false)
ORDER BY created_at DESC, id DESC
LIMIT $3 OFFSET $4`
	return r.list(ctx, q, userID, unreadOnly, p.Limit, p.Offset)
}

// FindUnreadByUser returns all unread notifications of a user.
func (r *NotificationRepo) FindUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const q = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1 AND is_read = false
ORDER BY created_at DESC, id DESC`
	return r.list(ctx, q, userID)
}

func (r *NotificationRepo) list(ctx context.Context, q string, args ...any) ([]model.Notification, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// CountUnread counts unread notifications.
func (r *NotificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	const q = `SELECT count(*) FROM notifications WHERE user_id=$1 AND is_read = false`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// MarkRead updates only rows owned by userID.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	const q = `UPDATE notifications SET is_read = true WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// OwnerOf returns the recipient of a notification.
func (r *NotificationRepo) OwnerOf(ctx context.Context, id int64) (int64, error) {
	const q = `SELECT user_id FROM notifications WHERE id=$1`
	var uid int64
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&uid); err != nil {
		return 0, notFound(err)
	}
	return uid, nil
}

// MarkAllRead marks every unread notification of a user as read.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	const q = `UPDATE notifications SET is_read = true WHERE user_id=$1 AND is_read = false`
	tag, err := r.db.Pool.Exec(ctx, q, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
