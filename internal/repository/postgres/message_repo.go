package postgres

import (
	"context"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
)

// MessageRepo implements MessageRepository using PostgreSQL.
type MessageRepo struct{ db *DB }

// NewMessageRepo constructs a message repository.
func NewMessageRepo(db *DB) *MessageRepo { return &MessageRepo{db: db} }

const messageColumns = `id, sender_id, COALESCE(recipient_id, 0), COALESCE(department_id, 0), message_type, COALESCE(subject, ''), content, is_read, created_at`

func scanMessage(row scanner) (*model.Message, error) {
	var (
		m                 model.Message
		recipient, deptID int64
		kind              string
	)
	if err := row.Scan(&m.ID, &m.SenderID, &recipient, &deptID, &kind, &m.Subject, &m.Content, &m.Read, &m.CreatedAt); err != nil {
		return nil, err
	}
	a, err := model.ParseAudience(kind, recipient, deptID)
	if err != nil {
		return nil, err
	}
	m.Audience = a
	return &m, nil
}

// Create inserts a message row.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
	const q = `
INSERT INTO messages (sender_id, recipient_id, department_id, message_type, subject, content)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`
	err := r.db.Pool.QueryRow(ctx, q, m.SenderID, nullID(m.RecipientID()), nullID(m.DepartmentID()),
		string(m.Audience.Kind()), nullString(m.Subject), m.Content).Scan(&m.ID, &m.CreatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// GetByID selects a message by ID.
func (r *MessageRepo) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	const q = `SELECT ` + messageColumns + ` FROM messages WHERE id=$1`
	m, err := scanMessage(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

// ListDirect returns direct messages where the user is sender or recipient.
func (r *MessageRepo) ListDirect(ctx context.Context, userID int64, p model.Page) ([]model.Message, error) {
	const q = `
SELECT ` + messageColumns + `
FROM messages
WHERE message_type = 'DIRECT' AND (sender_id = $1 OR recipient_id = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`
	return r.list(ctx, q, userID, p.Limit, p.Offset)
}

// ListByDepartments returns messages addressed to any of the departments.
func (r *MessageRepo) ListByDepartments(ctx context.Context, departmentIDs []int64, p model.Page) ([]model.Message, error) {
	if len(departmentIDs) == 0 {
		return nil, nil
	}
	const q = `
SELECT ` + messageColumns + `
FROM messages
WHERE message_type = 'DEPARTMENT' AND department_id = ANY($1)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`
	return r.list(ctx, q, departmentIDs, p.Limit, p.Offset)
}

// ListAnnouncements returns announcements.
func (r *MessageRepo) ListAnnouncements(ctx context.Context, p model.Page) ([]model.Message, error) {
	const q = `
SELECT ` + messageColumns + `
FROM messages
WHERE message_type = 'ANNOUNCEMENT'
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	return r.list(ctx, q, p.Limit, p.Offset)
}

func (r *MessageRepo) list(ctx context.Context, q string, args ...any) ([]model.Message, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// MarkRead sets is_read on a message.
func (r *MessageRepo) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE messages SET is_read = true WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// CountUnreadDirect counts unread direct messages for a recipient.
func (r *MessageRepo) CountUnreadDirect(ctx context.Context, userID int64) (int64, error) {
	const q = `SELECT count(*) FROM messages WHERE message_type = 'DIRECT' AND recipient_id=$1 AND NOT is_read`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
