package postgres

import (
	"context"

	"github.com/and161185/officehub/internal/model"
)

// ActivityRepo implements ActivityRepository using PostgreSQL.
type ActivityRepo struct{ db *DB }

// NewActivityRepo constructs an activity repository.
func NewActivityRepo(db *DB) *ActivityRepo { return &ActivityRepo{db: db} }

// Append inserts one audit row. There are no updates or deletes.
func (r *ActivityRepo) Append(ctx context.Context, e model.ActivityEntry) error {
	const q = `
INSERT INTO activity_logs (user_id, action, entity_type, entity_id, details, ip_address, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var details any
	if len(e.Details) > 0 {
		details = string(e.Details)
	}
	_, err := r.db.Pool.Exec(ctx, q, e.UserID, e.Action, nullString(e.EntityType), nullID(e.EntityID),
		details, nullString(e.IPAddress), nullString(e.UserAgent))
	return err
}

// List returns entries newest first, optionally restricted to one user.
func (r *ActivityRepo) List(ctx context.Context, userID int64, p model.Page) ([]model.ActivityEntry, error) {
	const q = `
SELECT id, user_id, action, COALESCE(entity_type, ''), COALESCE(entity_id, 0),
       COALESCE(details::text, ''), COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
FROM activity_logs
WHERE ($1::bigint = 0 OR user_id = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`
	rows, err := r.db.Pool.Query(ctx, q, userID, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActivityEntry
	for rows.Next() {
		var (
			e       model.ActivityEntry
			details string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID,
			&details, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, err
		}
		if details != "" {
			e.Details = []byte(details)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
