package postgres

import (
	"context"
	"fmt"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/jackc/pgx/v5"
)

// GrantRepo implements GrantRepository using PostgreSQL.
type GrantRepo struct{ db *DB }

// NewGrantRepo constructs a grant repository.
func NewGrantRepo(db *DB) *GrantRepo { return &GrantRepo{db: db} }

// UpsertBatch relies on the (file_id, user_id, permission_type) unique key,
// so concurrent identical grants converge on one row.
func (r *GrantRepo) UpsertBatch(
	ctx context.Context, fileID, grantedBy int64, granteeIDs []int64, c model.Capability,
) (out []model.Grant, err error) {
	const ups = `
INSERT INTO file_shares (file_id, user_id, permission_type, shared_by)
VALUES ($1, $2, $3, $4)
ON CONFLICT (file_id, user_id, permission_type)
DO UPDATE SET shared_by = EXCLUDED.shared_by, created_at = now()
RETURNING id, created_at`

	out = make([]model.Grant, 0, len(granteeIDs))
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		for i, uid := range granteeIDs {
			g := model.Grant{FileID: fileID, GranteeID: uid, Capability: c, GrantedBy: grantedBy}
			if err := tx.QueryRow(ctx, ups, fileID, uid, string(c), grantedBy).Scan(&g.ID, &g.CreatedAt); err != nil {
				if isForeignKeyViolation(err) {
					return fmt.Errorf("grant[%d] user %d: %w", i, uid, errs.ErrNotFound)
				}
				return err
			}
			out = append(out, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteForGrantee removes all of a grantee's rows on a file.
func (r *GrantRepo) DeleteForGrantee(ctx context.Context, fileID, granteeID int64) (int64, error) {
	const q = `DELETE FROM file_shares WHERE file_id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, fileID, granteeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListByFile returns grants in creation order.
func (r *GrantRepo) ListByFile(ctx context.Context, fileID int64) ([]model.Grant, error) {
	const q = `
SELECT id, file_id, user_id, permission_type, shared_by, created_at
FROM file_shares WHERE file_id=$1
ORDER BY created_at, id`
	rows, err := r.db.Pool.Query(ctx, q, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Grant
	for rows.Next() {
		var (
			g model.Grant
			c string
		)
		if err := rows.Scan(&g.ID, &g.FileID, &g.GranteeID, &c, &g.GrantedBy, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Capability = model.Capability(c)
		out = append(out, g)
	}
	return out, rows.Err()
}

// CapabilitiesFor returns the capabilities a user holds on a file.
func (r *GrantRepo) CapabilitiesFor(ctx context.Context, fileID, userID int64) ([]model.Capability, error) {
	const q = `SELECT permission_type FROM file_shares WHERE file_id=$1 AND user_id=$2`
	rows, err := r.db.Pool.Query(ctx, q, fileID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Capability
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, model.Capability(c))
	}
	return out, rows.Err()
}
