package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/jackc/pgx/v5"
)

// FileRepo implements FileRepository using PostgreSQL.
type FileRepo struct{ db *DB }

// NewFileRepo constructs a file repository.
func NewFileRepo(db *DB) *FileRepo { return &FileRepo{db: db} }

const fileColumns = `id, filename, original_filename, content_handle, checksum, file_size, mime_type, folder_path, owner_id, is_public, created_at, updated_at`

func scanFile(row scanner) (*model.File, error) {
	var f model.File
	err := row.Scan(&f.ID, &f.Filename, &f.OriginalName, &f.Handle, &f.Checksum, &f.Size,
		&f.MimeType, &f.FolderPath, &f.OwnerID, &f.Public, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

// Create inserts file metadata.
func (r *FileRepo) Create(ctx context.Context, f *model.File) error {
	const q = `
INSERT INTO files (filename, original_filename, content_handle, checksum, file_size, mime_type, folder_path, owner_id, is_public)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`
	err := r.db.Pool.QueryRow(ctx, q, f.Filename, f.OriginalName, f.Handle, f.Checksum, f.Size,
		f.MimeType, f.FolderPath, f.OwnerID, f.Public).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// GetByID selects a file by ID.
func (r *FileRepo) GetByID(ctx context.Context, id int64) (*model.File, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id=$1`
	f, err := scanFile(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

// TogglePublic flips is_public in a single statement.
func (r *FileRepo) TogglePublic(ctx context.Context, id int64) (*model.File, error) {
	const q = `UPDATE files SET is_public = NOT is_public, updated_at = now() WHERE id=$1 RETURNING ` + fileColumns
	f, err := scanFile(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

// Delete removes grants and the file row in one transaction.
func (r *FileRepo) Delete(ctx context.Context, id int64) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM file_shares WHERE file_id=$1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM files WHERE id=$1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string { return likeEscaper.Replace(s) }

// ListAccessible returns owned, public and shared files, newest first.
// Search matches a substring of the original name literally.
func (r *FileRepo) ListAccessible(ctx context.Context, userID int64, fq model.FileQuery) ([]model.File, error) {
	const q = `
SELECT ` + fileColumns + `
FROM files f
WHERE (f.owner_id = $1 OR f.is_public
       OR EXISTS (SELECT 1 FROM file_shares s WHERE s.file_id = f.id AND s.user_id = $1))
  AND ($2 = '' OR f.folder_path = $2)
  AND ($3 = '' OR f.original_filename ILIKE '%' || $3 || '%' ESCAPE '\')
ORDER BY f.created_at DESC, f.id DESC
LIMIT $4 OFFSET $5`
	rows, err := r.db.Pool.Query(ctx, q, userID, fq.Folder, escapeLike(fq.Search), fq.Page.Limit, fq.Page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

// FoldersOf returns distinct folder paths owned by a user.
func (r *FileRepo) FoldersOf(ctx context.Context, ownerID int64) ([]string, error) {
	const q = `SELECT DISTINCT folder_path FROM files WHERE owner_id=$1 ORDER BY folder_path`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
