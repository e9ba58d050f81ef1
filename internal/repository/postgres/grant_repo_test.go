package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

var upsertGrantSQL = regexp.QuoteMeta(`INSERT INTO file_shares (file_id, user_id, permission_type, shared_by) VALUES ($1, $2, $3, $4) ON CONFLICT (file_id, user_id, permission_type) DO UPDATE SET shared_by = EXCLUDED.shared_by, created_at = now() RETURNING id, created_at`)

func TestGrantRepo_UpsertBatch_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGrantRepo(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(upsertGrantSQL).
		WithArgs(int64(10), int64(2), "VIEW", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), now))
	mock.ExpectQuery(upsertGrantSQL).
		WithArgs(int64(10), int64(3), "VIEW", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(101), now))
	mock.ExpectCommit()

	out, err := r.UpsertBatch(ctx, 10, 1, []int64{2, 3}, model.CapView)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(100), out[0].ID)
	require.Equal(t, int64(3), out[1].GranteeID)
	require.Equal(t, model.CapView, out[1].Capability)
	require.Equal(t, int64(1), out[1].GrantedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantRepo_UpsertBatch_MissingGranteeRollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGrantRepo(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(upsertGrantSQL).
		WithArgs(int64(10), int64(2), "EDIT", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), time.Now()))
	mock.ExpectQuery(upsertGrantSQL).
		WithArgs(int64(10), int64(99), "EDIT", int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	out, err := r.UpsertBatch(ctx, 10, 1, []int64{2, 99}, model.CapEdit)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Nil(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantRepo_DeleteForGrantee(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGrantRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM file_shares WHERE file_id=$1 AND user_id=$2`)).
		WithArgs(int64(10), int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := r.DeleteForGrantee(context.Background(), 10, 2)
	require.NoError(t, err)
	require.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantRepo_ListAndCapabilities(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGrantRepo(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, file_id, user_id, permission_type, shared_by, created_at FROM file_shares WHERE file_id=$1`)).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "file_id", "user_id", "permission_type", "shared_by", "created_at"}).
			AddRow(int64(1), int64(10), int64(2), "VIEW", int64(1), now).
			AddRow(int64(2), int64(10), int64(2), "DOWNLOAD", int64(1), now))
	gs, err := r.ListByFile(ctx, 10)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	require.Equal(t, model.CapDownload, gs[1].Capability)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT permission_type FROM file_shares WHERE file_id=$1 AND user_id=$2`)).
		WithArgs(int64(10), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"permission_type"}).AddRow("EDIT"))
	caps, err := r.CapabilitiesFor(ctx, 10, 2)
	require.NoError(t, err)
	require.Equal(t, []model.Capability{model.CapEdit}, caps)
	require.NoError(t, mock.ExpectationsWereMet())
}
