package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeActivity struct {
	rows []model.ActivityEntry
	err  error
	ctxs []context.Context
}

var _ repository.ActivityRepository = (*fakeActivity)(nil)

func (f *fakeActivity) Append(ctx context.Context, e model.ActivityEntry) error {
	f.ctxs = append(f.ctxs, ctx)
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, e)
	return nil
}

func (f *fakeActivity) List(context.Context, int64, model.Page) ([]model.ActivityEntry, error) {
	return f.rows, nil
}

func TestRecord_CarriesOriginAndDetails(t *testing.T) {
	repo := &fakeActivity{}
	r := NewRecorder(repo, zaptest.NewLogger(t))
	ctx := WithOrigin(context.Background(), Origin{IP: "10.1.2.3", UserAgent: "officehub-cli"})

	r.Record(ctx, Entry{UserID: 1, Action: ActionFileShare, EntityType: model.EntityFile, EntityID: 10,
		Details: map[string]any{"grantees": []int64{2, 3}, "permission": "VIEW"}})

	require.Len(t, repo.rows, 1)
	got := repo.rows[0]
	require.Equal(t, "FILE_SHARE", got.Action)
	require.Equal(t, "10.1.2.3", got.IPAddress)
	require.Equal(t, "officehub-cli", got.UserAgent)
	require.JSONEq(t, `{"grantees":[2,3],"permission":"VIEW"}`, string(got.Details))
}

func TestRecord_SwallowsFailures(t *testing.T) {
	repo := &fakeActivity{err: errors.New("db down")}
	r := NewRecorder(repo, zaptest.NewLogger(t))

	require.NotPanics(t, func() {
		r.Record(context.Background(), Entry{UserID: 1, Action: ActionFileDelete})
	})
}

func TestRecord_SurvivesCanceledRequest(t *testing.T) {
	repo := &fakeActivity{}
	r := NewRecorder(repo, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.Record(ctx, Entry{UserID: 1, Action: ActionMessageSend})
	require.Len(t, repo.rows, 1)
	require.NoError(t, repo.ctxs[0].Err())
	require.Nil(t, repo.rows[0].Details)
}

func TestOriginFrom_Empty(t *testing.T) {
	require.Equal(t, Origin{}, OriginFrom(context.Background()))
}
