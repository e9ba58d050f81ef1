package service

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNotify_OfflineUserStillHasPersistedNotification(t *testing.T) {
	db := newMemDB()
	log := zaptest.NewLogger(t)
	reg := fanout.NewRegistry(time.Second, log)
	bus := fanout.NewBus(8, reg, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bus.Run(ctx) }()

	svc := NewNotificationService(memNotes{db}, bus)
	saved, err := svc.NotifyMany(ctx, []model.Notification{{UserID: bob, Title: "File Shared", Body: "x"}}, "", nil)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.Equal(t, model.SeverityInfo, saved[0].Severity)
	require.Empty(t, reg.SessionsFor(bob))

	unread, err := svc.Unread(ctx, employee(bob))
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, saved[0].ID, unread[0].ID)
}

func TestNotify_OneEventPerRow(t *testing.T) {
	fx := newFixture(t)
	ns := []model.Notification{{UserID: bob, Title: "a"}, {UserID: carol, Title: "b"}, {UserID: bob, Title: "c"}}

	saved, err := fx.notes.NotifyMany(context.Background(), ns, "", nil)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	require.Equal(t, 3, fx.bus.count(fanout.KindNotificationNew))
	_, ok := fx.bus.events[0].Payload.(notificationEvent)
	require.True(t, ok)

	none, err := fx.notes.NotifyMany(context.Background(), nil, "", nil)
	require.NoError(t, err)
	require.Nil(t, none)
	require.Len(t, fx.bus.events, 3)
}

func TestNotificationMarkRead_DistinguishesMissingFromForeign(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	saved, err := fx.notes.NotifyMany(ctx, []model.Notification{{UserID: bob, Title: "a"}}, "", nil)
	require.NoError(t, err)
	id := saved[0].ID

	require.ErrorIs(t, fx.notes.MarkRead(ctx, employee(carol), id), errs.ErrPermissionDenied)
	require.ErrorIs(t, fx.notes.MarkRead(ctx, employee(bob), 4242), errs.ErrNotFound)
	require.NoError(t, fx.notes.MarkRead(ctx, employee(bob), id))

	n, err := fx.notes.UnreadCount(ctx, employee(bob))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestNotificationMarkAllRead(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	_, err := fx.notes.NotifyMany(ctx, []model.Notification{
		{UserID: bob, Title: "a"}, {UserID: bob, Title: "b"}, {UserID: carol, Title: "c"},
	}, "", nil)
	require.NoError(t, err)

	n, err := fx.notes.MarkAllRead(ctx, employee(bob))
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	all, err := fx.notes.List(ctx, employee(bob), false, model.Page{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	unread, err := fx.notes.List(ctx, employee(bob), true, model.Page{})
	require.NoError(t, err)
	require.Empty(t, unread)

	c, err := fx.notes.UnreadCount(ctx, employee(carol))
	require.NoError(t, err)
	require.Equal(t, int64(1), c)
}
