package service

import (
	"context"
	"testing"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/stretchr/testify/require"
)

func TestShare_OwnerToViewerScenario(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob}, "VIEW")
	require.NoError(t, err)

	for capability, want := range map[string]bool{"VIEW": true, "DOWNLOAD": false, "EDIT": false} {
		ok, err := fx.shares.CheckAccess(ctx, employee(bob), f.ID, capability)
		require.NoError(t, err)
		require.Equal(t, want, ok, capability)
	}

	_, err = fx.shares.Grant(ctx, employee(bob), f.ID, []int64{carol}, "VIEW")
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	require.Len(t, fx.grantRows(f.ID), 1)
	require.Contains(t, fx.actions(), "FILE_SHARE_DENIED")
}

func TestShare_OwnerHoldsEverything(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	for _, c := range []string{"VIEW", "EDIT", "DOWNLOAD"} {
		ok, err := fx.shares.CheckAccess(ctx, employee(alice), f.ID, c)
		require.NoError(t, err)
		require.True(t, ok, c)
	}
	require.Zero(t, fx.db.capLookups)
}

func TestShare_PublicFileGrantsViewAndDownloadOnly(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "handbook.pdf", true)

	ok, err := fx.shares.CheckAccess(ctx, employee(carol), f.ID, "view")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = fx.shares.CheckAccess(ctx, employee(carol), f.ID, "DOWNLOAD")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = fx.shares.CheckAccess(ctx, employee(carol), f.ID, "EDIT")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = fx.shares.Grant(ctx, employee(alice), f.ID, []int64{carol}, "EDIT")
	require.NoError(t, err)
	ok, err = fx.shares.CheckAccess(ctx, employee(carol), f.ID, "EDIT")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestShare_CheckAccessErrors(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	_, err := fx.shares.CheckAccess(ctx, employee(bob), f.ID, "ADMIN")
	require.ErrorIs(t, err, errs.ErrInvalidCapability)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = fx.shares.CheckAccess(ctx, employee(bob), 9999, "VIEW")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NotErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestShare_RegrantReplacesGranterAndTime(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob}, "EDIT")
	require.NoError(t, err)
	first := fx.grantRows(f.ID)[0]

	// bob holds EDIT, so he may re-share the same capability to himself.
	_, err = fx.shares.Grant(ctx, employee(bob), f.ID, []int64{bob}, "EDIT")
	require.NoError(t, err)

	rows := fx.grantRows(f.ID)
	require.Len(t, rows, 1)
	require.Equal(t, bob, rows[0].GrantedBy)
	require.True(t, rows[0].CreatedAt.After(first.CreatedAt))
}

func TestShare_EditHolderMayGrant(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob}, "EDIT")
	require.NoError(t, err)
	out, err := fx.shares.Grant(ctx, employee(bob), f.ID, []int64{carol}, "DOWNLOAD")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, bob, out[0].GrantedBy)
}

func TestShare_ListAndRevokeAreOwnerOnlyEvenForEditHolders(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)
	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob, carol}, "EDIT")
	require.NoError(t, err)

	_, err = fx.shares.ListGrants(ctx, employee(bob), f.ID)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	err = fx.shares.Revoke(ctx, employee(bob), f.ID, carol)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	require.Len(t, fx.grantRows(f.ID), 2)

	gs, err := fx.shares.ListGrants(ctx, employee(alice), f.ID)
	require.NoError(t, err)
	require.Len(t, gs, 2)
}

func TestShare_BatchIsAllOrNothing(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob, 4242}, "VIEW")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Empty(t, fx.grantRows(f.ID))
	require.Empty(t, fx.notesFor(bob))
	require.Zero(t, fx.bus.count(fanout.KindShareNew))
}

func TestShare_ValidationBeforeLookup(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.shares.Grant(ctx, employee(alice), 9999, []int64{bob}, "OWN")
	require.ErrorIs(t, err, errs.ErrInvalidCapability)

	_, err = fx.shares.Grant(ctx, employee(alice), 9999, nil, "VIEW")
	require.ErrorIs(t, err, errs.ErrMissingField)

	_, err = fx.shares.Grant(ctx, employee(alice), 9999, []int64{0}, "VIEW")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = fx.shares.Grant(ctx, employee(alice), 9999, []int64{bob}, "VIEW")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestShare_NotifiesEachGranteeOnce(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)

	out, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob, carol, bob}, "DOWNLOAD")
	require.NoError(t, err)
	require.Len(t, out, 2)

	for _, uid := range []int64{bob, carol} {
		ns := fx.notesFor(uid)
		require.Len(t, ns, 1)
		require.Equal(t, "File Shared", ns[0].Title)
		require.Equal(t, "Alice shared a file 'plan.pdf' with you", ns[0].Body)
		require.Equal(t, model.EntityFile, ns[0].RelatedType)
		require.Equal(t, f.ID, ns[0].RelatedID)
	}
	require.Empty(t, fx.notesFor(alice))
	require.Equal(t, 2, fx.bus.count(fanout.KindShareNew))

	ev := fx.bus.events[0]
	require.Equal(t, []int64{bob}, ev.Target.UserIDs)
	payload, ok := ev.Payload.(shareEvent)
	require.True(t, ok)
	require.Equal(t, "DOWNLOAD", payload.Capability)
	require.Contains(t, fx.actions(), "FILE_SHARE")
}

func TestShare_NotificationFailureKeepsGrants(t *testing.T) {
	fx := newFixture(t)
	fx.db.notesErr = errBoom
	f := fx.putFile(alice, "plan.pdf", false)

	out, err := fx.shares.Grant(context.Background(), employee(alice), f.ID, []int64{bob}, "VIEW")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Zero(t, fx.bus.count(fanout.KindShareNew))
}

func TestShare_RevokeMissingGrantIsNoop(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)
	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{carol}, "VIEW")
	require.NoError(t, err)

	require.NoError(t, fx.shares.Revoke(ctx, employee(alice), f.ID, bob))
	require.Len(t, fx.grantRows(f.ID), 1)
}

func TestShare_RevokeRemovesEveryCapability(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	f := fx.putFile(alice, "plan.pdf", false)
	_, err := fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob}, "EDIT")
	require.NoError(t, err)
	_, err = fx.shares.Grant(ctx, employee(alice), f.ID, []int64{bob}, "DOWNLOAD")
	require.NoError(t, err)
	require.Len(t, fx.grantRows(f.ID), 2)

	require.NoError(t, fx.shares.Revoke(ctx, employee(alice), f.ID, bob))
	require.Empty(t, fx.grantRows(f.ID))
	ok, err := fx.shares.CheckAccess(ctx, employee(bob), f.ID, "VIEW")
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, fx.actions(), "FILE_UNSHARE")
}

func TestShare_AuditFailureDoesNotMaskDenial(t *testing.T) {
	fx := newFixture(t)
	fx.db.activityErr = errBoom
	f := fx.putFile(alice, "plan.pdf", false)

	_, err := fx.shares.Grant(context.Background(), employee(bob), f.ID, []int64{carol}, "VIEW")
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}
