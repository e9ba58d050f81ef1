package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/and161185/officehub/internal/access"
	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
	"go.uber.org/zap"
)

// ShareService owns file grants.
type ShareService interface {
	// CheckAccess reports whether the actor holds a capability on a file.
	CheckAccess(ctx context.Context, actor model.Principal, fileID int64, capability string) (bool, error)
	// Grant gives every grantee the capability, all or nothing.
	Grant(ctx context.Context, actor model.Principal, fileID int64, granteeIDs []int64, capability string) ([]model.Grant, error)
	// Revoke removes every capability the grantee holds on the file.
	Revoke(ctx context.Context, actor model.Principal, fileID, granteeID int64) error
	// ListGrants enumerates the grants on a file.
	ListGrants(ctx context.Context, actor model.Principal, fileID int64) ([]model.Grant, error)
}

type ShareServiceImpl struct {
	files    repository.FileRepository
	grants   repository.GrantRepository
	users    repository.UserRepository
	resolver *access.Resolver
	notes    NotificationService
	audit    Auditor
	log      *zap.Logger
}

// NewShareService wires the share ledger.
func NewShareService(
	files repository.FileRepository,
	grants repository.GrantRepository,
	users repository.UserRepository,
	notes NotificationService,
	auditor Auditor,
	log *zap.Logger,
) *ShareServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShareServiceImpl{
		files:    files,
		grants:   grants,
		users:    users,
		resolver: access.NewResolver(grants),
		notes:    notes,
		audit:    auditor,
		log:      log.Named("shares"),
	}
}

func parseCapability(s string) (model.Capability, error) {
	c, ok := model.ParseCapability(s)
	if !ok {
		return "", fmt.Errorf("capability %q: %w", s, errs.ErrInvalidCapability)
	}
	return c, nil
}

// CheckAccess loads the file so that absence is reported as ErrNotFound.
func (s *ShareServiceImpl) CheckAccess(ctx context.Context, actor model.Principal, fileID int64, capability string) (bool, error) {
	c, err := parseCapability(capability)
	if err != nil {
		return false, err
	}
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return false, fmt.Errorf("file %d: %w", fileID, err)
	}
	return s.resolver.CanAccess(ctx, *f, actor.UserID, c)
}

// Grant validates everything before the first write. Grantee ids are
// de-duplicated; upserts run in one transaction.
func (s *ShareServiceImpl) Grant(
	ctx context.Context, actor model.Principal, fileID int64, granteeIDs []int64, capability string,
) ([]model.Grant, error) {
	c, err := parseCapability(capability)
	if err != nil {
		return nil, err
	}
	ids, err := uniqueIDs(granteeIDs)
	if err != nil {
		return nil, err
	}

	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w", fileID, err)
	}
	ok, err := s.resolver.CanAccess(ctx, *f, actor.UserID, model.CapEdit)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.audit.Record(ctx, audit.Entry{
			UserID: actor.UserID, Action: audit.ActionFileShareDenied,
			EntityType: model.EntityFile, EntityID: f.ID,
			Details: map[string]any{"operation": "grant", "permission": string(c)},
		})
		return nil, fmt.Errorf("share file %d: %w", fileID, errs.ErrPermissionDenied)
	}

	if err := s.requireUsers(ctx, ids); err != nil {
		return nil, err
	}
	granter, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("granter %d: %w", actor.UserID, err)
	}

	out, err := s.grants.UpsertBatch(ctx, f.ID, actor.UserID, ids, c)
	if err != nil {
		return nil, fmt.Errorf("store grants: %w", err)
	}

	ns := make([]model.Notification, 0, len(out))
	for _, g := range out {
		ns = append(ns, model.Notification{
			UserID:      g.GranteeID,
			Title:       "File Shared",
			Body:        fmt.Sprintf("%s shared a file '%s' with you", granter.DisplayName(), f.OriginalName),
			Severity:    model.SeverityInfo,
			RelatedType: model.EntityFile,
			RelatedID:   f.ID,
		})
	}
	_, err = s.notes.NotifyMany(ctx, ns, fanout.KindShareNew, func(n model.Notification) any {
		return shareEvent{
			Notification: notificationView(n),
			FileID:       f.ID,
			FileName:     f.OriginalName,
			Capability:   string(c),
			GrantedBy:    actor.UserID,
		}
	})
	if err != nil {
		s.log.Warn("share notifications not stored", zap.Int64("file", f.ID), zap.Error(err))
	}

	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: audit.ActionFileShare,
		EntityType: model.EntityFile, EntityID: f.ID,
		Details: map[string]any{"grantees": ids, "permission": string(c), "filename": f.OriginalName},
	})
	return out, nil
}

// Revoke is owner-only and idempotent.
func (s *ShareServiceImpl) Revoke(ctx context.Context, actor model.Principal, fileID, granteeID int64) error {
	if granteeID <= 0 {
		return fmt.Errorf("grantee id: %w", errs.ErrMissingField)
	}
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return fmt.Errorf("file %d: %w", fileID, err)
	}
	if f.OwnerID != actor.UserID {
		s.audit.Record(ctx, audit.Entry{
			UserID: actor.UserID, Action: audit.ActionFileShareDenied,
			EntityType: model.EntityFile, EntityID: f.ID,
			Details: map[string]any{"operation": "revoke", "grantee": granteeID},
		})
		return fmt.Errorf("revoke on file %d: %w", fileID, errs.ErrPermissionDenied)
	}

	n, err := s.grants.DeleteForGrantee(ctx, f.ID, granteeID)
	if err != nil {
		return fmt.Errorf("delete grants: %w", err)
	}
	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: audit.ActionFileUnshare,
		EntityType: model.EntityFile, EntityID: f.ID,
		Details: map[string]any{"grantee": granteeID, "removed": n},
	})
	return nil
}

// ListGrants is owner-only, stricter than Grant which also admits EDIT holders.
func (s *ShareServiceImpl) ListGrants(ctx context.Context, actor model.Principal, fileID int64) ([]model.Grant, error) {
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w", fileID, err)
	}
	if f.OwnerID != actor.UserID {
		s.audit.Record(ctx, audit.Entry{
			UserID: actor.UserID, Action: audit.ActionFileShareDenied,
			EntityType: model.EntityFile, EntityID: f.ID,
			Details: map[string]any{"operation": "list"},
		})
		return nil, fmt.Errorf("list grants on file %d: %w", fileID, errs.ErrPermissionDenied)
	}
	return s.grants.ListByFile(ctx, f.ID)
}

func (s *ShareServiceImpl) requireUsers(ctx context.Context, ids []int64) error {
	found, err := s.users.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) == len(ids) {
		return nil
	}
	for _, id := range ids {
		if !slices.Contains(found, id) {
			return fmt.Errorf("user %d: %w", id, errs.ErrNotFound)
		}
	}
	return nil
}

// uniqueIDs keeps first-seen order and rejects empty or non-positive input.
func uniqueIDs(in []int64) ([]int64, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("grantee ids: %w", errs.ErrMissingField)
	}
	seen := make(map[int64]struct{}, len(in))
	out := make([]int64, 0, len(in))
	for _, id := range in {
		if id <= 0 {
			return nil, fmt.Errorf("grantee id %d: %w", id, errs.ErrInvalidArgument)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
