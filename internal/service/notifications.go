package service

import (
	"context"
	"fmt"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
)

// NotificationService persists per-recipient notifications and serves the inbox.
type NotificationService interface {
	// NotifyMany stores one row per element and publishes one event per stored row.
	// A nil payload func publishes a plain notification.new event.
	NotifyMany(ctx context.Context, ns []model.Notification, kind fanout.Kind, payload func(model.Notification) any) ([]model.Notification, error)
	// List returns the actor's notifications, newest first.
	List(ctx context.Context, actor model.Principal, unreadOnly bool, p model.Page) ([]model.Notification, error)
	// Unread returns every unread notification of the actor.
	Unread(ctx context.Context, actor model.Principal) ([]model.Notification, error)
	// UnreadCount counts unread notifications.
	UnreadCount(ctx context.Context, actor model.Principal) (int64, error)
	// MarkRead marks one of the actor's notifications as read.
	MarkRead(ctx context.Context, actor model.Principal, id int64) error
	// MarkAllRead marks all of the actor's notifications as read.
	MarkAllRead(ctx context.Context, actor model.Principal) (int64, error)
}

type NotificationServiceImpl struct {
	repo repository.NotificationRepository
	bus  Publisher
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(repo repository.NotificationRepository, bus Publisher) *NotificationServiceImpl {
	return &NotificationServiceImpl{repo: repo, bus: bus}
}

// NotifyMany inserts the batch first; events are only published for committed rows.
func (s *NotificationServiceImpl) NotifyMany(
	ctx context.Context, ns []model.Notification, kind fanout.Kind, payload func(model.Notification) any,
) ([]model.Notification, error) {
	if len(ns) == 0 {
		return nil, nil
	}
	if kind == "" {
		kind = fanout.KindNotificationNew
	}
	for i := range ns {
		if ns[i].Severity == "" {
			ns[i].Severity = model.SeverityInfo
		}
	}
	saved, err := s.repo.CreateBatch(ctx, ns)
	if err != nil {
		return nil, fmt.Errorf("store notifications: %w", err)
	}
	for _, n := range saved {
		var body any = notificationEvent{Notification: notificationView(n)}
		if payload != nil {
			body = payload(n)
		}
		s.bus.Publish(fanout.ToUsers(n.UserID), kind, body)
	}
	return saved, nil
}

func (s *NotificationServiceImpl) List(ctx context.Context, actor model.Principal, unreadOnly bool, p model.Page) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, actor.UserID, unreadOnly, p.Normalize(defaultPageSize, maxPageSize))
}

func (s *NotificationServiceImpl) Unread(ctx context.Context, actor model.Principal) ([]model.Notification, error) {
	return s.repo.FindUnreadByUser(ctx, actor.UserID)
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, actor model.Principal) (int64, error) {
	return s.repo.CountUnread(ctx, actor.UserID)
}

// MarkRead distinguishes a missing notification from someone else's.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, actor model.Principal, id int64) error {
	ok, err := s.repo.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	owner, err := s.repo.OwnerOf(ctx, id)
	if err != nil {
		return fmt.Errorf("notification %d: %w", id, err)
	}
	if owner != actor.UserID {
		return fmt.Errorf("notification %d: %w", id, errs.ErrPermissionDenied)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, actor model.Principal) (int64, error) {
	return s.repo.MarkAllRead(ctx, actor.UserID)
}
