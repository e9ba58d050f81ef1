package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/and161185/officehub/internal/access"
	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
	"go.uber.org/zap"
)

const maxSubjectLen = 200

// MessageService routes outbound messages and serves message reads.
type MessageService interface {
	// Send stores the message, then notifies every resolved recipient.
	Send(ctx context.Context, sender model.Principal, to model.Audience, subject, content string) (*model.Message, []model.Notification, error)
	// Get returns a message the actor may read.
	Get(ctx context.Context, actor model.Principal, id int64) (*model.Message, error)
	// ListDirect returns direct messages sent or received by the actor.
	ListDirect(ctx context.Context, actor model.Principal, p model.Page) ([]model.Message, error)
	// ListDepartment returns messages of one department, or of all the actor's departments when id is 0.
	ListDepartment(ctx context.Context, actor model.Principal, departmentID int64, p model.Page) ([]model.Message, error)
	// ListAnnouncements returns announcements.
	ListAnnouncements(ctx context.Context, actor model.Principal, p model.Page) ([]model.Message, error)
	// MarkRead marks a direct message read by its recipient.
	MarkRead(ctx context.Context, actor model.Principal, id int64) error
	// UnreadCount counts unread direct messages addressed to the actor.
	UnreadCount(ctx context.Context, actor model.Principal) (int64, error)
}

type MessageServiceImpl struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	depts    repository.DepartmentRepository
	notes    NotificationService
	bus      Publisher
	audit    Auditor
	log      *zap.Logger
}

// NewMessageService wires the message router.
func NewMessageService(
	messages repository.MessageRepository,
	users repository.UserRepository,
	depts repository.DepartmentRepository,
	notes NotificationService,
	bus Publisher,
	auditor Auditor,
	log *zap.Logger,
) *MessageServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &MessageServiceImpl{
		messages: messages,
		users:    users,
		depts:    depts,
		notes:    notes,
		bus:      bus,
		audit:    auditor,
		log:      log.Named("messages"),
	}
}

// route is the resolved fan-out of one message.
type route struct {
	recipients []int64
	title      string
	body       string
}

// Send validates and resolves the audience before writing anything.
// The message row is stored before any notification or event.
func (s *MessageServiceImpl) Send(
	ctx context.Context, sender model.Principal, to model.Audience, subject, content string,
) (*model.Message, []model.Notification, error) {
	subject = strings.TrimSpace(subject)
	if strings.TrimSpace(content) == "" {
		return nil, nil, fmt.Errorf("content: %w", errs.ErrMissingField)
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		return nil, nil, fmt.Errorf("subject longer than %d characters: %w", maxSubjectLen, errs.ErrInvalidArgument)
	}
	if to == nil {
		return nil, nil, fmt.Errorf("audience: %w", errs.ErrMissingField)
	}

	from, err := s.users.GetByID(ctx, sender.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("sender %d: %w", sender.UserID, err)
	}

	r, err := s.resolve(ctx, sender, from, to)
	if err != nil {
		return nil, nil, err
	}

	m := &model.Message{SenderID: sender.UserID, Audience: to, Subject: subject, Content: content}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, nil, fmt.Errorf("store message: %w", err)
	}

	ns := make([]model.Notification, 0, len(r.recipients))
	for _, uid := range r.recipients {
		ns = append(ns, model.Notification{
			UserID:      uid,
			Title:       r.title,
			Body:        r.body,
			Severity:    model.SeverityInfo,
			RelatedType: model.EntityMessage,
			RelatedID:   m.ID,
		})
	}
	mv := messageView(*m)
	saved, err := s.notes.NotifyMany(ctx, ns, fanout.KindMessageNew, func(n model.Notification) any {
		return messageEvent{Notification: notificationView(n), Message: mv}
	})
	if err != nil {
		s.log.Warn("message notifications not stored", zap.Int64("message", m.ID), zap.Error(err))
	}
	if _, ok := to.(model.Announcement); ok {
		s.bus.Publish(fanout.ToTopic(fanout.TopicAnnouncements), fanout.KindAnnouncement, mv)
	}

	s.audit.Record(ctx, audit.Entry{
		UserID: sender.UserID, Action: audit.ActionMessageSend,
		EntityType: model.EntityMessage, EntityID: m.ID,
		Details: map[string]any{"type": string(to.Kind()), "recipients": len(r.recipients)},
	})
	return m, saved, nil
}

// resolve computes the recipient snapshot for an audience.
func (s *MessageServiceImpl) resolve(ctx context.Context, sender model.Principal, from *model.User, to model.Audience) (route, error) {
	switch a := to.(type) {
	case model.Direct:
		if _, err := s.users.GetByID(ctx, a.RecipientID); err != nil {
			return route{}, fmt.Errorf("recipient %d: %w", a.RecipientID, err)
		}
		return route{
			recipients: []int64{a.RecipientID},
			title:      "New Message",
			body:       "You have a new message from " + from.DisplayName(),
		}, nil

	case model.DepartmentAudience:
		d, err := s.depts.GetByID(ctx, a.DepartmentID)
		if err != nil {
			return route{}, fmt.Errorf("department %d: %w", a.DepartmentID, err)
		}
		members, err := s.depts.MemberIDs(ctx, d.ID)
		if err != nil {
			return route{}, err
		}
		if !slices.Contains(members, sender.UserID) {
			s.denySend(ctx, sender, to, "not a department member")
			return route{}, fmt.Errorf("department %d: %w", d.ID, errs.ErrPermissionDenied)
		}
		return route{
			recipients: without(members, sender.UserID),
			title:      "Department Message",
			body:       fmt.Sprintf("New message in %s from %s", d.Name, from.DisplayName()),
		}, nil

	case model.Announcement:
		if !sender.Role.CanAnnounce() {
			s.denySend(ctx, sender, to, "role "+string(sender.Role))
			return route{}, fmt.Errorf("announcement: %w", errs.ErrPermissionDenied)
		}
		active, err := s.users.ListActive(ctx)
		if err != nil {
			return route{}, err
		}
		ids := make([]int64, 0, len(active))
		for _, u := range active {
			ids = append(ids, u.ID)
		}
		return route{
			recipients: without(ids, sender.UserID),
			title:      "New Announcement",
			body:       "New announcement from " + from.DisplayName(),
		}, nil

	default:
		return route{}, fmt.Errorf("audience %T: %w", to, errs.ErrInvalidArgument)
	}
}

func (s *MessageServiceImpl) denySend(ctx context.Context, sender model.Principal, to model.Audience, reason string) {
	s.audit.Record(ctx, audit.Entry{
		UserID: sender.UserID, Action: audit.ActionMessageDenied,
		EntityType: model.EntityMessage,
		Details:    map[string]any{"type": string(to.Kind()), "reason": reason},
	})
}

func (s *MessageServiceImpl) denyRead(ctx context.Context, actor model.Principal, id int64, op string) {
	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: audit.ActionMessageReadDenied,
		EntityType: model.EntityMessage, EntityID: id,
		Details: map[string]any{"operation": op},
	})
}

// Get re-checks department membership at read time.
func (s *MessageServiceImpl) Get(ctx context.Context, actor model.Principal, id int64) (*model.Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("message %d: %w", id, err)
	}
	member := false
	if d, ok := m.Audience.(model.DepartmentAudience); ok && m.SenderID != actor.UserID {
		if member, err = s.depts.IsMember(ctx, d.DepartmentID, actor.UserID); err != nil {
			return nil, err
		}
	}
	if !access.CanReadMessage(*m, actor.UserID, func(int64) bool { return member }) {
		s.denyRead(ctx, actor, m.ID, "get")
		return nil, fmt.Errorf("message %d: %w", id, errs.ErrPermissionDenied)
	}
	return m, nil
}

func (s *MessageServiceImpl) ListDirect(ctx context.Context, actor model.Principal, p model.Page) ([]model.Message, error) {
	return s.messages.ListDirect(ctx, actor.UserID, p.Normalize(defaultPageSize, maxPageSize))
}

// ListDepartment filters out departments the actor does not belong to.
func (s *MessageServiceImpl) ListDepartment(ctx context.Context, actor model.Principal, departmentID int64, p model.Page) ([]model.Message, error) {
	mine, err := s.depts.DepartmentIDsOf(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if departmentID != 0 {
		if !slices.Contains(mine, departmentID) {
			return nil, nil
		}
		mine = []int64{departmentID}
	}
	return s.messages.ListByDepartments(ctx, mine, p.Normalize(defaultPageSize, maxPageSize))
}

func (s *MessageServiceImpl) ListAnnouncements(ctx context.Context, _ model.Principal, p model.Page) ([]model.Message, error) {
	return s.messages.ListAnnouncements(ctx, p.Normalize(defaultPageSize, maxPageSize))
}

// MarkRead is limited to the recipient of a direct message.
func (s *MessageServiceImpl) MarkRead(ctx context.Context, actor model.Principal, id int64) error {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("message %d: %w", id, err)
	}
	if m.RecipientID() != actor.UserID {
		s.denyRead(ctx, actor, m.ID, "mark_read")
		return fmt.Errorf("mark message %d read: %w", id, errs.ErrPermissionDenied)
	}
	return s.messages.MarkRead(ctx, id)
}

func (s *MessageServiceImpl) UnreadCount(ctx context.Context, actor model.Principal) (int64, error) {
	return s.messages.CountUnreadDirect(ctx, actor.UserID)
}

func without(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
