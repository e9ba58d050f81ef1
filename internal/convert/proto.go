// Package convert maps domain values to hub.v1 protobuf messages and back.
package convert

import (
	"encoding/json"
	"fmt"
	"time"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func mapSlice[T, P any](in []T, f func(T) *P) []*P {
	out := make([]*P, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// FromProtoPage converts paging fields; normalization happens in services.
// A nil page selects the defaults.
func FromProtoPage(p *pb.Page) model.Page {
	return model.Page{Limit: int(p.GetLimit()), Offset: int(p.GetOffset())}
}

// --- files ---

// ToProtoFile hides storage details (handle, stored name).
func ToProtoFile(f model.File) *pb.File {
	return &pb.File{
		Id:        f.ID,
		OwnerId:   f.OwnerID,
		Name:      f.OriginalName,
		Folder:    f.FolderPath,
		MimeType:  f.MimeType,
		Size:      f.Size,
		Checksum:  f.Checksum,
		Public:    f.Public,
		CreatedAt: ts(f.CreatedAt),
		UpdatedAt: ts(f.UpdatedAt),
	}
}

func ToProtoFiles(fs []model.File) []*pb.File { return mapSlice(fs, ToProtoFile) }

func ToProtoGrant(g model.Grant) *pb.Grant {
	return &pb.Grant{
		FileId:     g.FileID,
		UserId:     g.GranteeID,
		Permission: string(g.Capability),
		GrantedBy:  g.GrantedBy,
		CreatedAt:  ts(g.CreatedAt),
	}
}

func ToProtoGrants(gs []model.Grant) []*pb.Grant { return mapSlice(gs, ToProtoGrant) }

// FromProtoFileQuery converts a listing request.
func FromProtoFileQuery(r *pb.ListFilesRequest) model.FileQuery {
	return model.FileQuery{Folder: r.GetFolder(), Search: r.GetSearch(), Page: FromProtoPage(r.GetPage())}
}

// --- messages ---

// FromProtoAudience validates the addressing fields of a send request.
func FromProtoAudience(r *pb.SendMessageRequest) (model.Audience, error) {
	return model.ParseAudience(r.GetType(), r.GetRecipientId(), r.GetDepartmentId())
}

// Mailbox is the listing a ListMessages request selects.
type Mailbox int

const (
	MailboxDirect Mailbox = iota
	MailboxDepartment
	MailboxAnnouncements
)

// FromProtoMailbox rejects enum values this server does not know.
func FromProtoMailbox(b pb.Mailbox) (Mailbox, error) {
	switch b {
	case pb.Mailbox_MAILBOX_DIRECT:
		return MailboxDirect, nil
	case pb.Mailbox_MAILBOX_DEPARTMENT:
		return MailboxDepartment, nil
	case pb.Mailbox_MAILBOX_ANNOUNCEMENTS:
		return MailboxAnnouncements, nil
	}
	return 0, fmt.Errorf("mailbox %d: %w", int32(b), errs.ErrInvalidArgument)
}

func ToProtoMessage(m model.Message) *pb.Message {
	out := &pb.Message{
		Id:           m.ID,
		SenderId:     m.SenderID,
		RecipientId:  m.RecipientID(),
		DepartmentId: m.DepartmentID(),
		Subject:      m.Subject,
		Content:      m.Content,
		Read:         m.Read,
		CreatedAt:    ts(m.CreatedAt),
	}
	if m.Audience != nil {
		out.Type = string(m.Audience.Kind())
	}
	return out
}

func ToProtoMessages(ms []model.Message) []*pb.Message { return mapSlice(ms, ToProtoMessage) }

// --- notifications ---

func ToProtoNotification(n model.Notification) *pb.Notification {
	return &pb.Notification{
		Id:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Severity:    string(n.Severity),
		RelatedType: n.RelatedType,
		RelatedId:   n.RelatedID,
		Read:        n.Read,
		CreatedAt:   ts(n.CreatedAt),
	}
}

func ToProtoNotifications(ns []model.Notification) []*pb.Notification {
	return mapSlice(ns, ToProtoNotification)
}

// --- activity ---

// ToProtoActivity passes details through only when they are valid JSON.
func ToProtoActivity(e model.ActivityEntry) *pb.ActivityEntry {
	out := &pb.ActivityEntry{
		Id:         e.ID,
		UserId:     e.UserID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityId:   e.EntityID,
		IpAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		CreatedAt:  ts(e.CreatedAt),
	}
	if len(e.Details) > 0 && json.Valid(e.Details) {
		out.Details = string(e.Details)
	}
	return out
}

func ToProtoActivities(es []model.ActivityEntry) []*pb.ActivityEntry {
	return mapSlice(es, ToProtoActivity)
}

// --- events ---

func ToProtoEvent(e fanout.Event) *pb.Event {
	return &pb.Event{Id: e.ID, Kind: string(e.Kind), Payload: e.Payload, CreatedAt: ts(e.CreatedAt)}
}
