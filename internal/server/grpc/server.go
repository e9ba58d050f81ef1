// Package grpcserver exposes the hub.v1 gRPC API handlers.
package grpcserver

import (
	"bytes"
	"context"
	"errors"
	"io"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
	"github.com/and161185/officehub/internal/convert"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Services groups the domain services behind the API.
type Services struct {
	Shares        service.ShareService
	Messages      service.MessageService
	Notifications service.NotificationService
	Files         service.FileService
	Activity      service.ActivityService
}

// envelopeSlack covers the non-content fields of an upload or download
// message.
const envelopeSlack = 1 << 20

// MessageLimit is the gRPC message size that fits a file of maxUpload
// bytes plus its request envelope.
func MessageLimit(maxUpload int64) int {
	return int(maxUpload) + envelopeSlack
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedHubServer
	svc      Services
	registry *fanout.Registry
	buffer   int
	log      *zap.Logger
}

var _ pb.HubServer = (*Server)(nil)

// New constructs a gRPC server. Subscribe sessions join registry with an
// outbox of buffer events.
func New(svc Services, registry *fanout.Registry, buffer int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, registry: registry, buffer: buffer, log: log.Named("grpc")}
}

func (s *Server) actor(ctx context.Context) (model.Principal, error) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return model.Principal{}, status.Error(codes.Unauthenticated, "no auth")
	}
	return p, nil
}

// toStatus maps domain sentinels onto gRPC codes. Unknown errors are
// logged and reported as Internal without details.
func (s *Server) toStatus(op string, err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		code = codes.PermissionDenied
	case errors.Is(err, errs.ErrInvalidArgument):
		code = codes.InvalidArgument
	case errors.Is(err, errs.ErrConflict):
		code = codes.AlreadyExists
	case errors.Is(err, errs.ErrUnauthorized):
		code = codes.Unauthenticated
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		s.log.Error(op, zap.Error(err))
		return status.Errorf(codes.Internal, "%s: internal error", op)
	}
	return status.Errorf(code, "%s: %v", op, err)
}

// --- Shares ---

// CheckAccess reports whether the caller holds a permission on a file.
func (s *Server) CheckAccess(ctx context.Context, req *pb.CheckAccessRequest) (*pb.CheckAccessResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	ok, err := s.svc.Shares.CheckAccess(ctx, actor, req.GetFileId(), req.GetPermission())
	if err != nil {
		return nil, s.toStatus("check access", err)
	}
	return &pb.CheckAccessResponse{Allowed: ok}, nil
}

// GrantShare gives every listed user the permission, all or nothing.
func (s *Server) GrantShare(ctx context.Context, req *pb.GrantShareRequest) (*pb.GrantsResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	gs, err := s.svc.Shares.Grant(ctx, actor, req.GetFileId(), req.GetUserIds(), req.GetPermission())
	if err != nil {
		return nil, s.toStatus("grant share", err)
	}
	return &pb.GrantsResponse{Grants: convert.ToProtoGrants(gs)}, nil
}

func (s *Server) RevokeShare(ctx context.Context, req *pb.RevokeShareRequest) (*pb.Empty, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Shares.Revoke(ctx, actor, req.GetFileId(), req.GetUserId()); err != nil {
		return nil, s.toStatus("revoke share", err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ListShares(ctx context.Context, req *pb.FileRequest) (*pb.GrantsResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	gs, err := s.svc.Shares.ListGrants(ctx, actor, req.GetFileId())
	if err != nil {
		return nil, s.toStatus("list shares", err)
	}
	return &pb.GrantsResponse{Grants: convert.ToProtoGrants(gs)}, nil
}

// --- Messages ---

// SendMessage routes a message to its audience.
func (s *Server) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	to, err := convert.FromProtoAudience(req)
	if err != nil {
		return nil, s.toStatus("send message", err)
	}
	m, notes, err := s.svc.Messages.Send(ctx, actor, to, req.GetSubject(), req.GetContent())
	if err != nil {
		return nil, s.toStatus("send message", err)
	}
	return &pb.SendMessageResponse{Message: convert.ToProtoMessage(*m), Recipients: int32(len(notes))}, nil
}

func (s *Server) GetMessage(ctx context.Context, req *pb.MessageRequest) (*pb.MessageResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.svc.Messages.Get(ctx, actor, req.GetMessageId())
	if err != nil {
		return nil, s.toStatus("get message", err)
	}
	return &pb.MessageResponse{Message: convert.ToProtoMessage(*m)}, nil
}

// ListMessages lists one mailbox together with the unread direct count.
func (s *Server) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	box, err := convert.FromProtoMailbox(req.GetBox())
	if err != nil {
		return nil, s.toStatus("list messages", err)
	}
	p := convert.FromProtoPage(req.GetPage())
	var ms []model.Message
	switch box {
	case convert.MailboxDirect:
		ms, err = s.svc.Messages.ListDirect(ctx, actor, p)
	case convert.MailboxDepartment:
		ms, err = s.svc.Messages.ListDepartment(ctx, actor, req.GetDepartmentId(), p)
	case convert.MailboxAnnouncements:
		ms, err = s.svc.Messages.ListAnnouncements(ctx, actor, p)
	}
	if err != nil {
		return nil, s.toStatus("list messages", err)
	}
	unread, err := s.svc.Messages.UnreadCount(ctx, actor)
	if err != nil {
		return nil, s.toStatus("list messages", err)
	}
	return &pb.ListMessagesResponse{Messages: convert.ToProtoMessages(ms), Unread: unread}, nil
}

func (s *Server) MarkMessageRead(ctx context.Context, req *pb.MessageRequest) (*pb.Empty, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Messages.MarkRead(ctx, actor, req.GetMessageId()); err != nil {
		return nil, s.toStatus("mark message read", err)
	}
	return &pb.Empty{}, nil
}

// --- Notifications ---

// ListNotifications pages the inbox. unread_only without a page returns
// every unread notification.
func (s *Server) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	var ns []model.Notification
	if req.GetUnreadOnly() && req.GetPage() == nil {
		ns, err = s.svc.Notifications.Unread(ctx, actor)
	} else {
		ns, err = s.svc.Notifications.List(ctx, actor, req.GetUnreadOnly(), convert.FromProtoPage(req.GetPage()))
	}
	if err != nil {
		return nil, s.toStatus("list notifications", err)
	}
	unread, err := s.svc.Notifications.UnreadCount(ctx, actor)
	if err != nil {
		return nil, s.toStatus("list notifications", err)
	}
	return &pb.ListNotificationsResponse{Notifications: convert.ToProtoNotifications(ns), Unread: unread}, nil
}

func (s *Server) MarkNotificationRead(ctx context.Context, req *pb.NotificationRequest) (*pb.Empty, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Notifications.MarkRead(ctx, actor, req.GetNotificationId()); err != nil {
		return nil, s.toStatus("mark notification read", err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) MarkAllNotificationsRead(ctx context.Context, _ *pb.Empty) (*pb.MarkAllResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.svc.Notifications.MarkAllRead(ctx, actor)
	if err != nil {
		return nil, s.toStatus("mark all notifications read", err)
	}
	return &pb.MarkAllResponse{Updated: n}, nil
}

// --- Files ---

func (s *Server) UploadFile(ctx context.Context, req *pb.UploadFileRequest) (*pb.FileResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	f, err := s.svc.Files.Upload(ctx, actor, service.Upload{
		Name:     req.GetName(),
		Folder:   req.GetFolder(),
		MimeType: req.GetMimeType(),
		Body:     bytes.NewReader(req.GetContent()),
	})
	if err != nil {
		return nil, s.toStatus("upload file", err)
	}
	return &pb.FileResponse{File: convert.ToProtoFile(*f)}, nil
}

func (s *Server) DownloadFile(ctx context.Context, req *pb.FileRequest) (*pb.DownloadFileResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	f, rc, err := s.svc.Files.Download(ctx, actor, req.GetFileId())
	if err != nil {
		return nil, s.toStatus("download file", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, s.toStatus("download file", err)
	}
	return &pb.DownloadFileResponse{File: convert.ToProtoFile(*f), Content: b}, nil
}

func (s *Server) DeleteFile(ctx context.Context, req *pb.FileRequest) (*pb.Empty, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Files.Delete(ctx, actor, req.GetFileId()); err != nil {
		return nil, s.toStatus("delete file", err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ToggleVisibility(ctx context.Context, req *pb.FileRequest) (*pb.FileResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	f, err := s.svc.Files.ToggleVisibility(ctx, actor, req.GetFileId())
	if err != nil {
		return nil, s.toStatus("toggle visibility", err)
	}
	return &pb.FileResponse{File: convert.ToProtoFile(*f)}, nil
}

func (s *Server) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	fs, err := s.svc.Files.ListAccessible(ctx, actor, convert.FromProtoFileQuery(req))
	if err != nil {
		return nil, s.toStatus("list files", err)
	}
	return &pb.ListFilesResponse{Files: convert.ToProtoFiles(fs)}, nil
}

func (s *Server) ListFolders(ctx context.Context, _ *pb.Empty) (*pb.ListFoldersResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	folders, err := s.svc.Files.Folders(ctx, actor)
	if err != nil {
		return nil, s.toStatus("list folders", err)
	}
	return &pb.ListFoldersResponse{Folders: folders}, nil
}

// --- Activity ---

func (s *Server) ListActivity(ctx context.Context, req *pb.ListActivityRequest) (*pb.ListActivityResponse, error) {
	actor, err := s.actor(ctx)
	if err != nil {
		return nil, err
	}
	es, err := s.svc.Activity.List(ctx, actor, req.GetOnlyMine(), convert.FromProtoPage(req.GetPage()))
	if err != nil {
		return nil, s.toStatus("list activity", err)
	}
	return &pb.ListActivityResponse{Entries: convert.ToProtoActivities(es)}, nil
}

// --- Events ---

// Subscribe streams the caller's events until the client goes away. The
// session id is sent as header metadata once the session is registered.
func (s *Server) Subscribe(_ *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()
	actor, err := s.actor(ctx)
	if err != nil {
		return err
	}
	out, err := fanout.NewOutbox(actor.UserID, s.buffer)
	if err != nil {
		return s.toStatus("subscribe", err)
	}
	s.registry.Add(out, fanout.TopicAnnouncements)
	defer func() {
		out.Close()
		s.registry.Remove(out)
	}()
	if err := stream.SendHeader(metadata.Pairs("x-session-id", out.ID())); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-out.Done():
			return nil
		case e := <-out.Events():
			if err := stream.Send(convert.ToProtoEvent(e)); err != nil {
				return err
			}
		}
	}
}
