package grpcserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

type fakeShares struct {
	err       error
	lastActor model.Principal
	lastIDs   []int64
	lastCap   string
}

func (f *fakeShares) CheckAccess(_ context.Context, a model.Principal, _ int64, c string) (bool, error) {
	f.lastActor, f.lastCap = a, c
	return c == "VIEW", f.err
}
func (f *fakeShares) Grant(_ context.Context, a model.Principal, fileID int64, ids []int64, c string) ([]model.Grant, error) {
	f.lastActor, f.lastIDs, f.lastCap = a, ids, c
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Grant, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Grant{FileID: fileID, GranteeID: id, Capability: model.Capability(c), GrantedBy: a.UserID})
	}
	return out, nil
}
func (f *fakeShares) Revoke(context.Context, model.Principal, int64, int64) error { return f.err }
func (f *fakeShares) ListGrants(context.Context, model.Principal, int64) ([]model.Grant, error) {
	return nil, f.err
}

type fakeMessages struct {
	lastTo model.Audience
	box    string
}

func (f *fakeMessages) Send(_ context.Context, a model.Principal, to model.Audience, subject, content string) (*model.Message, []model.Notification, error) {
	f.lastTo = to
	return &model.Message{ID: 11, SenderID: a.UserID, Audience: to, Subject: subject, Content: content},
		[]model.Notification{{UserID: 2}, {UserID: 3}}, nil
}
func (f *fakeMessages) Get(_ context.Context, _ model.Principal, id int64) (*model.Message, error) {
	return nil, fmt.Errorf("message %d: %w", id, errs.ErrNotFound)
}
func (f *fakeMessages) ListDirect(context.Context, model.Principal, model.Page) ([]model.Message, error) {
	f.box = "direct"
	return []model.Message{{ID: 1, Audience: model.Direct{RecipientID: 2}}}, nil
}
func (f *fakeMessages) ListDepartment(context.Context, model.Principal, int64, model.Page) ([]model.Message, error) {
	f.box = "department"
	return nil, nil
}
func (f *fakeMessages) ListAnnouncements(context.Context, model.Principal, model.Page) ([]model.Message, error) {
	f.box = "announcements"
	return nil, nil
}
func (f *fakeMessages) MarkRead(context.Context, model.Principal, int64) error {
	return errs.ErrPermissionDenied
}
func (f *fakeMessages) UnreadCount(context.Context, model.Principal) (int64, error) { return 4, nil }

type fakeNotes struct {
	called string
}

func (*fakeNotes) NotifyMany(context.Context, []model.Notification, fanout.Kind, func(model.Notification) any) ([]model.Notification, error) {
	return nil, nil
}
func (f *fakeNotes) List(_ context.Context, a model.Principal, _ bool, _ model.Page) ([]model.Notification, error) {
	f.called = "list"
	return []model.Notification{{ID: 5, UserID: a.UserID, Title: "File Shared", Severity: model.SeverityInfo}}, nil
}
func (f *fakeNotes) Unread(_ context.Context, a model.Principal) ([]model.Notification, error) {
	f.called = "unread"
	return []model.Notification{
		{ID: 6, UserID: a.UserID, Title: "New Message", Severity: model.SeverityInfo},
		{ID: 7, UserID: a.UserID, Title: "File Shared", Severity: model.SeverityInfo},
	}, nil
}
func (*fakeNotes) UnreadCount(context.Context, model.Principal) (int64, error) { return 1, nil }
func (*fakeNotes) MarkRead(context.Context, model.Principal, int64) error      { return nil }
func (*fakeNotes) MarkAllRead(context.Context, model.Principal) (int64, error) { return 3, nil }

type fakeFiles struct {
	body []byte
}

func (f *fakeFiles) Upload(_ context.Context, a model.Principal, up service.Upload) (*model.File, error) {
	b, err := io.ReadAll(up.Body)
	if err != nil {
		return nil, err
	}
	f.body = b
	return &model.File{ID: 9, OwnerID: a.UserID, OriginalName: up.Name, FolderPath: "/", Size: int64(len(b))}, nil
}
func (f *fakeFiles) Get(context.Context, model.Principal, int64) (*model.File, error) { return nil, nil }
func (f *fakeFiles) Download(_ context.Context, _ model.Principal, id int64) (*model.File, io.ReadCloser, error) {
	return &model.File{ID: id, OriginalName: "a.txt"}, io.NopCloser(strings.NewReader(string(f.body))), nil
}
func (f *fakeFiles) Delete(context.Context, model.Principal, int64) error { return nil }
func (f *fakeFiles) ToggleVisibility(_ context.Context, _ model.Principal, id int64) (*model.File, error) {
	return &model.File{ID: id, Public: true}, nil
}
func (f *fakeFiles) ListAccessible(context.Context, model.Principal, model.FileQuery) ([]model.File, error) {
	return nil, nil
}
func (f *fakeFiles) Folders(context.Context, model.Principal) ([]string, error) { return nil, nil }

type fakeActivity struct{}

func (fakeActivity) List(_ context.Context, a model.Principal, _ bool, _ model.Page) ([]model.ActivityEntry, error) {
	return []model.ActivityEntry{{ID: 1, UserID: a.UserID, Action: "FILE_UPLOAD", Details: []byte(`{"size":3}`)}}, nil
}

const bufSize = 1 << 20

var signKey = []byte("test-secret")

type harness struct {
	client   pb.HubClient
	shares   *fakeShares
	messages *fakeMessages
	files    *fakeFiles
	notes    *fakeNotes
	registry *fanout.Registry
}

func startBufGRPC(t *testing.T, opts ...grpc.ServerOption) *harness {
	t.Helper()
	log := zaptest.NewLogger(t)
	h := &harness{
		shares:   &fakeShares{},
		messages: &fakeMessages{},
		files:    &fakeFiles{},
		notes:    &fakeNotes{},
		registry: fanout.NewRegistry(time.Second, log),
	}
	auth := newAuthenticator(signKey, usersByID{
		1: {ID: 1, Role: model.RoleEmployee, Active: true},
		4: {ID: 4, Role: model.RoleManager, Active: true},
	})
	srv := New(Services{
		Shares:        h.shares,
		Messages:      h.messages,
		Notifications: h.notes,
		Files:         h.files,
		Activity:      fakeActivity{},
	}, h.registry, 8, log)

	lis := bufconn.Listen(bufSize)
	opts = append(opts,
		grpc.ChainUnaryInterceptor(RecoverUnary(log), LoggingUnary(log), MetricsUnary(), AuthUnary(auth)),
		grpc.ChainStreamInterceptor(RecoverStream(log), LoggingStream(log), MetricsStream(), AuthStream(auth)),
	)
	gs := grpc.NewServer(opts...)
	pb.RegisterHubServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	h.client = pb.NewHubClient(cc)
	return h
}

func as(t *testing.T, userID int64) context.Context {
	t.Helper()
	tok := makeJWT(t, fmt.Sprint(userID), signKey, jwt.SigningMethodHS256, time.Now().UTC().Add(-5*time.Second), time.Hour)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+tok)
}

func TestServer_RequiresToken(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	_, err := h.client.CheckAccess(context.Background(), &pb.CheckAccessRequest{FileId: 1, Permission: "VIEW"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = h.client.CheckAccess(ctx, &pb.CheckAccessRequest{FileId: 1, Permission: "VIEW"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_GrantShare_PassesPrincipal(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	resp, err := h.client.GrantShare(as(t, 4), &pb.GrantShareRequest{FileId: 3, UserIds: []int64{1, 2}, Permission: "EDIT"})
	require.NoError(t, err)
	require.Len(t, resp.Grants, 2)
	require.True(t, proto.Equal(&pb.Grant{FileId: 3, UserId: 1, Permission: "EDIT", GrantedBy: 4}, resp.Grants[0]))
	require.Equal(t, model.Principal{UserID: 4, Role: model.RoleManager}, h.shares.lastActor)
	require.Equal(t, []int64{1, 2}, h.shares.lastIDs)

	ok, err := h.client.CheckAccess(as(t, 1), &pb.CheckAccessRequest{FileId: 3, Permission: "VIEW"})
	require.NoError(t, err)
	require.True(t, ok.Allowed)
}

func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("file 1: %w", errs.ErrNotFound), codes.NotFound},
		{fmt.Errorf("edit file 1: %w", errs.ErrPermissionDenied), codes.PermissionDenied},
		{errs.ErrInvalidCapability, codes.InvalidArgument},
		{errs.ErrMissingField, codes.InvalidArgument},
		{errs.ErrConflict, codes.AlreadyExists},
		{errs.ErrUnauthorized, codes.Unauthenticated},
		{io.ErrUnexpectedEOF, codes.Internal},
	}
	h := startBufGRPC(t)
	for _, c := range cases {
		h.shares.err = c.err
		_, err := h.client.RevokeShare(as(t, 1), &pb.RevokeShareRequest{FileId: 1, UserId: 2})
		require.Equal(t, c.code, status.Code(err), c.err.Error())
	}

	h.shares.err = io.ErrUnexpectedEOF
	_, err := h.client.ListShares(as(t, 1), &pb.FileRequest{FileId: 1})
	require.NotContains(t, status.Convert(err).Message(), "unexpected EOF")
}

func TestServer_SendMessage(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	resp, err := h.client.SendMessage(as(t, 1), &pb.SendMessageRequest{Type: "department", DepartmentId: 70, Content: "standup"})
	require.NoError(t, err)
	require.Equal(t, int32(2), resp.Recipients)
	require.Equal(t, "DEPARTMENT", resp.Message.Type)
	require.Equal(t, int64(70), resp.Message.DepartmentId)
	require.Equal(t, model.DepartmentAudience{DepartmentID: 70}, h.messages.lastTo)

	_, err = h.client.SendMessage(as(t, 1), &pb.SendMessageRequest{Type: "DIRECT", Content: "x"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = h.client.GetMessage(as(t, 1), &pb.MessageRequest{MessageId: 5})
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = h.client.MarkMessageRead(as(t, 1), &pb.MessageRequest{MessageId: 5})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestServer_ListMessages_Mailboxes(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	resp, err := h.client.ListMessages(as(t, 1), &pb.ListMessagesRequest{})
	require.NoError(t, err)
	require.Equal(t, "direct", h.messages.box)
	require.Len(t, resp.Messages, 1)
	require.Equal(t, int64(4), resp.Unread)

	_, err = h.client.ListMessages(as(t, 1), &pb.ListMessagesRequest{Box: pb.Mailbox_MAILBOX_ANNOUNCEMENTS})
	require.NoError(t, err)
	require.Equal(t, "announcements", h.messages.box)

	_, err = h.client.ListMessages(as(t, 1), &pb.ListMessagesRequest{Box: pb.Mailbox(42)})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_Notifications(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	resp, err := h.client.ListNotifications(as(t, 1), &pb.ListNotificationsRequest{Page: &pb.Page{Limit: 10}})
	require.NoError(t, err)
	require.Equal(t, "list", h.notes.called)
	require.Len(t, resp.Notifications, 1)
	require.Equal(t, "INFO", resp.Notifications[0].Severity)
	require.Equal(t, int64(1), resp.Unread)

	resp, err = h.client.ListNotifications(as(t, 1), &pb.ListNotificationsRequest{UnreadOnly: true, Page: &pb.Page{Limit: 10}})
	require.NoError(t, err)
	require.Equal(t, "list", h.notes.called)
	require.Len(t, resp.Notifications, 1)

	resp, err = h.client.ListNotifications(as(t, 1), &pb.ListNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	require.Equal(t, "unread", h.notes.called)
	require.Len(t, resp.Notifications, 2)
	require.Equal(t, int64(7), resp.Notifications[1].Id)

	all, err := h.client.MarkAllNotificationsRead(as(t, 1), &pb.Empty{})
	require.NoError(t, err)
	require.Equal(t, int64(3), all.Updated)
}

func TestServer_UploadDownload(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	up, err := h.client.UploadFile(as(t, 1), &pb.UploadFileRequest{Name: "a.txt", Content: []byte("abc")})
	require.NoError(t, err)
	require.Equal(t, int64(3), up.File.Size)
	require.Equal(t, "a.txt", up.File.Name)

	down, err := h.client.DownloadFile(as(t, 1), &pb.FileRequest{FileId: up.File.Id})
	require.NoError(t, err)
	require.Equal(t, "abc", string(down.Content))

	folders, err := h.client.ListFolders(as(t, 1), &pb.Empty{})
	require.NoError(t, err)
	require.Empty(t, folders.Folders)

	tg, err := h.client.ToggleVisibility(as(t, 1), &pb.FileRequest{FileId: 9})
	require.NoError(t, err)
	require.True(t, tg.File.Public)
}

func TestServer_UploadNearLimit(t *testing.T) {
	t.Parallel()
	const maxUpload = 8 << 20
	limit := MessageLimit(maxUpload)
	h := startBufGRPC(t, grpc.MaxRecvMsgSize(limit), grpc.MaxSendMsgSize(limit))

	content := bytes.Repeat([]byte{0xAB}, 7<<20)
	up, err := h.client.UploadFile(as(t, 1), &pb.UploadFileRequest{Name: "big.bin", Content: content})
	require.NoError(t, err)
	require.Equal(t, int64(len(content)), up.File.Size)

	down, err := h.client.DownloadFile(as(t, 1), &pb.FileRequest{FileId: up.File.Id}, grpc.MaxCallRecvMsgSize(limit))
	require.NoError(t, err)
	require.Len(t, down.Content, len(content))

	full := bytes.Repeat([]byte{0xCD}, maxUpload)
	_, err = h.client.UploadFile(as(t, 1), &pb.UploadFileRequest{Name: "full.bin", Content: full})
	require.NoError(t, err)

	over := make([]byte, limit)
	_, err = h.client.UploadFile(as(t, 1), &pb.UploadFileRequest{Name: "over.bin", Content: over})
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestServer_ListActivity(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	resp, err := h.client.ListActivity(as(t, 1), &pb.ListActivityRequest{OnlyMine: true})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	require.JSONEq(t, `{"size":3}`, resp.Entries[0].Details)
}

func TestServer_Subscribe_StreamsEvents(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)
	ctx, cancel := context.WithCancel(as(t, 1))
	defer cancel()

	stream, err := h.client.Subscribe(ctx, &pb.SubscribeRequest{})
	require.NoError(t, err)
	md, err := stream.Header()
	require.NoError(t, err)
	require.NotEmpty(t, md.Get("x-session-id"))
	require.Len(t, h.registry.SessionsFor(1), 1)

	require.NoError(t, h.registry.Deliver(context.Background(), fanout.Event{
		ID: "e1", Kind: fanout.KindShareNew, Target: fanout.ToUsers(1), Payload: []byte(`{"file_id":3}`),
	}))
	require.NoError(t, h.registry.Deliver(context.Background(), fanout.Event{
		ID: "e2", Kind: fanout.KindAnnouncement, Target: fanout.ToTopic(fanout.TopicAnnouncements),
	}))

	ev, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, "e1", ev.Id)
	require.JSONEq(t, `{"file_id":3}`, string(ev.Payload))
	ev, err = stream.Recv()
	require.NoError(t, err)
	require.Equal(t, "announcement", ev.Kind)

	cancel()
	require.Eventually(t, func() bool { return len(h.registry.SessionsFor(1)) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServer_Subscribe_RequiresToken(t *testing.T) {
	t.Parallel()
	h := startBufGRPC(t)

	stream, err := h.client.Subscribe(context.Background(), &pb.SubscribeRequest{})
	if err == nil {
		_, err = stream.Recv()
	}
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}
