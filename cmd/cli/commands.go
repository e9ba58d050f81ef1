package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pb "github.com/and161185/officehub/gen/go/hub/v1"
)

type command func(ctx context.Context, api pb.HubClient, args []string, out io.Writer) error

var commands = map[string]command{
	"files":    cmdFiles,
	"share":    cmdShare,
	"msg":      cmdMsg,
	"notes":    cmdNotes,
	"activity": cmdActivity,
	"watch":    cmdWatch,
}

var errUsage = errors.New("bad usage; run without arguments for help")

// ------- parsers -------

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad id %q", s)
	}
	return id, nil
}

func parseIDs(s string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, errors.New("no ids given")
	}
	return out, nil
}

// sub splits "<sub> [args]".
func sub(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

// positionalID reads the single positional id left after flag parsing.
func positionalID(fs *flag.FlagSet) (int64, error) {
	if fs.NArg() != 1 {
		return 0, errUsage
	}
	return parseID(fs.Arg(0))
}

// pageFlags registers -limit and -offset. The returned func yields nil
// when neither was set, leaving paging to the server.
func pageFlags(fs *flag.FlagSet) func() *pb.Page {
	limit := fs.Int("limit", 0, "page size")
	offset := fs.Int("offset", 0, "page offset")
	return func() *pb.Page {
		if *limit == 0 && *offset == 0 {
			return nil
		}
		return &pb.Page{Limit: int32(*limit), Offset: int32(*offset)}
	}
}

var mailboxes = map[string]pb.Mailbox{
	"direct":        pb.Mailbox_MAILBOX_DIRECT,
	"department":    pb.Mailbox_MAILBOX_DEPARTMENT,
	"announcements": pb.Mailbox_MAILBOX_ANNOUNCEMENTS,
}

// ------- commands -------

func cmdFiles(ctx context.Context, api pb.HubClient, args []string, out io.Writer) error {
	name, rest := sub(args)
	fs := flag.NewFlagSet("files "+name, flag.ContinueOnError)
	switch name {
	case "ls":
		folder := fs.String("folder", "", "folder")
		search := fs.String("search", "", "name contains")
		page := pageFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := api.ListFiles(ctx, &pb.ListFilesRequest{Folder: *folder, Search: *search, Page: page()})
		if err != nil {
			return err
		}
		printJSON(out, resp.Files)
	case "folders":
		resp, err := api.ListFolders(ctx, &pb.Empty{})
		if err != nil {
			return err
		}
		printJSON(out, resp.Folders)
	case "upload":
		folder := fs.String("folder", "", "target folder")
		as := fs.String("name", "", "stored name (default: base name of path)")
		mt := fs.String("type", "", "MIME type (default: by extension)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return errUsage
		}
		p := fs.Arg(0)
		b, err := readAll(p)
		if err != nil {
			return err
		}
		if *as == "" {
			*as = filepath.Base(p)
		}
		resp, err := api.UploadFile(ctx, &pb.UploadFileRequest{Name: *as, Folder: *folder, MimeType: *mt, Content: b})
		if err != nil {
			return err
		}
		printJSON(out, resp.File)
	case "download":
		dst := fs.String("o", "", "output path (default: original name, - for stdout)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := positionalID(fs)
		if err != nil {
			return err
		}
		resp, err := api.DownloadFile(ctx, &pb.FileRequest{FileId: id})
		if err != nil {
			return err
		}
		switch *dst {
		case "-":
			_, err = out.Write(resp.Content)
			return err
		case "":
			*dst = filepath.Base(resp.GetFile().GetName())
		}
		if err := os.WriteFile(*dst, resp.Content, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %s (%d bytes)\n", *dst, len(resp.Content))
	case "rm":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := positionalID(fs)
		if err != nil {
			return err
		}
		if _, err := api.DeleteFile(ctx, &pb.FileRequest{FileId: id}); err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")
	case "toggle":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := positionalID(fs)
		if err != nil {
			return err
		}
		resp, err := api.ToggleVisibility(ctx, &pb.FileRequest{FileId: id})
		if err != nil {
			return err
		}
		printJSON(out, resp.File)
	default:
		return errUsage
	}
	return nil
}

func cmdShare(ctx context.Context, api pb.HubClient, args []string, out io.Writer) error {
	name, rest := sub(args)
	fs := flag.NewFlagSet("share "+name, flag.ContinueOnError)
	file := fs.Int64("file", 0, "file id")
	switch name {
	case "grant":
		users := fs.String("users", "", "comma-separated user ids")
		perm := fs.String("perm", "VIEW", "VIEW, EDIT or DOWNLOAD")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ids, err := parseIDs(*users)
		if err != nil {
			return err
		}
		resp, err := api.GrantShare(ctx, &pb.GrantShareRequest{FileId: *file, UserIds: ids, Permission: *perm})
		if err != nil {
			return err
		}
		printJSON(out, resp.Grants)
	case "revoke":
		user := fs.Int64("user", 0, "user id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if _, err := api.RevokeShare(ctx, &pb.RevokeShareRequest{FileId: *file, UserId: *user}); err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")
	case "ls":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := api.ListShares(ctx, &pb.FileRequest{FileId: *file})
		if err != nil {
			return err
		}
		printJSON(out, resp.Grants)
	case "check":
		perm := fs.String("perm", "VIEW", "permission to test")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := api.CheckAccess(ctx, &pb.CheckAccessRequest{FileId: *file, Permission: *perm})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp.Allowed)
	default:
		return errUsage
	}
	return nil
}

func cmdMsg(ctx context.Context, api pb.HubClient, args []string, out io.Writer) error {
	name, rest := sub(args)
	fs := flag.NewFlagSet("msg "+name, flag.ContinueOnError)
	switch name {
	case "send":
		typ := fs.String("type", "DIRECT", "DIRECT, DEPARTMENT or ANNOUNCEMENT")
		to := fs.Int64("to", 0, "recipient user id (DIRECT)")
		dept := fs.Int64("dept", 0, "department id (DEPARTMENT)")
		subject := fs.String("subject", "", "subject")
		body := fs.String("body", "", "message text, - reads stdin")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		text := *body
		if text == "-" {
			b, err := readAll("-")
			if err != nil {
				return err
			}
			text = string(b)
		}
		resp, err := api.SendMessage(ctx, &pb.SendMessageRequest{
			Type: strings.ToUpper(*typ), RecipientId: *to, DepartmentId: *dept, Subject: *subject, Content: text,
		})
		if err != nil {
			return err
		}
		printJSON(out, resp)
	case "ls":
		box := fs.String("box", "direct", "direct, department or announcements")
		dept := fs.Int64("dept", 0, "department id (0: all of mine)")
		page := pageFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		mb, ok := mailboxes[strings.ToLower(*box)]
		if !ok {
			return fmt.Errorf("unknown mailbox %q", *box)
		}
		resp, err := api.ListMessages(ctx, &pb.ListMessagesRequest{Box: mb, DepartmentId: *dept, Page: page()})
		if err != nil {
			return err
		}
		printJSON(out, resp)
	case "get", "read":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := positionalID(fs)
		if err != nil {
			return err
		}
		if name == "read" {
			if _, err := api.MarkMessageRead(ctx, &pb.MessageRequest{MessageId: id}); err != nil {
				return err
			}
			fmt.Fprintln(out, "ok")
			return nil
		}
		resp, err := api.GetMessage(ctx, &pb.MessageRequest{MessageId: id})
		if err != nil {
			return err
		}
		printJSON(out, resp.Message)
	default:
		return errUsage
	}
	return nil
}

func cmdNotes(ctx context.Context, api pb.HubClient, args []string, out io.Writer) error {
	name, rest := sub(args)
	fs := flag.NewFlagSet("notes "+name, flag.ContinueOnError)
	switch name {
	case "ls", "":
		unread := fs.Bool("unread", false, "unread only")
		page := pageFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		resp, err := api.ListNotifications(ctx, &pb.ListNotificationsRequest{UnreadOnly: *unread, Page: page()})
		if err != nil {
			return err
		}
		printJSON(out, resp)
	case "read":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := positionalID(fs)
		if err != nil {
			return err
		}
		if _, err := api.MarkNotificationRead(ctx, &pb.NotificationRequest{NotificationId: id}); err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")
	case "read-all":
		resp, err := api.MarkAllNotificationsRead(ctx, &pb.Empty{})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d marked read\n", resp.Updated)
	default:
		return errUsage
	}
	return nil
}

func cmdActivity(ctx context.Context, api pb.HubClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("activity", flag.ContinueOnError)
	mine := fs.Bool("mine", false, "only my own entries (admins see everyone by default)")
	page := pageFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := api.ListActivity(ctx, &pb.ListActivityRequest{OnlyMine: *mine, Page: page()})
	if err != nil {
		return err
	}
	printJSON(out, resp.Entries)
	return nil
}

// cmdWatch prints one JSON line per event until the stream ends.
func cmdWatch(ctx context.Context, api pb.HubClient, _ []string, out io.Writer) error {
	stream, err := api.Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		return err
	}
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		b, _ := json.Marshal(ev)
		fmt.Fprintln(out, string(b))
	}
}

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}
