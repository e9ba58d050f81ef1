package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/and161185/officehub/internal/access"
	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/content"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
	"go.uber.org/zap"
)

// Upload describes one incoming file.
type Upload struct {
	Name     string
	Folder   string
	MimeType string
	Body     io.Reader
}

// FileService manages stored files and their visibility.
type FileService interface {
	// Upload stores bytes, then metadata owned by the actor.
	Upload(ctx context.Context, actor model.Principal, up Upload) (*model.File, error)
	// Get returns metadata of a file the actor can view.
	Get(ctx context.Context, actor model.Principal, id int64) (*model.File, error)
	// Download opens the bytes of a file the actor can download.
	Download(ctx context.Context, actor model.Principal, id int64) (*model.File, io.ReadCloser, error)
	// Delete removes an owned file together with its grants.
	Delete(ctx context.Context, actor model.Principal, id int64) error
	// ToggleVisibility flips an owned file between public and private.
	ToggleVisibility(ctx context.Context, actor model.Principal, id int64) (*model.File, error)
	// ListAccessible lists owned, public and shared files.
	ListAccessible(ctx context.Context, actor model.Principal, q model.FileQuery) ([]model.File, error)
	// Folders lists the folders the actor has files in.
	Folders(ctx context.Context, actor model.Principal) ([]string, error)
}

type FileServiceImpl struct {
	files    repository.FileRepository
	store    content.Store
	resolver *access.Resolver
	audit    Auditor
	log      *zap.Logger
}

// NewFileService wires the file lifecycle.
func NewFileService(
	files repository.FileRepository,
	grants access.GrantReader,
	store content.Store,
	auditor Auditor,
	log *zap.Logger,
) *FileServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileServiceImpl{
		files:    files,
		store:    store,
		resolver: access.NewResolver(grants),
		audit:    auditor,
		log:      log.Named("files"),
	}
}

func (s *FileServiceImpl) Upload(ctx context.Context, actor model.Principal, up Upload) (*model.File, error) {
	name := strings.TrimSpace(up.Name)
	if name == "" {
		return nil, fmt.Errorf("file name: %w", errs.ErrMissingField)
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("file name %q: %w", name, errs.ErrInvalidArgument)
	}
	folder, err := normalizeFolder(up.Folder)
	if err != nil {
		return nil, err
	}
	if up.Body == nil {
		return nil, fmt.Errorf("file body: %w", errs.ErrMissingField)
	}
	ext := filepath.Ext(name)
	mt := strings.TrimSpace(up.MimeType)
	if mt == "" {
		mt = mime.TypeByExtension(ext)
	}
	if mt == "" {
		mt = "application/octet-stream"
	}

	obj, err := s.store.Put(ctx, up.Body)
	if err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}
	f := &model.File{
		Filename:     obj.Handle + ext,
		OriginalName: name,
		Handle:       obj.Handle,
		Checksum:     obj.Checksum,
		Size:         obj.Size,
		MimeType:     mt,
		FolderPath:   folder,
		OwnerID:      actor.UserID,
	}
	if err := s.files.Create(ctx, f); err != nil {
		if derr := s.store.Delete(context.WithoutCancel(ctx), obj.Handle); derr != nil {
			s.log.Warn("orphaned content", zap.String("handle", obj.Handle), zap.Error(derr))
		}
		return nil, fmt.Errorf("store file metadata: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: audit.ActionFileUpload,
		EntityType: model.EntityFile, EntityID: f.ID,
		Details: map[string]any{"filename": f.OriginalName, "size": f.Size, "folder": f.FolderPath},
	})
	return f, nil
}

// load fetches a file and checks the capability, keeping 404 apart from 403.
func (s *FileServiceImpl) load(ctx context.Context, actor model.Principal, id int64, want model.Capability) (*model.File, error) {
	f, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w", id, err)
	}
	ok, err := s.resolver.CanAccess(ctx, *f, actor.UserID, want)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.audit.Record(ctx, audit.Entry{
			UserID: actor.UserID, Action: audit.ActionFileAccessDenied,
			EntityType: model.EntityFile, EntityID: f.ID,
			Details: map[string]any{"permission": string(want)},
		})
		return nil, fmt.Errorf("%s file %d: %w", strings.ToLower(string(want)), id, errs.ErrPermissionDenied)
	}
	return f, nil
}

func (s *FileServiceImpl) Get(ctx context.Context, actor model.Principal, id int64) (*model.File, error) {
	return s.load(ctx, actor, id, model.CapView)
}

func (s *FileServiceImpl) Download(ctx context.Context, actor model.Principal, id int64) (*model.File, io.ReadCloser, error) {
	f, err := s.load(ctx, actor, id, model.CapDownload)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Get(ctx, f.Handle)
	if err != nil {
		return nil, nil, fmt.Errorf("content of file %d: %w", id, err)
	}
	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: audit.ActionFileDownload,
		EntityType: model.EntityFile, EntityID: f.ID,
		Details: map[string]any{"filename": f.OriginalName},
	})
	return f, rc, nil
}

// owned loads a file the actor must own. A refusal is audited as denied.
func (s *FileServiceImpl) owned(ctx context.Context, actor model.Principal, id int64, denied string) (*model.File, error) {
	f, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w", id, err)
	}
	if f.OwnerID != actor.UserID {
		s.audit.Record(ctx, audit.Entry{
			UserID: actor.UserID, Action: denied,
			EntityType: model.EntityFile, EntityID: f.ID,
		})
		return nil, fmt.Errorf("file %d: %w", id, errs.ErrPermissionDenied)
	}
	return f, nil
}

// Delete removes metadata and grants first; bytes go afterwards, best effort.
func (s *FileServiceImpl) Delete(ctx context.Context, actor model.Principal, id int64) error {
	f, err := s.owned(ctx, actor, id, audit.ActionFileDeleteDenied)
	if err != nil {
		return err
	}
	if err := s.files.Delete(ctx, f.ID); err != nil {
		return fmt.Errorf("delete file %d: %w", id, err)
	}
	if err := s.store.Delete(context.WithoutCancel(ctx), f.Handle); err != nil {
		s.log.Warn("content not removed", zap.Int64("file", f.ID), zap.String("handle", f.Handle), zap.Error(err))
	}
	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: audit.ActionFileDelete,
		EntityType: model.EntityFile, EntityID: f.ID,
		Details: map[string]any{"filename": f.OriginalName},
	})
	return nil
}

func (s *FileServiceImpl) ToggleVisibility(ctx context.Context, actor model.Principal, id int64) (*model.File, error) {
	f, err := s.owned(ctx, actor, id, audit.ActionFileVisibilityDenied)
	if err != nil {
		return nil, err
	}
	f, err = s.files.TogglePublic(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle file %d: %w", id, err)
	}
	action := audit.ActionFileMakePrivate
	if f.Public {
		action = audit.ActionFileMakePublic
	}
	s.audit.Record(ctx, audit.Entry{
		UserID: actor.UserID, Action: action,
		EntityType: model.EntityFile, EntityID: f.ID,
		Details: map[string]any{"filename": f.OriginalName},
	})
	return f, nil
}

func (s *FileServiceImpl) ListAccessible(ctx context.Context, actor model.Principal, q model.FileQuery) ([]model.File, error) {
	if q.Folder != "" {
		folder, err := normalizeFolder(q.Folder)
		if err != nil {
			return nil, err
		}
		q.Folder = folder
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Page = q.Page.Normalize(defaultPageSize, maxPageSize)
	return s.files.ListAccessible(ctx, actor.UserID, q)
}

func (s *FileServiceImpl) Folders(ctx context.Context, actor model.Principal) ([]string, error) {
	return s.files.FoldersOf(ctx, actor.UserID)
}

// normalizeFolder returns a cleaned absolute folder path; empty means root.
func normalizeFolder(folder string) (string, error) {
	folder = strings.TrimSpace(strings.ReplaceAll(folder, `\`, "/"))
	if folder == "" {
		return "/", nil
	}
	for _, seg := range strings.Split(folder, "/") {
		if seg == ".." {
			return "", fmt.Errorf("folder %q: %w", folder, errs.ErrInvalidArgument)
		}
	}
	return path.Clean("/" + folder), nil
}
