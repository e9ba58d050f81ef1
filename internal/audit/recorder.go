// Package audit appends activity entries for security-relevant operations.
package audit

import (
	"context"
	"encoding/json"

	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
	"go.uber.org/zap"
)

// Action names stored in activity_logs.action.
const (
	ActionFileShare            = "FILE_SHARE"
	ActionFileShareDenied      = "FILE_SHARE_DENIED"
	ActionFileUnshare          = "FILE_UNSHARE"
	ActionMessageSend          = "MESSAGE_SEND"
	ActionMessageDenied        = "MESSAGE_SEND_DENIED"
	ActionMessageReadDenied    = "MESSAGE_READ_DENIED"
	ActionFileUpload           = "FILE_UPLOAD"
	ActionFileAccessDenied     = "FILE_ACCESS_DENIED"
	ActionFileDownload         = "FILE_DOWNLOAD"
	ActionFileDelete           = "FILE_DELETE"
	ActionFileDeleteDenied     = "FILE_DELETE_DENIED"
	ActionFileMakePublic       = "FILE_MAKE_PUBLIC"
	ActionFileMakePrivate      = "FILE_MAKE_PRIVATE"
	ActionFileVisibilityDenied = "FILE_VISIBILITY_DENIED"
)

// Entry is one record to append.
type Entry struct {
	UserID     int64
	Action     string
	EntityType string
	EntityID   int64
	Details    map[string]any
}

// Recorder writes entries and never fails the caller.
type Recorder struct {
	repo repository.ActivityRepository
	log  *zap.Logger
}

// NewRecorder creates a recorder over repo.
func NewRecorder(repo repository.ActivityRepository, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{repo: repo, log: log.Named("audit")}
}

// Record appends e with the origin found in ctx. Errors are logged.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	o := OriginFrom(ctx)
	row := model.ActivityEntry{
		UserID:     e.UserID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		IPAddress:  o.IP,
		UserAgent:  o.UserAgent,
	}
	if len(e.Details) > 0 {
		b, err := json.Marshal(e.Details)
		if err != nil {
			r.log.Warn("encode audit details", zap.String("action", e.Action), zap.Error(err))
		} else {
			row.Details = b
		}
	}
	// The entry outlives a canceled request.
	if err := r.repo.Append(context.WithoutCancel(ctx), row); err != nil {
		r.log.Error("append audit entry",
			zap.Int64("user", e.UserID),
			zap.String("action", e.Action),
			zap.Int64("entity", e.EntityID),
			zap.Error(err))
	}
}
