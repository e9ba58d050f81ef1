package repository

import (
	"context"

	"github.com/and161185/officehub/internal/model"
)

// FileRepository stores file metadata.
type FileRepository interface {
	// Create inserts file metadata and fills ID and timestamps.
	Create(ctx context.Context, f *model.File) error
	// GetByID loads a file by ID.
	GetByID(ctx context.Context, id int64) (*model.File, error)
	// TogglePublic flips the visibility flag and returns the updated row.
	TogglePublic(ctx context.Context, id int64) (*model.File, error)
	// Delete removes the file and all of its grants atomically.
	Delete(ctx context.Context, id int64) error
	// ListAccessible returns files owned by, public to, or shared with userID.
	ListAccessible(ctx context.Context, userID int64, q model.FileQuery) ([]model.File, error)
	// FoldersOf returns distinct folder paths of files owned by ownerID.
	FoldersOf(ctx context.Context, ownerID int64) ([]string, error)
}

// GrantRepository owns the (file, grantee, capability) share ledger.
type GrantRepository interface {
	// UpsertBatch inserts or refreshes one grant per grantee in a single
	// transaction; uniqueness is enforced by the storage layer.
	UpsertBatch(ctx context.Context, fileID, grantedBy int64, granteeIDs []int64, c model.Capability) ([]model.Grant, error)
	// DeleteForGrantee removes every grant granteeID holds on fileID.
	DeleteForGrantee(ctx context.Context, fileID, granteeID int64) (int64, error)
	// ListByFile returns all grants on a file.
	ListByFile(ctx context.Context, fileID int64) ([]model.Grant, error)
	// CapabilitiesFor returns the capabilities userID holds on fileID.
	CapabilitiesFor(ctx context.Context, fileID, userID int64) ([]model.Capability, error)
}
