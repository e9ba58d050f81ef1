// Package content stores file bytes outside the database.
//
// Objects are addressed by an opaque handle (a UUIDv4 string). The metadata
// row in Postgres keeps the handle and the checksum computed while writing.
package content

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/and161185/officehub/internal/errs"
	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/blake2b"
)

// ErrTooLarge is returned when a stream exceeds the configured limit.
var ErrTooLarge = fmt.Errorf("%w: content too large", errs.ErrInvalidArgument)

// Object describes a stored blob.
type Object struct {
	Handle   string
	Size     int64
	Checksum string
}

// Store is the content collaborator used by the file service.
type Store interface {
	Put(ctx context.Context, r io.Reader) (Object, error)
	Get(ctx context.Context, handle string) (io.ReadCloser, error)
	Delete(ctx context.Context, handle string) error
}

// Disk keeps one file per handle under a root directory.
type Disk struct {
	root    string
	maxSize int64
}

var _ Store = (*Disk)(nil)

// NewDisk creates root if needed. maxSize <= 0 disables the limit.
func NewDisk(root string, maxSize int64) (*Disk, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", root, err)
	}
	return &Disk{root: root, maxSize: maxSize}, nil
}

// Put streams r into a temp file, hashing on the fly, then renames it into place.
func (d *Disk) Put(ctx context.Context, r io.Reader) (Object, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Object{}, err
	}
	handle := id.String()
	final := d.path(handle)
	tmp := final + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return Object{}, fmt.Errorf("create temp file: %w", err)
	}
	h, _ := blake2b.New256(nil)

	src := io.Reader(&ctxReader{ctx: ctx, r: r})
	if d.maxSize > 0 {
		src = io.LimitReader(src, d.maxSize+1)
	}
	n, err := io.Copy(f, io.TeeReader(src, h))
	if err == nil && d.maxSize > 0 && n > d.maxSize {
		err = ErrTooLarge
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, final)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return Object{}, err
	}
	return Object{Handle: handle, Size: n, Checksum: hex.EncodeToString(h.Sum(nil))}, nil
}

// Get opens a stored object. The caller closes the reader.
func (d *Disk) Get(_ context.Context, handle string) (io.ReadCloser, error) {
	if !validHandle(handle) {
		return nil, errs.ErrNotFound
	}
	f, err := os.Open(d.path(handle))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes an object; a missing object is not an error.
func (d *Disk) Delete(_ context.Context, handle string) error {
	if !validHandle(handle) {
		return nil
	}
	err := os.Remove(d.path(handle))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// path maps a validated handle to its file.
func (d *Disk) path(handle string) string {
	return filepath.Join(d.root, handle)
}

func validHandle(h string) bool {
	_, err := uuid.FromString(h)
	return err == nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
