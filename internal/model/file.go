package model

import (
	"strings"
	"time"
)

// Capability is a named right over a stored file.
type Capability string

const (
	CapView     Capability = "VIEW"
	CapEdit     Capability = "EDIT"
	CapDownload Capability = "DOWNLOAD"
)

// implied lists, for each held capability, every capability it satisfies.
var implied = map[Capability][]Capability{
	CapView:     {CapView},
	CapEdit:     {CapEdit, CapView},
	CapDownload: {CapDownload, CapView},
}

// ParseCapability accepts any case; unknown names yield ok=false.
func ParseCapability(s string) (Capability, bool) {
	c := Capability(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := implied[c]
	return c, ok
}

// Valid reports whether c is one of the enumerated capabilities.
func (c Capability) Valid() bool {
	_, ok := implied[c]
	return ok
}

// Implies reports whether holding c satisfies a request for want.
func (c Capability) Implies(want Capability) bool {
	for _, x := range implied[c] {
		if x == want {
			return true
		}
	}
	return false
}

// File is a stored document. Bytes live in the content store under Handle.
type File struct {
	ID           int64
	Filename     string // stored name
	OriginalName string
	Handle       string // content store handle
	Checksum     string
	Size         int64
	MimeType     string
	FolderPath   string
	OwnerID      int64
	Public       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Grant is a persisted capability assignment on a file.
type Grant struct {
	ID         int64
	FileID     int64
	GranteeID  int64
	Capability Capability
	GrantedBy  int64
	CreatedAt  time.Time
}

// FileQuery filters accessible-file listings.
type FileQuery struct {
	Folder string // exact folder path; empty means any
	Search string // case-insensitive substring of the original name
	Page   Page
}
