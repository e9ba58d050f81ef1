// Package access decides whether an actor holds a capability on a file or
// may read a message. Decisions are side-effect free.
package access

import (
	"context"

	"github.com/and161185/officehub/internal/model"
)

// GrantReader returns the capabilities an actor has been granted on a file.
type GrantReader interface {
	CapabilitiesFor(ctx context.Context, fileID, userID int64) ([]model.Capability, error)
}

// CanAccess applies the decision rules in order: ownership, public
// visibility for VIEW/DOWNLOAD, then explicit grants with implication.
func CanAccess(f model.File, actorID int64, want model.Capability, held []model.Capability) bool {
	if decided, ok := decideWithoutGrants(f, actorID, want); decided {
		return ok
	}
	for _, c := range held {
		if c.Implies(want) {
			return true
		}
	}
	return false
}

// decideWithoutGrants resolves the cases that do not need grant rows.
func decideWithoutGrants(f model.File, actorID int64, want model.Capability) (decided, allow bool) {
	if f.OwnerID == actorID {
		return true, true
	}
	if f.Public && (want == model.CapView || want == model.CapDownload) {
		return true, true
	}
	if !want.Valid() {
		return true, false
	}
	return false, false
}

// Resolver loads grants lazily and delegates to CanAccess.
type Resolver struct {
	grants GrantReader
}

// NewResolver constructs a Resolver over the given grant source.
func NewResolver(grants GrantReader) *Resolver {
	return &Resolver{grants: grants}
}

// CanAccess reports whether actorID holds want on f. Grant rows are only
// read when ownership and visibility do not already decide.
func (r *Resolver) CanAccess(ctx context.Context, f model.File, actorID int64, want model.Capability) (bool, error) {
	if decided, ok := decideWithoutGrants(f, actorID, want); decided {
		return ok, nil
	}
	held, err := r.grants.CapabilitiesFor(ctx, f.ID, actorID)
	if err != nil {
		return false, err
	}
	return CanAccess(f, actorID, want, held), nil
}

// CanReadMessage reports whether actorID may read m. isMember is consulted
// for department messages and reflects membership at the time of the call.
func CanReadMessage(m model.Message, actorID int64, isMember func(departmentID int64) bool) bool {
	if m.SenderID == actorID {
		return true
	}
	switch a := m.Audience.(type) {
	case model.Direct:
		return a.RecipientID == actorID
	case model.DepartmentAudience:
		return isMember != nil && isMember(a.DepartmentID)
	case model.Announcement:
		return true
	default:
		return false
	}
}
