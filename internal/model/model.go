// Package model defines domain entities used by services and repositories.
package model

import (
	"strings"
	"time"
)

// Role is a coarse organisational role carried by every principal.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// ParseRole normalizes a role string; unknown values yield ok=false.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return r, true
	default:
		return "", false
	}
}

// CanAnnounce reports whether the role may send announcements.
func (r Role) CanAnnounce() bool { return r == RoleAdmin || r == RoleManager }

// Principal is the already-authenticated caller of a core operation.
type Principal struct {
	UserID int64
	Role   Role
}

// User represents an account. Credentials live outside this service.
type User struct {
	ID        int64
	Username  string
	FullName  string
	Email     string
	Role      Role
	Active    bool
	CreatedAt time.Time
}

// DisplayName returns the full name, falling back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Department is a named group of users used for message routing.
type Department struct {
	ID   int64
	Name string
}

// Page bounds a listing query.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page into [1, max] with a default of def.
func (p Page) Normalize(def, max int) Page {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
