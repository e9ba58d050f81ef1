// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/officehub/internal/model"
)

// UserRepository provides read access to accounts and the active-user set.
type UserRepository interface {
	// Create inserts a new user and fills its ID and CreatedAt.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// ExistingIDs returns the subset of ids that refer to existing users.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	// ListActive returns every active user.
	ListActive(ctx context.Context) ([]model.User, error)
}

// DepartmentRepository answers the membership queries message routing needs.
type DepartmentRepository interface {
	// GetByID loads a department by ID.
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	// MemberIDs returns the current members of a department.
	MemberIDs(ctx context.Context, departmentID int64) ([]int64, error)
	// IsMember reports whether userID currently belongs to the department.
	IsMember(ctx context.Context, departmentID, userID int64) (bool, error)
	// DepartmentIDsOf returns the departments userID currently belongs to.
	DepartmentIDsOf(ctx context.Context, userID int64) ([]int64, error)
}
