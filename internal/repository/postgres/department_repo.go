package postgres

import (
	"context"
	"errors"

	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/model"
	"github.com/jackc/pgx/v5"
)

// DepartmentRepo implements DepartmentRepository using PostgreSQL.
type DepartmentRepo struct{ db *DB }

// NewDepartmentRepo constructs a department repository.
func NewDepartmentRepo(db *DB) *DepartmentRepo { return &DepartmentRepo{db: db} }

// GetByID selects a department by ID.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	const q = `SELECT id, name FROM departments WHERE id=$1`
	var d model.Department
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&d.ID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// MemberIDs lists current members ordered by user id.
func (r *DepartmentRepo) MemberIDs(ctx context.Context, departmentID int64) ([]int64, error) {
	const q = `SELECT user_id FROM department_members WHERE department_id=$1 ORDER BY user_id`
	return queryIDs(ctx, r.db.Pool, q, departmentID)
}

// IsMember checks a single membership row.
func (r *DepartmentRepo) IsMember(ctx context.Context, departmentID, userID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM department_members WHERE department_id=$1 AND user_id=$2)`
	var ok bool
	if err := r.db.Pool.QueryRow(ctx, q, departmentID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// DepartmentIDsOf lists the departments a user belongs to.
func (r *DepartmentRepo) DepartmentIDsOf(ctx context.Context, userID int64) ([]int64, error) {
	const q = `SELECT department_id FROM department_members WHERE user_id=$1 ORDER BY department_id`
	return queryIDs(ctx, r.db.Pool, q, userID)
}
