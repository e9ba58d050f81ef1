package service

import (
	"context"

	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
)

// ActivityService reads the audit trail.
type ActivityService interface {
	// List returns entries newest first. Admins see everyone unless onlyMine is set.
	List(ctx context.Context, actor model.Principal, onlyMine bool, p model.Page) ([]model.ActivityEntry, error)
}

type ActivityServiceImpl struct {
	repo repository.ActivityRepository
}

// NewActivityService constructs an ActivityService.
func NewActivityService(repo repository.ActivityRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{repo: repo}
}

func (s *ActivityServiceImpl) List(ctx context.Context, actor model.Principal, onlyMine bool, p model.Page) ([]model.ActivityEntry, error) {
	userID := actor.UserID
	if actor.Role == model.RoleAdmin && !onlyMine {
		userID = 0
	}
	return s.repo.List(ctx, userID, p.Normalize(defaultPageSize, maxPageSize))
}
