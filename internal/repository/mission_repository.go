package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type MissionRepository interface {
	Create(ctx context.Context, mission *domain.Mission) error
	// GetByRecruiter returns the recruiter's missions newest-first.
	GetByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Mission, error)
	GetIDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error)
	// Delete hard-deletes a mission the recruiter owns; ErrMissionNotFound
	// when the id does not exist or belongs to someone else.
	Delete(ctx context.Context, id, recruiterID string) error
	CountByRecruiter(ctx context.Context, recruiterID string) (int, error)
	Count(ctx context.Context) (int, error)
}
