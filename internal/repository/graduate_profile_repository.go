package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type GraduateProfileRepository interface {
	// GetByUserID returns ErrProfileNotFound when no record exists yet.
	GetByUserID(ctx context.Context, userID string) (*domain.GraduateProfile, error)
	Upsert(ctx context.Context, profile *domain.GraduateProfile) error
}
