package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type ProfessionalProfileRepository interface {
	// GetByUserID returns ErrProfileNotFound when no record exists yet.
	GetByUserID(ctx context.Context, userID string) (*domain.ProfessionalProfile, error)
	Upsert(ctx context.Context, profile *domain.ProfessionalProfile) error
}
