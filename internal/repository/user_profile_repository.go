package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.UserProfile, error)
	SetProfileCompleted(ctx context.Context, userID string, completed bool) error
	Count(ctx context.Context) (int, error)
}
