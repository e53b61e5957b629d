package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type AnalysisRepository interface {
	// GetByUserID returns ErrAnalysisNotFound when the user has no analysis.
	GetByUserID(ctx context.Context, userID string) (*domain.ProfileAnalysis, error)
	Count(ctx context.Context) (int, error)
}
