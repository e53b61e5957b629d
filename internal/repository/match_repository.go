package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type MatchRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	// GetByMissionIDs returns matches for the given missions ordered by
	// compatibility_score descending, ties broken by created_at descending
	// then id.
	GetByMissionIDs(ctx context.Context, missionIDs []string) ([]*domain.Match, error)
	CountByCandidate(ctx context.Context, candidateID string) (int, error)
	CountByMissionIDs(ctx context.Context, missionIDs []string) (int, error)
	Count(ctx context.Context) (int, error)
	SetViewed(ctx context.Context, id string, side domain.MatchSide) error
	SetInterested(ctx context.Context, id string, side domain.MatchSide, interested bool) error
}
