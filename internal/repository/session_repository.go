package repository

import (
	"context"
	"time"

	"github.com/auditrecrut/backend/internal/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	// Get returns ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// ProfileCache holds the denormalized profile each request works from.
// Replace swaps the cached copy atomically after a mutation.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Replace(ctx context.Context, profile *domain.UserProfile, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}
