package repository

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
)

type ActivityRepository interface {
	// List returns the full catalog ordered by category ascending.
	List(ctx context.Context) ([]*domain.AuditActivity, error)
	// AllExist reports whether every id is a known catalog entry.
	AllExist(ctx context.Context, ids []string) (bool, error)
}
