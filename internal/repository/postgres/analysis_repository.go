package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type analysisRepository struct {
	db *sqlx.DB
}

func NewAnalysisRepository(db *sqlx.DB) repository.AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) GetByUserID(ctx context.Context, userID string) (*domain.ProfileAnalysis, error) {
	var a domain.ProfileAnalysis
	query := `
		SELECT id, user_id, profile_type, profile_description,
		       identified_strengths, recommended_activities, overall_score,
		       created_at, updated_at
		FROM profile_analyses WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&a.ID, &a.UserID, &a.ProfileType, &a.ProfileDescription,
		pq.Array(&a.IdentifiedStrengths), pq.Array(&a.RecommendedActivities),
		&a.OverallScore, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM profile_analyses`)
	return count, err
}
