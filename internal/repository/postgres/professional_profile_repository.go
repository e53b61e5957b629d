package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type professionalProfileRepository struct {
	db *sqlx.DB
}

func NewProfessionalProfileRepository(db *sqlx.DB) repository.ProfessionalProfileRepository {
	return &professionalProfileRepository{db: db}
}

func (r *professionalProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.ProfessionalProfile, error) {
	var p domain.ProfessionalProfile
	query := `SELECT * FROM professional_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *professionalProfileRepository) Upsert(ctx context.Context, profile *domain.ProfessionalProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	query := `
		INSERT INTO professional_profiles (
			id, user_id, years_experience, current_position, cv_url,
			best_skills, passion_description, preferred_work_environment, additional_info
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			years_experience = EXCLUDED.years_experience,
			current_position = EXCLUDED.current_position,
			cv_url = EXCLUDED.cv_url,
			best_skills = EXCLUDED.best_skills,
			passion_description = EXCLUDED.passion_description,
			preferred_work_environment = EXCLUDED.preferred_work_environment,
			additional_info = EXCLUDED.additional_info,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.YearsExperience, profile.CurrentPosition,
		profile.CVURL, profile.BestSkills, profile.PassionDescription,
		profile.PreferredWorkEnvironment, profile.AdditionalInfo,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}
