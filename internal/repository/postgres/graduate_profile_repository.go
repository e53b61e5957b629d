package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type graduateProfileRepository struct {
	db *sqlx.DB
}

func NewGraduateProfileRepository(db *sqlx.DB) repository.GraduateProfileRepository {
	return &graduateProfileRepository{db: db}
}

func (r *graduateProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.GraduateProfile, error) {
	var p domain.GraduateProfile
	query := `
		SELECT id, user_id, education_level, institution, graduation_year,
		       program_description, subjects_liked, thesis_title, thesis_problem,
		       thesis_favorite_part, additional_info, cv_url, created_at, updated_at
		FROM graduate_profiles WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.EducationLevel, &p.Institution, &p.GraduationYear,
		&p.ProgramDescription, pq.Array(&p.SubjectsLiked), &p.ThesisTitle,
		&p.ThesisProblem, &p.ThesisFavoritePart, &p.AdditionalInfo, &p.CVURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *graduateProfileRepository) Upsert(ctx context.Context, profile *domain.GraduateProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	query := `
		INSERT INTO graduate_profiles (
			id, user_id, education_level, institution, graduation_year,
			program_description, subjects_liked, thesis_title, thesis_problem,
			thesis_favorite_part, additional_info, cv_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			education_level = EXCLUDED.education_level,
			institution = EXCLUDED.institution,
			graduation_year = EXCLUDED.graduation_year,
			program_description = EXCLUDED.program_description,
			subjects_liked = EXCLUDED.subjects_liked,
			thesis_title = EXCLUDED.thesis_title,
			thesis_problem = EXCLUDED.thesis_problem,
			thesis_favorite_part = EXCLUDED.thesis_favorite_part,
			additional_info = EXCLUDED.additional_info,
			cv_url = EXCLUDED.cv_url,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.EducationLevel, profile.Institution,
		profile.GraduationYear, profile.ProgramDescription, pq.Array(profile.SubjectsLiked),
		profile.ThesisTitle, profile.ThesisProblem, profile.ThesisFavoritePart,
		profile.AdditionalInfo, profile.CVURL,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}
