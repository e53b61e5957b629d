package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type userProfileRepository struct {
	db *sqlx.DB
}

func NewUserProfileRepository(db *sqlx.DB) repository.UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	query := `
		INSERT INTO user_profiles (
			id, role, first_name, last_name, email, phone,
			company_name, company_description, profile_completed, password_hash
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Role, profile.FirstName, profile.LastName,
		profile.Email, profile.Phone, profile.CompanyName,
		profile.CompanyDescription, profile.ProfileCompleted, profile.PasswordHash,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return domain.ErrEmailAlreadyUsed
	}
	return err
}

func (r *userProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT * FROM user_profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT * FROM user_profiles WHERE email = $1`
	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.UserProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []*domain.UserProfile
	query := `SELECT * FROM user_profiles WHERE id = ANY($1)`
	err := r.db.SelectContext(ctx, &profiles, query, pq.Array(ids))
	return profiles, err
}

func (r *userProfileRepository) SetProfileCompleted(ctx context.Context, userID string, completed bool) error {
	query := `
		UPDATE user_profiles
		SET profile_completed = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, completed, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userProfileRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_profiles`)
	return count, err
}
