package postgres

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type missionRepository struct {
	db *sqlx.DB
}

func NewMissionRepository(db *sqlx.DB) repository.MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) Create(ctx context.Context, mission *domain.Mission) error {
	if mission.ID == "" {
		mission.ID = uuid.NewString()
	}
	query := `
		INSERT INTO missions (
			id, recruiter_id, title, description, requirements,
			activities, keywords, location, contract_type, salary_range, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		mission.ID, mission.RecruiterID, mission.Title, mission.Description,
		mission.Requirements, pq.Array(mission.Activities), pq.Array(mission.Keywords),
		mission.Location, mission.ContractType, mission.SalaryRange, mission.IsActive,
	).Scan(&mission.CreatedAt, &mission.UpdatedAt)
}

func (r *missionRepository) GetByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Mission, error) {
	query := `
		SELECT id, recruiter_id, title, description, requirements,
		       activities, keywords, location, contract_type, salary_range,
		       is_active, created_at, updated_at
		FROM missions
		WHERE recruiter_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []*domain.Mission
	for rows.Next() {
		var m domain.Mission
		err := rows.Scan(
			&m.ID, &m.RecruiterID, &m.Title, &m.Description, &m.Requirements,
			pq.Array(&m.Activities), pq.Array(&m.Keywords), &m.Location,
			&m.ContractType, &m.SalaryRange, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		missions = append(missions, &m)
	}
	return missions, rows.Err()
}

func (r *missionRepository) GetIDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error) {
	var ids []string
	query := `SELECT id FROM missions WHERE recruiter_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, recruiterID)
	return ids, err
}

func (r *missionRepository) Delete(ctx context.Context, id, recruiterID string) error {
	query := `DELETE FROM missions WHERE id = $1 AND recruiter_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, recruiterID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMissionNotFound
	}
	return nil
}

func (r *missionRepository) CountByRecruiter(ctx context.Context, recruiterID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM missions WHERE recruiter_id = $1`
	err := r.db.GetContext(ctx, &count, query, recruiterID)
	return count, err
}

func (r *missionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM missions`)
	return count, err
}
