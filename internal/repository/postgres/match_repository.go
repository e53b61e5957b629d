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

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByMissionIDs(ctx context.Context, missionIDs []string) ([]*domain.Match, error) {
	if len(missionIDs) == 0 {
		return nil, nil
	}
	var matches []*domain.Match
	// created_at then id keep the order deterministic across equal scores.
	query := `
		SELECT * FROM matches
		WHERE mission_id = ANY($1)
		ORDER BY compatibility_score DESC, created_at DESC, id
	`
	err := r.db.SelectContext(ctx, &matches, query, pq.Array(missionIDs))
	return matches, err
}

func (r *matchRepository) CountByCandidate(ctx context.Context, candidateID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM matches WHERE candidate_id = $1`
	err := r.db.GetContext(ctx, &count, query, candidateID)
	return count, err
}

func (r *matchRepository) CountByMissionIDs(ctx context.Context, missionIDs []string) (int, error) {
	if len(missionIDs) == 0 {
		return 0, nil
	}
	var count int
	query := `SELECT COUNT(*) FROM matches WHERE mission_id = ANY($1)`
	err := r.db.GetContext(ctx, &count, query, pq.Array(missionIDs))
	return count, err
}

func (r *matchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM matches`)
	return count, err
}

func (r *matchRepository) SetViewed(ctx context.Context, id string, side domain.MatchSide) error {
	column := "recruiter_viewed"
	if side == domain.MatchSideCandidate {
		column = "candidate_viewed"
	}
	query := `UPDATE matches SET ` + column + ` = true, updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) SetInterested(ctx context.Context, id string, side domain.MatchSide, interested bool) error {
	column := "recruiter_interested"
	if side == domain.MatchSideCandidate {
		column = "candidate_interested"
	}
	query := `UPDATE matches SET ` + column + ` = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, interested, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
