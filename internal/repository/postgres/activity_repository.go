package postgres

import (
	"context"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.AuditActivity, error) {
	query := `
		SELECT id, name, description, category, keywords, created_at
		FROM audit_activities
		ORDER BY category ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.AuditActivity
	for rows.Next() {
		var a domain.AuditActivity
		err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Category, pq.Array(&a.Keywords), &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}

func (r *activityRepository) AllExist(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int
	query := `SELECT COUNT(*) FROM audit_activities WHERE id = ANY($1)`
	if err := r.db.GetContext(ctx, &count, query, pq.Array(ids)); err != nil {
		return false, err
	}
	return count == len(uniqueStrings(ids)), nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
