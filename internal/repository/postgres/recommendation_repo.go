package postgres

import (
	"context"
	"time"

	"career-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type recommendationRepo struct {
	db *pgxpool.Pool
}

func NewRecommendationRepository(db *pgxpool.Pool) domain.RecommendationRepository {
	return &recommendationRepo{db: db}
}

func (r *recommendationRepo) ReplaceForUser(ctx context.Context, userID int64, recs []domain.Recommendation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM recommendations WHERE user_id = $1`, userID); err != nil {
		return err
	}

	insert := `INSERT INTO recommendations (user_id, job_id, match_score) VALUES ($1, $2, $3)`
	for _, rec := range recs {
		if _, err := tx.Exec(ctx, insert, userID, rec.JobID, rec.MatchScore); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *recommendationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.JobMatch, error) {
	query := `SELECT j.id, j.title, j.company, j.location, j.description, j.required_skills,
                     j.salary_range, j.source, j.apply_url, j.posted_at, r.match_score
              FROM recommendations r
              JOIN jobs j ON r.job_id = j.id
              WHERE r.user_id = $1
              ORDER BY r.match_score DESC, j.posted_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.JobMatch
	for rows.Next() {
		var m domain.JobMatch
		var postedAt time.Time
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Company, &m.Location, &m.Description,
			pq.Array(&m.RequiredSkills), &m.Salary, &m.Source, &m.ApplyURL,
			&postedAt, &m.MatchScore,
		); err != nil {
			return nil, err
		}
		m.DaysAgo = int(time.Since(postedAt).Hours() / 24)
		m.TotalRequired = len(m.RequiredSkills)
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}
