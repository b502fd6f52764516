package postgres

import (
	"context"
	"errors"

	"career-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type favoriteRepo struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) domain.FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Add(ctx context.Context, userID, jobID int64) error {
	query := `INSERT INTO favorites (user_id, job_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID, jobID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *favoriteRepo) Remove(ctx context.Context, userID, jobID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	return err
}

func (r *favoriteRepo) IsFavorite(ctx context.Context, userID, jobID int64) (bool, error) {
	var saved bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	).Scan(&saved)
	return saved, err
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Job, error) {
	query := `SELECT j.id, j.title, j.company, j.location, j.description, j.required_skills,
                     j.salary_range, j.job_type, j.source, j.apply_url, j.posted_at
              FROM favorites f
              JOIN jobs j ON f.job_id = j.id
              WHERE f.user_id = $1
              ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
			pq.Array(&job.RequiredSkills), &job.SalaryRange, &job.JobType,
			&job.Source, &job.ApplyURL, &job.PostedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
