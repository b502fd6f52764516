package postgres

import (
	"context"
	"errors"

	"career-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type analysisRepo struct {
	db *pgxpool.Pool
}

func NewAnalysisRepository(db *pgxpool.Pool) domain.AnalysisRepository {
	return &analysisRepo{db: db}
}

func (r *analysisRepo) Create(ctx context.Context, analysis *domain.ResumeAnalysis) error {
	query := `INSERT INTO resume_analyses
              (resume_id, user_id, summary, technical_skills, soft_skills, strengths, weaknesses, missing_skills, suggestions, score)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		analysis.ResumeID, analysis.UserID, analysis.Summary,
		pq.Array(analysis.TechnicalSkills), pq.Array(analysis.SoftSkills),
		pq.Array(analysis.Strengths), pq.Array(analysis.Weaknesses),
		pq.Array(analysis.MissingSkills), pq.Array(analysis.Suggestions),
		analysis.Score,
	).Scan(&analysis.ID, &analysis.CreatedAt)
}

func (r *analysisRepo) GetLatestByUser(ctx context.Context, userID int64) (*domain.ResumeAnalysis, error) {
	query := `SELECT id, resume_id, user_id, summary, technical_skills, soft_skills, strengths, weaknesses, missing_skills, suggestions, score, created_at
              FROM resume_analyses WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`

	var a domain.ResumeAnalysis
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&a.ID, &a.ResumeID, &a.UserID, &a.Summary,
		pq.Array(&a.TechnicalSkills), pq.Array(&a.SoftSkills),
		pq.Array(&a.Strengths), pq.Array(&a.Weaknesses),
		pq.Array(&a.MissingSkills), pq.Array(&a.Suggestions),
		&a.Score, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
