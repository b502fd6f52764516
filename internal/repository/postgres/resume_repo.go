package postgres

import (
	"context"
	"errors"

	"career-platform-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (user_id, filename, content, storage_key)
              VALUES ($1, $2, $3, $4) RETURNING id, uploaded_at`
	return r.db.QueryRow(ctx, query,
		resume.UserID, resume.Filename, resume.Content, resume.StorageKey,
	).Scan(&resume.ID, &resume.UploadedAt)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT id, user_id, filename, content, storage_key, uploaded_at FROM resumes WHERE id = $1`
	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.UserID, &resume.Filename, &resume.Content, &resume.StorageKey, &resume.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) GetLatestByUser(ctx context.Context, userID int64) (*domain.Resume, error) {
	query := `SELECT id, user_id, filename, content, storage_key, uploaded_at
              FROM resumes WHERE user_id = $1 ORDER BY uploaded_at DESC, id DESC LIMIT 1`
	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&resume.ID, &resume.UserID, &resume.Filename, &resume.Content, &resume.StorageKey, &resume.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}
