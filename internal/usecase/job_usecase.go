package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	searcher        domain.JobSearcher
	defaultLocation string
	perPage         int
}

func NewJobUsecase(jobRepo domain.JobRepository, searcher domain.JobSearcher, defaultLocation string, perPage int) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		searcher:        searcher,
		defaultLocation: defaultLocation,
		perPage:         perPage,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Company == "" {
		return apperror.BadRequest("Company is required")
	}

	if job.PostedAt.IsZero() {
		job.PostedAt = time.Now()
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = u.perPage
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, pageSize, offset)
}

func (u *jobUsecase) SearchLiveJobs(ctx context.Context, query, location string, limit int) ([]domain.JobPosting, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.BadRequest("Search query is required")
	}
	if location == "" {
		location = u.defaultLocation
	}
	if limit < 1 {
		limit = u.perPage
	}

	// The whole phrase goes through as one keyword so multi-word queries
	// stay a phrase instead of an OR of terms.
	return u.searcher.Search(ctx, []string{query}, location, limit), nil
}
