package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is a posting persisted in the local jobs table. These back the
// recommendation fallback path when no live provider is configured.
type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	SalaryRange    string    `json:"salary_range"`
	JobType        string    `json:"job_type"`
	Source         string    `json:"source"`
	ApplyURL       string    `json:"apply_url"`
	PostedAt       time.Time `json:"posted_at"`
}

// JobPosting is the provider-neutral shape every search source maps into.
// DaysAgo is DaysUnknown when the source gave no usable posting date, which
// sorts such entries after anything with a real age.
type JobPosting struct {
	ID             int64    `json:"id,omitempty"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Salary         string   `json:"salary"`
	ApplyURL       string   `json:"apply_url"`
	PostedDate     string   `json:"posted_date,omitempty"`
	DaysAgo        int      `json:"days_ago"`
	ContractType   string   `json:"contract_type,omitempty"`
	Source         string   `json:"source"`
	EasyApply      bool     `json:"easy_apply"`
	IsLive         bool     `json:"is_live"`
}

// DaysUnknown is the posting age used when a provider gives no parseable
// date. It must exceed any plausible real age so undated postings sort last.
const DaysUnknown = 999

// JobSearcher aggregates the configured search providers. Search never
// returns an error: provider failures are absorbed and an empty merged set
// is replaced by a synthetic fallback, so callers always get postings.
type JobSearcher interface {
	IsConfigured() bool
	Search(ctx context.Context, keywords []string, location string, limit int) []JobPosting
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	SearchLiveJobs(ctx context.Context, query, location string, limit int) ([]JobPosting, error)
}
