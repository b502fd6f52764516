// Package jobsearch integrates the external job boards and merges their
// postings into a single feed. Each provider absorbs its own upstream quirks
// and maps results into domain.JobPosting; the Aggregator fans searches out,
// deduplicates and orders what comes back.
package jobsearch

import (
	"context"

	"career-platform-backend/internal/domain"
)

// Provider is one external job board integration. Search returns whatever
// the board yielded; an unconfigured provider returns nothing and no error.
type Provider interface {
	Name() string
	IsConfigured() bool
	Search(ctx context.Context, keywords []string, location string, limit int) ([]domain.JobPosting, error)
}
