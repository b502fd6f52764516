package domain

import (
	"context"
	"time"
)

// JobMatch is a posting annotated with the candidate's match breakdown.
type JobMatch struct {
	JobPosting
	MatchScore     float64  `json:"match_score"`
	DirectMatches  []string `json:"direct_matches"`
	RelatedMatches []string `json:"related_matches"`
	TotalRequired  int      `json:"total_required"`
	TotalMatched   int      `json:"total_matched"`
}

// Recommendation is a persisted ranking entry for a stored job.
type Recommendation struct {
	UserID     int64     `json:"user_id"`
	JobID      int64     `json:"job_id"`
	MatchScore float64   `json:"match_score"`
	CreatedAt  time.Time `json:"created_at"`
}

type RecommendationRepository interface {
	// ReplaceForUser atomically swaps the user's stored ranking for a new one.
	ReplaceForUser(ctx context.Context, userID int64, recs []Recommendation) error
	ListByUser(ctx context.Context, userID int64) ([]JobMatch, error)
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID int64, limit int) ([]JobMatch, error)
	ExportRecommendations(ctx context.Context, userID int64, limit int) ([]byte, string, error)
}
