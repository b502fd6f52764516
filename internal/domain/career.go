package domain

import "context"

// RoleMatch scores the candidate's skills against one target role.
type RoleMatch struct {
	Role          string            `json:"role"`
	DisplayName   string            `json:"display_name"`
	MatchPct      int               `json:"match_pct"`
	MatchedSkills []string          `json:"matched_skills"`
	MissingSkills []string          `json:"missing_skills"`
	TotalRequired int               `json:"total_required"`
	SearchLinks   map[string]string `json:"search_links"`
}

type CareerUsecase interface {
	GetRolePaths(ctx context.Context, userID int64) ([]RoleMatch, error)
}
