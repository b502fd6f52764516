package domain

import (
	"context"
	"time"
)

type ResumeAnalysis struct {
	ID              int64     `json:"id"`
	ResumeID        int64     `json:"resume_id"`
	UserID          int64     `json:"user_id"`
	Summary         string    `json:"summary"`
	TechnicalSkills []string  `json:"technical_skills"`
	SoftSkills      []string  `json:"soft_skills"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	MissingSkills   []string  `json:"missing_skills"`
	Suggestions     []string  `json:"suggestions"`
	Score           int       `json:"score"`
	CreatedAt       time.Time `json:"created_at"`
}

// Skills returns the combined technical and soft skill list, technical first.
func (a *ResumeAnalysis) Skills() []string {
	out := make([]string, 0, len(a.TechnicalSkills)+len(a.SoftSkills))
	out = append(out, a.TechnicalSkills...)
	out = append(out, a.SoftSkills...)
	return out
}

type AnalysisRepository interface {
	Create(ctx context.Context, analysis *ResumeAnalysis) error
	GetLatestByUser(ctx context.Context, userID int64) (*ResumeAnalysis, error)
}

type AnalysisUsecase interface {
	GetLatest(ctx context.Context, userID int64) (*ResumeAnalysis, error)
}
