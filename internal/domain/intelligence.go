package domain

import (
	"context"
	"errors"
)

// ErrIntelligenceUnavailable signals that the external text-intelligence
// service is not configured or not reachable. Callers must treat it as a cue
// to use their deterministic local fallback, never as a user-facing failure.
var ErrIntelligenceUnavailable = errors.New("intelligence service unavailable")

type StrengthsWeaknesses struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Intelligence is the seam for the generative text service. Every method may
// fail; no caller is allowed to surface that failure to the end user.
type Intelligence interface {
	IsConfigured() bool
	GenerateSummary(ctx context.Context, resumeText string, skills []string) (string, error)
	ExtractStructured(ctx context.Context, resumeText string) (*StructuredResume, error)
	SuggestStrengthsWeaknesses(ctx context.Context, resumeText string, technical, soft []string) (*StrengthsWeaknesses, error)
	GenerateSuggestions(ctx context.Context, resumeText string, score int, technical, missing []string) ([]string, error)
	EnhanceText(ctx context.Context, text, kind string) (string, error)
}
