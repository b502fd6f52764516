package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Filename   string    `json:"filename"`
	Content    string    `json:"-"`
	StorageKey *string   `json:"storage_key,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadResult pairs the stored resume with the analysis produced for it.
type UploadResult struct {
	Resume   *Resume         `json:"resume"`
	Analysis *ResumeAnalysis `json:"analysis"`
}

// StructuredDetails is the editor-prefill payload. Source records whether the
// fields came from the intelligence service or the local section parser.
type StructuredDetails struct {
	Source  string           `json:"source"`
	Details *StructuredResume `json:"details"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	GetLatestByUser(ctx context.Context, userID int64) (*Resume, error)
}

type ResumeUsecase interface {
	Upload(ctx context.Context, userID int64, filename string, data []byte) (*UploadResult, error)
	GetLatest(ctx context.Context, userID int64) (*Resume, error)
	GetStructuredDetails(ctx context.Context, userID int64) (*StructuredDetails, error)
	EnhanceText(ctx context.Context, text, kind string) (string, error)
}
