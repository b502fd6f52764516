package usecase

import (
	"context"
	"errors"
	"fmt"

	"career-platform-backend/internal/analyzer"
	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/resumeparse"
	"career-platform-backend/pkg/apperror"
	"career-platform-backend/pkg/docparse"
	"career-platform-backend/pkg/logger"
	"career-platform-backend/pkg/storage"

	"github.com/google/uuid"
)

type resumeUsecase struct {
	resumeRepo   domain.ResumeRepository
	analysisRepo domain.AnalysisRepository
	analyzer     *analyzer.Analyzer
	intel        domain.Intelligence
	store        *storage.Store
	maxUploadMB  int
}

func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	analysisRepo domain.AnalysisRepository,
	anl *analyzer.Analyzer,
	intel domain.Intelligence,
	store *storage.Store,
	maxUploadMB int,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo:   resumeRepo,
		analysisRepo: analysisRepo,
		analyzer:     anl,
		intel:        intel,
		store:        store,
		maxUploadMB:  maxUploadMB,
	}
}

func (u *resumeUsecase) Upload(ctx context.Context, userID int64, filename string, data []byte) (*domain.UploadResult, error) {
	if sizeMB := float64(len(data)) / (1 << 20); sizeMB > float64(u.maxUploadMB) {
		return nil, apperror.BadRequest(fmt.Sprintf("File size (%.1fMB) exceeds maximum allowed size (%dMB)", sizeMB, u.maxUploadMB))
	}

	ext, err := docparse.Validate(filename, data)
	if err != nil {
		switch {
		case errors.Is(err, docparse.ErrUnsupportedFormat):
			return nil, apperror.BadRequest("Unsupported file format. Please upload PDF or DOCX files.")
		case errors.Is(err, docparse.ErrContentMismatch):
			return nil, apperror.BadRequest("File content does not match its extension")
		}
		return nil, err
	}

	text, err := docparse.Extract(ext, data)
	if err != nil {
		if errors.Is(err, docparse.ErrInsufficientText) {
			return nil, apperror.BadRequest("Could not extract sufficient text from the file. Please ensure the resume contains readable text.")
		}
		return nil, apperror.BadRequest(fmt.Sprintf("Error processing file: %v", err))
	}

	resume := &domain.Resume{
		UserID:   userID,
		Filename: filename,
		Content:  text,
	}

	if u.store.IsConfigured() {
		// The original file is archived best effort; the extracted text is
		// what every downstream feature works from.
		key := fmt.Sprintf("resumes/%d/%s%s", userID, uuid.New().String(), ext)
		if err := u.store.Put(ctx, key, data, contentTypeFor(ext)); err != nil {
			logger.Log.Warn("resume object upload failed", "key", key, "error", err.Error())
		} else {
			resume.StorageKey = &key
		}
	}

	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}

	analysis := u.analyzer.Analyze(ctx, text)
	analysis.ResumeID = resume.ID
	analysis.UserID = userID
	if err := u.analysisRepo.Create(ctx, &analysis); err != nil {
		return nil, err
	}

	return &domain.UploadResult{Resume: resume, Analysis: &analysis}, nil
}

func (u *resumeUsecase) GetLatest(ctx context.Context, userID int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No resume uploaded yet")
		}
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) GetStructuredDetails(ctx context.Context, userID int64) (*domain.StructuredDetails, error) {
	resume, err := u.GetLatest(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.intel != nil && u.intel.IsConfigured() {
		details, err := u.intel.ExtractStructured(ctx, resume.Content)
		if err == nil && details != nil && !details.IsEmpty() {
			return &domain.StructuredDetails{Source: "ai", Details: details}, nil
		}
		if err != nil && !errors.Is(err, domain.ErrIntelligenceUnavailable) {
			logger.Log.Warn("structured extraction fell back to the section parser", "error", err.Error())
		}
	}

	return &domain.StructuredDetails{Source: "parser", Details: resumeparse.Parse(resume.Content)}, nil
}

func (u *resumeUsecase) EnhanceText(ctx context.Context, text, kind string) (string, error) {
	if u.intel != nil && u.intel.IsConfigured() {
		if out, err := u.intel.EnhanceText(ctx, text, kind); err == nil && out != "" {
			return out, nil
		}
	}

	switch kind {
	case "summary":
		return analyzer.EnhanceSummary(text), nil
	case "experience":
		return analyzer.EnhanceExperience("", text), nil
	}
	return text, nil
}

func contentTypeFor(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/msword"
	}
}
