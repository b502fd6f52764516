package usecase

import (
	"context"
	"errors"

	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"
)

type analysisUsecase struct {
	analysisRepo domain.AnalysisRepository
}

func NewAnalysisUsecase(analysisRepo domain.AnalysisRepository) domain.AnalysisUsecase {
	return &analysisUsecase{analysisRepo: analysisRepo}
}

func (u *analysisUsecase) GetLatest(ctx context.Context, userID int64) (*domain.ResumeAnalysis, error) {
	analysis, err := u.analysisRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No analysis available. Please upload and analyze your resume first.")
		}
		return nil, err
	}
	return analysis, nil
}
