package usecase

import (
	"context"
	"errors"

	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"
)

type favoriteUsecase struct {
	favoriteRepo domain.FavoriteRepository
}

func NewFavoriteUsecase(favoriteRepo domain.FavoriteRepository) domain.FavoriteUsecase {
	return &favoriteUsecase{favoriteRepo: favoriteRepo}
}

func (u *favoriteUsecase) Toggle(ctx context.Context, userID, jobID int64) (bool, error) {
	saved, err := u.favoriteRepo.IsFavorite(ctx, userID, jobID)
	if err != nil {
		return false, err
	}

	if saved {
		if err := u.favoriteRepo.Remove(ctx, userID, jobID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := u.favoriteRepo.Add(ctx, userID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, apperror.NotFound("Job not found")
		}
		return false, err
	}
	return true, nil
}

func (u *favoriteUsecase) List(ctx context.Context, userID int64) ([]domain.Job, error) {
	return u.favoriteRepo.ListByUser(ctx, userID)
}
