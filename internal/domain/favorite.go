package domain

import "context"

type FavoriteRepository interface {
	Add(ctx context.Context, userID, jobID int64) error
	Remove(ctx context.Context, userID, jobID int64) error
	IsFavorite(ctx context.Context, userID, jobID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]Job, error)
}

type FavoriteUsecase interface {
	// Toggle flips the saved state and reports whether the job is now saved.
	Toggle(ctx context.Context, userID, jobID int64) (bool, error)
	List(ctx context.Context, userID int64) ([]Job, error)
}
