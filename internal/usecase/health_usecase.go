package usecase

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

func NewHealthUsecase(db *pgxpool.Pool, rdb *redis.Client) HealthUsecase {
	return &healthUsecase{db: db, rdb: rdb}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "up",
		"redis":    "up",
	}

	if u.db == nil || u.db.Ping(ctx) != nil {
		status["database"] = "down"
		status["status"] = "degraded"
	}

	if u.rdb == nil {
		status["redis"] = "not configured"
	} else if u.rdb.Ping(ctx).Err() != nil {
		status["redis"] = "down"
		status["status"] = "degraded"
	}

	return status
}
