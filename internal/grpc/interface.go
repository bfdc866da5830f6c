package grpc

import (
	"context"
	"time"

	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type ScoringService interface {
	GetAggregatedCategoryScores(ctx context.Context, start, end time.Time) ([]scoring.CategoryRatingResult, error)
	GetTicketCategoryScores(ctx context.Context, start, end time.Time) ([]service.TicketScores, error)
	GetWeightedScores(ctx context.Context, start, end time.Time, includePrevious bool) (service.WeightedScores, error)
}
