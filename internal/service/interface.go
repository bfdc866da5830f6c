package service

import (
	"context"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
)

// RatingRepository defines the read-only query shapes the service
// consumes. All bounds are inclusive.
type RatingRepository interface {
	ListCategories(ctx context.Context) ([]models.CategoryRow, error)
	FindDailyAggregates(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error)
	FindWeeklyAggregates(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error)
	FindRatingsInPeriod(ctx context.Context, start, end time.Time) ([]models.RawRatingRow, error)
}
