package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
)

// MockRatingRepository is a mock implementation of the RatingRepository
// interface for testing the service layer.
type MockRatingRepository struct {
	ListCategoriesFunc       func(ctx context.Context) ([]models.CategoryRow, error)
	FindDailyAggregatesFunc  func(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error)
	FindWeeklyAggregatesFunc func(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error)
	FindRatingsInPeriodFunc  func(ctx context.Context, start, end time.Time) ([]models.RawRatingRow, error)
}

// ListCategories implements the RatingRepository interface
func (m *MockRatingRepository) ListCategories(ctx context.Context) ([]models.CategoryRow, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, errors.New("ListCategoriesFunc not implemented")
}

// FindDailyAggregates implements the RatingRepository interface
func (m *MockRatingRepository) FindDailyAggregates(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error) {
	if m.FindDailyAggregatesFunc != nil {
		return m.FindDailyAggregatesFunc(ctx, start, end)
	}
	return nil, errors.New("FindDailyAggregatesFunc not implemented")
}

// FindWeeklyAggregates implements the RatingRepository interface
func (m *MockRatingRepository) FindWeeklyAggregates(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error) {
	if m.FindWeeklyAggregatesFunc != nil {
		return m.FindWeeklyAggregatesFunc(ctx, start, end)
	}
	return nil, errors.New("FindWeeklyAggregatesFunc not implemented")
}

// FindRatingsInPeriod implements the RatingRepository interface
func (m *MockRatingRepository) FindRatingsInPeriod(ctx context.Context, start, end time.Time) ([]models.RawRatingRow, error) {
	if m.FindRatingsInPeriodFunc != nil {
		return m.FindRatingsInPeriodFunc(ctx, start, end)
	}
	return nil, errors.New("FindRatingsInPeriodFunc not implemented")
}
