package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/godilite/ticket-scoring/internal/repository/models"
	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service/mocks"
)

func testCategories() []models.CategoryRow {
	return []models.CategoryRow{
		{ID: 1, Name: "Spelling", Weight: 1},
		{ID: 2, Name: "Grammar", Weight: 0.7},
		{ID: 3, Name: "GDPR", Weight: 1.2},
		{ID: 4, Name: "Randomness", Weight: 0},
	}
}

// TestNewScoringService tests the constructor
func TestNewScoringService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{}
		logger := zap.NewNop()

		service := NewScoringService(mockRepo, logger)

		assert.NotNil(t, service)
		assert.Equal(t, mockRepo, service.storage)
		assert.Equal(t, logger, service.logger)
	})

	t.Run("nil storage panics", func(t *testing.T) {
		logger := zap.NewNop()

		assert.Panics(t, func() {
			NewScoringService(nil, logger)
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{}

		service := NewScoringService(mockRepo, nil)

		assert.NotNil(t, service)
		assert.NotNil(t, service.logger)
	})
}

// TestGetAggregatedCategoryScores tests category trend aggregation
func TestGetAggregatedCategoryScores(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC)

	t.Run("daily aggregation for short periods", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindDailyAggregatesFunc: func(ctx context.Context, s, e time.Time) ([]models.AggregatedBucketRow, error) {
				assert.Equal(t, start, s)
				assert.Equal(t, end, e)
				return []models.AggregatedBucketRow{
					{Period: "2025-01-01", CategoryID: 1, Frequency: 2, AverageRating: 4.0},
					{Period: "2025-01-02", CategoryID: 1, Frequency: 1, AverageRating: 3.0},
					{Period: "2025-01-01", CategoryID: 2, Frequency: 1, AverageRating: 5.0},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetAggregatedCategoryScores(ctx, start, end)

		assert.NoError(t, err)
		assert.Equal(t, []scoring.CategoryRatingResult{
			{
				CategoryName:                  "Spelling",
				Frequency:                     3,
				OverallAverageScorePercentage: 73.33,
				PeriodScores: []scoring.PeriodScore{
					{Period: "2025-01-01", AverageScorePercentage: 80},
					{Period: "2025-01-02", AverageScorePercentage: 60},
				},
			},
			{
				CategoryName:                  "Grammar",
				Frequency:                     1,
				OverallAverageScorePercentage: 100,
				PeriodScores: []scoring.PeriodScore{
					{Period: "2025-01-01", AverageScorePercentage: 100},
				},
			},
		}, results)
	})

	t.Run("weekly aggregation for long periods", func(t *testing.T) {
		longEnd := time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)
		mockRepo := &mocks.MockRatingRepository{
			FindWeeklyAggregatesFunc: func(ctx context.Context, s, e time.Time) ([]models.AggregatedBucketRow, error) {
				assert.Equal(t, start, s)
				assert.Equal(t, longEnd, e)
				return []models.AggregatedBucketRow{
					{Period: "2025-02-24 to 2025-03-01", CategoryID: 1, Frequency: 4, AverageRating: 2.5},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetAggregatedCategoryScores(ctx, start, longEnd)

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "Spelling", results[0].CategoryName)
		assert.Equal(t, 50.0, results[0].OverallAverageScorePercentage)
		assert.Equal(t, "2025-02-24 to 2025-03-01", results[0].PeriodScores[0].Period)
	})

	t.Run("unknown category ids grouped under sentinel", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindDailyAggregatesFunc: func(ctx context.Context, s, e time.Time) ([]models.AggregatedBucketRow, error) {
				return []models.AggregatedBucketRow{
					{Period: "2025-01-01", CategoryID: 99, Frequency: 1, AverageRating: 5.0},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetAggregatedCategoryScores(ctx, start, end)

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, scoring.UnknownCategoryName, results[0].CategoryName)
	})

	t.Run("empty period yields empty result", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindDailyAggregatesFunc: func(ctx context.Context, s, e time.Time) ([]models.AggregatedBucketRow, error) {
				return nil, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetAggregatedCategoryScores(ctx, start, end)

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindDailyAggregatesFunc: func(ctx context.Context, s, e time.Time) ([]models.AggregatedBucketRow, error) {
				return nil, errors.New("database connection failed")
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetAggregatedCategoryScores(ctx, start, end)

		assert.True(t, scoring.IsKind(err, scoring.KindUpstream))
		assert.Contains(t, err.Error(), "database connection failed")
		assert.Nil(t, results)
	})

	t.Run("category listing failure", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindDailyAggregatesFunc: func(ctx context.Context, s, e time.Time) ([]models.AggregatedBucketRow, error) {
				return []models.AggregatedBucketRow{
					{Period: "2025-01-01", CategoryID: 1, Frequency: 1, AverageRating: 4.0},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return nil, errors.New("table missing")
			},
		}

		service := NewScoringService(mockRepo, logger)
		_, err := service.GetAggregatedCategoryScores(ctx, start, end)

		assert.True(t, scoring.IsKind(err, scoring.KindUpstream))
	})
}

// TestGetTicketCategoryScores tests the per-ticket score breakdown
func TestGetTicketCategoryScores(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC)

	t.Run("pivot with zero fill and stable order", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				assert.Equal(t, start, s)
				assert.Equal(t, end, e)
				return []models.RawRatingRow{
					{TicketID: 2, CategoryID: 3, Rating: 1},
					{TicketID: 1, CategoryID: 1, Rating: 5},
					{TicketID: 1, CategoryID: 1, Rating: 4},
					{TicketID: 1, CategoryID: 2, Rating: 3},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetTicketCategoryScores(ctx, start, end)

		assert.NoError(t, err)
		assert.Equal(t, []TicketScores{
			{
				TicketID: 1,
				CategoryScores: map[string]float64{
					"Spelling":   90,
					"Grammar":    60,
					"GDPR":       0,
					"Randomness": 0,
				},
			},
			{
				TicketID: 2,
				CategoryScores: map[string]float64{
					"Spelling":   0,
					"Grammar":    0,
					"GDPR":       20,
					"Randomness": 0,
				},
			},
		}, results)
	})

	t.Run("unknown category grouped under sentinel", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				return []models.RawRatingRow{
					{TicketID: 7, CategoryID: 99, Rating: 5},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetTicketCategoryScores(ctx, start, end)

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 100.0, results[0].CategoryScores[scoring.UnknownCategoryName])
		assert.Equal(t, 0.0, results[0].CategoryScores["Spelling"])
	})

	t.Run("no ratings found", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				return nil, nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		results, err := service.GetTicketCategoryScores(ctx, start, end)

		assert.True(t, scoring.IsKind(err, scoring.KindNoData))
		assert.Nil(t, results)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				return nil, errors.New("database connection failed")
			},
		}

		service := NewScoringService(mockRepo, logger)
		_, err := service.GetTicketCategoryScores(ctx, start, end)

		assert.True(t, scoring.IsKind(err, scoring.KindUpstream))
		assert.Contains(t, err.Error(), "database connection failed")
	})
}

// TestGetWeightedScores tests the overall weighted score and the
// period-over-period comparison
func TestGetWeightedScores(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC)

	t.Run("current period only", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				assert.Equal(t, start, s)
				assert.Equal(t, end, e)
				return []models.RawRatingRow{
					{TicketID: 1, CategoryID: 1, Rating: 4},
					{TicketID: 1, CategoryID: 2, Rating: 3},
					{TicketID: 1, CategoryID: 3, Rating: 5},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		result, err := service.GetWeightedScores(ctx, start, end, false)

		assert.NoError(t, err)
		// (4*1 + 3*0.7 + 5*1.2) / ((1+0.7+1.2)*5) * 100 = 83.45
		assert.Equal(t, "2025-01-01T00:00:00 to 2025-01-10T23:59:59", result.Current.Period)
		assert.Equal(t, 83.45, result.Current.AverageScorePercentage)
		assert.False(t, result.Current.NoData)
		assert.Nil(t, result.Previous)
		assert.Nil(t, result.Change)
	})

	t.Run("period over period comparison", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				if s.Equal(start) {
					return []models.RawRatingRow{
						{TicketID: 1, CategoryID: 1, Rating: 5},
					}, nil
				}
				assert.Equal(t, time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC), s)
				assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), e)
				return []models.RawRatingRow{
					{TicketID: 9, CategoryID: 1, Rating: 4},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		result, err := service.GetWeightedScores(ctx, start, end, true)

		assert.NoError(t, err)
		assert.Equal(t, 100.0, result.Current.AverageScorePercentage)
		if assert.NotNil(t, result.Previous) {
			assert.Equal(t, "2024-12-22T00:00:00 to 2024-12-31T23:59:59", result.Previous.Period)
			assert.Equal(t, 80.0, result.Previous.AverageScorePercentage)
			assert.False(t, result.Previous.NoData)
		}
		if assert.NotNil(t, result.Change) {
			assert.Equal(t, 20.0, result.Change.Value)
			assert.False(t, result.Change.NoData)
		}
	})

	t.Run("empty previous period yields no-data change", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				if s.Equal(start) {
					return []models.RawRatingRow{
						{TicketID: 1, CategoryID: 1, Rating: 5},
					}, nil
				}
				return nil, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		result, err := service.GetWeightedScores(ctx, start, end, true)

		assert.NoError(t, err)
		assert.False(t, result.Current.NoData)
		if assert.NotNil(t, result.Previous) {
			assert.True(t, result.Previous.NoData)
			assert.Equal(t, 0.0, result.Previous.AverageScorePercentage)
		}
		if assert.NotNil(t, result.Change) {
			assert.True(t, result.Change.NoData)
			assert.Equal(t, 0.0, result.Change.Value)
		}
	})

	t.Run("empty current period", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				return nil, nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		result, err := service.GetWeightedScores(ctx, start, end, false)

		assert.NoError(t, err)
		assert.True(t, result.Current.NoData)
		assert.Equal(t, 0.0, result.Current.AverageScorePercentage)
	})

	t.Run("ratings on unknown categories only", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				return []models.RawRatingRow{
					{TicketID: 1, CategoryID: 99, Rating: 5},
				}, nil
			},
			ListCategoriesFunc: func(ctx context.Context) ([]models.CategoryRow, error) {
				return testCategories(), nil
			},
		}

		service := NewScoringService(mockRepo, logger)
		result, err := service.GetWeightedScores(ctx, start, end, false)

		assert.NoError(t, err)
		assert.True(t, result.Current.NoData)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockRatingRepository{
			FindRatingsInPeriodFunc: func(ctx context.Context, s, e time.Time) ([]models.RawRatingRow, error) {
				return nil, errors.New("database connection failed")
			},
		}

		service := NewScoringService(mockRepo, logger)
		_, err := service.GetWeightedScores(ctx, start, end, false)

		assert.True(t, scoring.IsKind(err, scoring.KindUpstream))
		assert.Contains(t, err.Error(), "database connection failed")
	})
}
