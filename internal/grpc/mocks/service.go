package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
)

// MockScoringService is a mock implementation of the ScoringService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockScoringService struct {
	GetAggregatedCategoryScoresFunc func(ctx context.Context, start, end time.Time) ([]scoring.CategoryRatingResult, error)
	GetTicketCategoryScoresFunc     func(ctx context.Context, start, end time.Time) ([]service.TicketScores, error)
	GetWeightedScoresFunc           func(ctx context.Context, start, end time.Time, includePrevious bool) (service.WeightedScores, error)
}

// GetAggregatedCategoryScores implements the ScoringService interface
func (m *MockScoringService) GetAggregatedCategoryScores(ctx context.Context, start, end time.Time) ([]scoring.CategoryRatingResult, error) {
	if m.GetAggregatedCategoryScoresFunc != nil {
		return m.GetAggregatedCategoryScoresFunc(ctx, start, end)
	}
	return nil, errors.New("GetAggregatedCategoryScoresFunc not implemented")
}

// GetTicketCategoryScores implements the ScoringService interface
func (m *MockScoringService) GetTicketCategoryScores(ctx context.Context, start, end time.Time) ([]service.TicketScores, error) {
	if m.GetTicketCategoryScoresFunc != nil {
		return m.GetTicketCategoryScoresFunc(ctx, start, end)
	}
	return nil, errors.New("GetTicketCategoryScoresFunc not implemented")
}

// GetWeightedScores implements the ScoringService interface
func (m *MockScoringService) GetWeightedScores(ctx context.Context, start, end time.Time, includePrevious bool) (service.WeightedScores, error) {
	if m.GetWeightedScoresFunc != nil {
		return m.GetWeightedScoresFunc(ctx, start, end, includePrevious)
	}
	return service.WeightedScores{}, errors.New("GetWeightedScoresFunc not implemented")
}
