package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/godilite/ticket-scoring/api/v1"
)

// mockScoringClient is a function-based mock of pb.TicketScoringClient.
type mockScoringClient struct {
	GetAggregatedCategoryScoresFunc func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.AggregatedCategoryScoresResponse, error)
	GetTicketCategoryScoresFunc     func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.TicketCategoryScoresResponse, error)
	GetWeightedScoresFunc           func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.WeightedScoresResponse, error)
}

func (m *mockScoringClient) GetAggregatedCategoryScores(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.AggregatedCategoryScoresResponse, error) {
	if m.GetAggregatedCategoryScoresFunc != nil {
		return m.GetAggregatedCategoryScoresFunc(ctx, in, opts...)
	}
	return nil, errors.New("GetAggregatedCategoryScoresFunc not implemented")
}

func (m *mockScoringClient) GetTicketCategoryScores(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.TicketCategoryScoresResponse, error) {
	if m.GetTicketCategoryScoresFunc != nil {
		return m.GetTicketCategoryScoresFunc(ctx, in, opts...)
	}
	return nil, errors.New("GetTicketCategoryScoresFunc not implemented")
}

func (m *mockScoringClient) GetWeightedScores(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.WeightedScoresResponse, error) {
	if m.GetWeightedScoresFunc != nil {
		return m.GetWeightedScoresFunc(ctx, in, opts...)
	}
	return nil, errors.New("GetWeightedScoresFunc not implemented")
}

func TestNewGateway(t *testing.T) {
	t.Run("nil client panics", func(t *testing.T) {
		assert.Panics(t, func() {
			New(nil, zap.NewNop(), "X-API-KEY", "secret")
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		g := New(&mockScoringClient{}, nil, "X-API-KEY", "secret")
		assert.NotNil(t, g.logger)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	client := &mockScoringClient{
		GetWeightedScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.WeightedScoresResponse, error) {
			return &pb.WeightedScoresResponse{
				CurrentPeriodScore: &pb.PeriodScore{AverageScorePercentage: 90},
			}, nil
		},
	}
	g := New(client, zap.NewNop(), "X-API-KEY", "secret")
	router := g.Router()

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/weighted-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/weighted-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "wrong")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid key accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/weighted-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty configured key disables check", func(t *testing.T) {
		open := New(client, zap.NewNop(), "X-API-KEY", "")
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/weighted-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		rec := httptest.NewRecorder()

		open.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAggregatedScoresEndpoint(t *testing.T) {
	t.Run("successful call", func(t *testing.T) {
		client := &mockScoringClient{
			GetAggregatedCategoryScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.AggregatedCategoryScoresResponse, error) {
				assert.Equal(t, "2025-01-01T00:00:00", in.GetStartDate())
				assert.Equal(t, "2025-01-31T23:59:59", in.GetEndDate())

				md, ok := metadata.FromOutgoingContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, []string{"secret"}, md.Get("X-API-KEY"))

				return &pb.AggregatedCategoryScoresResponse{
					CategoryRatingResults: []*pb.CategoryRatingResult{
						{
							CategoryName:                  "Spelling",
							Frequency:                     3,
							OverallAverageScorePercentage: 73.33,
							PeriodScores: []*pb.PeriodScore{
								{Period: "2025-01-01", AverageScorePercentage: 80},
							},
						},
					},
				}, nil
			},
		}
		g := New(client, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/scores/aggregated?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body []map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
		assert.Equal(t, "Spelling", body[0]["category_name"])
	})

	t.Run("missing parameters", func(t *testing.T) {
		g := New(&mockScoringClient{}, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scores/aggregated?startDate=2025-01-01T00:00:00", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "startDate and endDate are required")
	})

	t.Run("invalid argument maps to bad request", func(t *testing.T) {
		client := &mockScoringClient{
			GetAggregatedCategoryScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.AggregatedCategoryScoresResponse, error) {
				return nil, status.Error(codes.InvalidArgument, "invalid date")
			},
		}
		g := New(client, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/scores/aggregated?startDate=bogus&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid date")
	})
}

func TestTicketCategoryScoresEndpoint(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		client := &mockScoringClient{
			GetTicketCategoryScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.TicketCategoryScoresResponse, error) {
				return nil, status.Error(codes.NotFound, "no ratings found for the given period")
			},
		}
		g := New(client, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/category-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no ratings found")
	})

	t.Run("successful call", func(t *testing.T) {
		client := &mockScoringClient{
			GetTicketCategoryScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.TicketCategoryScoresResponse, error) {
				return &pb.TicketCategoryScoresResponse{
					TicketCategoryScores: []*pb.TicketCategoryScore{
						{TicketId: 42, CategoryScores: map[string]float64{"Spelling": 90}},
					},
				}, nil
			},
		}
		g := New(client, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/category-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
		assert.Equal(t, float64(42), body[0]["ticket_id"])
	})
}

func TestWeightedScoresEndpoint(t *testing.T) {
	t.Run("include previous period flag forwarded", func(t *testing.T) {
		client := &mockScoringClient{
			GetWeightedScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.WeightedScoresResponse, error) {
				assert.True(t, in.GetIncludePreviousPeriod())
				return &pb.WeightedScoresResponse{
					CurrentPeriodScore:  &pb.PeriodScore{AverageScorePercentage: 90},
					PreviousPeriodScore: &pb.PeriodScore{AverageScorePercentage: 85},
					ScoreChange:         &pb.ScoreChange{Value: 5},
				}, nil
			},
		}
		g := New(client, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/weighted-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59&includePreviousPeriod=true", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotNil(t, body["previous_period_score"])
		assert.NotNil(t, body["score_change"])
	})

	t.Run("upstream failure maps to 500", func(t *testing.T) {
		client := &mockScoringClient{
			GetWeightedScoresFunc: func(ctx context.Context, in *pb.TimePeriodRequest, opts ...grpc.CallOption) (*pb.WeightedScoresResponse, error) {
				return nil, status.Error(codes.Internal, "database error")
			},
		}
		g := New(client, zap.NewNop(), "X-API-KEY", "secret")

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tickets/weighted-scores?startDate=2025-01-01T00:00:00&endDate=2025-01-31T23:59:59", nil)
		req.Header.Set("X-API-KEY", "secret")
		rec := httptest.NewRecorder()

		g.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
	})
}
