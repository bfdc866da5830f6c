package grpc

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/godilite/ticket-scoring/api/v1"
	"github.com/godilite/ticket-scoring/internal/scoring"
	"github.com/godilite/ticket-scoring/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second

	// scoreUnavailable marks period scores and deltas that cannot be
	// computed because one of the periods holds no ratings.
	scoreUnavailable = "N/A"
)

type CacheKeyType string

const (
	cacheKeyAggregatedCategory CacheKeyType = "grpc:aggregated_category_scores"
	cacheKeyTicketScores       CacheKeyType = "grpc:ticket_category_scores"
	cacheKeyWeightedScores     CacheKeyType = "grpc:weighted_scores"
)

type GRPCHandlers struct {
	pb.UnimplementedTicketScoringServer
	scoring  ScoringService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(scoring ScoringService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if scoring == nil {
		panic("nil ScoringService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		scoring:  scoring,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func (s *GRPCHandlers) parseAndValidate(req *pb.TimePeriodRequest) (start, end time.Time, err error) {
	if req.GetStartDate() == "" || req.GetEndDate() == "" {
		err = status.Error(codes.InvalidArgument, "start and end dates are required")
		return
	}

	start, perr := scoring.ParseDateTime(req.GetStartDate())
	if perr != nil {
		err = status.Error(codes.InvalidArgument, perr.Error())
		return
	}

	end, perr = scoring.ParseDateTime(req.GetEndDate())
	if perr != nil {
		err = status.Error(codes.InvalidArgument, perr.Error())
		return
	}

	if end.Before(start) {
		err = status.Error(codes.InvalidArgument, "end date must be after start date")
		return
	}

	return
}

func normalizeKey(prefix CacheKeyType, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s", prefix, scoring.FormatDateTime(start), scoring.FormatDateTime(end))
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case scoring.IsKind(err, scoring.KindInvalidInput):
		s.logger.Info("invalid input", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case scoring.IsKind(err, scoring.KindNoData):
		s.logger.Info("no ratings found", zap.String("op", op))
		return status.Error(codes.NotFound, "no ratings found for the given period")
	case scoring.IsKind(err, scoring.KindUpstream):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetAggregatedCategoryScores(ctx context.Context, req *pb.TimePeriodRequest) (*pb.AggregatedCategoryScoresResponse, error) {
	start, end, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyAggregatedCategory, start, end)

	results, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]scoring.CategoryRatingResult, error) {
		return s.scoring.GetAggregatedCategoryScores(fetchCtx, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetAggregatedCategoryScores", err)
	}

	return &pb.AggregatedCategoryScoresResponse{
		CategoryRatingResults: s.mapToProtoCategoryResults(results),
	}, nil
}

func (s *GRPCHandlers) GetTicketCategoryScores(ctx context.Context, req *pb.TimePeriodRequest) (*pb.TicketCategoryScoresResponse, error) {
	start, end, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyTicketScores, start, end)

	scores, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.TicketScores, error) {
		return s.scoring.GetTicketCategoryScores(fetchCtx, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetTicketCategoryScores", err)
	}

	pbScores := make([]*pb.TicketCategoryScore, len(scores))
	for i, score := range scores {
		pbScores[i] = &pb.TicketCategoryScore{
			TicketId:       score.TicketID,
			CategoryScores: score.CategoryScores,
		}
	}

	return &pb.TicketCategoryScoresResponse{TicketCategoryScores: pbScores}, nil
}

func (s *GRPCHandlers) GetWeightedScores(ctx context.Context, req *pb.TimePeriodRequest) (*pb.WeightedScoresResponse, error) {
	start, end, err := s.parseAndValidate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%t", normalizeKey(cacheKeyWeightedScores, start, end), req.GetIncludePreviousPeriod())

	result, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.WeightedScores, error) {
		return s.scoring.GetWeightedScores(fetchCtx, start, end, req.GetIncludePreviousPeriod())
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetWeightedScores", err)
	}

	resp := &pb.WeightedScoresResponse{
		CurrentPeriodScore: mapToProtoPeriodScore(result.Current),
	}
	if result.Previous != nil {
		resp.PreviousPeriodScore = mapToProtoPeriodScore(*result.Previous)
	}
	if result.Change != nil {
		change := &pb.ScoreChange{Value: result.Change.Value}
		if result.Change.NoData {
			change.Message = scoreUnavailable
		}
		resp.ScoreChange = change
	}

	return resp, nil
}

func mapToProtoPeriodScore(summary service.PeriodScoreSummary) *pb.PeriodScore {
	out := &pb.PeriodScore{
		Period:                 summary.Period,
		AverageScorePercentage: summary.AverageScorePercentage,
	}
	if summary.NoData {
		out.Message = scoreUnavailable
	}
	return out
}

func (s *GRPCHandlers) mapToProtoCategoryResults(results []scoring.CategoryRatingResult) []*pb.CategoryRatingResult {
	out := make([]*pb.CategoryRatingResult, len(results))
	for i, cat := range results {
		periods := make([]*pb.PeriodScore, len(cat.PeriodScores))
		for j, p := range cat.PeriodScores {
			periods[j] = &pb.PeriodScore{
				Period:                 p.Period,
				AverageScorePercentage: p.AverageScorePercentage,
			}
		}
		out[i] = &pb.CategoryRatingResult{
			CategoryName:                  cat.CategoryName,
			Frequency:                     int32(cat.Frequency),
			OverallAverageScorePercentage: cat.OverallAverageScorePercentage,
			PeriodScores:                  periods,
		}
	}
	return out
}
