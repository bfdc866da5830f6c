package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/ticket-scoring/internal/repository/models"
	"github.com/godilite/ticket-scoring/internal/scoring"
)

const dbTimeout = 1 * time.Second

// ScoringService orchestrates the rating queries and the scoring engine.
// It owns no state beyond its collaborators; every request is computed
// from scratch and discarded.
type ScoringService struct {
	storage RatingRepository
	logger  *zap.Logger
}

// NewScoringService creates a new ScoringService instance.
func NewScoringService(storage RatingRepository, logger *zap.Logger) *ScoringService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ScoringService{
		storage: storage,
		logger:  logger,
	}
}

func (s *ScoringService) categorySnapshot(ctx context.Context) ([]scoring.Category, error) {
	rows, err := s.storage.ListCategories(ctx)
	if err != nil {
		return nil, scoring.Upstream("list categories", err)
	}
	categories := make([]scoring.Category, len(rows))
	for i, r := range rows {
		categories[i] = scoring.Category{ID: r.ID, Name: r.Name, Weight: r.Weight}
	}
	return categories, nil
}

// GetAggregatedCategoryScores returns per-category trend aggregates,
// bucketed daily or weekly depending on the period length. A period with
// no ratings yields an empty result, not an error.
func (s *ScoringService) GetAggregatedCategoryScores(ctx context.Context, start, end time.Time) ([]scoring.CategoryRatingResult, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	granularity := scoring.ChooseGranularity(start, end)

	var rows []models.AggregatedBucketRow
	var err error
	if granularity == scoring.Weekly {
		rows, err = s.storage.FindWeeklyAggregates(dbCtx, start, end)
	} else {
		rows, err = s.storage.FindDailyAggregates(dbCtx, start, end)
	}
	if err != nil {
		return nil, scoring.Upstream("fetch aggregated ratings", err)
	}

	categories, err := s.categorySnapshot(dbCtx)
	if err != nil {
		return nil, err
	}

	bucketRows := make([]scoring.AggregatedBucketRow, len(rows))
	for i, r := range rows {
		bucketRows[i] = scoring.AggregatedBucketRow{
			Period:        r.Period,
			CategoryID:    r.CategoryID,
			Frequency:     r.Frequency,
			AverageRating: r.AverageRating,
		}
	}

	results, unknownIDs := scoring.ReduceCategoryRatings(bucketRows, scoring.IDNameMap(categories), scoring.FormatDate(end))
	for _, id := range unknownIDs {
		s.logger.Warn("rating references unknown category",
			zap.Int64("category_id", id))
	}

	s.logger.Info("aggregated category scores computed",
		zap.Stringer("granularity", granularity),
		zap.Int("categories", len(results)),
		zap.Time("start", start),
		zap.Time("end", end))

	return results, nil
}

// GetTicketCategoryScores returns one score per (ticket, category) for
// every ticket rated in the period. Categories a ticket was never rated
// on are reported as 0.
func (s *ScoringService) GetTicketCategoryScores(ctx context.Context, start, end time.Time) ([]TicketScores, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.FindRatingsInPeriod(dbCtx, start, end)
	if err != nil {
		return nil, scoring.Upstream("fetch ratings in period", err)
	}
	if len(rows) == 0 {
		return nil, scoring.NoDataf("no ratings found for the specified period")
	}

	categories, err := s.categorySnapshot(dbCtx)
	if err != nil {
		return nil, err
	}
	idToName := scoring.IDNameMap(categories)

	// Two-level accumulation: ticket -> category name -> ratings.
	pivot := make(map[int64]map[string][]int)
	for _, r := range rows {
		name, ok := idToName[r.CategoryID]
		if !ok {
			name = scoring.UnknownCategoryName
			s.logger.Warn("rating references unknown category",
				zap.Int64("category_id", r.CategoryID),
				zap.Int64("ticket_id", r.TicketID))
		}
		if _, ok := pivot[r.TicketID]; !ok {
			pivot[r.TicketID] = make(map[string][]int)
		}
		pivot[r.TicketID][name] = append(pivot[r.TicketID][name], r.Rating)
	}

	out := make([]TicketScores, 0, len(pivot))
	for ticketID, byCategory := range pivot {
		scores := make(map[string]float64, len(categories))
		for name, ratings := range byCategory {
			sum := 0
			for _, r := range ratings {
				sum += r
			}
			mean := float64(sum) / float64(len(ratings))
			scores[name] = scoring.Round2(mean * 20)
		}
		// Absent categories surface as 0 in the external view only;
		// they never participate in the averages above.
		for _, c := range categories {
			if _, ok := scores[c.Name]; !ok {
				scores[c.Name] = 0
			}
		}
		out = append(out, TicketScores{TicketID: ticketID, CategoryScores: scores})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TicketID < out[j].TicketID })
	return out, nil
}

// GetWeightedScores returns the period's weighted overall score and,
// when requested, the preceding equal-length period and the delta.
func (s *ScoringService) GetWeightedScores(ctx context.Context, start, end time.Time, includePrevious bool) (WeightedScores, error) {
	currentAvg, err := s.periodWeightedAverage(ctx, start, end)
	if err != nil {
		return WeightedScores{}, err
	}

	result := WeightedScores{
		Current: PeriodScoreSummary{
			Period:                 scoring.FormatDateTime(start) + " to " + scoring.FormatDateTime(end),
			AverageScorePercentage: scoring.Format2(currentAvg),
			NoData:                 currentAvg == 0,
		},
	}

	if !includePrevious {
		return result, nil
	}

	prevStart, prevEnd := scoring.PreviousPeriod(start, end)
	previousAvg, err := s.periodWeightedAverage(ctx, prevStart, prevEnd)
	if err != nil {
		return WeightedScores{}, err
	}

	result.Previous = &PeriodScoreSummary{
		Period:                 scoring.FormatDateTime(prevStart) + " to " + scoring.FormatDateTime(prevEnd),
		AverageScorePercentage: scoring.Format2(previousAvg),
		NoData:                 previousAvg == 0,
	}

	// Ratings are always >= 1, so an average of exactly 0 can only mean
	// an empty period; the delta is undefined in that case.
	if currentAvg != 0 && previousAvg != 0 {
		result.Change = &ScoreChange{Value: scoring.Round2(currentAvg - previousAvg)}
	} else {
		result.Change = &ScoreChange{NoData: true}
	}

	return result, nil
}

// periodWeightedAverage computes the arithmetic mean, across tickets, of
// each ticket's weighted score. Returns 0 for an empty period.
func (s *ScoringService) periodWeightedAverage(ctx context.Context, start, end time.Time) (float64, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.FindRatingsInPeriod(dbCtx, start, end)
	if err != nil {
		return 0, scoring.Upstream("fetch ratings in period", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	categories, err := s.categorySnapshot(dbCtx)
	if err != nil {
		return 0, err
	}
	idToName := scoring.IDNameMap(categories)

	perTicket := make(map[int64]map[string]int)
	for _, r := range rows {
		name, ok := idToName[r.CategoryID]
		if !ok {
			// Weightless rows cannot influence a weighted score; the
			// anomaly is recorded and the row skipped here.
			s.logger.Warn("rating references unknown category",
				zap.Int64("category_id", r.CategoryID),
				zap.Int64("ticket_id", r.TicketID))
			continue
		}
		if _, ok := perTicket[r.TicketID]; !ok {
			perTicket[r.TicketID] = make(map[string]int)
		}
		perTicket[r.TicketID][name] = r.Rating
	}

	if len(perTicket) == 0 {
		return 0, nil
	}

	var sum float64
	for ticketID, ratings := range perTicket {
		score, err := scoring.WeightedScore(ratings, categories)
		if err != nil {
			s.logger.Error("weighted score failed",
				zap.Int64("ticket_id", ticketID),
				zap.Error(err))
			return 0, err
		}
		sum += score
	}

	return sum / float64(len(perTicket)), nil
}
