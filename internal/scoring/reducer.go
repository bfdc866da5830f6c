package scoring

import "strings"

// AggregatedBucketRow is one pre-aggregated (bucket, category) row as
// returned by the persistence layer. Period is a single date for daily
// buckets or a "start to end" range for weekly ones.
type AggregatedBucketRow struct {
	Period        string
	CategoryID    int64
	Frequency     int
	AverageRating float64
}

// PeriodScore is a single bucket's percentage for one category.
type PeriodScore struct {
	Period                 string
	AverageScorePercentage float64
}

// CategoryRatingResult aggregates one category across the requested
// period. OverallAverageScorePercentage is the frequency-weighted mean of
// the contributing buckets, not an arithmetic mean.
type CategoryRatingResult struct {
	CategoryName                  string
	Frequency                     int
	OverallAverageScorePercentage float64
	PeriodScores                  []PeriodScore
}

// ReduceCategoryRatings merges bucket rows into one result per category
// name. Rows whose category id is absent from idToName are counted under
// the UnknownCategoryName sentinel and their ids reported back so the
// caller can record the anomaly. Results come back in first-seen category
// order; period scores keep encounter order.
func ReduceCategoryRatings(rows []AggregatedBucketRow, idToName map[int64]string, endDate string) ([]CategoryRatingResult, []int64) {
	results := make(map[string]*CategoryRatingResult)
	var order []string
	var unknownIDs []int64

	for _, row := range rows {
		name, ok := idToName[row.CategoryID]
		if !ok {
			name = UnknownCategoryName
			unknownIDs = append(unknownIDs, row.CategoryID)
		}

		percentage := Round2((row.AverageRating / 5) * 100)
		next := CategoryRatingResult{
			CategoryName:                  name,
			Frequency:                     row.Frequency,
			OverallAverageScorePercentage: percentage,
			PeriodScores: []PeriodScore{{
				Period:                 adjustPeriodForEndDate(row.Period, endDate),
				AverageScorePercentage: percentage,
			}},
		}

		if existing, ok := results[name]; ok {
			*existing = mergeCategoryResults(*existing, next)
		} else {
			c := next
			results[name] = &c
			order = append(order, name)
		}
	}

	out := make([]CategoryRatingResult, 0, len(order))
	for _, name := range order {
		out = append(out, *results[name])
	}
	return out, unknownIDs
}

// adjustPeriodForEndDate rewrites the right side of a week-range label
// when it equals the request end date. Upstream already clamps the label
// to the end date, so this is a guard against inconsistency, not a fix.
func adjustPeriodForEndDate(period, endDate string) string {
	before, after, found := strings.Cut(period, " to ")
	if found && after == endDate {
		return before + " to " + endDate
	}
	return period
}

// mergeCategoryResults combines two results for the same category:
// frequencies add, period scores concatenate in encounter order, and the
// overall percentage is re-derived as the frequency-weighted mean. The
// result is rounded at every merge so that repeated combination cannot
// drift from the values already exposed per bucket.
func mergeCategoryResults(a, b CategoryRatingResult) CategoryRatingResult {
	totalFrequency := a.Frequency + b.Frequency
	weightedSum := a.OverallAverageScorePercentage*float64(a.Frequency) +
		b.OverallAverageScorePercentage*float64(b.Frequency)

	return CategoryRatingResult{
		CategoryName:                  a.CategoryName,
		Frequency:                     totalFrequency,
		OverallAverageScorePercentage: Round2(weightedSum / float64(totalFrequency)),
		PeriodScores:                  append(append([]PeriodScore{}, a.PeriodScores...), b.PeriodScores...),
	}
}
