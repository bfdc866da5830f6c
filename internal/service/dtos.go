package service

// TicketScores is one ticket's per-category score breakdown. Every
// directory category is present; categories the ticket was never rated
// on carry 0.
type TicketScores struct {
	TicketID       int64
	CategoryScores map[string]float64
}

// PeriodScoreSummary is one period's weighted average. NoData marks a
// period with no underlying ratings, which callers render as "N/A"
// instead of a numeric zero.
type PeriodScoreSummary struct {
	Period                 string
	AverageScorePercentage float64
	NoData                 bool
}

// ScoreChange is the signed period-over-period delta. NoData is set when
// either side of the comparison has no ratings.
type ScoreChange struct {
	Value  float64
	NoData bool
}

// WeightedScores is the weighted-scores view: the current period, and
// when requested, the immediately preceding period of equal length plus
// the delta between them.
type WeightedScores struct {
	Current  PeriodScoreSummary
	Previous *PeriodScoreSummary
	Change   *ScoreChange
}
