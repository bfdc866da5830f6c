package models

// CategoryRow is one rating category as stored, with its weight.
type CategoryRow struct {
	ID     int64
	Name   string
	Weight float64
}

// RawRatingRow is one (ticket, category) rating event within a period.
type RawRatingRow struct {
	TicketID   int64
	CategoryID int64
	Rating     int
}

// AggregatedBucketRow is one pre-aggregated (bucket, category) row.
// Period is a plain date for daily buckets or a "start to end" range for
// weekly ones.
type AggregatedBucketRow struct {
	Period        string
	CategoryID    int64
	Frequency     int
	AverageRating float64
}
