package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
	"github.com/godilite/ticket-scoring/internal/scoring"
)

// RatingRepository provides the read-only query shapes the engine
// consumes. Period bounds are bound as yyyy-MM-ddTHH:mm:ss strings, the
// format ratings.created_at is stored in.
type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func bindPeriod(start, end time.Time) (string, string) {
	return scoring.FormatDateTime(start), scoring.FormatDateTime(end)
}

// ListCategories returns the full category snapshot.
func (r *RatingRepository) ListCategories(ctx context.Context) ([]models.CategoryRow, error) {
	const query = `SELECT id, name, weight FROM rating_categories ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListCategories: %w", err)
	}
	defer rows.Close()

	var results []models.CategoryRow
	for rows.Next() {
		var c models.CategoryRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Weight); err != nil {
			return nil, fmt.Errorf("scan ListCategories row: %w", err)
		}
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListCategories: %w", err)
	}
	return results, nil
}

// FindDailyAggregates returns one row per (day, category) in the period.
func (r *RatingRepository) FindDailyAggregates(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error) {
	const query = `
		SELECT
			DATE(created_at) AS date,
			rating_category_id,
			COUNT(*) AS frequency,
			AVG(rating) AS average_rating
		FROM ratings
		WHERE created_at BETWEEN ? AND ?
		GROUP BY DATE(created_at), rating_category_id
		ORDER BY DATE(created_at), rating_category_id
	`

	s, e := bindPeriod(start, end)
	return r.queryAggregates(ctx, "FindDailyAggregates", query, s, e)
}

// FindWeeklyAggregates returns one row per (week, category) in the
// period. The week label is "minDate to maxDate" with the right side
// clamped to the period end.
func (r *RatingRepository) FindWeeklyAggregates(ctx context.Context, start, end time.Time) ([]models.AggregatedBucketRow, error) {
	const query = `
		SELECT
			MIN(DATE(created_at)) || ' to ' ||
				CASE WHEN MAX(DATE(created_at)) > ? THEN ? ELSE MAX(DATE(created_at)) END AS week_range,
			rating_category_id,
			COUNT(*) AS frequency,
			AVG(rating) AS average_rating
		FROM ratings
		WHERE created_at BETWEEN ? AND ?
		GROUP BY strftime('%Y-%W', created_at), rating_category_id
		ORDER BY MIN(DATE(created_at)), rating_category_id
	`

	s, e := bindPeriod(start, end)
	endDate := scoring.FormatDate(end)
	return r.queryAggregates(ctx, "FindWeeklyAggregates", query, endDate, endDate, s, e)
}

func (r *RatingRepository) queryAggregates(ctx context.Context, op, query string, args ...any) ([]models.AggregatedBucketRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", op, err)
	}
	defer rows.Close()

	var results []models.AggregatedBucketRow
	for rows.Next() {
		var b models.AggregatedBucketRow
		if err := rows.Scan(&b.Period, &b.CategoryID, &b.Frequency, &b.AverageRating); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", op, err)
		}
		results = append(results, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", op, err)
	}
	return results, nil
}

// FindRatingsInPeriod returns every raw rating event in the period, one
// row per (ticket, category) rating.
func (r *RatingRepository) FindRatingsInPeriod(ctx context.Context, start, end time.Time) ([]models.RawRatingRow, error) {
	const query = `
		SELECT ticket_id, rating_category_id, rating
		FROM ratings
		WHERE created_at BETWEEN ? AND ?
	`

	s, e := bindPeriod(start, end)
	rows, err := r.db.QueryContext(ctx, query, s, e)
	if err != nil {
		return nil, fmt.Errorf("query FindRatingsInPeriod: %w", err)
	}
	defer rows.Close()

	var results []models.RawRatingRow
	for rows.Next() {
		var rr models.RawRatingRow
		if err := rows.Scan(&rr.TicketID, &rr.CategoryID, &rr.Rating); err != nil {
			return nil, fmt.Errorf("scan FindRatingsInPeriod row: %w", err)
		}
		results = append(results, rr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate FindRatingsInPeriod: %w", err)
	}
	return results, nil
}
