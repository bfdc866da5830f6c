package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := ParseDateTime(s)
	require.NoError(t, err)
	return ts
}

func TestParseDateTime(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := ParseDateTime("2023-01-01T00:00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), ts)
	})

	t.Run("rejects trailing zone designator", func(t *testing.T) {
		_, err := ParseDateTime("2023-01-01T00:00:00Z")
		assert.True(t, IsKind(err, KindInvalidInput))
	})

	t.Run("rejects date-only strings", func(t *testing.T) {
		_, err := ParseDateTime("2023-01-01")
		assert.True(t, IsKind(err, KindInvalidInput))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDateTime("not-a-date")
		assert.True(t, IsKind(err, KindInvalidInput))
	})
}

func TestChooseGranularity(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		expected Granularity
	}{
		{
			name:     "short span within one month",
			start:    "2023-01-01T00:00:00",
			end:      "2023-01-20T00:00:00",
			expected: Daily,
		},
		{
			name:     "exactly 31 days within one month",
			start:    "2023-01-01T00:00:00",
			end:      "2023-01-31T23:59:59",
			expected: Daily,
		},
		{
			name:     "different months with short span",
			start:    "2023-01-30T00:00:00",
			end:      "2023-02-02T00:00:00",
			expected: Weekly,
		},
		{
			name:     "different months",
			start:    "2023-01-01T00:00:00",
			end:      "2023-02-05T00:00:00",
			expected: Weekly,
		},
		{
			name:     "span over 31 days",
			start:    "2023-03-01T00:00:00",
			end:      "2023-04-15T00:00:00",
			expected: Weekly,
		},
		{
			name:     "same month different year",
			start:    "2022-12-30T00:00:00",
			end:      "2023-01-02T00:00:00",
			expected: Weekly,
		},
		{
			name:     "single day",
			start:    "2023-01-01T00:00:00",
			end:      "2023-01-01T23:59:59",
			expected: Daily,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ChooseGranularity(mustParse(t, tc.start), mustParse(t, tc.end))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, DaysBetween(
		mustParse(t, "2023-01-01T00:00:00"),
		mustParse(t, "2023-01-10T00:00:00")))

	// Time-of-day does not influence the calendar day span.
	assert.Equal(t, 9, DaysBetween(
		mustParse(t, "2023-01-01T23:59:59"),
		mustParse(t, "2023-01-10T00:00:00")))

	assert.Equal(t, 0, DaysBetween(
		mustParse(t, "2023-01-01T00:00:00"),
		mustParse(t, "2023-01-01T18:00:00")))
}

func TestPreviousPeriod(t *testing.T) {
	t.Run("ten day window", func(t *testing.T) {
		start := mustParse(t, "2023-01-01T00:00:00")
		end := mustParse(t, "2023-01-10T00:00:00")

		prevStart, prevEnd := PreviousPeriod(start, end)

		assert.Equal(t, "2022-12-22T00:00:00", FormatDateTime(prevStart))
		assert.Equal(t, "2022-12-31T23:59:59", FormatDateTime(prevEnd))
		// The previous window covers the same number of calendar days.
		assert.Equal(t, DaysBetween(start, end), DaysBetween(prevStart, prevEnd))
	})

	t.Run("abuts current period without gap or overlap", func(t *testing.T) {
		start := mustParse(t, "2023-03-15T00:00:00")
		end := mustParse(t, "2023-03-20T00:00:00")

		_, prevEnd := PreviousPeriod(start, end)

		assert.Equal(t, time.Second, dateOf(start).Sub(prevEnd))
	})

	t.Run("single day window", func(t *testing.T) {
		start := mustParse(t, "2023-01-05T00:00:00")
		end := mustParse(t, "2023-01-05T23:59:59")

		prevStart, prevEnd := PreviousPeriod(start, end)

		assert.Equal(t, "2023-01-04T00:00:00", FormatDateTime(prevStart))
		assert.Equal(t, "2023-01-04T23:59:59", FormatDateTime(prevEnd))
	})
}
