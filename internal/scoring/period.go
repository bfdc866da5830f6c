package scoring

import "time"

// DateTimeLayout is the only accepted request date format. All parsing and
// formatting is pinned to UTC.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the calendar-date format used in bucket period labels.
const DateLayout = "2006-01-02"

// Granularity selects which aggregate query shape a period uses.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
)

func (g Granularity) String() string {
	if g == Weekly {
		return "weekly"
	}
	return "daily"
}

// ParseDateTime parses a request date string, rejecting anything that does
// not match DateTimeLayout exactly.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, InvalidInputf("invalid date %q, expected format %s", s, DateTimeLayout)
	}
	return t, nil
}

// FormatDateTime formats t in the request date format.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// FormatDate formats t as a bare calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the exclusive day-span between the calendar dates of
// start and end. Same-day periods count as zero.
func DaysBetween(start, end time.Time) int {
	return int(dateOf(end).Sub(dateOf(start)).Hours() / 24)
}

// ChooseGranularity picks Weekly when the span exceeds 31 days or when
// start and end fall in different calendar months or years (even for
// short spans such as Jan 30 to Feb 2). Callers guarantee start <= end.
func ChooseGranularity(start, end time.Time) Granularity {
	if DaysBetween(start, end) > 31 {
		return Weekly
	}
	s, e := dateOf(start), dateOf(end)
	if s.Month() != e.Month() || s.Year() != e.Year() {
		return Weekly
	}
	return Daily
}

// PreviousPeriod returns the preceding window of equal day-length,
// abutting [start, end] with no gap or overlap: prevEnd is the day before
// start at 23:59:59, prevStart is n+1 days before start at midnight,
// where n is the exclusive day-span of the current period.
func PreviousPeriod(start, end time.Time) (prevStart, prevEnd time.Time) {
	n := DaysBetween(start, end)
	s := dateOf(start)
	prevStart = s.AddDate(0, 0, -(n + 1))
	prevEnd = s.AddDate(0, 0, -1).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return prevStart, prevEnd
}
