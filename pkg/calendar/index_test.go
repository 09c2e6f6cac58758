package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func dayRange(from time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, from.AddDate(0, 0, i))
	}
	return days
}

func assignment(title string, start, end time.Time) Assignment {
	return Assignment{
		TechnicianID: uuid.New(),
		JobID:        uuid.New(),
		Job: Job{
			ID:        uuid.New(),
			Title:     title,
			Color:     "#2563eb",
			StartTime: start,
			EndTime:   end,
			Status:    "confirmed",
		},
	}
}

func TestIndexByDate_SpanningJobAppearsOnEveryDay(t *testing.T) {
	t.Parallel()

	a := assignment("Festival load-in",
		time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local),
		time.Date(2024, 5, 3, 22, 0, 0, 0, time.Local),
	)
	index := IndexByDate([]Assignment{a}, dayRange(day(2024, 5, 1), 5))

	require.Len(t, index["2024-05-01"], 1)
	require.Len(t, index["2024-05-02"], 1)
	require.Len(t, index["2024-05-03"], 1)
	require.Empty(t, index["2024-05-04"])
	require.Empty(t, index["2024-05-05"])
}

func TestIndexByDate_SingleInstantJobOnWeekend(t *testing.T) {
	t.Parallel()

	// 2024-05-04 is a Saturday; start == end must still bucket under exactly
	// that one day.
	at := time.Date(2024, 5, 4, 14, 0, 0, 0, time.Local)
	a := assignment("Corporate gig", at, at)
	index := IndexByDate([]Assignment{a}, dayRange(day(2024, 5, 3), 3))

	require.Empty(t, index["2024-05-03"])
	require.Len(t, index["2024-05-04"], 1)
	require.Empty(t, index["2024-05-05"])
}

func TestIndexByDate_SameDayDifferentTimesGroupTogether(t *testing.T) {
	t.Parallel()

	morning := assignment("Morning setup",
		time.Date(2024, 5, 2, 6, 0, 0, 0, time.Local),
		time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local),
	)
	evening := assignment("Evening show",
		time.Date(2024, 5, 2, 19, 0, 0, 0, time.Local),
		time.Date(2024, 5, 2, 23, 30, 0, 0, time.Local),
	)
	index := IndexByDate([]Assignment{morning, evening}, dayRange(day(2024, 5, 2), 1))

	require.Len(t, index["2024-05-02"], 2)
}

func TestIndexByDate_ZeroEndTreatedAsSingleDay(t *testing.T) {
	t.Parallel()

	a := assignment("Warehouse day", time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local), time.Time{})
	index := IndexByDate([]Assignment{a}, dayRange(day(2024, 5, 6), 2))

	require.Len(t, index["2024-05-06"], 1)
	require.Empty(t, index["2024-05-07"])
}

func TestIndexByDate_MalformedIntervalsDropped(t *testing.T) {
	t.Parallel()

	zeroStart := assignment("No start", time.Time{}, day(2024, 5, 1))
	inverted := assignment("Inverted",
		time.Date(2024, 5, 3, 9, 0, 0, 0, time.Local),
		time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local),
	)
	index := IndexByDate([]Assignment{zeroStart, inverted}, dayRange(day(2024, 5, 1), 4))

	for key, bucket := range index {
		assert.Empty(t, bucket, "day %s", key)
	}
}

func TestIndexByDate_EveryRequestedDayHasBucket(t *testing.T) {
	t.Parallel()

	index := IndexByDate(nil, dayRange(day(2024, 5, 1), 31))
	require.Len(t, index, 31)
	for _, bucket := range index {
		require.NotNil(t, bucket)
	}
}

func TestFilterAssignmentsByDate(t *testing.T) {
	t.Parallel()

	rows := []Assignment{
		{Date: "2024-05-01", Job: Job{Title: "A"}},
		{Date: "2024-05-02", Job: Job{Title: "B"}},
		{Date: "2024-05-01", Job: Job{Title: "C"}},
	}
	got := FilterAssignmentsByDate(rows, "2024-05-01")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Job.Title)
	assert.Equal(t, "C", got[1].Job.Title)

	require.Empty(t, FilterAssignmentsByDate(rows, "2024-06-01"))
}

func TestDayKey_LocalCalendar(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 23:30 local is already the next day in UTC; the key must follow the
	// wall clock, not UTC.
	at := time.Date(2024, 5, 1, 23, 30, 0, 0, loc)
	require.Equal(t, "2024-05-01", DayKey(at))
}
