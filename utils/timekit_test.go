package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	d := time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", DateKey(d))

	d = time.Date(2024, 11, 30, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-11-30", DateKey(d))
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", time.Date(2024, 1, 3, 15, 30, 0, 0, time.Local), "2024-01-01"},
		{"monday itself", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), "2024-01-01"},
		{"sunday goes back six days", time.Date(2024, 1, 7, 10, 0, 0, 0, time.Local), "2024-01-01"},
		{"across month boundary", time.Date(2024, 3, 2, 8, 0, 0, 0, time.Local), "2024-02-26"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.in)
			assert.Equal(t, tc.want, DateKey(got))
			assert.Equal(t, time.Monday, got.Weekday())
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, 0, got.Minute())
		})
	}
}

func TestStartOfWeekIdempotent(t *testing.T) {
	d := time.Date(2024, 7, 19, 22, 13, 5, 0, time.Local)
	once := StartOfWeek(d)
	assert.Equal(t, once, StartOfWeek(once))
}

func TestEndOfWeek(t *testing.T) {
	e := EndOfWeek(time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-01-07", DateKey(e))
	assert.Equal(t, time.Sunday, e.Weekday())
	assert.Equal(t, 23, e.Hour())
	assert.Equal(t, 59, e.Minute())
	assert.Equal(t, 59, e.Second())
}

func TestWeekDateKeys(t *testing.T) {
	keys := WeekDateKeys(time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))
	require.Len(t, keys, 7)
	assert.Equal(t, "2024-01-01", keys[0])
	assert.Equal(t, "2024-01-07", keys[6])
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "07:30", "12:00", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidTime(v), v)
	}
	invalid := []string{"24:00", "7:30", "12:60", "12-30", "", "noon"}
	for _, v := range invalid {
		assert.False(t, IsValidTime(v), v)
	}
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay("00:00"))
	assert.Equal(t, 450, MinutesOfDay("07:30"))
	assert.Equal(t, 1439, MinutesOfDay("23:59"))
}

func TestBuildLocalDateTimeRoundTrip(t *testing.T) {
	s := BuildLocalDateTime("2024-03-05", "09:00")
	assert.Equal(t, "2024-03-05T09:00:00", s)

	parsed, err := ParseLocal(s)
	require.NoError(t, err)
	assert.Equal(t, "09:00", parsed.Format("15:04"))
	assert.Equal(t, "2024-03-05", DateKey(parsed))
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 270, DurationMinutes("2024-01-01T08:00:00", "2024-01-01T12:30:00"))
	// end before start clamps to zero
	assert.Equal(t, 0, DurationMinutes("2024-01-01T12:00:00", "2024-01-01T08:00:00"))
	// unparsable values clamp to zero
	assert.Equal(t, 0, DurationMinutes("garbage", "2024-01-01T12:00:00"))
	assert.Equal(t, 0, DurationMinutes("2024-01-01T08:00:00", ""))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0 h", FormatMinutes(0))
	assert.Equal(t, "0 h", FormatMinutes(-5))
	assert.Equal(t, "45 min", FormatMinutes(45))
	assert.Equal(t, "1 h", FormatMinutes(60))
	assert.Equal(t, "4 h 30 min", FormatMinutes(270))
	assert.Equal(t, "8 h 30 min", FormatMinutes(510))
}
