package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// LocalLayout is the zone-less wall-clock layout work logs are stored in.
const LocalLayout = "2006-01-02T15:04:05"

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// DateKey returns the YYYY-MM-DD key for the local calendar date of t.
// Grouping, the "today" highlight and the last-log index all use this
// same key so day boundaries cannot shift between them.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// StartOfWeek snaps any reference date to Monday 00:00:00 local time.
// Idempotent: StartOfWeek(StartOfWeek(d)) == StartOfWeek(d).
func StartOfWeek(t time.Time) time.Time {
	diff := (int(t.Weekday()) + 6) % 7 // Sunday=0
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -diff)
}

// EndOfWeek returns Sunday 23:59:59.999 local of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	s := StartOfWeek(t)
	return s.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
}

// WeekDateKeys returns the 7 date keys starting at weekStart.
func WeekDateKeys(weekStart time.Time) []string {
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = DateKey(weekStart.AddDate(0, 0, i))
	}
	return keys
}

// IsValidTime reports whether v is a 24-hour HH:MM string.
func IsValidTime(v string) bool {
	return timeRe.MatchString(v)
}

// MinutesOfDay converts an HH:MM string to minutes since midnight.
func MinutesOfDay(v string) int {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// BuildLocalDateTime combines a YYYY-MM-DD key and an HH:MM time into a
// zone-less wall-clock string. Stored as entered, so the instant matches
// the user's clock regardless of the reader's timezone.
func BuildLocalDateTime(dateKey, hhmm string) string {
	return dateKey + "T" + hhmm + ":00"
}

// ParseLocal parses a stored wall-clock string. RFC3339 values from older
// records are accepted too, read in local time.
func ParseLocal(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(LocalLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}

// DurationMinutes is the rounded minute count between two stored
// timestamps, clamped to 0 when non-positive or unparsable. All duration
// summation runs on these integer minutes; hours appear only at
// formatting time, which avoids the drift of accumulating hour decimals.
func DurationMinutes(startAt, endAt string) int {
	start, err := ParseLocal(startAt)
	if err != nil {
		return 0
	}
	end, err := ParseLocal(endAt)
	if err != nil {
		return 0
	}
	mins := int(end.Sub(start).Round(time.Minute) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatMinutes renders a minute count as "H h", "M min" or "H h M min".
func FormatMinutes(mins int) string {
	if mins <= 0 {
		return "0 h"
	}
	h := mins / 60
	m := mins % 60
	switch {
	case m == 0:
		return fmt.Sprintf("%d h", h)
	case h == 0:
		return fmt.Sprintf("%d min", m)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}

// TodayKey is the date key for the current local day.
func TodayKey() string {
	return DateKey(time.Now())
}

// HourLabel renders an hour-of-day bucket label, e.g. "14:00".
func HourLabel(h int) string {
	return fmt.Sprintf("%d:00", h)
}

