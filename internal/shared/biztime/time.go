// Package biztime provides calendar-day boundary calculations in the
// clinic's timezone. Storage and queries use UTC; the clinic timezone is
// only used to decide where a calendar day starts and ends, so that
// "today's queue" means today at the registration desk, not today in UTC.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the clinic timezone used when none is configured.
const DefaultTimezone = "Asia/Jakarta"

var (
	clinicLocation *time.Location
	locationOnce   sync.Once
	initErr        error
)

// Init initializes the clinic timezone. Should be called once at startup.
// An empty tz falls back to DefaultTimezone.
func Init(tz string) error {
	locationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		clinicLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the clinic timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize clinic timezone %q: %v", tz, err))
	}
}

// Location returns the clinic timezone, auto-initializing with the default
// if Init was never called.
func Location() *time.Location {
	if clinicLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize default timezone: %v", err))
		}
	}
	return clinicLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00:00.000 of t's clinic-timezone calendar day,
// converted to UTC for querying.
func StartOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return start.UTC()
}

// EndOfDayUTC returns 23:59:59.999999999 of t's clinic-timezone calendar day,
// converted to UTC for querying.
func EndOfDayUTC(t time.Time) time.Time {
	local := t.In(Location())
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Location())
	return end.UTC()
}

// DayBoundsUTC returns the [start, end] pair of t's clinic-timezone
// calendar day in UTC. Repositories use both ends of the pair.
func DayBoundsUTC(t time.Time) (time.Time, time.Time) {
	return StartOfDayUTC(t), EndOfDayUTC(t)
}

// ParseDateInClinicTimezone parses a YYYY-MM-DD date string as clinic
// midnight and returns the UTC equivalent.
func ParseDateInClinicTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// ToClinicTimezone converts a UTC time to the clinic timezone for display.
func ToClinicTimezone(t time.Time) time.Time {
	return t.In(Location())
}
