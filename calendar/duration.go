// Package calendar holds the date arithmetic the locale grammars
// depend on: typed-duration addition with calendar-correct rollover,
// weekday offset resolution, casual reference builders and year
// normalization heuristics.
package calendar

import "time"

// Unit is one typed duration component. Units are ordered from the
// most calendar-granular to the most instant-granular; Add applies
// them in that order.
type Unit int

const (
	UnitYear Unit = iota
	UnitQuarter
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
)

var unitNames = [...]string{
	UnitYear:        "year",
	UnitQuarter:     "quarter",
	UnitMonth:       "month",
	UnitWeek:        "week",
	UnitDay:         "day",
	UnitHour:        "hour",
	UnitMinute:      "minute",
	UnitSecond:      "second",
	UnitMillisecond: "millisecond",
}

func (u Unit) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// Duration is a sparse mapping from unit to a signed count. Only the
// units present are applied; a missing unit is never treated as zero
// and re-added.
type Duration map[Unit]int

// IsZero reports whether no unit is present.
func (d Duration) IsZero() bool { return len(d) == 0 }

// HasDateUnits reports whether any calendar-granular unit is present.
func (d Duration) HasDateUnits() bool {
	for u := range d {
		if u <= UnitDay {
			return true
		}
	}
	return false
}

// HasTimeUnits reports whether any sub-day unit is present.
func (d Duration) HasTimeUnits() bool {
	for u := range d {
		if u > UnitDay {
			return true
		}
	}
	return false
}

// Reverse returns a duration with every present unit's sign flipped.
// Absent units stay absent.
func Reverse(d Duration) Duration {
	out := make(Duration, len(d))
	for u, n := range d {
		out[u] = -n
	}
	return out
}

// Add applies the duration to t. Calendar-granular units go first:
// years, quarters and months collapse into one month shift with
// end-of-month clamping (Jan 31 + 1 month is the last day of
// February), then weeks and days shift whole calendar days. Sub-day
// units are flat instant arithmetic. An empty duration returns t
// unchanged.
func Add(t time.Time, d Duration) time.Time {
	if months := d[UnitYear]*12 + d[UnitQuarter]*3 + d[UnitMonth]; months != 0 {
		t = addMonths(t, months)
	}
	if days := d[UnitWeek]*7 + d[UnitDay]; days != 0 {
		t = t.AddDate(0, 0, days)
	}
	t = t.Add(time.Duration(d[UnitHour])*time.Hour +
		time.Duration(d[UnitMinute])*time.Minute +
		time.Duration(d[UnitSecond])*time.Second +
		time.Duration(d[UnitMillisecond])*time.Millisecond)
	return t
}

// addMonths shifts by whole months, clamping an overflowing
// day-of-month to the last valid day of the target month instead of
// letting time.Date normalize it into the next month.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	// Anchor on the 1st so the month shift itself cannot overflow.
	anchor := time.Date(year, month, 1, hour, minute, second, t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	if last := DaysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day, hour, minute, second, t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
