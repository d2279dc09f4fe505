package calendar

import "time"

// mostLikelyYearPivot splits two-digit years between the 1900s and
// the 2000s: '49 is 2049, '50 is 1950.
const mostLikelyYearPivot = 50

// MostLikelyYear normalizes a 2-digit year to its most likely 4-digit
// form. Values already above two digits pass through unchanged.
func MostLikelyYear(year int) int {
	if year < 0 || year >= 100 {
		return year
	}
	if year < mostLikelyYearPivot {
		return year + 2000
	}
	return year + 1900
}

// YearClosestToRef picks, for a day/month with no stated year, the
// candidate year whose date lands nearest the reference instant.
func YearClosestToRef(ref time.Time, day int, month time.Month) int {
	best := ref.Year()
	bestDistance := time.Duration(1<<63 - 1)
	for _, year := range []int{ref.Year() - 1, ref.Year(), ref.Year() + 1} {
		candidate := time.Date(year, month, day, 12, 0, 0, 0, ref.Location())
		distance := candidate.Sub(ref)
		if distance < 0 {
			distance = -distance
		}
		if distance < bestDistance {
			bestDistance = distance
			best = year
		}
	}
	return best
}
