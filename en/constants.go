// Package en is the reference English grammar for the datelingo
// engine: the parser and refiner instances behind the casual and
// strict configurations, plus convenience entry points mirroring the
// engine API.
package en

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/datelingo/datelingo/calendar"
)

var weekdayDictionary = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"weds":      time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

var monthDictionary = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sept":      time.September,
	"sep":       time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

var integerWordDictionary = map[string]int{
	"one":    1,
	"two":    2,
	"three":  3,
	"four":   4,
	"five":   5,
	"six":    6,
	"seven":  7,
	"eight":  8,
	"nine":   9,
	"ten":    10,
	"eleven": 11,
	"twelve": 12,
}

// matchAnyPattern joins dictionary keys into a regex alternation,
// longest key first so "sunday" is tried before "sun".
func matchAnyPattern[V any](dict map[string]V) string {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(keys, "|")
}

var (
	numberPattern = `\d{1,6}|an?|few|` + matchAnyPattern(integerWordDictionary)

	unitWordPattern = `years?|yrs?|quarters?|qtrs?|months?|weeks?|wks?|days?|hours?|hrs?|minutes?|mins?|milliseconds?|seconds?|secs?|ms`

	// timeUnitsPattern matches one or more "<number> <unit>" pairs
	// ("3 days", "1 hour and 30 minutes").
	timeUnitsPattern = `(?:(?:` + numberPattern + `)\s*(?:` + unitWordPattern + `)\s*(?:,?\s*(?:and\s+)?)?)+`

	singleUnitPattern = regexp.MustCompile(`(?i)(` + numberPattern + `)\s*(` + unitWordPattern + `)`)
)

func parseNumber(text string) (int, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	switch text {
	case "a", "an":
		return 1, true
	case "few":
		return 3, true
	}
	n, ok := integerWordDictionary[text]
	return n, ok
}

func unitFromWord(word string) (calendar.Unit, bool) {
	word = strings.ToLower(word)
	switch {
	case strings.HasPrefix(word, "year") || strings.HasPrefix(word, "yr"):
		return calendar.UnitYear, true
	case strings.HasPrefix(word, "quarter") || strings.HasPrefix(word, "qtr"):
		return calendar.UnitQuarter, true
	case strings.HasPrefix(word, "month"):
		return calendar.UnitMonth, true
	case strings.HasPrefix(word, "week") || strings.HasPrefix(word, "wk"):
		return calendar.UnitWeek, true
	case strings.HasPrefix(word, "day"):
		return calendar.UnitDay, true
	case strings.HasPrefix(word, "hour") || strings.HasPrefix(word, "hr"):
		return calendar.UnitHour, true
	case strings.HasPrefix(word, "millisecond") || word == "ms":
		return calendar.UnitMillisecond, true
	case strings.HasPrefix(word, "min"):
		return calendar.UnitMinute, true
	case strings.HasPrefix(word, "sec"):
		return calendar.UnitSecond, true
	}
	return 0, false
}

// parseTimeUnits turns a matched units blob into a typed duration.
func parseTimeUnits(text string) (calendar.Duration, bool) {
	matches := singleUnitPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, false
	}
	d := make(calendar.Duration, len(matches))
	for _, m := range matches {
		n, ok := parseNumber(m[1])
		if !ok {
			return nil, false
		}
		unit, ok := unitFromWord(m[2])
		if !ok {
			return nil, false
		}
		d[unit] += n
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func normalizeWord(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
