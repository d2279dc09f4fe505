package en

import (
	"time"

	"github.com/pkg/errors"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/refiners"
)

// Strict assembles the configuration restricted to explicit
// numeric/calendar formats.
func Strict() *datelingo.Configuration {
	return &datelingo.Configuration{
		Parsers: []datelingo.Parser{
			newISOParser(),
			newMonthNameMiddleEndianParser(),
			newMonthNameLittleEndianParser(),
			newSlashDateParser(),
			newTimeParser(),
		},
		Refiners: pipeline(),
	}
}

// Casual assembles the full grammar. The idiom-heavy parsers come
// first so loose phrasing wins ties over stricter numeric patterns at
// the same text position.
func Casual() *datelingo.Configuration {
	cfg := Strict()
	cfg.Parsers = append([]datelingo.Parser{
		newCasualDateParser(),
		newCasualTimeParser(),
		newRelativeDateParser(),
		newAgoParser(),
		newLaterParser(),
		newWeekdayParser(),
		newMonthNameOnlyParser(),
	}, cfg.Parsers...)
	return cfg
}

// pipeline is the refiner order both configurations share. The order
// is load-bearing: overlap removal runs before the merges so a short
// match shadowed by a fuller one at the same position cannot merge
// with a neighbour, and the validity filter runs last so merged
// results are judged whole.
func pipeline() []datelingo.Refiner {
	return []datelingo.Refiner{
		newUnlikelyFormatFilter(),
		refiners.RemoveOverlaps(),
		newMergeWeekdayDateRefiner(),
		refiners.MergeDateTime(mergeDateTimeBetween),
		refiners.ExtractYearSuffix(),
		refiners.MergeDateRange(mergeRangeLigature),
		refiners.ForwardDate(),
		refiners.FilterInvalidDates(),
	}
}

// Parse extracts every date/time expression in text with the casual
// grammar.
func Parse(text string, ref *datelingo.Reference, opt datelingo.Option) []*datelingo.Result {
	return datelingo.Parse(text, ref, Casual(), opt)
}

// ParseDate returns the instant of the first expression found in
// text.
func ParseDate(text string, ref *datelingo.Reference) (time.Time, error) {
	results := Parse(text, ref, datelingo.Option{})
	if len(results) == 0 {
		return time.Time{}, errors.Errorf("en: no date found in %q", text)
	}
	t, err := results[0].Time()
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "en: resolving %q", results[0].Text)
	}
	return t, nil
}

// MustParseDate is ParseDate that panics on failure.
func MustParseDate(text string, ref *datelingo.Reference) time.Time {
	t, err := ParseDate(text, ref)
	if err != nil {
		panic(err.Error())
	}
	return t
}
