package refiners

import (
	"regexp"
	"strconv"
	"time"

	"github.com/datelingo/datelingo"
)

// A trailing bare year must be 4 digits to be unambiguous.
var yearSuffixPattern = regexp.MustCompile(`^(\s{0,3})(\d{4})(?:$|[^0-9])`)

type yearSuffixExtractor struct{}

// ExtractYearSuffix absorbs a bare year token immediately following a
// result whose year is unknown, assigning the year and extending the
// text span over it.
func ExtractYearSuffix() datelingo.Refiner {
	return yearSuffixExtractor{}
}

func (yearSuffixExtractor) Refine(ctx *datelingo.ParsingContext, results []*datelingo.Result) []*datelingo.Result {
	for i, r := range results {
		if !r.Start.IsDateWithUnknownYear() {
			continue
		}
		following := ctx.Text[r.Index+len(r.Text):]
		m := yearSuffixPattern.FindStringSubmatch(following)
		if m == nil {
			continue
		}
		// The extended span must stay clear of the next result; a
		// token that already belongs to another match is not a
		// suffix.
		if i+1 < len(results) {
			extended := r.Index + len(r.Text) + len(m[1]) + len(m[2])
			if extended > results[i+1].Index {
				continue
			}
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		r.Start.Assign(datelingo.FieldYear, year)
		if r.End != nil && r.End.IsDateWithUnknownYear() {
			r.End.Assign(datelingo.FieldYear, year)
		}
		r.Text += m[1] + m[2]
	}
	return results
}

type forwardDate struct{}

// ForwardDate biases ambiguous matches to the future when the option
// is set: a weekday that resolved into the past moves a week forward,
// a date with an inferred year moves a year forward. Dates whose year
// was stated, including relative results, are left alone.
func ForwardDate() datelingo.Refiner {
	return forwardDate{}
}

func (forwardDate) Refine(ctx *datelingo.ParsingContext, results []*datelingo.Result) []*datelingo.Result {
	if !ctx.Option.ForwardDate {
		return results
	}
	for _, r := range results {
		t, err := r.Start.Time()
		if err != nil || !t.Before(ctx.Reference.Instant) {
			continue
		}
		switch {
		case r.Start.IsOnlyWeekday():
			next := t.AddDate(0, 0, 7)
			r.Start.Imply(datelingo.FieldDay, next.Day())
			r.Start.Imply(datelingo.FieldMonth, int(next.Month()))
			r.Start.Imply(datelingo.FieldYear, next.Year())
			rollEndWith(r, next, 0, 0, 7)
		case r.Start.IsOnlyDate() && !r.Start.IsCertain(datelingo.FieldYear):
			r.Start.Imply(datelingo.FieldYear, t.Year()+1)
			rollEndWith(r, t.AddDate(1, 0, 0), 1, 0, 0)
		}
	}
	return results
}

// rollEndWith shifts a range end that a pushed start would otherwise
// overtake by the same step, keeping end >= start.
func rollEndWith(r *datelingo.Result, newStart time.Time, years, months, days int) {
	if r.End == nil || r.End.IsCertain(datelingo.FieldYear) {
		return
	}
	end, err := r.End.Time()
	if err != nil || !end.Before(newStart) {
		return
	}
	rolled := end.AddDate(years, months, days)
	r.End.Imply(datelingo.FieldDay, rolled.Day())
	r.End.Imply(datelingo.FieldMonth, int(rolled.Month()))
	r.End.Imply(datelingo.FieldYear, rolled.Year())
}
