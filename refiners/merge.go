// Package refiners provides the locale-independent refiner passes and
// the abstract merging/filtering bases locale grammars compose their
// pipelines from. Refiners run strictly in configuration order over
// the full result list of one parse call.
package refiners

import (
	"regexp"

	"github.com/datelingo/datelingo"
)

// Merger decides whether two adjacent results, separated by the given
// literal between-text, describe one compound expression, and if so
// produces the combined result.
type Merger interface {
	ShouldMerge(textBetween string, a, b *datelingo.Result) bool
	Merge(ctx *datelingo.ParsingContext, textBetween string, a, b *datelingo.Result) *datelingo.Result
}

type mergeAdjacent struct {
	merger Merger
}

// MergeAdjacent lifts a Merger into a refiner that walks the result
// list left to right, repeatedly folding mergeable neighbours.
func MergeAdjacent(m Merger) datelingo.Refiner {
	return &mergeAdjacent{merger: m}
}

func (ref *mergeAdjacent) Refine(ctx *datelingo.ParsingContext, results []*datelingo.Result) []*datelingo.Result {
	if len(results) < 2 {
		return results
	}
	out := make([]*datelingo.Result, 0, len(results))
	current := results[0]
	for _, next := range results[1:] {
		gapStart := current.Index + len(current.Text)
		if gapStart <= next.Index {
			between := ctx.Text[gapStart:next.Index]
			if ref.merger.ShouldMerge(between, current, next) {
				if merged := ref.merger.Merge(ctx, between, current, next); merged != nil {
					current = merged
					continue
				}
			}
		}
		out = append(out, current)
		current = next
	}
	return append(out, current)
}

type dateTimeMerger struct {
	between *regexp.Regexp
}

// MergeDateTime merges a date-only result with an adjacent time-only
// result (in either order) when the text between them matches the
// locale's connector pattern. Certain time fields from the time side
// are layered onto the date side.
func MergeDateTime(betweenPattern string) datelingo.Refiner {
	return MergeAdjacent(&dateTimeMerger{between: regexp.MustCompile(betweenPattern)})
}

func (m *dateTimeMerger) ShouldMerge(between string, a, b *datelingo.Result) bool {
	if !m.between.MatchString(between) {
		return false
	}
	return (a.Start.IsOnlyDate() && b.Start.IsOnlyTime()) ||
		(b.Start.IsOnlyDate() && a.Start.IsOnlyTime())
}

func (m *dateTimeMerger) Merge(ctx *datelingo.ParsingContext, between string, a, b *datelingo.Result) *datelingo.Result {
	dateSide, timeSide := a, b
	if a.Start.IsOnlyTime() {
		dateSide, timeSide = b, a
	}

	merged := ctx.NewResult(a.Index, a.Text+between+b.Text, layerTime(dateSide.Start, timeSide.Start))
	switch {
	case timeSide.End != nil:
		base := dateSide.End
		if base == nil {
			base = dateSide.Start
		}
		merged.End = layerTime(base, timeSide.End)
	case dateSide.End != nil:
		merged.End = layerTime(dateSide.End, timeSide.Start)
	}
	rollEndForward(merged)
	return merged
}

var timeOfDayFields = []datelingo.Field{
	datelingo.FieldHour,
	datelingo.FieldMinute,
	datelingo.FieldSecond,
	datelingo.FieldMillisecond,
	datelingo.FieldMeridiem,
}

// layerTime copies the time-of-day fields of tm onto a clone of date,
// keeping the certainty of each side's own fields.
func layerTime(date, tm *datelingo.Components) *datelingo.Components {
	out := date.Clone()
	for _, f := range timeOfDayFields {
		v, ok := tm.Get(f)
		if !ok {
			continue
		}
		if tm.IsCertain(f) {
			out.Assign(f, v)
		} else {
			out.Imply(f, v)
		}
	}
	if tm.IsCertain(datelingo.FieldTimezoneOffset) {
		if v, ok := tm.Get(datelingo.FieldTimezoneOffset); ok {
			out.Assign(datelingo.FieldTimezoneOffset, v)
		}
	}
	for _, tag := range tm.Tags() {
		out.AddTag(tag)
	}
	return out
}

// rollEndForward keeps the range invariant: an end resolving before
// its start is pushed to the next calendar day ("10pm-1am" crosses
// midnight). The rolled date is inferred, never certain, even when
// the layered date side stated one.
func rollEndForward(r *datelingo.Result) {
	if r.End == nil {
		return
	}
	start, err := r.Time()
	if err != nil {
		return
	}
	end, err := r.End.Time()
	if err != nil || !end.Before(start) {
		return
	}
	next := start.AddDate(0, 0, 1)
	for field, value := range map[datelingo.Field]int{
		datelingo.FieldDay:   next.Day(),
		datelingo.FieldMonth: int(next.Month()),
		datelingo.FieldYear:  next.Year(),
	} {
		r.End.Delete(field)
		r.End.Imply(field, value)
	}
}

type dateRangeMerger struct {
	ligature *regexp.Regexp
}

// MergeDateRange combines two single-point results connected by a
// range ligature ("to", "-", "~") into one result carrying both start
// and end.
func MergeDateRange(ligaturePattern string) datelingo.Refiner {
	return MergeAdjacent(&dateRangeMerger{ligature: regexp.MustCompile(ligaturePattern)})
}

func (m *dateRangeMerger) ShouldMerge(between string, a, b *datelingo.Result) bool {
	return !a.IsRange() && !b.IsRange() && m.ligature.MatchString(between)
}

func (m *dateRangeMerger) Merge(ctx *datelingo.ParsingContext, between string, a, b *datelingo.Result) *datelingo.Result {
	from, to := a, b
	ft, errFrom := from.Time()
	tt, errTo := to.Time()
	if errFrom == nil && errTo == nil && tt.Before(ft) &&
		!to.Start.IsOnlyTime() && !to.Start.IsOnlyWeekday() {
		// "Friday to Monday" phrased backwards in resolution order.
		from, to = to, from
	}

	merged := ctx.NewResult(a.Index, a.Text+between+b.Text, from.Start.Clone())
	merged.End = to.Start.Clone()
	if to.Start.IsOnlyWeekday() {
		// A weekday end resolving before the start means the
		// following week ("Monday to Friday" said on a Monday).
		if start, err := merged.Time(); err == nil {
			if end, err := merged.End.Time(); err == nil && end.Before(start) {
				next := end.AddDate(0, 0, 7)
				merged.End.Imply(datelingo.FieldDay, next.Day())
				merged.End.Imply(datelingo.FieldMonth, int(next.Month()))
				merged.End.Imply(datelingo.FieldYear, next.Year())
			}
		}
	}
	if to.Start.IsOnlyTime() {
		// A time-only end before the start crosses midnight; the
		// end day comes from the start side either way.
		if start, err := merged.Time(); err == nil {
			implied := start
			if end, err := merged.End.Time(); err == nil && end.Before(start) {
				implied = start.AddDate(0, 0, 1)
			}
			merged.End.Imply(datelingo.FieldDay, implied.Day())
			merged.End.Imply(datelingo.FieldMonth, int(implied.Month()))
			merged.End.Imply(datelingo.FieldYear, implied.Year())
		}
	}
	return merged
}
