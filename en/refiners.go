package en

import (
	"regexp"
	"strings"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/refiners"
)

const (
	// Connectors allowed between a date fragment and a time fragment
	// of one compound expression ("Friday at 3pm", "2014-04-26,
	// 17:24").
	mergeDateTimeBetween = `(?i)^\s*(?:,|of|at|on|t|-)?\s*$`

	// Ligatures turning two single points into one range ("Monday to
	// Friday", "Jan 5 - Jan 8").
	mergeRangeLigature = `(?i)^\s*(?:to|until|till|through|thru|-|–|~)\s*$`
)

// Month words that are common English outside date contexts; a bare
// mention only reads as a month after a leading "in".
var ambiguousMonthWords = map[string]struct{}{
	"may":   {},
	"march": {},
}

// newUnlikelyFormatFilter drops structurally valid matches that are
// almost certainly prose.
func newUnlikelyFormatFilter() datelingo.Refiner {
	return refiners.Filter(func(ctx *datelingo.ParsingContext, r *datelingo.Result) bool {
		if !r.Start.HasTag("bareMonth") {
			return true
		}
		word := normalizeWord(r.Text)
		if _, ambiguous := ambiguousMonthWords[word]; !ambiguous {
			return true
		}
		before := strings.Fields(strings.ToLower(ctx.Text[:r.Index]))
		return len(before) > 0 && before[len(before)-1] == "in"
	})
}

type weekdayDateMerger struct {
	between *regexp.Regexp
}

// newMergeWeekdayDateRefiner folds a leading weekday mention into the
// concrete date that follows it ("Friday, Jan 10 2025").
func newMergeWeekdayDateRefiner() datelingo.Refiner {
	return refiners.MergeAdjacent(&weekdayDateMerger{
		between: regexp.MustCompile(`^\s*,?\s*(?:the\s+)?$`),
	})
}

func (m *weekdayDateMerger) ShouldMerge(between string, a, b *datelingo.Result) bool {
	if !m.between.MatchString(between) {
		return false
	}
	return a.Start.IsOnlyWeekday() && !b.Start.IsOnlyWeekday() && b.Start.IsOnlyDate()
}

func (m *weekdayDateMerger) Merge(ctx *datelingo.ParsingContext, between string, a, b *datelingo.Result) *datelingo.Result {
	components := b.Start.Clone()
	if weekday, ok := a.Start.Get(datelingo.FieldWeekday); ok {
		components.Assign(datelingo.FieldWeekday, weekday)
	}
	return ctx.NewResult(a.Index, a.Text+between+b.Text, components)
}
