package en

import (
	"regexp"
	"time"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/calendar"
)

type weekdayParser struct {
	pattern *regexp.Regexp
}

func newWeekdayParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&weekdayParser{
		pattern: regexp.MustCompile(
			`(?i)(?:on\s+)?(?:(this|last|past|next)\s+)?(` + matchAnyPattern(weekdayDictionary) + `|weekend)`),
	})
}

func (p *weekdayParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *weekdayParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	modifier := calendar.ModifierNone
	switch normalizeWord(match.Capture(1)) {
	case "this":
		modifier = calendar.ModifierThis
	case "last", "past":
		modifier = calendar.ModifierLast
	case "next":
		modifier = calendar.ModifierNext
	}

	word := normalizeWord(match.Capture(2))
	target, ok := weekdayDictionary[word]
	if word == "weekend" {
		// The weekend starts Saturday.
		target, ok = time.Saturday, true
	}
	if !ok {
		return nil
	}

	components := calendar.ComponentsAtWeekday(ctx.Reference, target, modifier)
	return ctx.NewResult(match.Index, match.Text, components)
}
