package en

import (
	"regexp"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/calendar"
)

type casualDateParser struct {
	pattern *regexp.Regexp
}

func newCasualDateParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&casualDateParser{
		pattern: regexp.MustCompile(`(?i)(now|today|tonight|tomorrow|tmr|yesterday|last\s+night)`),
	})
}

func (p *casualDateParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *casualDateParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	var components *datelingo.Components
	switch normalizeWord(match.Capture(1)) {
	case "now":
		components = calendar.Now(ctx.Reference)
	case "today":
		components = calendar.Today(ctx.Reference)
	case "tonight":
		components = calendar.Tonight(ctx.Reference)
	case "tomorrow", "tmr":
		components = calendar.Tomorrow(ctx.Reference)
	case "yesterday":
		components = calendar.Yesterday(ctx.Reference)
	case "last night":
		components = calendar.LastNight(ctx.Reference)
	default:
		return nil
	}
	components.AddTag("casualDate")
	return ctx.NewResult(match.Index, match.Text, components)
}

type casualTimeParser struct {
	pattern *regexp.Regexp
}

func newCasualTimeParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&casualTimeParser{
		pattern: regexp.MustCompile(`(?i)(?:this\s+)?(morning|afternoon|evening|noon|midnight)`),
	})
}

func (p *casualTimeParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *casualTimeParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	var components *datelingo.Components
	switch normalizeWord(match.Capture(1)) {
	case "morning":
		components = calendar.Morning(ctx.Reference)
	case "afternoon":
		components = calendar.Afternoon(ctx.Reference)
	case "evening":
		components = calendar.Evening(ctx.Reference)
	case "noon":
		components = calendar.Noon(ctx.Reference)
	case "midnight":
		components = calendar.Midnight(ctx.Reference)
	default:
		return nil
	}
	components.AddTag("casualTime")
	return ctx.NewResult(match.Index, match.Text, components)
}
