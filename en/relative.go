package en

import (
	"regexp"
	"time"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/calendar"
)

type relativeDateParser struct {
	pattern *regexp.Regexp
}

// newRelativeDateParser handles "this/next/last/past week|month|
// quarter|year" phrasing.
func newRelativeDateParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&relativeDateParser{
		pattern: regexp.MustCompile(`(?i)(this|next|last|past)\s+(week|month|quarter|year)`),
	})
}

func (p *relativeDateParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *relativeDateParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	offset := 0
	switch normalizeWord(match.Capture(1)) {
	case "next":
		offset = 1
	case "last", "past":
		offset = -1
	}

	var unit calendar.Unit
	switch normalizeWord(match.Capture(2)) {
	case "week":
		unit = calendar.UnitWeek
	case "month":
		unit = calendar.UnitMonth
	case "quarter":
		unit = calendar.UnitQuarter
	case "year":
		unit = calendar.UnitYear
	default:
		return nil
	}

	target := calendar.Add(ctx.Reference.Local(), calendar.Duration{unit: offset})
	components := ctx.CreateComponents()
	components.Imply(datelingo.FieldDay, target.Day())
	components.Imply(datelingo.FieldMonth, int(target.Month()))
	components.Imply(datelingo.FieldYear, target.Year())
	switch unit {
	case calendar.UnitMonth:
		components.Assign(datelingo.FieldMonth, int(target.Month()))
		components.Assign(datelingo.FieldYear, target.Year())
	case calendar.UnitYear:
		components.Assign(datelingo.FieldYear, target.Year())
	}
	components.AddTag("relativeDate")
	return ctx.NewResult(match.Index, match.Text, components)
}

type agoParser struct {
	pattern *regexp.Regexp
}

// newAgoParser handles "3 days ago", "an hour and 30 minutes earlier".
func newAgoParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&agoParser{
		pattern: regexp.MustCompile(`(?i)(` + timeUnitsPattern + `)(?:ago|before\s+now|earlier)`),
	})
}

func (p *agoParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *agoParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	duration, ok := parseTimeUnits(match.Capture(1))
	if !ok {
		return nil
	}
	target := calendar.Add(ctx.Reference.Local(), calendar.Reverse(duration))
	return ctx.NewResult(match.Index, match.Text, componentsFromRelative(ctx, target, duration))
}

type laterParser struct {
	pattern *regexp.Regexp
}

// newLaterParser handles "in 3 days", "within 2 months" and
// "2 weeks later / from now".
func newLaterParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&laterParser{
		pattern: regexp.MustCompile(
			`(?i)(?:within|in)\s+(` + timeUnitsPattern + `)|(` + timeUnitsPattern + `)(?:later|after|from\s+now)`),
	})
}

func (p *laterParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *laterParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	blob := match.Capture(1)
	if blob == "" {
		blob = match.Capture(2)
	}
	duration, ok := parseTimeUnits(blob)
	if !ok {
		return nil
	}
	target := calendar.Add(ctx.Reference.Local(), duration)
	return ctx.NewResult(match.Index, match.Text, componentsFromRelative(ctx, target, duration))
}

// componentsFromRelative builds components for a duration-based match.
// Units involved in the duration make the corresponding granularity
// certain; everything else stays implied from the target instant.
func componentsFromRelative(ctx *datelingo.ParsingContext, target time.Time, d calendar.Duration) *datelingo.Components {
	c := ctx.CreateComponents()
	if d.HasDateUnits() {
		c.Assign(datelingo.FieldDay, target.Day())
		c.Assign(datelingo.FieldMonth, int(target.Month()))
		c.Assign(datelingo.FieldYear, target.Year())
	} else {
		c.Imply(datelingo.FieldDay, target.Day())
		c.Imply(datelingo.FieldMonth, int(target.Month()))
		c.Imply(datelingo.FieldYear, target.Year())
	}
	if d.HasTimeUnits() {
		c.Assign(datelingo.FieldHour, target.Hour())
		c.Assign(datelingo.FieldMinute, target.Minute())
		c.Assign(datelingo.FieldSecond, target.Second())
		c.Assign(datelingo.FieldMillisecond, target.Nanosecond()/int(time.Millisecond))
		c.AddTag("relativeTime")
	} else {
		c.Imply(datelingo.FieldHour, target.Hour())
		c.Imply(datelingo.FieldMinute, target.Minute())
		c.Imply(datelingo.FieldSecond, target.Second())
		c.Imply(datelingo.FieldMillisecond, target.Nanosecond()/int(time.Millisecond))
	}
	c.AddTag("relativeDate")
	return c
}
