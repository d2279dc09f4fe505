package en

import (
	"regexp"
	"strings"
	"time"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/calendar"
)

type monthNameMiddleEndianParser struct {
	pattern *regexp.Regexp
}

// newMonthNameMiddleEndianParser handles "May 8", "September 17th,
// 2012", "oct 7 '70".
func newMonthNameMiddleEndianParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&monthNameMiddleEndianParser{
		pattern: regexp.MustCompile(
			`(?i)(` + matchAnyPattern(monthDictionary) + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s*,?\s*(?:(\d{4})|'(\d{2})))?`),
	})
}

func (p *monthNameMiddleEndianParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *monthNameMiddleEndianParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	month, ok := monthDictionary[normalizeWord(match.Capture(1))]
	if !ok {
		return nil
	}
	day := atoi(match.Capture(2))
	if day < 1 || day > 31 {
		return nil
	}

	components := ctx.CreateComponents()
	components.Assign(datelingo.FieldMonth, int(month))
	components.Assign(datelingo.FieldDay, day)
	assignOrImplyYear(components, ctx, match.Capture(3), match.Capture(4), day, month)
	return ctx.NewResult(match.Index, match.Text, components)
}

type monthNameLittleEndianParser struct {
	pattern *regexp.Regexp
}

// newMonthNameLittleEndianParser handles "15 January 2020", "the 2nd
// of June".
func newMonthNameLittleEndianParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&monthNameLittleEndianParser{
		pattern: regexp.MustCompile(
			`(?i)(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + matchAnyPattern(monthDictionary) + `)\.?(?:\s*,?\s*(?:(\d{4})|'(\d{2})))?`),
	})
}

func (p *monthNameLittleEndianParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *monthNameLittleEndianParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	day := atoi(match.Capture(1))
	if day < 1 || day > 31 {
		return nil
	}
	month, ok := monthDictionary[normalizeWord(match.Capture(2))]
	if !ok {
		return nil
	}

	components := ctx.CreateComponents()
	components.Assign(datelingo.FieldMonth, int(month))
	components.Assign(datelingo.FieldDay, day)
	assignOrImplyYear(components, ctx, match.Capture(3), match.Capture(4), day, month)
	return ctx.NewResult(match.Index, match.Text, components)
}

type monthNameOnlyParser struct {
	pattern *regexp.Regexp
}

// newMonthNameOnlyParser handles a bare month mention ("in May"). The
// unlikely-format filter decides whether an ambiguous month word was
// really a date, and the year-suffix refiner may absorb a following
// year.
func newMonthNameOnlyParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&monthNameOnlyParser{
		pattern: regexp.MustCompile(`(?i)(` + matchAnyPattern(monthDictionary) + `)`),
	})
}

func (p *monthNameOnlyParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *monthNameOnlyParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	month, ok := monthDictionary[normalizeWord(match.Capture(1))]
	if !ok {
		return nil
	}
	components := ctx.CreateComponents()
	components.Assign(datelingo.FieldMonth, int(month))
	components.Imply(datelingo.FieldDay, 1)
	components.Imply(datelingo.FieldYear, calendar.YearClosestToRef(ctx.Reference.Local(), 1, month))
	components.AddTag("bareMonth")
	return ctx.NewResult(match.Index, match.Text, components)
}

type slashDateParser struct {
	pattern *regexp.Regexp
}

// newSlashDateParser handles the American "8/10" and "03/19/2012"
// forms.
func newSlashDateParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&slashDateParser{
		pattern: regexp.MustCompile(`(?i)(?:on\s+)?(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?`),
	})
}

func (p *slashDateParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *slashDateParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	month := atoi(match.Capture(1))
	day := atoi(match.Capture(2))
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	components := ctx.CreateComponents()
	components.Assign(datelingo.FieldMonth, month)
	components.Assign(datelingo.FieldDay, day)
	switch year := match.Capture(3); len(year) {
	case 4:
		components.Assign(datelingo.FieldYear, atoi(year))
	case 2:
		components.Assign(datelingo.FieldYear, calendar.MostLikelyYear(atoi(year)))
	default:
		components.Imply(datelingo.FieldYear,
			calendar.YearClosestToRef(ctx.Reference.Local(), day, time.Month(month)))
	}
	return ctx.NewResult(match.Index, match.Text, components)
}

type isoParser struct {
	pattern *regexp.Regexp
}

// newISOParser handles "2006-01-02", optionally with a time part and
// a zone designator ("2006-01-02T15:04:05Z", "... +07:00").
func newISOParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&isoParser{
		pattern: regexp.MustCompile(
			`(\d{4})-(\d{1,2})-(\d{1,2})(?:[T\s](\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,4}))?)?(?:\s*(?:(Z)|([+-]\d{2}):?(\d{2})?))?)?`),
	})
}

func (p *isoParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *isoParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	month := atoi(match.Capture(2))
	day := atoi(match.Capture(3))
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	components := ctx.CreateComponents()
	components.Assign(datelingo.FieldYear, atoi(match.Capture(1)))
	components.Assign(datelingo.FieldMonth, month)
	components.Assign(datelingo.FieldDay, day)

	if match.HasCapture(4) {
		hour := atoi(match.Capture(4))
		minute := atoi(match.Capture(5))
		if hour > 23 || minute > 59 {
			return nil
		}
		components.Assign(datelingo.FieldHour, hour)
		components.Assign(datelingo.FieldMinute, minute)
		if match.HasCapture(6) {
			second := atoi(match.Capture(6))
			if second > 59 {
				return nil
			}
			components.Assign(datelingo.FieldSecond, second)
		}
		if match.HasCapture(7) {
			components.Assign(datelingo.FieldMillisecond, fractionToMillis(match.Capture(7)))
		}
		switch {
		case match.HasCapture(8):
			components.Assign(datelingo.FieldTimezoneOffset, 0)
		case match.HasCapture(9):
			hours := atoi(match.Capture(9))
			minutes := atoi(match.Capture(10))
			offset := hours * 60
			if strings.HasPrefix(match.Capture(9), "-") {
				offset -= minutes
			} else {
				offset += minutes
			}
			components.Assign(datelingo.FieldTimezoneOffset, offset)
		}
	}
	return ctx.NewResult(match.Index, match.Text, components)
}

// assignOrImplyYear applies an explicit 4-digit year, normalizes a
// 2-digit 'NN year, or implies the year landing the date closest to
// the reference.
func assignOrImplyYear(c *datelingo.Components, ctx *datelingo.ParsingContext, year4, year2 string, day int, month time.Month) {
	switch {
	case year4 != "":
		c.Assign(datelingo.FieldYear, atoi(year4))
	case year2 != "":
		c.Assign(datelingo.FieldYear, calendar.MostLikelyYear(atoi(year2)))
	default:
		c.Imply(datelingo.FieldYear, calendar.YearClosestToRef(ctx.Reference.Local(), day, month))
	}
}

// fractionToMillis turns a fractional-second capture into whole
// milliseconds.
func fractionToMillis(frac string) int {
	if len(frac) > 3 {
		frac = frac[:3]
	}
	millis := atoi(frac)
	for i := len(frac); i < 3; i++ {
		millis *= 10
	}
	return millis
}
