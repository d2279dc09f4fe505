package en

import (
	"regexp"
	"strings"

	"github.com/datelingo/datelingo"
)

type timeParser struct {
	pattern *regexp.Regexp
}

// newTimeParser handles time-of-day expressions: "3pm", "at 3",
// "15:30", "5:57:51.720 pm", and ranges like "9am-5pm" or
// "10pm to 1am" (the latter crossing midnight).
func newTimeParser() datelingo.Parser {
	return datelingo.WithWordBoundary(&timeParser{
		pattern: regexp.MustCompile(
			`(?i)(?:at\s+)?(\d{1,2})(?::(\d{1,2})(?::(\d{1,2})(?:\.(\d{1,3}))?)?)?\s*(a\.?m\.?|p\.?m\.?|o'?clock)?` +
				`(?:\s*(?:-|–|~|to|until|till)\s*(\d{1,2})(?::(\d{1,2})(?::(\d{1,2}))?)?\s*(a\.?m\.?|p\.?m\.?)?)?`),
	})
}

func (p *timeParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *timeParser) Extract(ctx *datelingo.ParsingContext, match *datelingo.Match) *datelingo.Result {
	// A bare number is not a time; require minutes, a meridiem, an
	// o'clock suffix, or an "at" prefix to anchor the reading.
	atPrefix := len(match.Text) > 2 && strings.EqualFold(match.Text[:2], "at")
	if !match.HasCapture(2) && !match.HasCapture(5) && !atPrefix {
		return nil
	}

	start := extractTimeOfDay(ctx, match.Capture(1), match.Capture(2), match.Capture(3), match.Capture(4), match.Capture(5))
	if start == nil {
		return nil
	}
	result := ctx.NewResult(match.Index, match.Text, start)

	if match.HasCapture(6) {
		// A bare number on the end side is prose, not a range.
		if !match.HasCapture(7) && !match.HasCapture(9) {
			return nil
		}
		end := extractTimeOfDay(ctx, match.Capture(6), match.Capture(7), match.Capture(8), "", match.Capture(9))
		if end == nil {
			return nil
		}
		result.End = end
		rollMidnightCrossing(result)
	}
	return result
}

// extractTimeOfDay builds time-only components from the captured
// pieces, rejecting out-of-range field values.
func extractTimeOfDay(ctx *datelingo.ParsingContext, hourStr, minStr, secStr, msStr, merStr string) *datelingo.Components {
	hour := atoi(hourStr)
	minute := atoi(minStr)
	if minute > 59 {
		return nil
	}

	meridiem, hasMeridiem := parseMeridiem(merStr)
	if hasMeridiem {
		if hour < 1 || hour > 12 {
			return nil
		}
		if meridiem == datelingo.MeridiemPM && hour < 12 {
			hour += 12
		}
		if meridiem == datelingo.MeridiemAM && hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return nil
	}

	c := ctx.CreateComponents()
	c.Assign(datelingo.FieldHour, hour)
	c.Assign(datelingo.FieldMinute, minute)
	if secStr != "" {
		second := atoi(secStr)
		if second > 59 {
			return nil
		}
		c.Assign(datelingo.FieldSecond, second)
	}
	if msStr != "" {
		c.Assign(datelingo.FieldMillisecond, fractionToMillis(msStr))
	}
	if hour >= 12 {
		c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemPM)
	} else {
		c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemAM)
	}
	return c
}

func parseMeridiem(s string) (int, bool) {
	switch strings.ToLower(strings.ReplaceAll(s, ".", "")) {
	case "am":
		return datelingo.MeridiemAM, true
	case "pm":
		return datelingo.MeridiemPM, true
	}
	return 0, false
}

// rollMidnightCrossing pushes a range end that resolves at or before
// its start onto the next calendar day ("10pm-1am").
func rollMidnightCrossing(r *datelingo.Result) {
	start, err := r.Time()
	if err != nil {
		return
	}
	end, err := r.End.Time()
	if err != nil || end.After(start) {
		return
	}
	next := start.AddDate(0, 0, 1)
	r.End.Imply(datelingo.FieldDay, next.Day())
	r.End.Imply(datelingo.FieldMonth, int(next.Month()))
	r.End.Imply(datelingo.FieldYear, next.Year())
}
