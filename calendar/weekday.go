package calendar

import (
	"time"

	"github.com/datelingo/datelingo"
)

// Modifier qualifies a weekday expression ("this Friday", "last
// Friday", "next Friday", or a bare "Friday").
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierThis
	ModifierLast
	ModifierNext
)

// DaysForward returns the smallest non-negative day offset from ref
// to the target weekday; 0 when ref already falls on it.
func DaysForward(ref time.Time, target time.Weekday) int {
	return (int(target) - int(ref.Weekday()) + 7) % 7
}

// DaysBackward returns the largest non-positive day offset from ref
// to the target weekday; 0 when ref already falls on it. Callers
// wanting "last <same weekday>" to mean a full week back must handle
// the 0 case themselves.
func DaysBackward(ref time.Time, target time.Weekday) int {
	return -((int(ref.Weekday()) - int(target) + 7) % 7)
}

// DaysToWeekday resolves the modifier semantics to a concrete day
// offset from ref.
//
// "next" carries an asymmetric boundary rule: when the reference day
// is itself on the weekend and the target is a weekend day, the
// offset counts a full additional week, so "next Saturday" said on a
// Saturday is 7 days out and "next Sunday" is 8. Outside that case
// "next" is the forward offset, with a same-day match pushed out a
// week.
func DaysToWeekday(ref time.Time, target time.Weekday, modifier Modifier) int {
	switch modifier {
	case ModifierThis:
		return DaysForward(ref, target)
	case ModifierLast:
		if back := DaysBackward(ref, target); back != 0 {
			return back
		}
		return -7
	case ModifierNext:
		return daysToWeekdayNext(ref, target)
	}
	return daysToWeekdayClosest(ref, target)
}

func daysToWeekdayNext(ref time.Time, target time.Weekday) int {
	forward := DaysForward(ref, target)
	refDay := ref.Weekday()
	if refDay == time.Saturday || refDay == time.Sunday {
		if target == time.Saturday || target == time.Sunday {
			return forward + 7
		}
		return forward
	}
	if forward == 0 {
		return 7
	}
	return forward
}

// daysToWeekdayClosest picks whichever of the forward and backward
// offsets has the smaller magnitude. The result is always in [-6, 6].
func daysToWeekdayClosest(ref time.Time, target time.Weekday) int {
	forward := DaysForward(ref, target)
	backward := DaysBackward(ref, target)
	if forward <= -backward {
		return forward
	}
	return backward
}

// ComponentsAtWeekday builds components for a weekday expression: the
// weekday itself is certain, the concrete date it lands on is implied.
func ComponentsAtWeekday(ref *datelingo.Reference, target time.Weekday, modifier Modifier) *datelingo.Components {
	local := ref.Local()
	date := local.AddDate(0, 0, DaysToWeekday(local, target, modifier))

	c := datelingo.NewComponents(ref)
	c.Assign(datelingo.FieldWeekday, int(target))
	c.Imply(datelingo.FieldDay, date.Day())
	c.Imply(datelingo.FieldMonth, int(date.Month()))
	c.Imply(datelingo.FieldYear, date.Year())
	return c
}
