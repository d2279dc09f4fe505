package calendar

import (
	"time"

	"github.com/datelingo/datelingo"
)

// Casual reference builders compose components for fixed idioms
// purely through imply/assign against a fresh component set, so every
// locale maps its own words onto the same semantics.

// Now states the full reference date and time.
func Now(ref *datelingo.Reference) *datelingo.Components {
	local := ref.Local()
	c := datelingo.NewComponents(ref)
	assignDate(c, local)
	c.Assign(datelingo.FieldHour, local.Hour())
	c.Assign(datelingo.FieldMinute, local.Minute())
	c.Assign(datelingo.FieldSecond, local.Second())
	c.Assign(datelingo.FieldMillisecond, local.Nanosecond()/int(time.Millisecond))
	return c
}

// Today states the reference date and leaves the time implied.
func Today(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	assignDate(c, ref.Local())
	return c
}

// Tomorrow states the day after the reference date.
func Tomorrow(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	assignDate(c, ref.Local().AddDate(0, 0, 1))
	return c
}

// Yesterday states the day before the reference date.
func Yesterday(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	assignDate(c, ref.Local().AddDate(0, 0, -1))
	return c
}

// Tonight implies an evening hour without touching date fields.
func Tonight(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	c.Imply(datelingo.FieldHour, 22)
	c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemPM)
	return c
}

// LastNight implies the previous evening.
func LastNight(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	implyDate(c, ref.Local().AddDate(0, 0, -1))
	c.Imply(datelingo.FieldHour, 22)
	c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemPM)
	return c
}

// Midnight states 00:00:00.000. Mentioned after 2am local it means
// the upcoming midnight, so the implied date moves to the next day.
func Midnight(ref *datelingo.Reference) *datelingo.Components {
	local := ref.Local()
	c := datelingo.NewComponents(ref)
	c.Assign(datelingo.FieldHour, 0)
	c.Assign(datelingo.FieldMinute, 0)
	c.Assign(datelingo.FieldSecond, 0)
	c.Assign(datelingo.FieldMillisecond, 0)
	if local.Hour() > 2 {
		implyDate(c, local.AddDate(0, 0, 1))
	}
	return c
}

// Noon states 12:00.
func Noon(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	c.Assign(datelingo.FieldHour, 12)
	c.Assign(datelingo.FieldMinute, 0)
	c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemPM)
	return c
}

// Morning implies 6am.
func Morning(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	c.Imply(datelingo.FieldHour, 6)
	c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemAM)
	return c
}

// Afternoon implies 3pm.
func Afternoon(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	c.Imply(datelingo.FieldHour, 15)
	c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemPM)
	return c
}

// Evening implies 8pm.
func Evening(ref *datelingo.Reference) *datelingo.Components {
	c := datelingo.NewComponents(ref)
	c.Imply(datelingo.FieldHour, 20)
	c.Imply(datelingo.FieldMeridiem, datelingo.MeridiemPM)
	return c
}

func assignDate(c *datelingo.Components, t time.Time) {
	c.Assign(datelingo.FieldDay, t.Day())
	c.Assign(datelingo.FieldMonth, int(t.Month()))
	c.Assign(datelingo.FieldYear, t.Year())
}

func implyDate(c *datelingo.Components, t time.Time) {
	c.Imply(datelingo.FieldDay, t.Day())
	c.Imply(datelingo.FieldMonth, int(t.Month()))
	c.Imply(datelingo.FieldYear, t.Year())
}
