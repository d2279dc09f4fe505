package datelingo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Components is a partially-known date/time value. Fields a parser
// matched in the text live in the known map; everything else needed to
// resolve a concrete instant is defaulted into the implied map from
// the reference, so any Components can always resolve to some date.
type Components struct {
	ref     *Reference
	known   map[Field]int
	implied map[Field]int
	tags    map[string]struct{}
}

// NewComponents creates fresh components with day, month and year
// implied from the timezone-adjusted reference, and the time of day
// implied to 12:00:00.000.
func NewComponents(ref *Reference) *Components {
	c := &Components{
		ref:     ref,
		known:   make(map[Field]int),
		implied: make(map[Field]int),
		tags:    make(map[string]struct{}),
	}
	local := ref.Local()
	c.implied[FieldDay] = local.Day()
	c.implied[FieldMonth] = int(local.Month())
	c.implied[FieldYear] = local.Year()
	c.implied[FieldHour] = 12
	c.implied[FieldMinute] = 0
	c.implied[FieldSecond] = 0
	c.implied[FieldMillisecond] = 0
	return c
}

// Reference returns the owning reference context.
func (c *Components) Reference() *Reference { return c.ref }

// Get returns the externally visible value for f: the known value if
// present, otherwise the implied value.
func (c *Components) Get(f Field) (int, bool) {
	if v, ok := c.known[f]; ok {
		return v, true
	}
	v, ok := c.implied[f]
	return v, ok
}

// IsCertain reports whether f was explicitly stated in matched text.
func (c *Components) IsCertain(f Field) bool {
	_, ok := c.known[f]
	return ok
}

// Assign sets a known value for f, clearing any implied value so that
// exactly one of the two maps governs the field.
func (c *Components) Assign(f Field, value int) *Components {
	c.known[f] = value
	delete(c.implied, f)
	return c
}

// Imply sets a defaulted value for f. Known values are never
// overwritten by inference; a later Imply may replace an earlier one.
func (c *Components) Imply(f Field, value int) *Components {
	if _, ok := c.known[f]; ok {
		return c
	}
	c.implied[f] = value
	return c
}

// Delete removes f entirely, both known and implied.
func (c *Components) Delete(f Field) {
	delete(c.known, f)
	delete(c.implied, f)
}

// AddTag attaches a free-form classification tag.
func (c *Components) AddTag(tag string) *Components {
	c.tags[tag] = struct{}{}
	return c
}

// HasTag reports whether the tag is present.
func (c *Components) HasTag(tag string) bool {
	_, ok := c.tags[tag]
	return ok
}

// Tags returns the tag set in sorted order.
func (c *Components) Tags() []string {
	out := make([]string, 0, len(c.tags))
	for t := range c.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// CertainFields lists the explicitly stated fields in enum order.
func (c *Components) CertainFields() []Field {
	out := make([]Field, 0, len(c.known))
	for f := Field(0); f < numFields; f++ {
		if _, ok := c.known[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Clone deep-copies the components. The clone shares only the
// immutable reference context.
func (c *Components) Clone() *Components {
	dup := &Components{
		ref:     c.ref,
		known:   make(map[Field]int, len(c.known)),
		implied: make(map[Field]int, len(c.implied)),
		tags:    make(map[string]struct{}, len(c.tags)),
	}
	for f, v := range c.known {
		dup.known[f] = v
	}
	for f, v := range c.implied {
		dup.implied[f] = v
	}
	for t := range c.tags {
		dup.tags[t] = struct{}{}
	}
	return dup
}

// IsOnlyDate reports that no time-of-day field is certain.
func (c *Components) IsOnlyDate() bool {
	return !c.IsCertain(FieldHour) && !c.IsCertain(FieldMinute) && !c.IsCertain(FieldSecond)
}

// IsOnlyTime reports that no calendar-date field is certain.
func (c *Components) IsOnlyTime() bool {
	return !c.IsCertain(FieldYear) && !c.IsCertain(FieldMonth) &&
		!c.IsCertain(FieldDay) && !c.IsCertain(FieldWeekday)
}

// IsOnlyWeekday reports that the weekday is certain but the concrete
// day and month are not.
func (c *Components) IsOnlyWeekday() bool {
	return c.IsCertain(FieldWeekday) && !c.IsCertain(FieldDay) && !c.IsCertain(FieldMonth)
}

// IsDateWithUnknownYear reports a certain month without a certain year.
func (c *Components) IsDateWithUnknownYear() bool {
	return c.IsCertain(FieldMonth) && !c.IsCertain(FieldYear)
}

// IsValidDate round-trips the field values through calendar
// construction and fails when any field overflowed, e.g. day=31 in
// April or hour=26.
func (c *Components) IsValidDate() bool {
	_, err := c.Time()
	return err == nil
}

func (c *Components) get(f Field) int {
	v, _ := c.Get(f)
	return v
}

// Time resolves the components to an absolute instant. The naive date
// is built in the effective zone: an explicit timezoneOffset field
// wins, otherwise the reference zone applies.
func (c *Components) Time() (time.Time, error) {
	loc := c.ref.location()
	if offset, ok := c.Get(FieldTimezoneOffset); ok {
		loc = time.FixedZone("", offset*60)
	}

	year := c.get(FieldYear)
	month := c.get(FieldMonth)
	day := c.get(FieldDay)
	hour := c.get(FieldHour)
	minute := c.get(FieldMinute)
	second := c.get(FieldSecond)
	millis := c.get(FieldMillisecond)

	t := time.Date(year, time.Month(month), day, hour, minute, second, millis*int(time.Millisecond), loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, errors.Errorf("dates: field overflow building %04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, second)
	}
	return t, nil
}

func (c *Components) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02d %02d:%02d:%02d", c.get(FieldYear), c.get(FieldMonth), c.get(FieldDay), c.get(FieldHour), c.get(FieldMinute), c.get(FieldSecond))
	certain := c.CertainFields()
	if len(certain) > 0 {
		names := make([]string, len(certain))
		for i, f := range certain {
			names[i] = f.String()
		}
		fmt.Fprintf(&b, " certain:[%s]", strings.Join(names, ","))
	}
	return b.String()
}
