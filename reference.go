package datelingo

import "time"

// Reference anchors a single parse call to an absolute instant and the
// zone in which "local" calendar fields are read. All implied defaults
// must come from Local(), never from the raw instant.
type Reference struct {
	Instant  time.Time
	Location *time.Location
}

// NewReference anchors to the given instant in its own location.
func NewReference(instant time.Time) *Reference {
	return &Reference{Instant: instant, Location: instant.Location()}
}

// NewReferenceWithOffset anchors to the given instant but reads local
// fields at a fixed offset, in minutes east of UTC.
func NewReferenceWithOffset(instant time.Time, minutesEast int) *Reference {
	return &Reference{Instant: instant, Location: time.FixedZone("", minutesEast*60)}
}

// Local returns the reference instant shifted into the target zone.
func (r *Reference) Local() time.Time {
	if r.Location == nil {
		return r.Instant
	}
	return r.Instant.In(r.Location)
}

func (r *Reference) location() *time.Location {
	if r.Location == nil {
		return r.Instant.Location()
	}
	return r.Location
}
