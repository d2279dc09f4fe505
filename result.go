package datelingo

import (
	"fmt"
	"time"
)

// Result is one located match: the text span it came from, the
// resolved start components, and an optional end for ranges.
type Result struct {
	ref   *Reference
	Index int
	Text  string
	Start *Components
	End   *Components
}

// Reference returns the reference context the result resolves against.
func (r *Result) Reference() *Reference { return r.ref }

// IsRange reports whether the result carries an end point.
func (r *Result) IsRange() bool { return r.End != nil }

// Time resolves the start components to an absolute instant.
func (r *Result) Time() (time.Time, error) {
	return r.Start.Time()
}

// EndTime resolves the end components. It falls back to the start
// instant for single-point results.
func (r *Result) EndTime() (time.Time, error) {
	if r.End == nil {
		return r.Start.Time()
	}
	return r.End.Time()
}

// Clone deep-copies the result and its components.
func (r *Result) Clone() *Result {
	dup := &Result{ref: r.ref, Index: r.Index, Text: r.Text, Start: r.Start.Clone()}
	if r.End != nil {
		dup.End = r.End.Clone()
	}
	return dup
}

func (r *Result) String() string {
	if r.End != nil {
		return fmt.Sprintf("{index: %d, text: %q, start: %v, end: %v}", r.Index, r.Text, r.Start, r.End)
	}
	return fmt.Sprintf("{index: %d, text: %q, start: %v}", r.Index, r.Text, r.Start)
}
