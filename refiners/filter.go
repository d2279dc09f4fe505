package refiners

import (
	"github.com/datelingo/datelingo"
)

type filterRefiner struct {
	keep func(ctx *datelingo.ParsingContext, r *datelingo.Result) bool
}

// Filter keeps only the results the predicate accepts. Locale
// grammars build their unlikely-match heuristics on this.
func Filter(keep func(ctx *datelingo.ParsingContext, r *datelingo.Result) bool) datelingo.Refiner {
	return &filterRefiner{keep: keep}
}

func (f *filterRefiner) Refine(ctx *datelingo.ParsingContext, results []*datelingo.Result) []*datelingo.Result {
	out := results[:0]
	for _, r := range results {
		if f.keep(ctx, r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterInvalidDates drops results whose components do not form a
// valid calendar date ("February 30th"). Dropping beats clamping: a
// silently corrected date is worse than no match.
func FilterInvalidDates() datelingo.Refiner {
	return Filter(func(_ *datelingo.ParsingContext, r *datelingo.Result) bool {
		if !r.Start.IsValidDate() {
			return false
		}
		return r.End == nil || r.End.IsValidDate()
	})
}

type overlapRemover struct{}

// RemoveOverlaps resolves overlapping text spans deterministically:
// the longer match wins, ties keep the result appearing earlier in
// the list, which reflects parser registration order.
func RemoveOverlaps() datelingo.Refiner {
	return overlapRemover{}
}

func (overlapRemover) Refine(_ *datelingo.ParsingContext, results []*datelingo.Result) []*datelingo.Result {
	if len(results) < 2 {
		return results
	}
	out := make([]*datelingo.Result, 0, len(results))
	for _, r := range results {
		if len(out) == 0 {
			out = append(out, r)
			continue
		}
		last := out[len(out)-1]
		if r.Index < last.Index+len(last.Text) {
			if len(r.Text) > len(last.Text) {
				out[len(out)-1] = r
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
