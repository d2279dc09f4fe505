// Package datelingo extracts date/time expressions from free-form
// text. The engine runs an ordered list of locale parsers over the
// input, collecting partially-known date/time components per match,
// then threads the raw matches through an ordered refiner pipeline
// that merges fragments, removes overlaps and filters unlikely
// matches. Locale grammars plug in through the Parser and Refiner
// interfaces; the engine itself is locale-agnostic.
package datelingo

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"
)

// Configuration is an ordered list of parsers and refiners for one
// locale variant. Parser order is significant: it breaks ties when
// overlapping matches have equal length. Refiner order is significant
// because later refiners depend on earlier merges having happened.
// Configurations are immutable after assembly and safe to share
// across concurrent parse calls.
type Configuration struct {
	Parsers  []Parser
	Refiners []Refiner
}

// Refiner is one post-processing pass over the full match list.
type Refiner interface {
	Refine(ctx *ParsingContext, results []*Result) []*Result
}

// Clone copies the configuration so a caller can reorder or extend
// the parser list without touching a shared instance.
func (c *Configuration) Clone() *Configuration {
	dup := &Configuration{
		Parsers:  make([]Parser, len(c.Parsers)),
		Refiners: make([]Refiner, len(c.Refiners)),
	}
	copy(dup.Parsers, c.Parsers)
	copy(dup.Refiners, c.Refiners)
	return dup
}

// Parse runs every parser to exhaustion over text, orders the raw
// results by text index (ties keep parser registration order), then
// applies the refiners in configuration order. It never fails:
// malformed input simply yields fewer or no results.
func Parse(text string, ref *Reference, cfg *Configuration, opt Option) []*Result {
	if ref == nil {
		ref = NewReference(time.Now())
	}
	ctx := NewParsingContext(text, ref, opt)

	var results []*Result
	for _, p := range cfg.Parsers {
		results = append(results, executeParser(ctx, p)...)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	for _, r := range cfg.Refiners {
		before := len(results)
		results = r.Refine(ctx, results)
		if before != len(results) {
			ctx.debug("refiner pass", "refiner", typeName(r), "in", before, "out", len(results))
		}
	}
	return results
}

// executeParser collects every non-overlapping match for one parser,
// scanning left to right. A nil extraction is a silent rejection: the
// scan resumes one rune past the rejected match start.
func executeParser(ctx *ParsingContext, p Parser) []*Result {
	pattern := p.Pattern()
	var out []*Result

	pos := 0
	for pos <= len(ctx.Text) {
		loc := pattern.FindStringSubmatchIndex(ctx.Text[pos:])
		if loc == nil {
			break
		}
		match := &Match{
			Index:    pos + loc[0],
			Text:     ctx.Text[pos+loc[0] : pos+loc[1]],
			Captures: make([]string, len(loc)/2),
		}
		for i := 0; i < len(loc)/2; i++ {
			if loc[2*i] >= 0 {
				match.Captures[i] = ctx.Text[pos+loc[2*i] : pos+loc[2*i+1]]
			}
		}

		result := p.Extract(ctx, match)
		if result == nil {
			pos = advanceRune(ctx.Text, match.Index)
			continue
		}
		ctx.debug("parser match", "parser", typeName(p), "index", result.Index, "text", result.Text)
		out = append(out, result)

		next := result.Index + len(result.Text)
		if next <= match.Index {
			next = advanceRune(ctx.Text, match.Index)
		}
		pos = next
	}
	return out
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func advanceRune(text string, pos int) int {
	if pos >= len(text) {
		return len(text) + 1
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return pos + size
}
