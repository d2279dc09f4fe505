package datelingo

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Parser is a single grammar rule: a compiled pattern locating
// candidate spans, and an extraction step turning one matched span
// into a Result. Returning nil from Extract rejects the span; the
// engine resumes scanning just past it. Parsers hold no per-call
// state, so one instance is safe to share across concurrent calls.
type Parser interface {
	Pattern() *regexp.Regexp
	Extract(ctx *ParsingContext, match *Match) *Result
}

// Match is one textual match handed to a parser's extraction step.
// Captures follow regexp submatch numbering; Captures[0] is the full
// matched text.
type Match struct {
	Index    int
	Text     string
	Captures []string
}

// Capture returns submatch i, or "" when the group did not
// participate in the match.
func (m *Match) Capture(i int) string {
	if i < 0 || i >= len(m.Captures) {
		return ""
	}
	return m.Captures[i]
}

// HasCapture reports whether group i matched non-empty text.
func (m *Match) HasCapture(i int) bool {
	return m.Capture(i) != ""
}

type boundaryParser struct {
	inner   Parser
	pattern *regexp.Regexp
}

// WithWordBoundary wraps a parser so its pattern only matches on word
// boundaries, and re-validates that the runes adjacent to the match
// are not letters or digits. The \b assertion alone is ASCII-only,
// hence the second check.
func WithWordBoundary(p Parser) Parser {
	raw := p.Pattern().String()
	return &boundaryParser{
		inner:   p,
		pattern: regexp.MustCompile(`\b(?:` + raw + `)\b`),
	}
}

func (p *boundaryParser) Pattern() *regexp.Regexp { return p.pattern }

func (p *boundaryParser) Extract(ctx *ParsingContext, match *Match) *Result {
	if match.Index > 0 {
		r, _ := utf8.DecodeLastRuneInString(ctx.Text[:match.Index])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}
	if end := match.Index + len(match.Text); end < len(ctx.Text) {
		r, _ := utf8.DecodeRuneInString(ctx.Text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return nil
		}
	}
	return p.inner.Extract(ctx, match)
}
