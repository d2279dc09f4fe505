package datelingo

import (
	"context"
	"log/slog"
)

// Option carries per-call behavior switches.
type Option struct {
	// ForwardDate biases ambiguous date-only matches ("Monday") to
	// the future relative to the reference instant.
	ForwardDate bool
	// Logger, when set, receives debug traces of parser production
	// and refiner passes. The engine never logs otherwise.
	Logger *slog.Logger
}

// ParsingContext is the per-call state shared by parsers and refiners:
// the input text, the reference context, and the caller options. It is
// never shared across calls.
type ParsingContext struct {
	Text      string
	Reference *Reference
	Option    Option
}

// NewParsingContext builds the context for one parse call.
func NewParsingContext(text string, ref *Reference, opt Option) *ParsingContext {
	return &ParsingContext{Text: text, Reference: ref, Option: opt}
}

// CreateComponents returns fresh components implied from the
// reference.
func (ctx *ParsingContext) CreateComponents() *Components {
	return NewComponents(ctx.Reference)
}

// NewResult creates a result at the given span. A nil start gets
// fresh components.
func (ctx *ParsingContext) NewResult(index int, text string, start *Components) *Result {
	if start == nil {
		start = ctx.CreateComponents()
	}
	return &Result{ref: ctx.Reference, Index: index, Text: text, Start: start}
}

func (ctx *ParsingContext) debug(msg string, args ...any) {
	if ctx.Option.Logger == nil {
		return
	}
	ctx.Option.Logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}
