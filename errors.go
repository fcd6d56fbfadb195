package pycore

import (
	"errors"
	"fmt"
	"strings"
)

// ContextPair is one named parameter attached to a line error, used for
// message templating and exposed verbatim at the error boundary.
type ContextPair struct {
	Key   string
	Value any
}

// Context is the ordered parameter list of a line error. Order matters for
// rendering and for a stable boundary shape, so this is a slice, not a map.
type Context []ContextPair

// errCtx builds a Context from alternating key/value arguments.
func errCtx(kv ...any) Context {
	c := make(Context, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		c = append(c, ContextPair{Key: fmt.Sprint(kv[i]), Value: kv[i+1]})
	}
	return c
}

// Render substitutes every literal {name} placeholder in template with the
// context value of the same name. Placeholders with no matching key are left
// verbatim.
func (c Context) Render(template string) string {
	rendered := template
	for _, p := range c {
		rendered = strings.ReplaceAll(rendered, "{"+p.Key+"}", fmt.Sprint(p.Value))
	}
	return rendered
}

// Map returns the context as a plain map for the error boundary. Returns nil
// for an empty context.
func (c Context) Map() map[string]any {
	if len(c) == 0 {
		return nil
	}
	m := make(map[string]any, len(c))
	for _, p := range c {
		m[p.Key] = p.Value
	}
	return m
}

// LineError is a single validation failure: what went wrong (Kind), where
// (Loc), the offending input snapshot, and the parameters needed to render a
// message. Message overrides the kind's template when non-empty.
type LineError struct {
	Kind    ErrorKind
	Loc     Location
	Message string
	Input   any
	Context Context
}

func (e LineError) withPrefix(item LocItem) LineError {
	e.Loc = e.Loc.prepend(item)
	return e
}

// RenderMessage produces the human-readable message for this error using the
// current renderer, honoring any message override.
func (e LineError) RenderMessage() string {
	if e.Message != "" {
		return e.Context.Render(e.Message)
	}
	return renderMessage(e.Kind, e.Context)
}

// lineErrors is the internal error carrier validators return: every violation
// found so far, in discovery order. It implements error so it can flow through
// ordinary (value, error) returns.
type lineErrors []LineError

func (le lineErrors) Error() string {
	if len(le) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(le), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", le[i].Kind, le[i].Loc.Pointer())
	}
	if len(le) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(le))
	}
	return b.String()
}

// lineErr wraps a single violation at the current input.
func lineErr(kind ErrorKind, in Input, ctx Context) lineErrors {
	return lineErrors{{Kind: kind, Input: in.AsErrorValue(), Context: ctx}}
}

// ErrorDetail is the boundary shape of one line error: everything a
// presentation layer needs, with the message already rendered.
type ErrorDetail struct {
	Loc     []any          `json:"loc"`
	Kind    ErrorKind      `json:"kind"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
	Input   any            `json:"input_value"`
}

// ValidationError reports every violation found during one top-level validate
// call. It is the only error shape data problems surface as; build problems
// are a SchemaError and engine/host contract breaches an InternalError.
type ValidationError struct {
	Title  string
	Errors []LineError
}

func (e *ValidationError) Error() string {
	b := &strings.Builder{}
	n := len(e.Errors)
	plural := ""
	if n != 1 {
		plural = "s"
	}
	fmt.Fprintf(b, "%d validation error%s for %s", n, plural, e.Title)
	for _, le := range e.Errors {
		b.WriteByte('\n')
		if len(le.Loc) > 0 {
			b.WriteString(le.Loc.String())
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "  %s [kind=%s, input_value=%v, input_type=%s]",
			le.RenderMessage(), le.Kind, displayValue(le.Input), typeName(le.Input))
	}
	return b.String()
}

// Details renders the boundary view of every line error, in order.
func (e *ValidationError) Details() []ErrorDetail {
	out := make([]ErrorDetail, len(e.Errors))
	for i, le := range e.Errors {
		out[i] = ErrorDetail{
			Loc:     le.Loc.Items(),
			Kind:    le.Kind,
			Message: le.RenderMessage(),
			Context: le.Context.Map(),
			Input:   le.Input,
		}
	}
	return out
}

// AsValidationError extracts a ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// SchemaError reports a structurally invalid schema. Building never produces
// line errors: a bad schema aborts the whole build with one of these.
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return "schema error: " + e.Message
}

func (e *SchemaError) Unwrap() error { return e.Cause }

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}

// InternalError signals a contract violation between the engine and an input
// adapter rather than a data problem. It aborts the whole call and is never
// collected into a ValidationError.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string { return fmt.Sprintf("internal error: %v", e.Cause) }

func (e *InternalError) Unwrap() error { return e.Cause }

// isInternal reports whether err must abort the call instead of being
// aggregated.
func isInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
