package pycore

import (
	"fmt"
	"reflect"
	"strings"
)

func buildOptional(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	if s.Inner == nil {
		return nil, schemaErrorf("optional schema requires a 'schema' child")
	}
	inner, err := buildValidator(s.Inner, cfg, bc)
	if err != nil {
		return nil, err
	}
	return optionalValidator{inner: inner}, nil
}

type optionalValidator struct {
	inner validator
}

func (v optionalValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	if in.IsNone() {
		return nil, nil
	}
	return v.inner.validate(in, ext, slots)
}

func (v optionalValidator) name() string { return "optional[" + v.inner.name() + "]" }

func buildUnion(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	if len(s.Choices) == 0 {
		return nil, schemaErrorf("union schema requires at least one choice")
	}
	v := unionValidator{}
	for _, choice := range s.Choices {
		cv, err := buildValidator(choice, cfg, bc)
		if err != nil {
			return nil, err
		}
		v.choices = append(v.choices, cv)
	}
	return v, nil
}

type unionValidator struct {
	choices []validator
}

// Choices are tried in declaration order; the first success wins. When all
// fail, every branch's failures are reported, each tagged with the branch
// name so the caller can tell them apart.
func (v unionValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	var errs lineErrors
	for _, choice := range v.choices {
		out, err := choice.validate(in, ext, slots)
		if err == nil {
			return out, nil
		}
		if isInternal(err) {
			return nil, err
		}
		for _, le := range err.(lineErrors) {
			errs = append(errs, le.withPrefix(KeyLoc(choice.name())))
		}
	}
	return nil, errs
}

func (v unionValidator) name() string {
	names := make([]string, len(v.choices))
	for i, c := range v.choices {
		names[i] = c.name()
	}
	return "union[" + strings.Join(names, ",") + "]"
}

func buildLiteral(s *Schema) (validator, error) {
	if len(s.Expected) == 0 {
		return nil, schemaErrorf("literal schema requires at least one expected value")
	}
	expected := make([]any, len(s.Expected))
	for i, e := range s.Expected {
		expected[i] = normalizeLiteral(e)
	}
	return literalValidator{expected: expected}, nil
}

type literalValidator struct {
	expected []any
}

func (v literalValidator) validate(in Input, _ *extra, _ []validator) (any, error) {
	got := normalizeLiteral(in.AsErrorValue())
	// non-comparable inputs (arrays, objects) can never match a literal
	if got == nil || reflect.TypeOf(got).Comparable() {
		for _, e := range v.expected {
			if e == got {
				return got, nil
			}
		}
	}
	return nil, lineErr(KindLiteralError, in, errCtx("expected", v.expectedList()))
}

func (v literalValidator) expectedList() string {
	parts := make([]string, len(v.expected))
	for i, e := range v.expected {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ", ")
}

func (literalValidator) name() string { return "literal" }

// normalizeLiteral widens numeric kinds so schema-declared expected values
// compare equal to adapter outputs regardless of the concrete Go type.
func normalizeLiteral(v any) any {
	if i, ok := asInt64(v); ok {
		return i
	}
	if f, ok := asFloat64(v); ok {
		return f
	}
	return v
}
