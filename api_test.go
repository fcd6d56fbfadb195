package pycore_test

import (
	"math"
	"testing"

	pycore "github.com/samuelcolvin/pydantic-core"
)

func mustValidator(t *testing.T, schema *pycore.Schema, cfg *pycore.Config) *pycore.SchemaValidator {
	t.Helper()
	v, err := pycore.NewSchemaValidator(schema, cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return v
}

func TestBoolTable(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "bool"}, &pycore.Config{Title: "TestModel"})
	cases := []struct {
		in   any
		want bool
	}{
		{false, false},
		{true, true},
		{0, false},
		{0.0, false},
		{1, true},
		{1.0, true},
		{"yes", true},
		{"no", false},
		{"true", true},
		{"false", false},
		{"tRuE", true},
		{"OFF", false},
	}
	for _, c := range cases {
		got, err := v.Validate(c.in)
		if err != nil {
			t.Fatalf("Validate(%v): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Validate(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBoolErrors(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "bool"}, &pycore.Config{Title: "TestModel"})
	cases := []struct {
		in   any
		kind pycore.ErrorKind
	}{
		{"cheese", pycore.KindBoolParsing},
		{2, pycore.KindBoolParsing},
		{2.0, pycore.KindBoolParsing},
		{1.1, pycore.KindBoolType},
		{[]any{}, pycore.KindBoolType},
	}
	for _, c := range cases {
		_, err := v.Validate(c.in)
		ve, ok := pycore.AsValidationError(err)
		if !ok {
			t.Fatalf("Validate(%v): expected ValidationError, got %v", c.in, err)
		}
		if len(ve.Errors) != 1 || ve.Errors[0].Kind != c.kind {
			t.Fatalf("Validate(%v): got %v, want single %s", c.in, ve.Errors, c.kind)
		}
	}
}

func TestIntTable(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "int"}, &pycore.Config{Title: "TestModel"})
	cases := []struct {
		in   any
		want int64
	}{
		{0, 0},
		{"0", 0},
		{1, 1},
		{42, 42},
		{"42", 42},
		{42.0, 42},
		{int64(1e10), int64(1e10)},
		{uint64(7), 7},
		{uint64(math.MaxInt64), math.MaxInt64},
		{float64(math.MinInt64), math.MinInt64},
		{true, 1},
		{false, 0},
	}
	for _, c := range cases {
		got, err := v.Validate(c.in)
		if err != nil {
			t.Fatalf("Validate(%v): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Validate(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	errCases := []struct {
		in   any
		kind pycore.ErrorKind
	}{
		{12.5, pycore.KindIntFromFloat},
		{"wrong", pycore.KindIntParsing},
		{[]any{1, 2}, pycore.KindIntType},
		// values outside int64 range must error, never wrap
		{uint64(math.MaxUint64), pycore.KindIntType},
		{uint(math.MaxUint64), pycore.KindIntType},
		{1e19, pycore.KindIntParsing},
		{-1e19, pycore.KindIntParsing},
		{math.Inf(1), pycore.KindIntParsing},
		{math.NaN(), pycore.KindIntParsing},
	}
	for _, c := range errCases {
		_, err := v.Validate(c.in)
		ve, ok := pycore.AsValidationError(err)
		if !ok || len(ve.Errors) != 1 || ve.Errors[0].Kind != c.kind {
			t.Fatalf("Validate(%v): got %v, want %s", c.in, err, c.kind)
		}
	}

	// same over the document family: a JSON literal past int64 range
	_, err := v.ValidateJSON([]byte(`10000000000000000000`))
	ve, ok := pycore.AsValidationError(err)
	if !ok || ve.Errors[0].Kind != pycore.KindIntParsing {
		t.Fatalf("huge JSON literal: got %v, want int_parsing", err)
	}
}

// JSON document "123" must fail a strict int but coerce in lax mode.
func TestIntStrictVsLaxJSON(t *testing.T) {
	lax := mustValidator(t, &pycore.Schema{Type: "int"}, nil)

	got, err := lax.ValidateJSON([]byte(`"123"`))
	if err != nil {
		t.Fatalf("lax: %v", err)
	}
	if got != int64(123) {
		t.Fatalf("lax got %v, want 123", got)
	}

	_, err = lax.ValidateJSON([]byte(`"123"`), pycore.ValidateOpt{Strict: true})
	ve, ok := pycore.AsValidationError(err)
	if !ok || len(ve.Errors) != 1 || ve.Errors[0].Kind != pycore.KindIntType {
		t.Fatalf("strict: got %v, want single int_type", err)
	}

	if _, err := lax.ValidateStrict("123"); err == nil {
		t.Fatalf("ValidateStrict must reject the string form")
	}

	strict := mustValidator(t, &pycore.Schema{Type: "int"}, &pycore.Config{Strict: true})
	if _, err := strict.ValidateJSON([]byte(`"123"`)); err == nil {
		t.Fatalf("config-strict: expected int_type")
	}
	if got, err := strict.ValidateJSON([]byte(`123`)); err != nil || got != int64(123) {
		t.Fatalf("config-strict exact int: got %v err %v", got, err)
	}
}

func TestConstrainedIntLe(t *testing.T) {
	le := 9.0
	v := mustValidator(t, &pycore.Schema{Type: "int", Le: &le}, nil)
	for _, in := range []any{-4, 0, 9, "9"} {
		got, err := v.Validate(in)
		if err != nil {
			t.Fatalf("Validate(%v): %v", in, err)
		}
		if got.(int64) > 9 {
			t.Fatalf("output %v exceeds le bound", got)
		}
	}
	_, err := v.Validate(10)
	ve, ok := pycore.AsValidationError(err)
	if !ok || ve.Errors[0].Kind != pycore.KindIntLessThanEqual {
		t.Fatalf("got %v, want int_less_than_equal", err)
	}
	if ve.Errors[0].Context.Map()["le"] != int64(9) {
		t.Fatalf("context should carry the violated bound, got %v", ve.Errors[0].Context)
	}
}

func TestConstrainedIntOrder(t *testing.T) {
	mult, gt := 3.0, 10.0
	v := mustValidator(t, &pycore.Schema{Type: "int", MultipleOf: &mult, Gt: &gt}, nil)
	// multiple_of is checked before gt
	_, err := v.Validate(7)
	ve, _ := pycore.AsValidationError(err)
	if len(ve.Errors) != 1 || ve.Errors[0].Kind != pycore.KindIntMultipleOf {
		t.Fatalf("got %v, want int_multiple_of first", ve.Errors)
	}
	if got, err := v.Validate(12); err != nil || got != int64(12) {
		t.Fatalf("got %v err %v", got, err)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name   string
		schema *pycore.Schema
	}{
		{"unknown type", &pycore.Schema{Type: "foobar"}},
		{"missing type", &pycore.Schema{}},
		{"fractional int bound", &pycore.Schema{Type: "int", Ge: f64(1.5)}},
		{"bad pattern", &pycore.Schema{Type: "str", Pattern: "(abc"}},
		{"unresolved ref", &pycore.Schema{Type: "recursive-ref", SchemaRef: "nope"}},
		{"nameless container", &pycore.Schema{Type: "recursive-container", Inner: &pycore.Schema{Type: "int"}}},
	}
	for _, c := range cases {
		_, err := pycore.NewSchemaValidator(c.schema, nil)
		if err == nil {
			t.Fatalf("%s: expected SchemaError", c.name)
		}
		if _, ok := err.(*pycore.SchemaError); !ok {
			t.Fatalf("%s: expected *SchemaError, got %T", c.name, err)
		}
	}
}

// Deep build errors surface from nested nodes, never as line errors.
func TestBuildErrorDeep(t *testing.T) {
	schema := &pycore.Schema{
		Type: "model",
		Fields: map[string]*pycore.Schema{
			"age": {Type: "int", Ge: f64(0.5)},
		},
	}
	_, err := pycore.NewSchemaValidator(schema, nil)
	if _, ok := err.(*pycore.SchemaError); !ok {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}

func TestValidatorString(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "bool"}, &pycore.Config{Title: "TestModel"})
	want := `SchemaValidator(title="TestModel", validator=bool)`
	if v.String() != want {
		t.Fatalf("String() = %q, want %q", v.String(), want)
	}
}

// Compiling the same schema twice must yield identical validate behavior.
func TestBuildDeterministic(t *testing.T) {
	min := 1
	schema := &pycore.Schema{
		Type: "model",
		Fields: map[string]*pycore.Schema{
			"id":   {Type: "int"},
			"tags": {Type: "set", Items: &pycore.Schema{Type: "str"}, MinItems: &min},
		},
	}
	a := mustValidator(t, schema, nil)
	b := mustValidator(t, schema, nil)
	bad := []byte(`{"id": "x", "tags": []}`)
	_, errA := a.ValidateJSON(bad)
	_, errB := b.ValidateJSON(bad)
	veA, _ := pycore.AsValidationError(errA)
	veB, _ := pycore.AsValidationError(errB)
	if len(veA.Errors) != len(veB.Errors) {
		t.Fatalf("error counts differ: %d vs %d", len(veA.Errors), len(veB.Errors))
	}
	for i := range veA.Errors {
		if veA.Errors[i].Kind != veB.Errors[i].Kind || veA.Errors[i].Loc.Pointer() != veB.Errors[i].Loc.Pointer() {
			t.Fatalf("error %d differs: %v vs %v", i, veA.Errors[i], veB.Errors[i])
		}
	}
}

// Re-validating canonical output through the same validator succeeds and
// yields an equal value.
func TestIdempotentRevalidation(t *testing.T) {
	schema := &pycore.Schema{
		Type: "model",
		Fields: map[string]*pycore.Schema{
			"n": {Type: "int"},
			"s": {Type: "str"},
			"l": {Type: "list", Items: &pycore.Schema{Type: "int"}},
		},
	}
	v := mustValidator(t, schema, nil)
	out, err := v.ValidateJSON([]byte(`{"n": "7", "s": "x", "l": ["1", 2]}`))
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	again, err := v.Validate(out)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	m1, m2 := out.(map[string]any), again.(map[string]any)
	if m2["n"] != m1["n"] || m2["s"] != m1["s"] || len(m2["l"].([]any)) != len(m1["l"].([]any)) {
		t.Fatalf("re-validation changed the value: %v vs %v", m1, m2)
	}
}

func TestInvalidJSON(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "int"}, nil)
	_, err := v.ValidateJSON([]byte(`{`))
	ve, ok := pycore.AsValidationError(err)
	if !ok || len(ve.Errors) != 1 || ve.Errors[0].Kind != pycore.KindJSONInvalid {
		t.Fatalf("got %v, want single json_invalid", err)
	}
}

func TestIsInstance(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "int"}, nil)
	if !v.IsInstance(3) || v.IsInstance("nope") {
		t.Fatalf("IsInstance misbehaved")
	}
}

func f64(v float64) *float64 { return &v }
