package pycore_test

import (
	"testing"

	pycore "github.com/samuelcolvin/pydantic-core"
)

func TestListCoercion(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "list", Items: &pycore.Schema{Type: "int"}}, nil)
	out, err := v.ValidateJSON([]byte(`["1", 2, 3.0]`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got := out.([]any)
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestListType(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "list"}, nil)
	_, err := v.Validate("not a list")
	ve, ok := pycore.AsValidationError(err)
	if !ok || ve.Errors[0].Kind != pycore.KindListType {
		t.Fatalf("got %v, want list_type", err)
	}
}

// Every failing element is reported at its own index; validation never stops
// at the first bad element.
func TestListNoShortCircuit(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "list", Items: &pycore.Schema{Type: "int"}}, nil)
	_, err := v.ValidateJSON([]byte(`["a", 1, "b", "c"]`))
	ve, _ := pycore.AsValidationError(err)
	if len(ve.Errors) != 3 {
		t.Fatalf("want 3 errors, got %v", ve.Errors)
	}
	wantIdx := []int{0, 2, 3}
	for i, le := range ve.Errors {
		if le.Loc.Items()[0] != wantIdx[i] {
			t.Fatalf("error %d at loc %v, want index %d", i, le.Loc.Items(), wantIdx[i])
		}
		if le.Kind != pycore.KindIntParsing {
			t.Fatalf("error %d kind = %s", i, le.Kind)
		}
	}
}

func TestListBounds(t *testing.T) {
	min, max := 2, 3
	v := mustValidator(t, &pycore.Schema{
		Type: "list", Items: &pycore.Schema{Type: "int"},
		MinItems: &min, MaxItems: &max,
	}, nil)

	if _, err := v.ValidateJSON([]byte(`[1, 2]`)); err != nil {
		t.Fatalf("in-bounds: %v", err)
	}

	_, err := v.ValidateJSON([]byte(`[1]`))
	ve, _ := pycore.AsValidationError(err)
	if ve.Errors[0].Kind != pycore.KindTooShort {
		t.Fatalf("got %v, want too_short", ve.Errors)
	}
	if msg := ve.Errors[0].RenderMessage(); msg != "List must have at least 2 items" {
		t.Fatalf("message = %q", msg)
	}

	_, err = v.ValidateJSON([]byte(`[1, 2, 3, 4]`))
	ve, _ = pycore.AsValidationError(err)
	if ve.Errors[0].Kind != pycore.KindTooLong {
		t.Fatalf("got %v, want too_long", ve.Errors)
	}
}

// Cardinality bounds apply to the raw input length, before deduplication, and
// the output set never exceeds the cap.
func TestSetDedup(t *testing.T) {
	max := 5
	v := mustValidator(t, &pycore.Schema{
		Type: "set", Items: &pycore.Schema{Type: "int"}, MaxItems: &max,
	}, nil)
	out, err := v.ValidateJSON([]byte(`["1", 1, 2, 2, 1]`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	set := out.(map[any]struct{})
	if len(set) != 2 {
		t.Fatalf("set = %v, want 2 members", set)
	}
	for _, want := range []int64{1, 2} {
		if _, ok := set[want]; !ok {
			t.Fatalf("set %v is missing %d", set, want)
		}
	}

	_, err = v.ValidateJSON([]byte(`[1, 1, 1, 1, 1, 1]`))
	ve, _ := pycore.AsValidationError(err)
	if ve.Errors[0].Kind != pycore.KindTooLong {
		t.Fatalf("raw length past the cap must fail before dedup, got %v", err)
	}
	if msg := ve.Errors[0].RenderMessage(); msg != "Set must have at most 5 items" {
		t.Fatalf("message = %q", msg)
	}
}

// A set whose item validator rejects everything reports one error per
// element, indexed 0..n-1.
func TestSetReportsEveryElement(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "set", Items: &pycore.Schema{Type: "int"}}, nil)
	_, err := v.ValidateJSON([]byte(`["a", "b", "c"]`))
	ve, _ := pycore.AsValidationError(err)
	if len(ve.Errors) != 3 {
		t.Fatalf("want 3 errors, got %v", ve.Errors)
	}
	for i, le := range ve.Errors {
		if le.Loc.Items()[0] != i {
			t.Fatalf("error %d at loc %v", i, le.Loc.Items())
		}
	}
}

func TestSetFromNativeSet(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "set", Items: &pycore.Schema{Type: "int"}}, nil)
	out, err := v.Validate(map[any]struct{}{int64(3): {}, int64(1): {}})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	set := out.(map[any]struct{})
	if len(set) != 2 {
		t.Fatalf("set = %v", set)
	}
}

func TestFrozenSet(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "frozenset", Items: &pycore.Schema{Type: "int"}}, nil)
	out, err := v.ValidateJSON([]byte(`[1, 2, 1]`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(out.(map[any]struct{})) != 2 {
		t.Fatalf("out = %v", out)
	}

	_, err = v.Validate(42)
	ve, _ := pycore.AsValidationError(err)
	if ve.Errors[0].Kind != pycore.KindFrozenSetType {
		t.Fatalf("got %v, want frozen_set_type", err)
	}
	min := 3
	v = mustValidator(t, &pycore.Schema{Type: "frozenset", MinItems: &min}, nil)
	_, err = v.ValidateJSON([]byte(`[1]`))
	ve, _ = pycore.AsValidationError(err)
	if msg := ve.Errors[0].RenderMessage(); msg != "Frozen Set must have at least 3 items" {
		t.Fatalf("message = %q", msg)
	}
}

// Go arrays and slices both satisfy list schemas on the native side.
func TestListFromNativeSlice(t *testing.T) {
	v := mustValidator(t, &pycore.Schema{Type: "list", Items: &pycore.Schema{Type: "str"}}, nil)
	out, err := v.Validate([]string{"a", "b"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	got := out.([]any)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}
