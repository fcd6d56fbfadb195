package pycore_test

import (
	"strings"
	"testing"

	pycore "github.com/samuelcolvin/pydantic-core"
)

// branch: a list whose elements are themselves branches.
func branchSchema() *pycore.Schema {
	return &pycore.Schema{
		Type: "recursive-container",
		Name: "branch",
		Inner: &pycore.Schema{
			Type:  "list",
			Items: &pycore.Schema{Type: "recursive-ref", SchemaRef: "branch"},
		},
	}
}

func TestRecursiveNesting(t *testing.T) {
	v := mustValidator(t, branchSchema(), nil)
	out, err := v.ValidateJSON([]byte(`[[], [[]], [[], []]]`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(out.([]any)) != 3 {
		t.Fatalf("out = %v", out)
	}
}

// A native value that contains itself fails with a single recursion_loop
// error at the point of the cycle instead of recursing forever.
func TestRecursiveCycle(t *testing.T) {
	v := mustValidator(t, branchSchema(), nil)
	cyclic := make([]any, 1)
	cyclic[0] = cyclic

	_, err := v.Validate(cyclic)
	ve, ok := pycore.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 {
		t.Fatalf("want exactly one error, got %v", ve.Errors)
	}
	le := ve.Errors[0]
	if le.Kind != pycore.KindRecursionLoop {
		t.Fatalf("kind = %s", le.Kind)
	}
	if le.Loc.Pointer() != "/0" {
		t.Fatalf("loc = %q", le.Loc.Pointer())
	}
	// the snapshot is a description, not the cyclic value itself
	if !strings.Contains(err.Error(), "<cyclic") {
		t.Fatalf("rendered error = %q", err.Error())
	}
}

func TestRecursiveDeeperCycle(t *testing.T) {
	v := mustValidator(t, branchSchema(), nil)
	outer := make([]any, 1)
	inner := make([]any, 1)
	outer[0] = inner
	inner[0] = outer

	_, err := v.Validate(outer)
	ve, _ := pycore.AsValidationError(err)
	if len(ve.Errors) != 1 || ve.Errors[0].Kind != pycore.KindRecursionLoop {
		t.Fatalf("got %v", err)
	}
	if ve.Errors[0].Loc.Pointer() != "/0/0" {
		t.Fatalf("loc = %q", ve.Errors[0].Loc.Pointer())
	}
}

// The same slice reused in sibling branches is not a cycle: the guard tracks
// the descent path, not everything ever visited.
func TestRecursiveSharedSubstructure(t *testing.T) {
	v := mustValidator(t, branchSchema(), nil)
	shared := []any{}
	out, err := v.Validate([]any{shared, shared})
	if err != nil {
		t.Fatalf("shared reuse must validate: %v", err)
	}
	if len(out.([]any)) != 2 {
		t.Fatalf("out = %v", out)
	}
}

// Each call owns its own guard, so a validator survives a cyclic input and
// keeps working for later calls.
func TestGuardResetBetweenCalls(t *testing.T) {
	v := mustValidator(t, branchSchema(), nil)
	cyclic := make([]any, 1)
	cyclic[0] = cyclic
	if _, err := v.Validate(cyclic); err == nil {
		t.Fatalf("cycle must fail")
	}
	if _, err := v.Validate([]any{[]any{}}); err != nil {
		t.Fatalf("clean input after a cycle: %v", err)
	}
}

func TestRecursiveModelTree(t *testing.T) {
	schema := &pycore.Schema{
		Type: "recursive-container",
		Name: "node",
		Inner: &pycore.Schema{
			Type: "model",
			Fields: map[string]*pycore.Schema{
				"value": {Type: "int"},
				"children": {
					Type:  "list",
					Items: &pycore.Schema{Type: "recursive-ref", SchemaRef: "node"},
				},
			},
		},
	}
	v := mustValidator(t, schema, nil)
	out, err := v.ValidateJSON([]byte(`{"value": 1, "children": [{"value": "2", "children": []}]}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	root := out.(map[string]any)
	child := root["children"].([]any)[0].(map[string]any)
	if root["value"] != int64(1) || child["value"] != int64(2) {
		t.Fatalf("out = %v", out)
	}

	_, err = v.ValidateJSON([]byte(`{"value": 1, "children": [{"value": "x", "children": []}]}`))
	ve, _ := pycore.AsValidationError(err)
	if len(ve.Errors) != 1 || ve.Errors[0].Loc.Pointer() != "/children/0/value" {
		t.Fatalf("got %v", ve.Errors)
	}
}

func TestDuplicateContainerName(t *testing.T) {
	schema := &pycore.Schema{
		Type: "recursive-container",
		Name: "dup",
		Inner: &pycore.Schema{
			Type: "list",
			Items: &pycore.Schema{
				Type:  "recursive-container",
				Name:  "dup",
				Inner: &pycore.Schema{Type: "int"},
			},
		},
	}
	_, err := pycore.NewSchemaValidator(schema, nil)
	if _, ok := err.(*pycore.SchemaError); !ok {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}
