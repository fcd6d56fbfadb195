package pycore

import (
	"math"
	"sort"
)

// Config carries build-time settings shared by the whole validator tree,
// mirroring the per-schema options a node can override.
type Config struct {
	// Title names the schema in rendered validation errors.
	Title string
	// Strict applies strict coercion everywhere unless a node overrides it.
	Strict bool
	// Extra controls unrecognised model fields: ExtraIgnore (default),
	// ExtraForbid or ExtraAllow.
	Extra ExtraPolicy
}

// ExtraPolicy controls how model validators treat unknown fields.
type ExtraPolicy int

const (
	ExtraIgnore ExtraPolicy = iota // Drop unknown fields.
	ExtraForbid                    // Reject unknown fields with an error.
	ExtraAllow                     // Copy unknown fields through unvalidated.
)

// extra is the transient per-call bundle threaded through every validate
// call: the call-wide strict override plus the recursion guard. It never
// mutates the validator tree.
type extra struct {
	strict bool
	guard  recursionGuard
}

// validator is one immutable node of the compiled tree.
type validator interface {
	// validate coerces and checks in, returning the output value or the line
	// errors found. Composites return every child failure; leaves return
	// exactly one.
	validate(in Input, ext *extra, slots []validator) (any, error)
	name() string
}

// buildContext compiles schema nodes and owns the slot table that breaks
// ownership cycles for self-referential schemas.
type buildContext struct {
	slots []validator
	named map[string]int
}

func newBuildContext() *buildContext {
	return &buildContext{named: map[string]int{}}
}

// reserveSlot claims a slot index for name before the target validator exists
// so nested refs to it can resolve during the same walk.
func (bc *buildContext) reserveSlot(name string) (int, error) {
	if name == "" {
		return 0, schemaErrorf("recursive-container requires a name")
	}
	if _, exists := bc.named[name]; exists {
		return 0, schemaErrorf("duplicate recursive-container name %q", name)
	}
	id := len(bc.slots)
	bc.slots = append(bc.slots, nil)
	bc.named[name] = id
	return id, nil
}

func (bc *buildContext) completeSlot(id int, v validator) { bc.slots[id] = v }

// findSlotID resolves a recursive-ref name. There is no forward-reference
// retry: the container must have been walked first.
func (bc *buildContext) findSlotID(name string) (int, error) {
	id, ok := bc.named[name]
	if !ok {
		return 0, schemaErrorf("unresolved schema_ref %q", name)
	}
	return id, nil
}

// buildValidator maps one schema node to exactly one validator, recursing
// depth-first. An unsupported discriminator fails the build immediately.
func buildValidator(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	if s == nil {
		return nil, schemaErrorf("schema must not be nil")
	}
	if s.Type == "" {
		return nil, schemaErrorf("schema is missing the required 'type' discriminator")
	}
	switch s.Type {
	case "any":
		return anyValidator{}, nil
	case "none":
		return noneValidator{}, nil
	case "bool":
		return boolValidator{strict: isStrict(s, cfg)}, nil
	case "str":
		return buildStr(s, cfg)
	case "bytes":
		return bytesValidator{strict: isStrict(s, cfg)}, nil
	case "int":
		return buildInt(s, cfg)
	case "float":
		return buildFloat(s, cfg)
	case "list":
		return buildList(s, cfg, bc)
	case "set":
		return buildSet(s, cfg, bc, false)
	case "frozenset":
		return buildSet(s, cfg, bc, true)
	case "dict":
		return buildDict(s, cfg, bc)
	case "model":
		return buildModel(s, cfg, bc)
	case "optional":
		return buildOptional(s, cfg, bc)
	case "union":
		return buildUnion(s, cfg, bc)
	case "literal":
		return buildLiteral(s)
	case "date":
		return dateValidator{strict: isStrict(s, cfg)}, nil
	case "time":
		return timeValidator{strict: isStrict(s, cfg)}, nil
	case "datetime":
		return datetimeValidator{strict: isStrict(s, cfg)}, nil
	case "timedelta":
		return timedeltaValidator{strict: isStrict(s, cfg)}, nil
	case "recursive-container":
		return buildRecursiveContainer(s, cfg, bc)
	case "recursive-ref":
		return buildRecursiveRef(s, bc)
	default:
		return nil, schemaErrorf("unknown schema type %q", s.Type)
	}
}

func isStrict(s *Schema, cfg *Config) bool {
	if s.Strict != nil {
		return *s.Strict
	}
	return cfg.Strict
}

// intBound converts a shared bound field for int schemas, rejecting
// fractional values at build time.
func intBound(field string, v *float64) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	if math.Mod(*v, 1.0) != 0 {
		return nil, schemaErrorf("%q must be a whole number for int schemas, got %v", field, *v)
	}
	i := int64(*v)
	return &i, nil
}

func itemsBound(field string, v *int) (*int, error) {
	if v != nil && *v < 0 {
		return nil, schemaErrorf("%q must not be negative", field)
	}
	return v, nil
}

// childValidator builds a sub-schema, defaulting to "any" when absent, the
// behavior collection kinds rely on.
func childValidator(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	if s == nil {
		return anyValidator{}, nil
	}
	return buildValidator(s, cfg, bc)
}

// sortedFieldNames fixes a deterministic walk order for model fields.
func sortedFieldNames(fields map[string]*Schema) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
