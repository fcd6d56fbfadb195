package pycore

import "fmt"

func buildRecursiveContainer(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	if s.Inner == nil {
		return nil, schemaErrorf("recursive-container requires a 'schema' child")
	}
	// reserve first so refs inside the child can resolve the slot
	id, err := bc.reserveSlot(s.Name)
	if err != nil {
		return nil, err
	}
	child, err := buildValidator(s.Inner, cfg, bc)
	if err != nil {
		return nil, err
	}
	bc.completeSlot(id, child)
	return recursiveContainerValidator{slotID: id}, nil
}

// recursiveContainerValidator anchors a named, self-referential subtree. It
// owns only a slot index; the real validator lives in the slot table, which
// keeps the compiled tree acyclic.
type recursiveContainerValidator struct {
	slotID int
}

func (v recursiveContainerValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	return validateSlot(v.slotID, in, ext, slots)
}

func (recursiveContainerValidator) name() string { return "recursive-container" }

func buildRecursiveRef(s *Schema, bc *buildContext) (validator, error) {
	if s.SchemaRef == "" {
		return nil, schemaErrorf("recursive-ref requires 'schema_ref'")
	}
	id, err := bc.findSlotID(s.SchemaRef)
	if err != nil {
		return nil, err
	}
	return recursiveRefValidator{slotID: id}, nil
}

// recursiveRefValidator forwards to the slot reserved by a surrounding
// recursive-container of the same name.
type recursiveRefValidator struct {
	slotID int
}

func (v recursiveRefValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	return validateSlot(v.slotID, in, ext, slots)
}

func (recursiveRefValidator) name() string { return "recursive-ref" }

// validateSlot descends through a slot under recursion-guard protection.
// Inputs without identity (document values) cannot cycle and descend
// directly; for the rest, seeing the same identity twice on one descent path
// means the value references itself through the schema and validation stops
// with a recursion_loop error instead of recursing forever.
func validateSlot(slotID int, in Input, ext *extra, slots []validator) (any, error) {
	target := slots[slotID]
	id, ok := in.Identity()
	if !ok {
		return target.validate(in, ext, slots)
	}
	if ext.guard == nil {
		ext.guard = recursionGuard{}
	}
	if ext.guard.contains(id) {
		// the value is cyclic; snapshot a description instead of the value
		// itself so rendering the error cannot recurse
		return nil, lineErrors{{
			Kind:  KindRecursionLoop,
			Input: fmt.Sprintf("<cyclic %s>", typeName(in.AsErrorValue())),
		}}
	}
	ext.guard.insert(id)
	defer ext.guard.remove(id)
	return target.validate(in, ext, slots)
}
