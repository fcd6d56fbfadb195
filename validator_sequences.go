package pycore

import "reflect"

// validateItems runs the item validator over every element without
// short-circuiting, prefixing each element's failures with its index. All
// failures from the whole sequence come back together.
func validateItems(seq GenericSeq, item validator, ext *extra, slots []validator) ([]any, error) {
	out := make([]any, 0, len(seq))
	var errs lineErrors
	for i, el := range seq {
		v, err := item.validate(el, ext, slots)
		if err != nil {
			if isInternal(err) {
				return nil, err
			}
			for _, le := range err.(lineErrors) {
				errs = append(errs, le.withPrefix(IndexLoc(i)))
			}
			continue
		}
		out = append(out, v)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// checkCardinality enforces the optional min/max item bounds shared by the
// sequence kinds, tagging errors with the collection's display label.
func checkCardinality(in Input, length int, minItems, maxItems *int, label string) error {
	if minItems != nil && length < *minItems {
		return lineErr(KindTooShort, in, errCtx("type", label, "min_length", *minItems))
	}
	if maxItems != nil && length > *maxItems {
		return lineErr(KindTooLong, in, errCtx("type", label, "max_length", *maxItems))
	}
	return nil
}

func buildList(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	item, err := childValidator(s.Items, cfg, bc)
	if err != nil {
		return nil, err
	}
	v := listValidator{strict: isStrict(s, cfg), item: item}
	if v.minItems, err = itemsBound("min_items", s.MinItems); err != nil {
		return nil, err
	}
	if v.maxItems, err = itemsBound("max_items", s.MaxItems); err != nil {
		return nil, err
	}
	return v, nil
}

type listValidator struct {
	strict   bool
	item     validator
	minItems *int
	maxItems *int
}

func (v listValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	seq, err := validateList(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	if err := checkCardinality(in, len(seq), v.minItems, v.maxItems, "List"); err != nil {
		return nil, err
	}
	return validateItems(seq, v.item, ext, slots)
}

func (v listValidator) name() string { return "list[" + v.item.name() + "]" }

func buildSet(s *Schema, cfg *Config, bc *buildContext, frozen bool) (validator, error) {
	item, err := childValidator(s.Items, cfg, bc)
	if err != nil {
		return nil, err
	}
	v := setValidator{strict: isStrict(s, cfg), item: item, frozen: frozen}
	if v.minItems, err = itemsBound("min_items", s.MinItems); err != nil {
		return nil, err
	}
	if v.maxItems, err = itemsBound("max_items", s.MaxItems); err != nil {
		return nil, err
	}
	return v, nil
}

type setValidator struct {
	strict   bool
	item     validator
	minItems *int
	maxItems *int
	frozen   bool
}

func (v setValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	strict := v.strict || ext.strict
	var seq GenericSeq
	var err error
	if v.frozen {
		seq, err = validateFrozenSet(in, strict)
	} else {
		seq, err = validateSet(in, strict)
	}
	if err != nil {
		return nil, err
	}
	if err := checkCardinality(in, len(seq), v.minItems, v.maxItems, v.label()); err != nil {
		return nil, err
	}
	out, err := validateItems(seq, v.item, ext, slots)
	if err != nil {
		return nil, err
	}
	return makeSet(out), nil
}

func (v setValidator) label() string {
	if v.frozen {
		return "Frozen Set"
	}
	return "Set"
}

func (v setValidator) name() string {
	if v.frozen {
		return "frozenset[" + v.item.name() + "]"
	}
	return "set[" + v.item.name() + "]"
}

// makeSet collapses duplicates by equality. Comparable outputs become map
// keys; anything else (an unhashable element) falls back to an ordered slice
// deduplicated with DeepEqual so validation never panics.
func makeSet(elems []any) any {
	for _, el := range elems {
		if el != nil && !reflect.TypeOf(el).Comparable() {
			return dedupSlice(elems)
		}
	}
	set := make(map[any]struct{}, len(elems))
	for _, el := range elems {
		set[el] = struct{}{}
	}
	return set
}

func dedupSlice(elems []any) []any {
	out := make([]any, 0, len(elems))
	for _, el := range elems {
		dup := false
		for _, seen := range out {
			if reflect.DeepEqual(el, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, el)
		}
	}
	return out
}
