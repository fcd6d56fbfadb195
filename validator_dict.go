package pycore

func buildDict(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	key, err := childValidator(s.Keys, cfg, bc)
	if err != nil {
		return nil, err
	}
	value, err := childValidator(s.Values, cfg, bc)
	if err != nil {
		return nil, err
	}
	v := dictValidator{strict: isStrict(s, cfg), key: key, value: value}
	if v.minItems, err = itemsBound("min_items", s.MinItems); err != nil {
		return nil, err
	}
	if v.maxItems, err = itemsBound("max_items", s.MaxItems); err != nil {
		return nil, err
	}
	return v, nil
}

type dictValidator struct {
	strict   bool
	key      validator
	value    validator
	minItems *int
	maxItems *int
}

func (v dictValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	items, err := validateDict(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	if err := checkCardinality(in, len(items), v.minItems, v.maxItems, "Dict"); err != nil {
		return nil, err
	}
	out := make(map[any]any, len(items))
	var errs lineErrors
	for _, item := range items {
		loc := KeyLoc(item.Key)
		keyOut, err := v.key.validate(item.KeyInput, ext, slots)
		if err != nil {
			if isInternal(err) {
				return nil, err
			}
			for _, le := range err.(lineErrors) {
				errs = append(errs, le.withPrefix(loc))
			}
			continue
		}
		valOut, err := v.value.validate(item.Value, ext, slots)
		if err != nil {
			if isInternal(err) {
				return nil, err
			}
			for _, le := range err.(lineErrors) {
				errs = append(errs, le.withPrefix(loc))
			}
			continue
		}
		out[keyOut] = valOut
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (v dictValidator) name() string {
	return "dict[" + v.key.name() + "," + v.value.name() + "]"
}

func buildModel(s *Schema, cfg *Config, bc *buildContext) (validator, error) {
	if len(s.Fields) == 0 {
		return nil, schemaErrorf("model schema requires at least one field")
	}
	v := modelValidator{strict: isStrict(s, cfg), extra: cfg.Extra}
	for _, name := range sortedFieldNames(s.Fields) {
		fv, err := buildValidator(s.Fields[name], cfg, bc)
		if err != nil {
			return nil, err
		}
		v.fields = append(v.fields, modelField{name: name, validator: fv})
	}
	return v, nil
}

type modelField struct {
	name      string
	validator validator
}

type modelValidator struct {
	strict bool
	extra  ExtraPolicy
	fields []modelField
}

// Every field is checked before returning: missing fields, failing fields and
// forbidden extras all land in the same report.
func (v modelValidator) validate(in Input, ext *extra, slots []validator) (any, error) {
	items, err := validateDict(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]Input, len(items))
	for _, item := range items {
		byKey[item.Key] = item.Value
	}
	out := make(map[string]any, len(v.fields))
	var errs lineErrors
	known := make(map[string]struct{}, len(v.fields))
	for _, f := range v.fields {
		known[f.name] = struct{}{}
		fin, present := byKey[f.name]
		if !present {
			errs = append(errs, LineError{Kind: KindMissing, Loc: Location{KeyLoc(f.name)}})
			continue
		}
		fv, err := f.validator.validate(fin, ext, slots)
		if err != nil {
			if isInternal(err) {
				return nil, err
			}
			for _, le := range err.(lineErrors) {
				errs = append(errs, le.withPrefix(KeyLoc(f.name)))
			}
			continue
		}
		out[f.name] = fv
	}
	if v.extra != ExtraIgnore {
		for _, item := range items {
			if _, ok := known[item.Key]; ok {
				continue
			}
			switch v.extra {
			case ExtraForbid:
				errs = append(errs, LineError{
					Kind:  KindExtraForbidden,
					Loc:   Location{KeyLoc(item.Key)},
					Input: item.Value.AsErrorValue(),
				})
			case ExtraAllow:
				out[item.Key] = item.Value.AsErrorValue()
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (modelValidator) name() string { return "model" }
