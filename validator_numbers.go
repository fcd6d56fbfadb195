package pycore

import "math"

// buildInt uses the constrained variant only when a bound or multiple-of
// option is present, so the common unconstrained path pays no bound checks.
func buildInt(s *Schema, cfg *Config) (validator, error) {
	constrained := s.MultipleOf != nil || s.Le != nil || s.Lt != nil || s.Ge != nil || s.Gt != nil
	if !constrained {
		return intValidator{strict: isStrict(s, cfg)}, nil
	}
	v := constrainedIntValidator{strict: isStrict(s, cfg)}
	var err error
	if v.multipleOf, err = intBound("multiple_of", s.MultipleOf); err != nil {
		return nil, err
	}
	if v.le, err = intBound("le", s.Le); err != nil {
		return nil, err
	}
	if v.lt, err = intBound("lt", s.Lt); err != nil {
		return nil, err
	}
	if v.ge, err = intBound("ge", s.Ge); err != nil {
		return nil, err
	}
	if v.gt, err = intBound("gt", s.Gt); err != nil {
		return nil, err
	}
	if v.multipleOf != nil && *v.multipleOf == 0 {
		return nil, schemaErrorf("'multiple_of' must not be zero")
	}
	return v, nil
}

type intValidator struct {
	strict bool
}

func (v intValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	i, err := validateInt(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (intValidator) name() string { return "int" }

type constrainedIntValidator struct {
	strict     bool
	multipleOf *int64
	le         *int64
	lt         *int64
	ge         *int64
	gt         *int64
}

func (v constrainedIntValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	i, err := validateInt(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	if v.multipleOf != nil && i%*v.multipleOf != 0 {
		return nil, lineErr(KindIntMultipleOf, in, errCtx("multiple_of", *v.multipleOf))
	}
	if v.le != nil && i > *v.le {
		return nil, lineErr(KindIntLessThanEqual, in, errCtx("le", *v.le))
	}
	if v.lt != nil && i >= *v.lt {
		return nil, lineErr(KindIntLessThan, in, errCtx("lt", *v.lt))
	}
	if v.ge != nil && i < *v.ge {
		return nil, lineErr(KindIntGreaterThanEqual, in, errCtx("ge", *v.ge))
	}
	if v.gt != nil && i <= *v.gt {
		return nil, lineErr(KindIntGreaterThan, in, errCtx("gt", *v.gt))
	}
	return i, nil
}

func (constrainedIntValidator) name() string { return "constrained-int" }

func buildFloat(s *Schema, cfg *Config) (validator, error) {
	constrained := s.MultipleOf != nil || s.Le != nil || s.Lt != nil || s.Ge != nil || s.Gt != nil
	if !constrained {
		return floatValidator{strict: isStrict(s, cfg)}, nil
	}
	if s.MultipleOf != nil && *s.MultipleOf == 0 {
		return nil, schemaErrorf("'multiple_of' must not be zero")
	}
	return constrainedFloatValidator{
		strict:     isStrict(s, cfg),
		multipleOf: s.MultipleOf,
		le:         s.Le,
		lt:         s.Lt,
		ge:         s.Ge,
		gt:         s.Gt,
	}, nil
}

type floatValidator struct {
	strict bool
}

func (v floatValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	f, err := validateFloat(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (floatValidator) name() string { return "float" }

type constrainedFloatValidator struct {
	strict     bool
	multipleOf *float64
	le         *float64
	lt         *float64
	ge         *float64
	gt         *float64
}

func (v constrainedFloatValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	f, err := validateFloat(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	if v.multipleOf != nil && math.Mod(f, *v.multipleOf) != 0 {
		return nil, lineErr(KindFloatMultipleOf, in, errCtx("multiple_of", *v.multipleOf))
	}
	if v.le != nil && f > *v.le {
		return nil, lineErr(KindFloatLessThanEqual, in, errCtx("le", *v.le))
	}
	if v.lt != nil && f >= *v.lt {
		return nil, lineErr(KindFloatLessThan, in, errCtx("lt", *v.lt))
	}
	if v.ge != nil && f < *v.ge {
		return nil, lineErr(KindFloatGreaterThanEqual, in, errCtx("ge", *v.ge))
	}
	if v.gt != nil && f <= *v.gt {
		return nil, lineErr(KindFloatGreaterThan, in, errCtx("gt", *v.gt))
	}
	return f, nil
}

func (constrainedFloatValidator) name() string { return "constrained-float" }
