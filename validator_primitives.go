package pycore

import (
	"regexp"
	"strings"
)

type anyValidator struct{}

// any accepts everything and passes the value through untouched.
func (anyValidator) validate(in Input, _ *extra, _ []validator) (any, error) {
	return in.AsErrorValue(), nil
}

func (anyValidator) name() string { return "any" }

type noneValidator struct{}

func (noneValidator) validate(in Input, _ *extra, _ []validator) (any, error) {
	if in.IsNone() {
		return nil, nil
	}
	return nil, lineErr(KindNoneRequired, in, nil)
}

func (noneValidator) name() string { return "none" }

type boolValidator struct {
	strict bool
}

func (v boolValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	b, err := validateBool(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (boolValidator) name() string { return "bool" }

type bytesValidator struct {
	strict bool
}

func (v bytesValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	b, err := validateBytes(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (bytesValidator) name() string { return "bytes" }

// buildStr selects the constrained variant only when a constraint option is
// present, keeping the common unconstrained path check-free.
func buildStr(s *Schema, cfg *Config) (validator, error) {
	constrained := s.Pattern != "" || s.MinLength != nil || s.MaxLength != nil ||
		s.StripWhitespace || s.ToLower || s.ToUpper
	if !constrained {
		return strValidator{strict: isStrict(s, cfg)}, nil
	}
	v := constrainedStrValidator{
		strict:  isStrict(s, cfg),
		strip:   s.StripWhitespace,
		toLower: s.ToLower,
		toUpper: s.ToUpper,
	}
	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, &SchemaError{Message: "invalid 'pattern' regex", Cause: err}
		}
		v.pattern = re
	}
	var err error
	if v.minLength, err = itemsBound("min_length", s.MinLength); err != nil {
		return nil, err
	}
	if v.maxLength, err = itemsBound("max_length", s.MaxLength); err != nil {
		return nil, err
	}
	return v, nil
}

type strValidator struct {
	strict bool
}

func (v strValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	s, err := validateStr(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (strValidator) name() string { return "str" }

type constrainedStrValidator struct {
	strict    bool
	pattern   *regexp.Regexp
	minLength *int
	maxLength *int
	strip     bool
	toLower   bool
	toUpper   bool
}

// Checks run on the raw string; strip and case mapping apply afterwards, so
// constraints see the value exactly as it arrived.
func (v constrainedStrValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	s, err := validateStr(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	if v.minLength != nil && len([]rune(s)) < *v.minLength {
		return nil, lineErr(KindStrTooShort, in, errCtx("min_length", *v.minLength))
	}
	if v.maxLength != nil && len([]rune(s)) > *v.maxLength {
		return nil, lineErr(KindStrTooLong, in, errCtx("max_length", *v.maxLength))
	}
	if v.pattern != nil && !v.pattern.MatchString(s) {
		return nil, lineErr(KindStrPatternMismatch, in, errCtx("pattern", v.pattern.String()))
	}
	if v.strip {
		s = strings.TrimSpace(s)
	}
	if v.toLower {
		s = strings.ToLower(s)
	}
	if v.toUpper {
		s = strings.ToUpper(s)
	}
	return s, nil
}

func (constrainedStrValidator) name() string { return "constrained-str" }
