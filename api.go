package pycore

import "fmt"

// SchemaValidator is the compiled form of a schema: an immutable validator
// tree plus the slot table recursive refs forward through. It is safe to
// share across goroutines; every call owns its own guard and error state.
type SchemaValidator struct {
	title string
	root  validator
	slots []validator
}

// NewSchemaValidator compiles schema once. Structural problems (missing or
// unknown discriminator, malformed bounds, unresolved refs) return a
// *SchemaError; nothing is ever deferred to validate time.
func NewSchemaValidator(schema *Schema, cfg *Config) (*SchemaValidator, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	bc := newBuildContext()
	root, err := buildValidator(schema, cfg, bc)
	if err != nil {
		return nil, err
	}
	title := cfg.Title
	if title == "" {
		title = root.name()
	}
	return &SchemaValidator{title: title, root: root, slots: bc.slots}, nil
}

// ValidateOpt adjusts a single call without touching the compiled tree.
type ValidateOpt struct {
	// Strict forces strict coercion for this call even where the schema
	// defaults to lax.
	Strict bool
}

// Validate runs the validator over a native Go value, returning the coerced
// output or a *ValidationError listing every violation found.
func (sv *SchemaValidator) Validate(v any, opts ...ValidateOpt) (any, error) {
	return sv.validateInput(nativeValue{v: v}, opts)
}

// ValidateStrict is Validate with strict coercion forced for the call.
func (sv *SchemaValidator) ValidateStrict(v any) (any, error) {
	return sv.Validate(v, ValidateOpt{Strict: true})
}

// ValidateJSON parses data as JSON and validates the resulting document tree.
func (sv *SchemaValidator) ValidateJSON(data []byte, opts ...ValidateOpt) (any, error) {
	in, err := DecodeJSON(data)
	if err != nil {
		if ve, ok := AsValidationError(err); ok {
			ve.Title = sv.title
		}
		return nil, err
	}
	return sv.validateInput(in, opts)
}

// ValidateInput validates any Input implementation, the hook for host value
// providers with their own representation.
func (sv *SchemaValidator) ValidateInput(in Input, opts ...ValidateOpt) (any, error) {
	return sv.validateInput(in, opts)
}

// IsInstance reports whether v validates, discarding output and errors.
func (sv *SchemaValidator) IsInstance(v any, opts ...ValidateOpt) bool {
	_, err := sv.Validate(v, opts...)
	return err == nil
}

func (sv *SchemaValidator) validateInput(in Input, opts []ValidateOpt) (out any, err error) {
	ext := &extra{}
	if len(opts) > 0 {
		ext.strict = opts[len(opts)-1].Strict
	}
	// a panicking adapter is a broken engine/host contract, not a data
	// problem: abort the call instead of reporting line errors
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &InternalError{Cause: fmt.Errorf("input adapter panic: %v", r)}
		}
	}()
	out, err = sv.root.validate(in, ext, sv.slots)
	if err != nil {
		if isInternal(err) {
			return nil, err
		}
		return nil, &ValidationError{Title: sv.title, Errors: err.(lineErrors)}
	}
	return out, nil
}

// Title returns the name used in rendered validation errors.
func (sv *SchemaValidator) Title() string { return sv.title }

func (sv *SchemaValidator) String() string {
	return fmt.Sprintf("SchemaValidator(title=%q, validator=%s)", sv.title, sv.root.name())
}
