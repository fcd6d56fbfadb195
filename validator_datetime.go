package pycore

type dateValidator struct {
	strict bool
}

func (v dateValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	d, err := validateDate(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (dateValidator) name() string { return "date" }

type timeValidator struct {
	strict bool
}

func (v timeValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	t, err := validateTime(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (timeValidator) name() string { return "time" }

type datetimeValidator struct {
	strict bool
}

func (v datetimeValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	t, err := validateDateTime(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (datetimeValidator) name() string { return "datetime" }

type timedeltaValidator struct {
	strict bool
}

func (v timedeltaValidator) validate(in Input, ext *extra, _ []validator) (any, error) {
	d, err := validateTimedelta(in, v.strict || ext.strict)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (timedeltaValidator) name() string { return "timedelta" }
