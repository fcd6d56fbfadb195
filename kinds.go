package pycore

// ErrorKind identifies one category of validation failure. The set is closed;
// parameters (bounds, lengths, expected values) travel in the line error's
// Context, not in the kind itself.
type ErrorKind string

const (
	KindNoneRequired ErrorKind = "none_required"

	KindBoolType    ErrorKind = "bool_type"
	KindBoolParsing ErrorKind = "bool_parsing"

	KindStrType            ErrorKind = "str_type"
	KindStrUnicode         ErrorKind = "str_unicode"
	KindStrTooShort        ErrorKind = "str_too_short"
	KindStrTooLong         ErrorKind = "str_too_long"
	KindStrPatternMismatch ErrorKind = "str_pattern_mismatch"

	KindBytesType ErrorKind = "bytes_type"

	KindIntType             ErrorKind = "int_type"
	KindIntParsing          ErrorKind = "int_parsing"
	KindIntFromFloat        ErrorKind = "int_from_float"
	KindIntMultipleOf       ErrorKind = "int_multiple_of"
	KindIntLessThanEqual    ErrorKind = "int_less_than_equal"
	KindIntLessThan         ErrorKind = "int_less_than"
	KindIntGreaterThanEqual ErrorKind = "int_greater_than_equal"
	KindIntGreaterThan      ErrorKind = "int_greater_than"

	KindFloatType             ErrorKind = "float_type"
	KindFloatParsing          ErrorKind = "float_parsing"
	KindFloatMultipleOf       ErrorKind = "float_multiple_of"
	KindFloatLessThanEqual    ErrorKind = "float_less_than_equal"
	KindFloatLessThan         ErrorKind = "float_less_than"
	KindFloatGreaterThanEqual ErrorKind = "float_greater_than_equal"
	KindFloatGreaterThan      ErrorKind = "float_greater_than"

	KindListType      ErrorKind = "list_type"
	KindTupleType     ErrorKind = "tuple_type"
	KindSetType       ErrorKind = "set_type"
	KindFrozenSetType ErrorKind = "frozen_set_type"
	KindTooShort      ErrorKind = "too_short"
	KindTooLong       ErrorKind = "too_long"

	KindDictType       ErrorKind = "dict_type"
	KindMissing        ErrorKind = "missing"
	KindExtraForbidden ErrorKind = "extra_forbidden"

	KindLiteralError ErrorKind = "literal_error"

	KindDateType                ErrorKind = "date_type"
	KindDateParsing             ErrorKind = "date_parsing"
	KindDateFromDatetimeInexact ErrorKind = "date_from_datetime_inexact"
	KindTimeType                ErrorKind = "time_type"
	KindTimeParsing             ErrorKind = "time_parsing"
	KindDatetimeType            ErrorKind = "datetime_type"
	KindDatetimeParsing         ErrorKind = "datetime_parsing"
	KindTimedeltaType           ErrorKind = "timedelta_type"
	KindTimedeltaParsing        ErrorKind = "timedelta_parsing"

	KindRecursionLoop ErrorKind = "recursion_loop"
	KindJSONInvalid   ErrorKind = "json_invalid"
)

// kindTemplates maps each kind to its default message template. Templates use
// literal {name} placeholders filled from the line error's context.
var kindTemplates = map[ErrorKind]string{
	KindNoneRequired: "Value must be null",

	KindBoolType:    "Value must be a valid boolean",
	KindBoolParsing: "Value must be a valid boolean, unable to interpret input",

	KindStrType:            "Value must be a valid string",
	KindStrUnicode:         "Value must be a valid string, unable to parse raw data as a unicode string",
	KindStrTooShort:        "String must have at least {min_length} characters",
	KindStrTooLong:         "String must have at most {max_length} characters",
	KindStrPatternMismatch: "String must match pattern '{pattern}'",

	KindBytesType: "Value must be valid bytes",

	KindIntType:             "Value must be a valid integer",
	KindIntParsing:          "Value must be a valid integer, unable to parse string as an integer",
	KindIntFromFloat:        "Value must be a valid integer, got a number with a fractional part",
	KindIntMultipleOf:       "Value must be a multiple of {multiple_of}",
	KindIntLessThanEqual:    "Value must be less than or equal to {le}",
	KindIntLessThan:         "Value must be less than {lt}",
	KindIntGreaterThanEqual: "Value must be greater than or equal to {ge}",
	KindIntGreaterThan:      "Value must be greater than {gt}",

	KindFloatType:             "Value must be a valid number",
	KindFloatParsing:          "Value must be a valid number, unable to parse string as a number",
	KindFloatMultipleOf:       "Value must be a multiple of {multiple_of}",
	KindFloatLessThanEqual:    "Value must be less than or equal to {le}",
	KindFloatLessThan:         "Value must be less than {lt}",
	KindFloatGreaterThanEqual: "Value must be greater than or equal to {ge}",
	KindFloatGreaterThan:      "Value must be greater than {gt}",

	KindListType:      "Value must be a valid list/array",
	KindTupleType:     "Value must be a valid tuple",
	KindSetType:       "Value must be a valid set",
	KindFrozenSetType: "Value must be a valid frozenset",
	KindTooShort:      "{type} must have at least {min_length} items",
	KindTooLong:       "{type} must have at most {max_length} items",

	KindDictType:       "Value must be a valid dictionary",
	KindMissing:        "Field required",
	KindExtraForbidden: "Extra values are not permitted",

	KindLiteralError: "Value must be one of: {expected}",

	KindDateType:                "Value must be a valid date",
	KindDateParsing:             "Value must be a valid date in the format YYYY-MM-DD, {error}",
	KindDateFromDatetimeInexact: "Datetimes provided to dates must have zero time - e.g. be exact dates",
	KindTimeType:                "Value must be a valid time",
	KindTimeParsing:             "Value must be a valid time in the format HH:MM:SS, {error}",
	KindDatetimeType:            "Value must be a valid datetime",
	KindDatetimeParsing:         "Value must be a valid datetime, {error}",
	KindTimedeltaType:           "Value must be a valid timedelta",
	KindTimedeltaParsing:        "Value must be a valid timedelta, {error}",

	KindRecursionLoop: "Recursion error - cyclic reference detected",
	KindJSONInvalid:   "Invalid JSON: {error}",
}
