package pycore

import (
	"bytes"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

// docValue adapts one node of a parsed JSON document tree: nil, bool, string,
// json.Number, []any or map[string]any, numbers kept as json.Number so the
// int/float distinction survives decoding.
type docValue struct {
	v any
}

// DecodeJSON parses data into the document input representation. The returned
// error, if any, is a *ValidationError with a single json_invalid line error.
func DecodeJSON(data []byte) (Input, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ValidationError{
			Title: "JSON",
			Errors: []LineError{{
				Kind:    KindJSONInvalid,
				Context: errCtx("error", err.Error()),
			}},
		}
	}
	return docValue{v: v}, nil
}

// DocumentValue wraps an already-decoded document tree (nil, bool, string,
// json.Number, []any, map[string]any) as an Input.
func DocumentValue(v any) Input { return docValue{v: v} }

func (d docValue) AsLocItem() LocItem {
	switch t := d.v.(type) {
	case string:
		return KeyLoc(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IndexLoc(int(i))
		}
	}
	return KeyLoc(displayValue(d.AsErrorValue()))
}

func (d docValue) AsErrorValue() any {
	switch t := d.v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	default:
		return d.v
	}
}

// Document values have no stable reference identity.
func (d docValue) Identity() (uintptr, bool) { return 0, false }

func (d docValue) IsNone() bool { return d.v == nil }

func (d docValue) StrictStr() (string, error) {
	if s, ok := d.v.(string); ok {
		return s, nil
	}
	return "", lineErr(KindStrType, d, nil)
}

func (d docValue) LaxStr() (string, error) {
	switch t := d.v.(type) {
	case string:
		return t, nil
	case json.Number:
		// decimal rendering of the literal, e.g. 123 -> "123", 2.5 -> "2.5"
		return t.String(), nil
	default:
		return "", lineErr(KindStrType, d, nil)
	}
}

func (d docValue) StrictBytes() ([]byte, error) {
	// JSON has no bytes kind; strings are the only possible source.
	if s, ok := d.v.(string); ok {
		return []byte(s), nil
	}
	return nil, lineErr(KindBytesType, d, nil)
}

func (d docValue) LaxBytes() ([]byte, error) { return d.StrictBytes() }

func (d docValue) StrictBool() (bool, error) {
	if b, ok := d.v.(bool); ok {
		return b, nil
	}
	return false, lineErr(KindBoolType, d, nil)
}

func (d docValue) LaxBool() (bool, error) {
	switch t := d.v.(type) {
	case bool:
		return t, nil
	case string:
		return strAsBool(d, t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return intAsBool(d, i)
		}
		return false, lineErr(KindBoolType, d, nil)
	default:
		return false, lineErr(KindBoolType, d, nil)
	}
}

func (d docValue) StrictInt() (int64, error) {
	if n, ok := d.v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	return 0, lineErr(KindIntType, d, nil)
}

func (d docValue) LaxInt() (int64, error) {
	switch t := d.v.(type) {
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, lineErr(KindIntParsing, d, nil)
		}
		return floatAsInt(d, f)
	case string:
		return strAsInt(d, t)
	default:
		return 0, lineErr(KindIntType, d, nil)
	}
}

func (d docValue) StrictFloat() (float64, error) {
	if n, ok := d.v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, lineErr(KindFloatType, d, nil)
}

func (d docValue) LaxFloat() (float64, error) {
	switch t := d.v.(type) {
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		return d.StrictFloat()
	case string:
		return strAsFloat(d, t)
	default:
		return 0, lineErr(KindFloatType, d, nil)
	}
}

func (d docValue) StrictDict() (GenericMap, error) {
	obj, ok := d.v.(map[string]any)
	if !ok {
		return nil, lineErr(KindDictType, d, nil)
	}
	return docObjectItems(obj), nil
}

func (d docValue) LaxDict() (GenericMap, error) { return d.StrictDict() }

func (d docValue) StrictList() (GenericSeq, error) {
	if a, ok := d.v.([]any); ok {
		return docSeq(a), nil
	}
	return nil, lineErr(KindListType, d, nil)
}

func (d docValue) LaxList() (GenericSeq, error) { return d.StrictList() }

func (d docValue) StrictTuple() (GenericSeq, error) {
	// arrays are the only JSON source a tuple can come from
	if a, ok := d.v.([]any); ok {
		return docSeq(a), nil
	}
	return nil, lineErr(KindTupleType, d, nil)
}

func (d docValue) LaxTuple() (GenericSeq, error) { return d.StrictTuple() }

func (d docValue) StrictSet() (GenericSeq, error) {
	// we allow an array here since otherwise it would be impossible to
	// create a set from JSON
	if a, ok := d.v.([]any); ok {
		return docSeq(a), nil
	}
	return nil, lineErr(KindSetType, d, nil)
}

func (d docValue) LaxSet() (GenericSeq, error) { return d.StrictSet() }

func (d docValue) StrictFrozenSet() (GenericSeq, error) {
	if a, ok := d.v.([]any); ok {
		return docSeq(a), nil
	}
	return nil, lineErr(KindFrozenSetType, d, nil)
}

func (d docValue) LaxFrozenSet() (GenericSeq, error) { return d.StrictFrozenSet() }

func (d docValue) StrictDate() (Date, error) {
	if s, ok := d.v.(string); ok {
		return strAsDate(d, s)
	}
	return Date{}, lineErr(KindDateType, d, nil)
}

func (d docValue) LaxDate() (Date, error) {
	switch t := d.v.(type) {
	case string:
		return strAsDate(d, t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return epochAsDate(d, i)
		}
		f, err := t.Float64()
		if err != nil {
			return Date{}, lineErr(KindDateType, d, nil)
		}
		whole, err := floatAsInt(d, f)
		if err != nil {
			return Date{}, lineErr(KindDateFromDatetimeInexact, d, nil)
		}
		return epochAsDate(d, whole)
	default:
		return Date{}, lineErr(KindDateType, d, nil)
	}
}

func (d docValue) StrictTime() (TimeOfDay, error) {
	if s, ok := d.v.(string); ok {
		return strAsTime(d, s)
	}
	return TimeOfDay{}, lineErr(KindTimeType, d, nil)
}

func (d docValue) LaxTime() (TimeOfDay, error) {
	switch t := d.v.(type) {
	case string:
		return strAsTime(d, t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return secondsAsTime(d, i)
		}
		return TimeOfDay{}, lineErr(KindTimeType, d, nil)
	default:
		return TimeOfDay{}, lineErr(KindTimeType, d, nil)
	}
}

func (d docValue) StrictDateTime() (time.Time, error) {
	if s, ok := d.v.(string); ok {
		return strAsDateTime(d, s)
	}
	return time.Time{}, lineErr(KindDatetimeType, d, nil)
}

func (d docValue) LaxDateTime() (time.Time, error) {
	switch t := d.v.(type) {
	case string:
		return strAsDateTime(d, t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, lineErr(KindDatetimeType, d, nil)
		}
		return epochAsDateTime(f), nil
	default:
		return time.Time{}, lineErr(KindDatetimeType, d, nil)
	}
}

func (d docValue) StrictTimedelta() (time.Duration, error) {
	if s, ok := d.v.(string); ok {
		return strAsTimedelta(d, s)
	}
	return 0, lineErr(KindTimedeltaType, d, nil)
}

func (d docValue) LaxTimedelta() (time.Duration, error) {
	switch t := d.v.(type) {
	case string:
		return strAsTimedelta(d, t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, lineErr(KindTimedeltaType, d, nil)
		}
		return secondsAsTimedelta(f), nil
	default:
		return 0, lineErr(KindTimedeltaType, d, nil)
	}
}

func docSeq(a []any) GenericSeq {
	seq := make(GenericSeq, len(a))
	for i, el := range a {
		seq[i] = docValue{v: el}
	}
	return seq
}

// docObjectItems returns entries sorted by key; Go maps have no iteration
// order and the error report must be deterministic.
func docObjectItems(obj map[string]any) GenericMap {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make(GenericMap, len(keys))
	for i, k := range keys {
		items[i] = MapItem{Key: k, KeyInput: docValue{v: k}, Value: docValue{v: obj[k]}}
	}
	return items
}
