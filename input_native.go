package pycore

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"
)

// nativeValue adapts an arbitrary Go value. This is the host-side input
// family: unlike document values it carries reference identity for maps,
// slices and pointers, which feeds the recursion guard.
type nativeValue struct {
	v any
}

// NativeValue wraps a Go value as an Input. SchemaValidator.Validate does this
// automatically; the constructor is exported for host value providers that
// compose inputs themselves.
func NativeValue(v any) Input { return nativeValue{v: v} }

func (n nativeValue) AsLocItem() LocItem {
	switch t := n.v.(type) {
	case string:
		return KeyLoc(t)
	case int:
		return IndexLoc(t)
	case int64:
		return IndexLoc(int(t))
	default:
		return KeyLoc(displayValue(n.v))
	}
}

func (n nativeValue) AsErrorValue() any { return n.v }

// Identity reports the pointer identity of reference kinds. Values without
// one (scalars, structs) are exempt from cycle detection.
func (n nativeValue) Identity() (uintptr, bool) {
	rv := reflect.ValueOf(n.v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	default:
		return 0, false
	}
}

func (n nativeValue) IsNone() bool {
	if n.v == nil {
		return true
	}
	rv := reflect.ValueOf(n.v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// asInt64 extracts from any Go integer kind except bool. Unsigned values
// above MaxInt64 have no int64 representation and report false.
func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// maybeAsString mirrors the string-or-bytes fallback used by the lax chains:
// a []byte that is not valid UTF-8 fails with the supplied kind.
func (n nativeValue) maybeAsString(unicodeKind ErrorKind) (string, bool, error) {
	switch t := n.v.(type) {
	case string:
		return t, true, nil
	case []byte:
		if !utf8.Valid(t) {
			return "", false, lineErr(unicodeKind, n, nil)
		}
		return string(t), true, nil
	default:
		return "", false, nil
	}
}

func (n nativeValue) StrictStr() (string, error) {
	if s, ok := n.v.(string); ok {
		return s, nil
	}
	return "", lineErr(KindStrType, n, nil)
}

func (n nativeValue) LaxStr() (string, error) {
	if s, ok, err := n.maybeAsString(KindStrUnicode); err != nil {
		return "", err
	} else if ok {
		return s, nil
	}
	if i, ok := asInt64(n.v); ok {
		return strconv.FormatInt(i, 10), nil
	}
	if f, ok := asFloat64(n.v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", lineErr(KindStrType, n, nil)
}

func (n nativeValue) StrictBytes() ([]byte, error) {
	if b, ok := n.v.([]byte); ok {
		return b, nil
	}
	return nil, lineErr(KindBytesType, n, nil)
}

func (n nativeValue) LaxBytes() ([]byte, error) {
	switch t := n.v.(type) {
	case []byte:
		return t, nil
	case string:
		return []byte(t), nil
	default:
		return nil, lineErr(KindBytesType, n, nil)
	}
}

func (n nativeValue) StrictBool() (bool, error) {
	if b, ok := n.v.(bool); ok {
		return b, nil
	}
	return false, lineErr(KindBoolType, n, nil)
}

func (n nativeValue) LaxBool() (bool, error) {
	if b, ok := n.v.(bool); ok {
		return b, nil
	}
	if s, ok, err := n.maybeAsString(KindBoolParsing); err != nil {
		return false, err
	} else if ok {
		return strAsBool(n, s)
	}
	if i, ok := asInt64(n.v); ok {
		return intAsBool(n, i)
	}
	if f, ok := asFloat64(n.v); ok {
		i, err := floatAsInt(n, f)
		if err != nil {
			return false, lineErr(KindBoolType, n, nil)
		}
		return intAsBool(n, i)
	}
	return false, lineErr(KindBoolType, n, nil)
}

func (n nativeValue) StrictInt() (int64, error) {
	if i, ok := asInt64(n.v); ok {
		return i, nil
	}
	return 0, lineErr(KindIntType, n, nil)
}

func (n nativeValue) LaxInt() (int64, error) {
	if b, ok := n.v.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	if i, ok := asInt64(n.v); ok {
		return i, nil
	}
	if s, ok, err := n.maybeAsString(KindIntParsing); err != nil {
		return 0, err
	} else if ok {
		return strAsInt(n, s)
	}
	if f, ok := asFloat64(n.v); ok {
		return floatAsInt(n, f)
	}
	return 0, lineErr(KindIntType, n, nil)
}

func (n nativeValue) StrictFloat() (float64, error) {
	if f, ok := asFloat64(n.v); ok {
		return f, nil
	}
	return 0, lineErr(KindFloatType, n, nil)
}

func (n nativeValue) LaxFloat() (float64, error) {
	if f, ok := asFloat64(n.v); ok {
		return f, nil
	}
	if b, ok := n.v.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	if i, ok := asInt64(n.v); ok {
		return float64(i), nil
	}
	if s, ok, err := n.maybeAsString(KindFloatParsing); err != nil {
		return 0, err
	} else if ok {
		return strAsFloat(n, s)
	}
	return 0, lineErr(KindFloatType, n, nil)
}

func (n nativeValue) StrictDict() (GenericMap, error) {
	if m, ok := n.v.(map[string]any); ok {
		return nativeMapItems(m), nil
	}
	return nil, lineErr(KindDictType, n, nil)
}

func (n nativeValue) LaxDict() (GenericMap, error) { return n.StrictDict() }

var emptyStructType = reflect.TypeOf(struct{}{})

// isSetMap reports whether v is a map used as a set, i.e. struct{}-valued.
func isSetMap(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Elem() == emptyStructType {
		return rv, true
	}
	return reflect.Value{}, false
}

func (n nativeValue) StrictList() (GenericSeq, error) {
	if rv := reflect.ValueOf(n.v); rv.Kind() == reflect.Slice && rv.Type().Elem() != reflect.TypeOf(byte(0)) {
		return nativeSeqFromValue(rv), nil
	}
	return nil, lineErr(KindListType, n, nil)
}

func (n nativeValue) LaxList() (GenericSeq, error) {
	rv := reflect.ValueOf(n.v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem() == reflect.TypeOf(byte(0)) {
			return nil, lineErr(KindListType, n, nil)
		}
		return nativeSeqFromValue(rv), nil
	case reflect.Array:
		return nativeSeqFromValue(rv), nil
	case reflect.Map:
		if sv, ok := isSetMap(n.v); ok {
			return nativeSeqFromSet(sv), nil
		}
	}
	return nil, lineErr(KindListType, n, nil)
}

func (n nativeValue) StrictTuple() (GenericSeq, error) {
	if rv := reflect.ValueOf(n.v); rv.Kind() == reflect.Array {
		return nativeSeqFromValue(rv), nil
	}
	return nil, lineErr(KindTupleType, n, nil)
}

func (n nativeValue) LaxTuple() (GenericSeq, error) {
	rv := reflect.ValueOf(n.v)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		return nativeSeqFromValue(rv), nil
	default:
		return nil, lineErr(KindTupleType, n, nil)
	}
}

func (n nativeValue) StrictSet() (GenericSeq, error) {
	if sv, ok := isSetMap(n.v); ok {
		return nativeSeqFromSet(sv), nil
	}
	return nil, lineErr(KindSetType, n, nil)
}

func (n nativeValue) LaxSet() (GenericSeq, error) {
	if sv, ok := isSetMap(n.v); ok {
		return nativeSeqFromSet(sv), nil
	}
	rv := reflect.ValueOf(n.v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return nativeSeqFromValue(rv), nil
	default:
		return nil, lineErr(KindSetType, n, nil)
	}
}

func (n nativeValue) StrictFrozenSet() (GenericSeq, error) {
	if sv, ok := isSetMap(n.v); ok {
		return nativeSeqFromSet(sv), nil
	}
	return nil, lineErr(KindFrozenSetType, n, nil)
}

func (n nativeValue) LaxFrozenSet() (GenericSeq, error) {
	if seq, err := n.LaxSet(); err == nil {
		return seq, nil
	}
	return nil, lineErr(KindFrozenSetType, n, nil)
}

func (n nativeValue) StrictDate() (Date, error) {
	if d, ok := n.v.(Date); ok {
		return d, nil
	}
	return Date{}, lineErr(KindDateType, n, nil)
}

func (n nativeValue) LaxDate() (Date, error) {
	switch t := n.v.(type) {
	case Date:
		return t, nil
	case time.Time:
		return timeAsDate(n, t)
	}
	if s, ok, err := n.maybeAsString(KindDateParsing); err != nil {
		return Date{}, err
	} else if ok {
		return strAsDate(n, s)
	}
	if i, ok := asInt64(n.v); ok {
		return epochAsDate(n, i)
	}
	if f, ok := asFloat64(n.v); ok {
		whole, err := floatAsInt(n, f)
		if err != nil {
			return Date{}, lineErr(KindDateFromDatetimeInexact, n, nil)
		}
		return epochAsDate(n, whole)
	}
	return Date{}, lineErr(KindDateType, n, nil)
}

func (n nativeValue) StrictTime() (TimeOfDay, error) {
	if t, ok := n.v.(TimeOfDay); ok {
		return t, nil
	}
	return TimeOfDay{}, lineErr(KindTimeType, n, nil)
}

func (n nativeValue) LaxTime() (TimeOfDay, error) {
	if t, ok := n.v.(TimeOfDay); ok {
		return t, nil
	}
	if s, ok, err := n.maybeAsString(KindTimeParsing); err != nil {
		return TimeOfDay{}, err
	} else if ok {
		return strAsTime(n, s)
	}
	if i, ok := asInt64(n.v); ok {
		return secondsAsTime(n, i)
	}
	return TimeOfDay{}, lineErr(KindTimeType, n, nil)
}

func (n nativeValue) StrictDateTime() (time.Time, error) {
	if t, ok := n.v.(time.Time); ok {
		return t, nil
	}
	return time.Time{}, lineErr(KindDatetimeType, n, nil)
}

func (n nativeValue) LaxDateTime() (time.Time, error) {
	if t, ok := n.v.(time.Time); ok {
		return t, nil
	}
	if s, ok, err := n.maybeAsString(KindDatetimeParsing); err != nil {
		return time.Time{}, err
	} else if ok {
		return strAsDateTime(n, s)
	}
	if i, ok := asInt64(n.v); ok {
		return epochAsDateTime(float64(i)), nil
	}
	if f, ok := asFloat64(n.v); ok {
		return epochAsDateTime(f), nil
	}
	return time.Time{}, lineErr(KindDatetimeType, n, nil)
}

func (n nativeValue) StrictTimedelta() (time.Duration, error) {
	if d, ok := n.v.(time.Duration); ok {
		return d, nil
	}
	return 0, lineErr(KindTimedeltaType, n, nil)
}

func (n nativeValue) LaxTimedelta() (time.Duration, error) {
	if d, ok := n.v.(time.Duration); ok {
		return d, nil
	}
	if s, ok, err := n.maybeAsString(KindTimedeltaParsing); err != nil {
		return 0, err
	} else if ok {
		return strAsTimedelta(n, s)
	}
	if i, ok := asInt64(n.v); ok {
		return secondsAsTimedelta(float64(i)), nil
	}
	if f, ok := asFloat64(n.v); ok {
		return secondsAsTimedelta(f), nil
	}
	return 0, lineErr(KindTimedeltaType, n, nil)
}

func nativeSeqFromValue(rv reflect.Value) GenericSeq {
	seq := make(GenericSeq, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		seq[i] = nativeValue{v: rv.Index(i).Interface()}
	}
	return seq
}

// nativeSeqFromSet iterates a struct{}-valued map in sorted display order so
// repeated runs see the same element order.
func nativeSeqFromSet(rv reflect.Value) GenericSeq {
	elems := make([]any, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		elems = append(elems, iter.Key().Interface())
	}
	sort.Slice(elems, func(i, j int) bool {
		return displayValue(elems[i]) < displayValue(elems[j])
	})
	seq := make(GenericSeq, len(elems))
	for i, el := range elems {
		seq[i] = nativeValue{v: el}
	}
	return seq
}

func nativeMapItems(m map[string]any) GenericMap {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make(GenericMap, len(keys))
	for i, k := range keys {
		items[i] = MapItem{Key: k, KeyInput: nativeValue{v: k}, Value: nativeValue{v: m[k]}}
	}
	return items
}
