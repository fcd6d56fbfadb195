package pycore

import "time"

// Input is the capability contract every input representation must satisfy.
// Each kind exposes a strict coercion (exact kind only) and a lax coercion
// (best-effort conversion); where an adapter has no distinct lax behavior its
// lax method simply calls the strict one. Validators dispatch through the
// package-level validateX helpers which pick strict or lax from a boolean.
//
// Errors returned from these methods are always line-error collections except
// for adapter-internal failures, which surface as *InternalError and abort
// the whole call.
type Input interface {
	// AsLocItem reports how this value appears inside an error location,
	// e.g. a mapping key or sequence index.
	AsLocItem() LocItem
	// AsErrorValue snapshots the underlying value for inclusion in a
	// line error.
	AsErrorValue() any
	// Identity returns a stable reference identity when the representation
	// has one (native maps, slices, pointers). Document values have none and
	// return false, exempting them from the recursion guard.
	Identity() (uintptr, bool)

	IsNone() bool

	StrictStr() (string, error)
	LaxStr() (string, error)

	StrictBytes() ([]byte, error)
	LaxBytes() ([]byte, error)

	StrictBool() (bool, error)
	LaxBool() (bool, error)

	StrictInt() (int64, error)
	LaxInt() (int64, error)

	StrictFloat() (float64, error)
	LaxFloat() (float64, error)

	StrictDict() (GenericMap, error)
	LaxDict() (GenericMap, error)

	StrictList() (GenericSeq, error)
	LaxList() (GenericSeq, error)

	StrictTuple() (GenericSeq, error)
	LaxTuple() (GenericSeq, error)

	StrictSet() (GenericSeq, error)
	LaxSet() (GenericSeq, error)

	StrictFrozenSet() (GenericSeq, error)
	LaxFrozenSet() (GenericSeq, error)

	StrictDate() (Date, error)
	LaxDate() (Date, error)

	StrictTime() (TimeOfDay, error)
	LaxTime() (TimeOfDay, error)

	StrictDateTime() (time.Time, error)
	LaxDateTime() (time.Time, error)

	StrictTimedelta() (time.Duration, error)
	LaxTimedelta() (time.Duration, error)
}

// GenericSeq is the ordered element view composite validators consume,
// independent of the source representation.
type GenericSeq []Input

// MapItem is one mapping entry. Key carries the raw key for lookups and
// locations; KeyInput lets key schemas validate it like any other value.
type MapItem struct {
	Key      string
	KeyInput Input
	Value    Input
}

// GenericMap is the ordered mapping view. Adapters over unordered maps sort
// entries by key so validation output and error order are deterministic.
type GenericMap []MapItem

// ---- strict/lax dispatch ----

func validateStr(in Input, strict bool) (string, error) {
	if strict {
		return in.StrictStr()
	}
	return in.LaxStr()
}

func validateBytes(in Input, strict bool) ([]byte, error) {
	if strict {
		return in.StrictBytes()
	}
	return in.LaxBytes()
}

func validateBool(in Input, strict bool) (bool, error) {
	if strict {
		return in.StrictBool()
	}
	return in.LaxBool()
}

func validateInt(in Input, strict bool) (int64, error) {
	if strict {
		return in.StrictInt()
	}
	return in.LaxInt()
}

func validateFloat(in Input, strict bool) (float64, error) {
	if strict {
		return in.StrictFloat()
	}
	return in.LaxFloat()
}

func validateDict(in Input, strict bool) (GenericMap, error) {
	if strict {
		return in.StrictDict()
	}
	return in.LaxDict()
}

func validateList(in Input, strict bool) (GenericSeq, error) {
	if strict {
		return in.StrictList()
	}
	return in.LaxList()
}

func validateSet(in Input, strict bool) (GenericSeq, error) {
	if strict {
		return in.StrictSet()
	}
	return in.LaxSet()
}

func validateFrozenSet(in Input, strict bool) (GenericSeq, error) {
	if strict {
		return in.StrictFrozenSet()
	}
	return in.LaxFrozenSet()
}

func validateDate(in Input, strict bool) (Date, error) {
	if strict {
		return in.StrictDate()
	}
	return in.LaxDate()
}

func validateTime(in Input, strict bool) (TimeOfDay, error) {
	if strict {
		return in.StrictTime()
	}
	return in.LaxTime()
}

func validateDateTime(in Input, strict bool) (time.Time, error) {
	if strict {
		return in.StrictDateTime()
	}
	return in.LaxDateTime()
}

func validateTimedelta(in Input, strict bool) (time.Duration, error) {
	if strict {
		return in.StrictTimedelta()
	}
	return in.LaxTimedelta()
}
