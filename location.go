package pycore

import (
	"strconv"
	"strings"
)

// LocItem is one step in the path from the root of the input to the value an
// error refers to: either a mapping key or a sequence index.
type LocItem struct {
	key     string
	index   int
	isIndex bool
}

// KeyLoc returns a LocItem for a mapping key.
func KeyLoc(key string) LocItem { return LocItem{key: key} }

// IndexLoc returns a LocItem for a sequence index.
func IndexLoc(i int) LocItem { return LocItem{index: i, isIndex: true} }

// Value returns the item as a string or an int, the two shapes the error
// boundary exposes.
func (l LocItem) Value() any {
	if l.isIndex {
		return l.index
	}
	return l.key
}

func (l LocItem) String() string {
	if l.isIndex {
		return strconv.Itoa(l.index)
	}
	return l.key
}

// Location is the root-to-leaf path to the failing value. Frames prepend their
// own item as validation unwinds, so the final order is root first.
type Location []LocItem

func (loc Location) prepend(item LocItem) Location {
	out := make(Location, 0, len(loc)+1)
	out = append(out, item)
	return append(out, loc...)
}

// Items returns the path as a slice of string/int values.
func (loc Location) Items() []any {
	out := make([]any, len(loc))
	for i, it := range loc {
		out[i] = it.Value()
	}
	return out
}

func (loc Location) String() string {
	if len(loc) == 0 {
		return ""
	}
	parts := make([]string, len(loc))
	for i, it := range loc {
		parts[i] = it.String()
	}
	return strings.Join(parts, " -> ")
}

// Pointer renders the location as a JSON Pointer, escaping "~" and "/" per
// RFC6901.
func (loc Location) Pointer() string {
	if len(loc) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, it := range loc {
		b.WriteByte('/')
		if it.isIndex {
			b.WriteString(strconv.Itoa(it.index))
		} else {
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(it.key, "~", "~0"), "/", "~1"))
		}
	}
	return b.String()
}
