package pycore

import (
	"fmt"
	"time"
)

// Renderer turns an error kind plus context into a human-readable message.
// The default implementation uses the built-in template dictionary; replace it
// with SetRenderer for localization or custom wording.
type Renderer interface {
	Message(kind ErrorKind, ctx Context) string
}

type dictRenderer struct{}

func (dictRenderer) Message(kind ErrorKind, ctx Context) string {
	tmpl, ok := kindTemplates[kind]
	if !ok {
		return string(kind)
	}
	return ctx.Render(tmpl)
}

var currentRenderer Renderer = dictRenderer{}

// SetRenderer replaces the message renderer; nil restores the default.
func SetRenderer(r Renderer) {
	if r == nil {
		currentRenderer = dictRenderer{}
		return
	}
	currentRenderer = r
}

func renderMessage(kind ErrorKind, ctx Context) string {
	return currentRenderer.Message(kind, ctx)
}

// typeName reports a friendly name for an input snapshot, used in rendered
// validation errors.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case string:
		return "str"
	case []byte:
		return "bytes"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	case map[any]struct{}:
		return "set"
	case time.Time:
		return "datetime"
	case time.Duration:
		return "timedelta"
	case Date:
		return "date"
	case TimeOfDay:
		return "time"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func displayValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
