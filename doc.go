package pycore

// Package pycore compiles declarative schema definitions into immutable
// validator trees and runs them against arbitrary input values.
//
// It provides:
//
//   - A closed set of validator kinds (none/bool/str/int/float/list/set/dict/
//     model/union/literal/recursive-...) built once from a Schema node tree
//   - Dual-mode coercion: strict (exact kind only) and lax (best-effort
//     conversion) over two input families, JSON documents and native Go values
//   - A stable error model via LineError (location, kind, rendered message,
//     context) aggregated into a ValidationError covering every violation found
//   - Cycle-safe validation of self-referential schemas through a slot table
//     and a per-call recursion guard
//
// Design policy:
// - Keep the public surface in the root package; the CLI lives under cmd/.
// - Validator trees and the slot table are immutable after build and safe to
//   share across goroutines; all per-call state is threaded explicitly.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema, err := pycore.SchemaFromYAML(def)
//	v, err := pycore.NewSchemaValidator(schema, &pycore.Config{Title: "User"})
//	out, err := v.ValidateJSON(data)
//	out, err = v.Validate(map[string]any{"id": 1})
