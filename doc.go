package jsonlens

// Package jsonlens provides:
//
// - An immutable JSON value model (Value/Members) with exact decimal numbers
// - Composable read/modify accessors (Optic/Traversal) over that model
// - Host representations (Rep) so the same accessors work over byte slices
//   and strings as over the in-memory tree
// - A generic Encoded bridge that views any serializable type through a
//   JSON-bearing host
//
// Design policy:
// - Accessors are error-silent: a miss reads empty and writes as identity;
//   nothing in this package returns an error or panics on a miss.
// - Every write allocates a fresh value; inputs are never mutated.
// - Keep only public APIs in the root package; put conversion machinery
//   under internal/, extra host representations under host/, and the CLI
//   under cmd/jsonlens.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	o := jsonlens.Compose(jsonlens.Key(jsonlens.Text{}, "a"), jsonlens.AsNumber(jsonlens.Tree{}))
//	n, ok := o.Get(`{"a": 4, "b": 7}`)
//	out := o.Set(`{"a": 4, "b": 7}`, apd.New(40, 0))
