// Package jsondoc provides an order-preserving JSON document model.
//
// # Overview
//
// The standard library decodes JSON objects into Go maps, which loses the
// order members appeared in. A formatter that rewrites files in place must
// keep that order, and must not reinterpret numbers either: a graph file
// that says 3.0 should still say 3.0 after formatting. This package parses
// JSON into a small tree of [Value] nodes that keeps both.
//
// # Model
//
//   - Objects keep their members in source order.
//   - Numbers keep their source literal verbatim (3.0, 1e5, -0).
//   - Strings hold their decoded text; re-quoting is the caller's concern.
//   - Duplicate member names collapse to a single member at the position of
//     the first occurrence, holding the value of the last one. This matches
//     how mapping-based loaders treat duplicates.
//
// # Parsing
//
// Use [Parse] to decode a complete document:
//
//	doc, err := jsondoc.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range doc.Members() {
//	    fmt.Println(m.Name, m.Value.Kind())
//	}
//
// Parse accepts exactly one RFC 8259 value. Trailing content other than
// whitespace, invalid UTF-8, and non-standard literals (NaN, Infinity) are
// rejected. Errors are [errors.ErrCodeInvalidJSON] from pkg/errors and carry
// the decoder's byte offset.
//
// # Concurrency
//
// A parsed [Value] is not modified by this package after Parse returns and
// may be read from multiple goroutines.
package jsondoc
