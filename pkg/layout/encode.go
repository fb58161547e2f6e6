package layout

import (
	"github.com/go-json-experiment/json/jsontext"

	"github.com/matzehuels/mffmt/pkg/errors"
	"github.com/matzehuels/mffmt/pkg/jsondoc"
)

// Compact serializes v on a single line, separating items with ", " and
// names from values with ": ".
func Compact(v *jsondoc.Value) ([]byte, error) {
	w := &writer{}
	w.compact(v)
	return w.buf, w.err
}

// Pretty serializes v with four-space indentation, starting at column zero.
// Empty arrays and objects are written as [] and {}.
func Pretty(v *jsondoc.Value) ([]byte, error) {
	w := &writer{}
	w.pretty(v, 0)
	return w.buf, w.err
}

// writer accumulates output and remembers the first quoting error.
type writer struct {
	buf []byte
	err error
}

func (w *writer) str(s string) { w.buf = append(w.buf, s...) }
func (w *writer) raw(b []byte) { w.buf = append(w.buf, b...) }
func (w *writer) byte(b byte)  { w.buf = append(w.buf, b) }

func (w *writer) indent(n int) {
	for range n {
		w.str(indentUnit)
	}
}

func (w *writer) quote(s string) {
	out, err := jsontext.AppendQuote(w.buf, s)
	if err != nil && w.err == nil {
		w.err = errors.Wrap(errors.ErrCodeInvalidJSON, err, "cannot quote string")
	}
	w.buf = out
}

// scratch compacts v into a fresh buffer, sharing the error slot with w.
func (w *writer) scratch(v *jsondoc.Value) []byte {
	sub := &writer{}
	sub.compact(v)
	if sub.err != nil && w.err == nil {
		w.err = sub.err
	}
	return sub.buf
}

func (w *writer) scalar(v *jsondoc.Value) {
	switch v.Kind() {
	case jsondoc.Null:
		w.str("null")
	case jsondoc.String:
		w.quote(v.Text())
	default:
		w.str(v.Text())
	}
}

func (w *writer) compact(v *jsondoc.Value) {
	switch v.Kind() {
	case jsondoc.Array:
		w.byte('[')
		for i, e := range v.Elements() {
			if i > 0 {
				w.str(", ")
			}
			w.compact(e)
		}
		w.byte(']')
	case jsondoc.Object:
		w.byte('{')
		for i, m := range v.Members() {
			if i > 0 {
				w.str(", ")
			}
			w.quote(m.Name)
			w.str(": ")
			w.compact(m.Value)
		}
		w.byte('}')
	default:
		w.scalar(v)
	}
}

// pretty writes v as if it started at the given nesting depth: the opening
// bracket is not indented, continuation lines are.
func (w *writer) pretty(v *jsondoc.Value, depth int) {
	switch v.Kind() {
	case jsondoc.Array:
		if v.Len() == 0 {
			w.str("[]")
			return
		}
		w.byte('[')
		for i, e := range v.Elements() {
			if i > 0 {
				w.byte(',')
			}
			w.byte('\n')
			w.indent(depth + 1)
			w.pretty(e, depth+1)
		}
		w.byte('\n')
		w.indent(depth)
		w.byte(']')
	case jsondoc.Object:
		if v.Len() == 0 {
			w.str("{}")
			return
		}
		w.byte('{')
		for i, m := range v.Members() {
			if i > 0 {
				w.byte(',')
			}
			w.byte('\n')
			w.indent(depth + 1)
			w.quote(m.Name)
			w.str(": ")
			w.pretty(m.Value, depth+1)
		}
		w.byte('\n')
		w.indent(depth)
		w.byte('}')
	default:
		w.scalar(v)
	}
}
