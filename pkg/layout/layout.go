package layout

import (
	"github.com/matzehuels/mffmt/pkg/errors"
	"github.com/matzehuels/mffmt/pkg/jsondoc"
)

const (
	indentUnit    = "    "
	elementIndent = indentUnit + indentUnit
)

// compactKeys are the top-level members rendered one element per line.
var compactKeys = map[string]bool{
	"nodes": true,
	"links": true,
}

// IsCompactKey reports whether a top-level member with this name is laid
// out one element per line when its value is an array.
func IsCompactKey(name string) bool {
	return compactKeys[name]
}

// Format parses data and renders it with [Render].
// The returned bytes always end in exactly one newline.
func Format(data []byte) ([]byte, error) {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return nil, err
	}
	return Render(doc)
}

// Render lays out doc, which must be an object.
func Render(doc *jsondoc.Value) ([]byte, error) {
	if !doc.IsObject() {
		return nil, errors.New(errors.ErrCodeNotObject, "top-level value is %s, not an object", withArticle(doc.Kind()))
	}

	w := &writer{}
	w.str("{\n")
	members := doc.Members()
	for i, m := range members {
		w.str(indentUnit)
		w.quote(m.Name)
		w.str(": ")
		if IsCompactKey(m.Name) && m.Value.Kind() == jsondoc.Array {
			w.elementLines(m.Value)
		} else {
			w.pretty(m.Value, 1)
		}
		if i < len(members)-1 {
			w.byte(',')
		}
		w.byte('\n')
	}
	w.str("}\n")

	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}

// elementLines writes arr as "[", one padded compact element per line, and
// a closing "]" at member indentation.
func (w *writer) elementLines(arr *jsondoc.Value) {
	w.str("[\n")
	elems := arr.Elements()
	for i, e := range elems {
		w.str(elementIndent)
		w.raw(padBraces(w.scratch(e)))
		if i < len(elems)-1 {
			w.byte(',')
		}
		w.byte('\n')
	}
	w.str(indentUnit + "]")
}

// padBraces turns {"a": 1} into { "a": 1 }. Anything not wrapped in braces
// is returned unchanged.
func padBraces(line []byte) []byte {
	n := len(line)
	if n < 2 || line[0] != '{' || line[n-1] != '}' {
		return line
	}
	out := make([]byte, 0, n+2)
	out = append(out, '{', ' ')
	out = append(out, line[1:n-1]...)
	out = append(out, ' ', '}')
	return out
}

func withArticle(k jsondoc.Kind) string {
	switch k {
	case jsondoc.Array, jsondoc.Object:
		return "an " + k.String()
	case jsondoc.Null:
		return "null"
	}
	return "a " + k.String()
}
