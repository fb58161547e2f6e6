package jsondoc

import (
	"bytes"
	"io"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/matzehuels/mffmt/pkg/errors"
)

// Parse decodes data as a single JSON value.
func Parse(data []byte) (*Value, error) {
	// Duplicates are resolved in the tree rather than rejected by the decoder.
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))

	v, err := parseValue(dec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "invalid JSON")
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		if err == nil {
			return nil, errors.New(errors.ErrCodeInvalidJSON, "invalid JSON: extra data after top-level value at offset %d", dec.InputOffset())
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "invalid JSON")
	}
	return v, nil
}

func parseValue(dec *jsontext.Decoder) (*Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, unexpectedEOF(err)
	}

	switch tok.Kind() {
	case 'n':
		return NewNull(), nil
	case 't', 'f':
		return NewBool(tok.Bool()), nil
	case '"':
		return NewString(tok.String()), nil
	case '0':
		return NewNumber(tok.String()), nil
	case '[':
		arr := &Value{kind: Array}
		for dec.PeekKind() != ']' {
			elem, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			arr.elems = append(arr.elems, elem)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, unexpectedEOF(err)
		}
		return arr, nil
	case '{':
		obj := &Value{kind: Object}
		idx := make(map[string]int)
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, unexpectedEOF(err)
			}
			// A token is only valid until the next decoder call.
			name := tok.String()
			val, err := parseValue(dec)
			if err != nil {
				return nil, err
			}
			obj.set(idx, name, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, unexpectedEOF(err)
		}
		return obj, nil
	}
	return nil, errors.New(errors.ErrCodeInternal, "unexpected token kind %v", tok.Kind())
}

// unexpectedEOF reports truncated input; a bare io.EOF inside a value is
// never a clean end of stream.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
