package io

import (
	"io"
	"os"

	"github.com/matzehuels/mffmt/pkg/errors"
	"github.com/matzehuels/mffmt/pkg/jsondoc"
)

// ReadFile returns the full contents of the file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "file not found")
		}
		return nil, errors.Wrap(errors.ErrCodeReadFailed, err, "cannot read file")
	}
	return data, nil
}

// ReadJSON reads r to the end and parses it as one document. ReadJSON
// does not close r.
func ReadJSON(r io.Reader) (*jsondoc.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, err, "cannot read input")
	}
	return jsondoc.Parse(data)
}
