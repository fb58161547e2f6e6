package io

import (
	"os"

	"github.com/matzehuels/mffmt/pkg/errors"
)

// defaultMode is used when the target's mode cannot be read.
const defaultMode os.FileMode = 0o644

// ExportFile replaces the contents of the file at path with data,
// keeping the file's permission bits.
func ExportFile(path string, data []byte) error {
	mode := defaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "cannot write file")
	}
	return nil
}
