// Package io reads and writes the files mffmt formats.
//
// # Overview
//
// Formatting is all-or-nothing per file: the whole file is read into
// memory, parsed, laid out, and only then written back. This package holds
// the two file-system ends of that sequence so the rest of the code deals
// in bytes and documents.
//
// # Import
//
// Use [ReadFile] to load a file's bytes, or [ReadJSON] to parse a document
// from any io.Reader such as standard input:
//
//	doc, err := io.ReadJSON(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Read failures are [errors.ErrCodeNotFound] when the file does not exist
// and [errors.ErrCodeReadFailed] otherwise. Parse failures are
// [errors.ErrCodeInvalidJSON].
//
// # Export
//
// Use [ExportFile] to overwrite an existing file in place. The file keeps
// its permission bits; its contents are replaced by the given bytes.
// Failures are [errors.ErrCodeWriteFailed].
//
// [errors.ErrCodeNotFound]: github.com/matzehuels/mffmt/pkg/errors.ErrCodeNotFound
// [errors.ErrCodeReadFailed]: github.com/matzehuels/mffmt/pkg/errors.ErrCodeReadFailed
// [errors.ErrCodeInvalidJSON]: github.com/matzehuels/mffmt/pkg/errors.ErrCodeInvalidJSON
// [errors.ErrCodeWriteFailed]: github.com/matzehuels/mffmt/pkg/errors.ErrCodeWriteFailed
package io
