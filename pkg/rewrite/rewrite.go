// Package rewrite applies the MathFlow layout to files on disk.
//
// [File] handles one file: read it, format it in memory, and overwrite it.
// Nothing is written unless formatting succeeded, so a malformed file is
// left exactly as it was. [Runner] drives a batch of files sequentially,
// reporting each outcome and never stopping on a per-file failure.
package rewrite

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/mffmt/pkg/errors"
	pkgio "github.com/matzehuels/mffmt/pkg/io"
	"github.com/matzehuels/mffmt/pkg/layout"
	"github.com/matzehuels/mffmt/pkg/observability"
)

// Mode selects what happens to a successfully formatted file.
type Mode int

const (
	// Write overwrites the file in place. This is the default.
	Write Mode = iota
	// Check leaves the file alone and only reports whether it would change.
	Check
	// Stdout leaves the file alone and returns the formatted bytes.
	Stdout
)

// Options configures formatting.
type Options struct {
	Mode Mode

	// SkipUnchanged leaves already formatted files untouched in Write mode.
	// The watcher sets it so its own writes do not trigger another pass.
	SkipUnchanged bool
}

// Result captures the outcome of formatting a single file.
type Result struct {
	Path      string
	Changed   bool   // formatted bytes differ from the original
	Formatted []byte // set in Stdout mode
	Err       error
	Duration  time.Duration
}

// File formats the file at path according to opts.
//
// In Write mode the file is rewritten even when its bytes are already
// formatted, unless opts.SkipUnchanged is set, so every successful call
// leaves a file whose contents are exactly the layout output.
func File(ctx context.Context, path string, opts Options) Result {
	hooks := observability.Format()
	hooks.OnFileStart(ctx, path)

	start := time.Now()
	res := formatFile(path, opts)
	res.Duration = time.Since(start)

	hooks.OnFileComplete(ctx, path, res.Changed, res.Duration, res.Err)
	return res
}

func formatFile(path string, opts Options) Result {
	res := Result{Path: path}

	original, err := pkgio.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	formatted, err := layout.Format(original)
	if err != nil {
		res.Err = err
		return res
	}
	res.Changed = !bytes.Equal(original, formatted)

	switch opts.Mode {
	case Check:
		return res
	case Stdout:
		res.Formatted = formatted
		return res
	case Write:
		if !res.Changed && opts.SkipUnchanged {
			return res
		}
		if err := pkgio.ExportFile(path, formatted); err != nil {
			res.Err = err
		}
		return res
	}
	res.Err = errors.New(errors.ErrCodeInternal, "unknown mode %d", opts.Mode)
	return res
}
