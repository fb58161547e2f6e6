// Package discover finds the files mffmt should format.
//
// Discovery runs one recursive walk per glob pattern, in pattern order, and
// concatenates the matches without de-duplication. Paths whose part
// below the root contains any exclude substring are dropped; with the defaults this keeps build output,
// vcpkg trees and .git out of the result. Entries whose name starts with a
// dot are skipped unless asked for, the way shell globs skip them.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/mffmt/pkg/errors"
	"github.com/matzehuels/mffmt/pkg/observability"
)

// DefaultPatterns match JSON files and MathFlow app manifests.
var DefaultPatterns = []string{"**/*.json", "**/*.mfapp"}

// DefaultExclude lists the path fragments skipped by default.
var DefaultExclude = []string{"build/", "out/", "vcpkg", ".git/"}

// Options configures a discovery walk.
type Options struct {
	Patterns      []string // glob patterns relative to the root; DefaultPatterns if nil
	Exclude       []string // substrings of slash-separated paths to skip; DefaultExclude if nil
	IncludeHidden bool     // descend into and match dot-prefixed entries
}

// WithDefaults returns a copy of o with nil fields replaced by defaults.
// An empty non-nil Exclude means "exclude nothing".
func (o Options) WithDefaults() Options {
	if o.Patterns == nil {
		o.Patterns = DefaultPatterns
	}
	if o.Exclude == nil {
		o.Exclude = DefaultExclude
	}
	return o
}

// Validate checks every pattern.
func (o Options) Validate() error {
	for _, p := range o.Patterns {
		if err := errors.ValidatePattern(p); err != nil {
			return err
		}
		if !doublestar.ValidatePattern(p) {
			return errors.New(errors.ErrCodeInvalidPattern, "malformed pattern %q", p)
		}
	}
	return nil
}

// Find returns the files under root that match opts, in discovery order.
// Returned paths are joined onto root; when root is "." they are bare
// relative paths such as "graphs/main.json".
func Find(ctx context.Context, root string, opts Options) ([]string, error) {
	start := time.Now()
	files, err := find(ctx, root, opts.WithDefaults())
	observability.Format().OnDiscoverComplete(ctx, root, len(files), time.Since(start), err)
	return files, err
}

func find(ctx context.Context, root string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "stat %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", root)
	}

	w := walker{root: root, opts: opts, fsys: os.DirFS(root)}
	var files []string
	for _, pattern := range opts.Patterns {
		matches, err := w.walk(ctx, pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// Dirs returns root and every directory beneath it that discovery would
// descend into, in lexical walk order.
func Dirs(ctx context.Context, root string, opts Options) ([]string, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	w := walker{root: root, opts: opts, fsys: os.DirFS(root)}
	dirs := []string{root}
	err := fs.WalkDir(w.fsys, ".", func(rel string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if rel == "." {
				return errors.Wrap(errors.ErrCodeNotFound, err, "walk %s", root)
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if rel == "." || !d.IsDir() {
			return nil
		}
		if w.skipHidden(d.Name()) || w.excluded(rel+"/") {
			return fs.SkipDir
		}
		dirs = append(dirs, w.join(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// Match reports whether p, a path beneath root in the form [Find] returns,
// is a file discovery would select.
func Match(root, p string, opts Options) bool {
	opts = opts.WithDefaults()
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	w := walker{root: root, opts: opts}
	for _, seg := range strings.Split(rel, "/") {
		if w.skipHidden(seg) {
			return false
		}
	}
	// Every ancestor directory with its trailing slash is a prefix of rel,
	// so testing rel alone covers the pruning Find applies while walking.
	if w.excluded(rel) {
		return false
	}
	for _, pattern := range opts.Patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

type walker struct {
	root string
	opts Options
	fsys fs.FS
}

func (w walker) walk(ctx context.Context, pattern string) ([]string, error) {
	var matches []string
	err := fs.WalkDir(w.fsys, ".", func(rel string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if rel == "." {
				return err
			}
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if w.skipHidden(d.Name()) || w.excluded(rel+"/") {
				return fs.SkipDir
			}
			return nil
		}
		if w.skipHidden(d.Name()) || w.excluded(rel) {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			matches = append(matches, w.join(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// join maps a slash-separated path relative to the walk root back onto root.
func (w walker) join(rel string) string {
	if path.Clean(filepath.ToSlash(w.root)) == "." {
		return filepath.FromSlash(rel)
	}
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

func (w walker) skipHidden(name string) bool {
	return !w.opts.IncludeHidden && strings.HasPrefix(name, ".")
}

// excluded reports whether p, a slash-separated path relative to the root,
// contains any exclude fragment. The root's own path never counts. A
// directory is tested with a trailing slash, so pruning it is exactly
// equivalent to testing every path beneath it.
func (w walker) excluded(p string) bool {
	return Excluded(p, w.opts.Exclude)
}

// Excluded reports whether the slash-separated path p contains any of the
// given substrings.
func Excluded(p string, exclude []string) bool {
	for _, x := range exclude {
		if x != "" && strings.Contains(p, x) {
			return true
		}
	}
	return false
}
