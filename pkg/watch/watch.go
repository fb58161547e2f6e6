// Package watch reformats files as they change on disk.
//
// A [Watcher] subscribes to every directory discovery would descend into
// and queues each created or written file that discovery would select.
// Queued files are formatted in one batch after a short quiet period, using
// the same [rewrite.Runner] as a one-shot run. Already formatted files are
// never rewritten, so the watcher's own writes settle after one pass.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/mffmt/pkg/discover"
	"github.com/matzehuels/mffmt/pkg/errors"
	"github.com/matzehuels/mffmt/pkg/rewrite"
)

// DefaultDelay is the quiet period between the last event and a batch.
const DefaultDelay = 100 * time.Millisecond

// Watcher reformats matching files under one root directory.
type Watcher struct {
	root   string
	opts   discover.Options
	runner *rewrite.Runner
	logger *log.Logger
	delay  time.Duration
	ready  chan struct{}
}

// New creates a watcher for root. A nil logger uses log.Default().
func New(root string, opts discover.Options, runner *rewrite.Runner, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		root:   root,
		opts:   opts.WithDefaults(),
		runner: runner,
		logger: logger,
		delay:  DefaultDelay,
		ready:  make(chan struct{}),
	}
}

// SetDelay changes the quiet period. Non-positive values are ignored.
func (w *Watcher) SetDelay(d time.Duration) {
	if d > 0 {
		w.delay = d
	}
}

// Ready is closed once every directory is subscribed.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled and returns ctx's error.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "start watcher")
	}
	defer fsw.Close()

	if err := w.subscribe(ctx, fsw); err != nil {
		return err
	}
	close(w.ready)
	w.logger.Infof("Watching %s", w.root)

	pending := make(map[string]struct{})
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fsw.Events:
			if !ok {
				return ctx.Err()
			}
			w.handle(ctx, fsw, ev, pending)
			if len(pending) > 0 && fire == nil {
				fire = time.After(w.delay)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return ctx.Err()
			}
			w.logger.Warn("watch error", "err", err)
		case <-fire:
			fire = nil
			w.flush(ctx, pending)
		}
	}
}

// subscribe adds every discoverable directory. Directories that vanish or
// cannot be watched are logged and skipped.
func (w *Watcher) subscribe(ctx context.Context, fsw *fsnotify.Watcher) error {
	dirs, err := discover.Dirs(ctx, w.root, w.opts)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			w.logger.Warn("cannot watch directory", "dir", dir, "err", err)
		}
	}
	w.logger.Debug("watching directories", "root", w.root, "count", len(dirs))
	return nil
}

func (w *Watcher) handle(ctx context.Context, fsw *fsnotify.Watcher, ev fsnotify.Event, pending map[string]struct{}) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}

	// Events under a watched "." arrive as "./name".
	name := filepath.Clean(ev.Name)

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			// Files may land in a new directory before it is subscribed.
			if err := w.subscribe(ctx, fsw); err != nil {
				w.logger.Warn("rescan failed", "err", err)
				return
			}
			files, err := discover.Find(ctx, name, w.opts)
			if err != nil {
				return
			}
			for _, f := range files {
				if discover.Match(w.root, f, w.opts) {
					pending[f] = struct{}{}
				}
			}
			return
		}
	}

	if discover.Match(w.root, name, w.opts) {
		pending[name] = struct{}{}
	}
}

func (w *Watcher) flush(ctx context.Context, pending map[string]struct{}) {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
		delete(pending, p)
	}
	sort.Strings(paths)

	// Deleted or renamed files show up as read failures; drop them quietly.
	existing := paths[:0]
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return
	}

	_, _ = w.runner.Run(ctx, existing, rewrite.Options{Mode: rewrite.Write, SkipUnchanged: true})
}
