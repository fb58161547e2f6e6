package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mffmt/pkg/config"
	"github.com/matzehuels/mffmt/pkg/discover"
	"github.com/matzehuels/mffmt/pkg/errors"
	pkgio "github.com/matzehuels/mffmt/pkg/io"
	"github.com/matzehuels/mffmt/pkg/layout"
	"github.com/matzehuels/mffmt/pkg/rewrite"
	"github.com/matzehuels/mffmt/pkg/watch"
)

const configFileName = config.FileName

// stdinArg is the argument that selects standard input.
const stdinArg = "-"

// stdinName labels standard input in result lines.
const stdinName = "<stdin>"

// formatOpts holds the command-line flags for the root command.
type formatOpts struct {
	check         bool   // report only, exit non-zero on changes
	stdout        bool   // print formatted output, write nothing
	configPath    string // explicit config file
	includeHidden bool   // search dot-prefixed entries
	watch         bool   // keep running and reformat files as they change
}

func (o formatOpts) mode() rewrite.Mode {
	switch {
	case o.check:
		return rewrite.Check
	case o.stdout:
		return rewrite.Stdout
	}
	return rewrite.Write
}

// runFormat discovers files under args (or the working directory) and
// formats each one.
func (c *CLI) runFormat(ctx context.Context, stdin io.Reader, args []string, opts formatOpts) error {
	logger := loggerFromContext(ctx)

	if len(args) == 1 && args[0] == stdinArg {
		return c.formatStdin(stdin, opts)
	}

	cfg, err := config.Load(".", opts.configPath)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debugf("Using config %s", cfg.Path)
	}
	discovery := cfg.Discovery()
	if opts.includeHidden {
		discovery.IncludeHidden = true
	}

	paths, err := collectPaths(ctx, args, discovery)
	if err != nil {
		return err
	}
	if len(paths) == 0 && !opts.watch {
		logger.Warn("No matching files found")
		return nil
	}

	prog := newProgress(logger)
	runner := rewrite.NewRunner(c.reporter(opts.mode()), logger)
	results, err := runner.Run(ctx, paths, rewrite.Options{Mode: opts.mode()})
	if err != nil {
		return err
	}

	sum := rewrite.Summarize(results)
	switch opts.mode() {
	case rewrite.Check:
		prog.done("Checked %d files, %d need formatting, %d failed", sum.Total, sum.Changed, sum.Failed)
		if sum.Changed > 0 || sum.Failed > 0 {
			return fmt.Errorf("%d of %d files are not formatted", sum.Changed+sum.Failed, sum.Total)
		}
	case rewrite.Stdout:
		if sum.Failed > 0 {
			return fmt.Errorf("failed to format %d of %d files", sum.Failed, sum.Total)
		}
	default:
		// A batch with failures still succeeds; each failure was already reported.
		prog.done("Formatted %d files, %d changed, %d failed", sum.Total-sum.Failed, sum.Changed, sum.Failed)
	}

	if opts.watch {
		return c.runWatch(ctx, args, discovery)
	}
	return nil
}

// runWatch watches every directory argument until ctx is cancelled.
func (c *CLI) runWatch(ctx context.Context, args []string, opts discover.Options) error {
	logger := loggerFromContext(ctx)
	if len(args) == 0 {
		args = []string{"."}
	}

	g, ctx := errgroup.WithContext(ctx)
	runner := rewrite.NewRunner(c.watchReporter(), logger)
	watched := 0
	for _, arg := range args {
		if info, err := os.Stat(arg); err != nil || !info.IsDir() {
			logger.Debugf("Not watching %s: not a directory", arg)
			continue
		}
		w := watch.New(arg, opts, runner, logger)
		g.Go(func() error { return w.Run(ctx) })
		watched++
	}
	if watched == 0 {
		return errors.New(errors.ErrCodeInvalidPath, "--watch needs at least one directory")
	}
	return g.Wait()
}

// formatStdin formats one document from r to stdout. It always behaves like
// --stdout; modes that need files on disk are rejected.
func (c *CLI) formatStdin(r io.Reader, opts formatOpts) error {
	if opts.check || opts.watch {
		return errors.New(errors.ErrCodeInvalidPath, "%q cannot be combined with --check or --watch", stdinArg)
	}

	doc, err := pkgio.ReadJSON(r)
	var out []byte
	if err == nil {
		out, err = layout.Render(doc)
	}
	if err != nil {
		c.err.failed(stdinName, err)
		return fmt.Errorf("failed to format %s", stdinName)
	}
	c.out.contents(out)
	return nil
}

// collectPaths expands the command-line arguments into files to format.
// Directories are searched with the discovery options; anything else is
// passed through so that a missing file is reported like any other
// per-file failure.
func collectPaths(ctx context.Context, args []string, opts discover.Options) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var paths []string
	for _, arg := range args {
		if err := errors.ValidatePath(arg); err != nil {
			return nil, err
		}
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := discover.Find(ctx, arg, opts)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

// watchReporter prints only files the watcher rewrote or failed on; its own
// writes come back as events for already formatted files.
func (c *CLI) watchReporter() rewrite.Reporter {
	return rewrite.ReporterFunc(func(r rewrite.Result) {
		switch {
		case r.Err != nil:
			c.out.failed(r.Path, r.Err)
		case r.Changed:
			c.out.formatted(r.Path)
		}
	})
}

// reporter prints one line per finished file.
func (c *CLI) reporter(mode rewrite.Mode) rewrite.Reporter {
	return rewrite.ReporterFunc(func(r rewrite.Result) {
		switch mode {
		case rewrite.Stdout:
			if r.Err != nil {
				c.err.failed(r.Path, r.Err)
				return
			}
			c.out.contents(r.Formatted)
		case rewrite.Check:
			if r.Err != nil {
				c.out.failed(r.Path, r.Err)
				return
			}
			if r.Changed {
				c.out.wouldReformat(r.Path)
			}
		default:
			if r.Err != nil {
				c.out.failed(r.Path, r.Err)
				return
			}
			c.out.formatted(r.Path)
		}
	})
}
