package rewrite

import (
	"context"

	"github.com/charmbracelet/log"
)

// Reporter receives each file's result as soon as it is known.
type Reporter interface {
	Report(Result)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Result)

// Report calls f(r).
func (f ReporterFunc) Report(r Result) { f(r) }

// Runner formats batches of files one at a time.
type Runner struct {
	reporter Reporter
	logger   *log.Logger
}

// NewRunner creates a runner. A nil reporter discards results; a nil
// logger uses log.Default().
func NewRunner(reporter Reporter, logger *log.Logger) *Runner {
	if reporter == nil {
		reporter = ReporterFunc(func(Result) {})
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{reporter: reporter, logger: logger}
}

// Run formats each path in order and returns all results. A failing file
// is reported and skipped; only cancellation of ctx stops the batch early,
// in which case the results so far are returned with ctx's error.
func (r *Runner) Run(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := File(ctx, path, opts)
		if res.Err != nil {
			r.logger.Debug("format failed", "path", path, "err", res.Err)
		} else {
			r.logger.Debug("formatted", "path", path, "changed", res.Changed, "elapsed", res.Duration)
		}
		r.reporter.Report(res)
		results = append(results, res)
	}
	return results, nil
}

// Summary counts the outcomes in a batch.
type Summary struct {
	Total   int
	Changed int
	Failed  int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Changed:
			s.Changed++
		}
	}
	return s
}
