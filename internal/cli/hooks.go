package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mffmt/pkg/observability"
)

// logHooks forwards format events to the debug log.
type logHooks struct {
	observability.NoopFormatHooks
	logger *log.Logger
}

// NewLogHooks returns format hooks that log discovery and per-file timings
// at debug level.
func NewLogHooks(l *log.Logger) observability.FormatHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnDiscoverComplete(_ context.Context, root string, files int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("discovery failed", "root", root, "err", err)
		return
	}
	h.logger.Debug("discovered files", "root", root, "count", files, "elapsed", d.Round(time.Microsecond))
}

func (h *logHooks) OnFileComplete(_ context.Context, path string, changed bool, d time.Duration, err error) {
	if err != nil {
		return
	}
	if !changed {
		h.logger.Debug("already formatted", "path", path)
	}
}
