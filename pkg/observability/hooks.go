// Package observability provides hooks for instrumenting format runs.
//
// The formatter emits events at the start and end of discovery and of every
// file it processes. Nothing is recorded by default; the CLI registers hooks
// that feed its debug log, and tests register recorders.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFormatHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Format().OnFileStart(ctx, path)
//	// ... format the file ...
//	observability.Format().OnFileComplete(ctx, path, changed, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Format Hooks
// =============================================================================

// FormatHooks receives events from discovery and per-file formatting.
type FormatHooks interface {
	// Discovery events
	OnDiscoverComplete(ctx context.Context, root string, files int, duration time.Duration, err error)

	// File events
	OnFileStart(ctx context.Context, path string)
	OnFileComplete(ctx context.Context, path string, changed bool, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopFormatHooks is a no-op implementation of FormatHooks.
type NoopFormatHooks struct{}

func (NoopFormatHooks) OnDiscoverComplete(context.Context, string, int, time.Duration, error) {}
func (NoopFormatHooks) OnFileStart(context.Context, string)                                   {}
func (NoopFormatHooks) OnFileComplete(context.Context, string, bool, time.Duration, error)    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	formatHooks FormatHooks = NoopFormatHooks{}
	hooksMu     sync.RWMutex
)

// SetFormatHooks registers custom format hooks.
// This should be called once at application startup before any formatting.
func SetFormatHooks(h FormatHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		formatHooks = h
	}
}

// Format returns the registered format hooks.
func Format() FormatHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return formatHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	formatHooks = NoopFormatHooks{}
}
