// Package observability provides hooks for progress reporting and logging.
//
// This package enables optional instrumentation without coupling the
// collector or the HTTP client to a particular front end. The CLI registers
// hooks at startup to drive its spinner and debug log; library code only
// emits events.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetCollectorHooks(&spinnerHooks{})
//	observability.SetHTTPHooks(&logHooks{})
//
// Libraries call hooks to emit events:
//
//	observability.Collector().OnScanStart(ctx, repo)
//	// ... scan ...
//	observability.Collector().OnScanComplete(ctx, repo, len(counts), observability.OutcomeOK, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// Outcome classifies how a repository scan ended.
type Outcome string

const (
	// OutcomeOK means pagination ran to a short or empty page.
	OutcomeOK Outcome = "ok"

	// OutcomeSkipped means the repository was missing or not accessible.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means a transport error stopped the scan early.
	OutcomeFailed Outcome = "failed"
)

// Repository sources reported by enumerate events.
const (
	SourceOwned       = "owned"
	SourceContributed = "contributed"
)

// =============================================================================
// Collector Hooks
// =============================================================================

// CollectorHooks receives events from the email collector.
type CollectorHooks interface {
	// Repository enumeration events
	OnEnumerateStart(ctx context.Context, source, username string)
	OnEnumerateComplete(ctx context.Context, source, username string, repos int, err error)

	// Per-repository commit scan events
	OnScanStart(ctx context.Context, repo string)
	OnScanComplete(ctx context.Context, repo string, emails int, outcome Outcome, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCollectorHooks is a no-op implementation of CollectorHooks.
type NoopCollectorHooks struct{}

func (NoopCollectorHooks) OnEnumerateStart(context.Context, string, string)                    {}
func (NoopCollectorHooks) OnEnumerateComplete(context.Context, string, string, int, error)     {}
func (NoopCollectorHooks) OnScanStart(context.Context, string)                                 {}
func (NoopCollectorHooks) OnScanComplete(context.Context, string, int, Outcome, time.Duration) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	collectorHooks CollectorHooks = NoopCollectorHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetCollectorHooks registers custom collector hooks.
// This should be called once at startup before any collection runs.
func SetCollectorHooks(h CollectorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		collectorHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Collector returns the registered collector hooks.
func Collector() CollectorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return collectorHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	collectorHooks = NoopCollectorHooks{}
	httpHooks = NoopHTTPHooks{}
}
