package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/emailfinder/pkg/observability"
)

// scanHooks keeps the spinner message in step with the collector and logs
// per-repository results at debug level.
type scanHooks struct {
	observability.NoopCollectorHooks
	spinner *Spinner
	logger  *log.Logger
	scanned int
}

func (h *scanHooks) OnEnumerateStart(_ context.Context, source, username string) {
	switch source {
	case observability.SourceOwned:
		h.spinner.SetMessage(fmt.Sprintf("Finding repositories for %s...", username))
	case observability.SourceContributed:
		h.spinner.SetMessage(fmt.Sprintf("Finding repositories %s has contributed to...", username))
	}
}

func (h *scanHooks) OnEnumerateComplete(_ context.Context, source, username string, repos int, err error) {
	if err != nil {
		h.logger.Debug("repository enumeration incomplete", "source", source, "user", username, "repos", repos, "err", err)
		return
	}
	h.logger.Debug("repositories enumerated", "source", source, "user", username, "repos", repos)
}

func (h *scanHooks) OnScanStart(_ context.Context, repo string) {
	h.scanned++
	h.spinner.SetMessage(fmt.Sprintf("Scanning %s (%d)...", repo, h.scanned))
}

func (h *scanHooks) OnScanComplete(_ context.Context, repo string, emails int, outcome observability.Outcome, d time.Duration) {
	h.logger.Debug("repository scanned", "repo", repo, "emails", emails, "outcome", outcome, "took", d.Round(time.Millisecond))
}

// httpLogHooks logs every API round trip at debug level.
type httpLogHooks struct {
	observability.NoopHTTPHooks
	logger *log.Logger
}

func (h *httpLogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http", "method", method, "url", host+path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *httpLogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http failed", "method", method, "url", host+path, "err", err)
}

// installHooks registers the CLI hooks and returns a func restoring the
// no-op defaults.
func installHooks(spinner *Spinner, logger *log.Logger) func() {
	observability.SetCollectorHooks(&scanHooks{spinner: spinner, logger: logger})
	observability.SetHTTPHooks(&httpLogHooks{logger: logger})
	return observability.Reset
}
