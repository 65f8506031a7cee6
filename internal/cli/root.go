package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/emailfinder/pkg/config"
	"github.com/matzehuels/emailfinder/pkg/emails"
	"github.com/matzehuels/emailfinder/pkg/httputil"
	"github.com/matzehuels/emailfinder/pkg/integrations/github"
)

// rootFlags holds the command-line overrides of config values.
type rootFlags struct {
	token         string
	contributions bool
	format        string
	configPath    string
	apiURL        string
	delay         time.Duration
	timeout       time.Duration
	retries       int
}

func (f *rootFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.token, "token", "t", "", "GitHub personal access token (default $"+config.TokenEnv+")")
	fl.BoolVarP(&f.contributions, "contributions", "c", false, "also scan repositories the user contributed to (best-effort)")
	fl.StringVarP(&f.format, "format", "f", config.DefaultFormat, "output format: table, plain, json")
	fl.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fl.StringVar(&f.apiURL, "api-url", config.DefaultAPIURL, "GitHub API base URL")
	fl.DurationVar(&f.delay, "delay", config.DefaultPageDelay, "minimum delay between API requests (0 disables pacing, otherwise at least "+config.MinPageDelay.String()+")")
	fl.DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "per-request timeout")
	fl.IntVar(&f.retries, "retries", config.DefaultRetries, "attempts per request (1 disables retries)")
}

// overlay copies flags the user set explicitly onto cfg.
func (f *rootFlags) overlay(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("token") {
		cfg.Token = f.token
	}
	if changed("contributions") {
		cfg.Contributions = f.contributions
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("api-url") {
		cfg.APIURL = f.apiURL
	}
	if changed("delay") {
		cfg.PageDelay = f.delay
	}
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if changed("retries") {
		cfg.Retries = f.retries
	}
}

// loadConfig resolves settings: flags over environment over config file over
// defaults.
func (c *CLI) loadConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	if err := config.LoadDotEnv(c.DotEnv...); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(c.LookupEnv)
	f.overlay(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// run scans username's repositories and renders the ranked addresses.
func (c *CLI) run(ctx context.Context, username string, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	client := github.NewClient(github.Config{
		Token:   cfg.Token,
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Retry:   httputil.RetryPolicy{Attempts: cfg.Retries, Delay: httputil.DefaultRetryPolicy.Delay},
	})
	if err := client.ValidateOwner(username); err != nil {
		return err
	}
	render, err := rendererFor(cfg.Format)
	if err != nil {
		return err
	}

	if cfg.Token == "" {
		printWarning(c.Stderr, "No GitHub token provided. Rate limits may apply.")
	}

	collector := emails.NewCollector(client, emails.Options{
		Pacer:  httputil.NewPacer(cfg.PageDelay),
		Logger: logger,
	})
	logger.Debug("configured client", "api", client.BaseURL(), "delay", cfg.PageDelay, "timeout", cfg.Timeout, "retries", cfg.Retries)

	spinner := newSpinnerWithContext(ctx, c.Stderr, fmt.Sprintf("Finding repositories for %s...", username))
	defer installHooks(spinner, logger)()

	prog := newProgress(logger)
	spinner.Start()
	agg, err := collector.FindEmails(ctx, username, cfg.Contributions)
	if err != nil {
		spinner.Stop()
		return err
	}

	entries := agg.Ranked()
	spinner.StopWithSuccess(fmt.Sprintf("Found %d addresses for %s", len(entries), username))
	prog.done("Scan complete")
	return render(c.Stdout, username, entries)
}
