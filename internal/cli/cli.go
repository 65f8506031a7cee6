package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/emailfinder/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "emailfinder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	// Stdout receives results; Stderr receives status lines, the spinner and logs.
	Stdout io.Writer
	Stderr io.Writer

	// LookupEnv reads environment variables. Tests replace it.
	LookupEnv func(string) (string, bool)

	// DotEnv lists the .env files loaded before the environment is read.
	DotEnv []string

	verbose bool
}

// New creates a new CLI instance writing results to stdout and everything
// else to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(stderr, level),
		Stdout:    stdout,
		Stderr:    stderr,
		LookupEnv: os.LookupEnv,
		DotEnv:    []string{".env"},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Verbose reports whether --verbose was given.
func (c *CLI) Verbose() bool {
	return c.verbose
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   appName + " <username>",
		Short: "Find email addresses in a GitHub user's commit history",
		Long: `emailfinder scans the commits a GitHub user authored in their public
repositories and lists the email addresses found, ranked by how often they occur.

GitHub's noreply addresses are ignored. With --contributions, repositories the
user opened merged pull requests against are scanned too; this is a best-effort
sample taken from a single page of search results.

A token is read from --token, then GITHUB_TOKEN (a .env file in the working
directory is honoured), then the config file. Without one, GitHub's anonymous
rate limit applies.

Examples:
  emailfinder octocat
  emailfinder octocat -c --format json
  GITHUB_TOKEN=ghp_xxx emailfinder octocat --delay 1s`,
		Version:      buildinfo.Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		// main prints errors itself, with the user-facing message.
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), args[0], cfg)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.register(root)

	return root
}
