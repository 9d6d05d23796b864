package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notes/internal/app"
	"notes/internal/config"
	"notes/internal/logging"
)

type commandWiring struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	loadSettings func() (settings, error)
	newClient    clientFactory
	runUI        uiRunner
	openLog      func(level logging.Level) (logging.Logger, io.Closer, error)
}

func defaultWiring() commandWiring {
	return commandWiring{
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		loadSettings: loadSettings,
		newClient:    newNotesClient,
		runUI:        app.Run,
		openLog:      openLogFile,
	}
}

// cli carries the wiring plus the persistent flags every subcommand sees.
type cli struct {
	commandWiring
	verbose bool
}

func buildRootCommand(w commandWiring) *cobra.Command {
	c := &cli{commandWiring: w}
	ui := NewUICommand(c)

	root := &cobra.Command{
		Use:   "notes",
		Short: "Browse and edit notes on a notes REST backend",
		Long: `notes is a terminal client for a notes REST backend.
Run it without arguments to open the interactive UI, or use the
subcommands below for scripting.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runWith("ui", ui.run),
	}
	root.SetIn(w.stdin)
	root.SetOut(w.stdout)
	root.SetErr(w.stderr)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output")
	ui.bindFlags(root)

	root.AddCommand(
		ui.Command(),
		NewLSCommand(c).Command(),
		NewShowCommand(c).Command(),
		NewAddCommand(c).Command(),
		NewEditCommand(c).Command(),
		NewRMCommand(c).Command(),
		NewConfigCommand(c).Command(),
	)
	return root
}

// runWith labels errors the way every command reports them.
func runWith(label string, fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return commandError(label, fn(ctx, cmd, args))
	}
}

func commandError(label string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s error: %w", label, err)
}

func (c *cli) logLevel(s settings) logging.Level {
	if c.verbose {
		return logging.Debug
	}
	return logging.ParseLevel(s.Config.LogLevel())
}

// connect resolves settings and builds a client that logs to stderr.
func (c *cli) connect() (commandClient, settings, error) {
	s, err := c.loadSettings()
	if err != nil {
		return nil, settings{}, err
	}
	logger := logging.New(c.stderr, c.logLevel(s))
	return c.newClient(s, logger), s, nil
}

func openLogFile(level logging.Level) (logging.Logger, io.Closer, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, nil, err
	}
	return logging.NewFile(path, level)
}
