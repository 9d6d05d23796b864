package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"notes/internal/app"
	"notes/internal/logging"
	"notes/internal/toast"
)

type UICommand struct {
	cli  *cli
	open string
}

func NewUICommand(c *cli) *UICommand {
	return &UICommand{cli: c}
}

func (c *UICommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive notes UI",
		Example: `notes ui
notes ui --open /new
notes ui --open /notes/42`,
		Args: cobra.NoArgs,
		RunE: runWith("ui", c.run),
	}
	c.bindFlags(cmd)
	return cmd
}

func (c *UICommand) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.open, "open", "/", "route to open: /, /new or /notes/<id>")
}

func (c *UICommand) run(ctx context.Context, _ *cobra.Command, _ []string) error {
	s, err := c.cli.loadSettings()
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs go to a file.
	logger, closer, err := c.cli.openLog(c.cli.logLevel(s))
	if err != nil || logger == nil {
		logger = logging.Nop()
		closer = nil
	}
	if closer != nil {
		defer closeQuietly(closer)
	}

	queue := toast.NewQueue(toast.WithDefaultTimeout(s.Config.ToastTimeout()))
	logger.Info("ui starting", logging.F("api_base", s.APIBase), logging.F("api_url", s.APIURL))
	return c.cli.runUI(ctx, app.Options{
		API:            c.cli.newClient(s, logger),
		Toasts:         queue,
		Logger:         logger,
		APIBase:        s.APIBase,
		RequestTimeout: s.Config.RequestTimeout(),
		InitialRoute:   app.ParseRoute(c.open),
	})
}

func closeQuietly(closer io.Closer) {
	_ = closer.Close()
}
