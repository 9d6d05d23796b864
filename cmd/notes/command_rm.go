package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"notes/internal/types"
)

const maxConcurrentDeletes = 4

type RMCommand struct {
	cli *cli
}

func NewRMCommand(c *cli) *RMCommand {
	return &RMCommand{cli: c}
}

func (c *RMCommand) Command() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete one or more notes",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runWith("rm", c.run),
	}
}

func (c *RMCommand) run(ctx context.Context, _ *cobra.Command, args []string) error {
	ids := make([]types.NoteID, 0, len(args))
	for _, arg := range args {
		id := types.NoteID(strings.TrimSpace(arg))
		if id.IsZero() {
			return errors.New("note id is required")
		}
		ids = append(ids, id)
	}

	api, _, err := c.cli.connect()
	if err != nil {
		return err
	}

	// Every id is attempted; a failure does not cancel the others.
	results := make([]error, len(ids))
	var group errgroup.Group
	group.SetLimit(maxConcurrentDeletes)
	for i, id := range ids {
		group.Go(func() error {
			_, err := api.DeleteNote(ctx, id)
			results[i] = err
			return nil
		})
	}
	_ = group.Wait()

	var failed []error
	for i, id := range ids {
		if err := results[i]; err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", id, err))
			continue
		}
		fmt.Fprintf(c.cli.stdout, "deleted %s\n", id)
	}
	return errors.Join(failed...)
}
