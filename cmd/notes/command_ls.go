package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"notes/internal/notes"
)

type LSCommand struct {
	cli    *cli
	asJSON bool
}

func NewLSCommand(c *cli) *LSCommand {
	return &LSCommand{cli: c}
}

func (c *LSCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notes, most recently updated first",
		Args:    cobra.NoArgs,
		RunE:    runWith("ls", c.run),
	}
	cmd.Flags().BoolVar(&c.asJSON, "json", false, "print notes as JSON")
	return cmd
}

func (c *LSCommand) run(ctx context.Context, _ *cobra.Command, _ []string) error {
	api, _, err := c.cli.connect()
	if err != nil {
		return err
	}
	list, err := api.ListNotes(ctx)
	if err != nil {
		return err
	}
	if c.asJSON {
		encoder := json.NewEncoder(c.cli.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes.SortForDisplay(list))
	}
	printNotes(c.cli.stdout, list)
	return nil
}
