package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notes/internal/notes"
	"notes/internal/types"
)

type AddCommand struct {
	cli     *cli
	title   string
	content string
}

func NewAddCommand(c *cli) *AddCommand {
	return &AddCommand{cli: c}
}

func (c *AddCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Example: `notes add --title "Groceries" --content "milk, eggs"
cat draft.md | notes add --title "Draft" --content -`,
		Args: cobra.NoArgs,
		RunE: runWith("add", c.run),
	}
	cmd.Flags().StringVar(&c.title, "title", "", "note title")
	cmd.Flags().StringVar(&c.content, "content", "", "note content, or - to read stdin")
	return cmd
}

func (c *AddCommand) run(ctx context.Context, _ *cobra.Command, _ []string) error {
	content, err := readContent(c.content, c.cli.stdin)
	if err != nil {
		return err
	}
	draft := types.NoteDraft{Title: c.title, Content: content}
	if err := notes.Validate(draft).Err(); err != nil {
		return err
	}

	api, _, err := c.cli.connect()
	if err != nil {
		return err
	}
	created, err := api.CreateNote(ctx, notes.PrepareDraft(draft))
	if err != nil {
		return err
	}
	if created == nil || created.ID.IsZero() {
		fmt.Fprintln(c.cli.stdout, "created")
		return nil
	}
	fmt.Fprintln(c.cli.stdout, created.ID)
	return nil
}
