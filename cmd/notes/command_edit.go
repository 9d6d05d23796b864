package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notes/internal/notes"
	"notes/internal/types"
)

type EditCommand struct {
	cli     *cli
	title   string
	content string
}

func NewEditCommand(c *cli) *EditCommand {
	return &EditCommand{cli: c}
}

func (c *EditCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a note's title or content",
		Long:  "Fetch the note, replace the fields given as flags, validate and save it.",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith("edit", c.run),
	}
	cmd.Flags().StringVar(&c.title, "title", "", "new title")
	cmd.Flags().StringVar(&c.content, "content", "", "new content, or - to read stdin")
	return cmd
}

func (c *EditCommand) run(ctx context.Context, cmd *cobra.Command, args []string) error {
	id := types.NoteID(strings.TrimSpace(args[0]))
	if id.IsZero() {
		return errors.New("note id is required")
	}
	titleSet := cmd.Flags().Changed("title")
	contentSet := cmd.Flags().Changed("content")
	if !titleSet && !contentSet {
		return errors.New("nothing to change: pass --title and/or --content")
	}

	api, _, err := c.cli.connect()
	if err != nil {
		return err
	}
	current, err := api.GetNote(ctx, id)
	if err != nil {
		return err
	}
	draft := types.NoteDraft{}
	if current != nil {
		draft = current.Draft()
	}
	if titleSet {
		draft.Title = c.title
	}
	if contentSet {
		content, err := readContent(c.content, c.cli.stdin)
		if err != nil {
			return err
		}
		draft.Content = content
	}
	if err := notes.Validate(draft).Err(); err != nil {
		return err
	}

	if _, err := api.UpdateNote(ctx, id, notes.PrepareDraft(draft)); err != nil {
		return err
	}
	fmt.Fprintf(c.cli.stdout, "saved %s\n", id)
	return nil
}
