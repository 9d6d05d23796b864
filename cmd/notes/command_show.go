package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notes/internal/app"
	"notes/internal/types"
)

const defaultShowWidth = 80

type ShowCommand struct {
	cli   *cli
	raw   bool
	width int
}

func NewShowCommand(c *cli) *ShowCommand {
	return &ShowCommand{cli: c}
}

func (c *ShowCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Long:  "Print a note's title and content. Content is rendered as markdown unless --raw is set.",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith("show", c.run),
	}
	cmd.Flags().BoolVar(&c.raw, "raw", false, "print content without markdown rendering")
	cmd.Flags().IntVar(&c.width, "width", defaultShowWidth, "wrap width for rendered content")
	return cmd
}

func (c *ShowCommand) run(ctx context.Context, _ *cobra.Command, args []string) error {
	id := types.NoteID(strings.TrimSpace(args[0]))
	if id.IsZero() {
		return errors.New("note id is required")
	}
	api, _, err := c.cli.connect()
	if err != nil {
		return err
	}
	note, err := api.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("empty response from server")
	}

	if note.ID.IsZero() {
		note.ID = id
	}

	out := c.cli.stdout
	fmt.Fprintln(out, note.DisplayTitle())
	meta := []string{"id: " + note.ID.String()}
	if !note.UpdatedAt.IsZero() {
		meta = append(meta, "updated: "+string(note.UpdatedAt))
	} else if !note.CreatedAt.IsZero() {
		meta = append(meta, "created: "+string(note.CreatedAt))
	}
	fmt.Fprintln(out, strings.Join(meta, "  "))
	fmt.Fprintln(out)
	if c.raw {
		content := note.Content
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		_, err = fmt.Fprint(out, content)
		return err
	}
	width := c.width
	if width <= 0 {
		width = defaultShowWidth
	}
	_, err = fmt.Fprintln(out, app.RenderMarkdown(note.Content, width))
	return err
}
