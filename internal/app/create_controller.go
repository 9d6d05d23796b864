package app

import (
	"strings"

	"notes/internal/types"
)

// CreateController holds the state of the new-note view.
type CreateController struct {
	gen  int
	form *noteForm
}

func NewCreateController(gen int) *CreateController {
	return &CreateController{gen: gen, form: newNoteForm(types.NoteDraft{}, "Create")}
}

func (c *CreateController) View(width int) string {
	lines := []string{
		headerStyle.Render("New note"),
		subtitleStyle.Render("Add a title and some content."),
		"",
		c.form.View(width, ""),
	}
	return strings.Join(lines, "\n")
}
