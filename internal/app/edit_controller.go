package app

import (
	"strings"
	"time"

	"notes/internal/client"
	"notes/internal/types"
)

// EditController holds the state of the edit view for one note.
type EditController struct {
	gen      int
	id       types.NoteID
	loading  bool
	loadErr  string
	note     *types.Note
	form     *noteForm
	deleting bool
	preview  bool
}

func NewEditController(gen int, id types.NoteID) *EditController {
	return &EditController{gen: gen, id: id, loading: true}
}

// ApplyLoaded stores the fetched note. A note without an id keeps the id
// from the route.
func (c *EditController) ApplyLoaded(note *types.Note, err error) {
	c.loading = false
	if err != nil {
		c.loadErr = client.ErrorMessage(err, "Failed to load note.")
		return
	}
	loaded := types.Note{ID: c.id}
	if note != nil {
		loaded = *note
		if loaded.ID.IsZero() {
			loaded.ID = c.id
		}
	}
	c.note = &loaded
	c.form = newNoteForm(loaded.Draft(), "Save")
}

// ApplySaved refreshes the cached note from the server response, falling
// back to the submitted draft and the current time.
func (c *EditController) ApplySaved(updated *types.Note, draft types.NoteDraft, now time.Time) {
	if c.note == nil {
		c.note = &types.Note{ID: c.id}
	}
	c.note.Title = draft.Title
	c.note.Content = draft.Content
	c.note.UpdatedAt = types.TimestampFromTime(now)
	if updated == nil {
		return
	}
	if updated.Title != "" {
		c.note.Title = updated.Title
	}
	if updated.Content != "" {
		c.note.Content = updated.Content
	}
	if !updated.UpdatedAt.IsZero() {
		c.note.UpdatedAt = updated.UpdatedAt
	}
}

func (c *EditController) Ready() bool {
	return !c.loading && c.loadErr == "" && c.form != nil
}

func (c *EditController) Title() string {
	if c.note == nil {
		return types.Note{}.DisplayTitle()
	}
	return c.note.DisplayTitle()
}

func (c *EditController) Content() string {
	if c.form != nil {
		return c.form.Draft().Content
	}
	if c.note != nil {
		return c.note.Content
	}
	return ""
}

func (c *EditController) View(width int, spinner string) string {
	action := buttonStyle.Render("[ctrl+d] Delete")
	if c.deleting {
		action = noteDeletingStyle.Render("Deleting...")
	} else if c.loading {
		action = buttonDisabledStyle.Render("[ctrl+d] Delete")
	}
	lines := []string{
		spread(headerStyle.Render("Edit note"), action, width),
		subtitleStyle.Render("← Back to list (esc)"),
		"",
	}
	switch {
	case c.loading:
		lines = append(lines, activityStyle.Render(spinner+" Loading note..."))
	case c.loadErr != "":
		lines = append(lines, errorPanelStyle.Render(strings.Join([]string{
			errorTitleStyle.Render("Couldn't load note"),
			truncateToWidth(c.loadErr, max(1, width-4)),
			buttonStyle.Render("[enter] Back to list"),
		}, "\n")))
	case c.form != nil:
		preview := ""
		if c.preview {
			preview = panelStyle.Render(RenderMarkdown(c.Content(), max(minFormInputWidth, width-formHorizontalTrim)))
		}
		lines = append(lines, c.form.View(width, preview))
	}
	return strings.Join(lines, "\n")
}
