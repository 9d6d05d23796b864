package app

import (
	"fmt"
	"strings"

	"notes/internal/client"
	"notes/internal/notes"
	"notes/internal/types"
)

const listRowHeight = 2

// ListController holds the state of the notes list view.
type ListController struct {
	gen      int
	loading  bool
	err      string
	notes    []types.Note
	deleting map[types.NoteID]bool
	selected int
	offset   int
}

func NewListController(gen int) *ListController {
	return &ListController{gen: gen, deleting: map[types.NoteID]bool{}}
}

func (c *ListController) StartLoad() {
	c.loading = true
	c.err = ""
}

func (c *ListController) ApplyLoaded(list []types.Note, err error) {
	c.loading = false
	if err != nil {
		c.err = client.ErrorMessage(err, "Failed to load notes.")
		return
	}
	c.err = ""
	c.notes = list
	c.clampSelection()
}

// Visible returns the notes in display order.
func (c *ListController) Visible() []types.Note {
	return notes.SortForDisplay(c.notes)
}

func (c *ListController) Selected() (types.Note, bool) {
	visible := c.Visible()
	if c.selected < 0 || c.selected >= len(visible) {
		return types.Note{}, false
	}
	return visible[c.selected], true
}

func (c *ListController) Move(delta int) {
	c.selected += delta
	c.clampSelection()
}

func (c *ListController) MoveTo(index int) {
	c.selected = index
	c.clampSelection()
}

func (c *ListController) clampSelection() {
	n := len(c.notes)
	if c.selected >= n {
		c.selected = n - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

func (c *ListController) IsDeleting(id types.NoteID) bool {
	return c.deleting[id]
}

// BeginDelete marks id as being deleted. It reports false when a delete for
// the same row is already running.
func (c *ListController) BeginDelete(id types.NoteID) bool {
	if id.IsZero() || c.deleting[id] {
		return false
	}
	c.deleting[id] = true
	return true
}

// FinishDelete clears the row flag and drops the note on success.
func (c *ListController) FinishDelete(id types.NoteID, err error) {
	delete(c.deleting, id)
	if err != nil {
		return
	}
	c.notes = notes.Remove(c.notes, id)
	c.clampSelection()
}

func (c *ListController) View(width, height int, spinner string) string {
	lines := []string{}
	meta := fmt.Sprintf("%d total", len(c.notes))
	if c.loading {
		meta = "Loading..."
	}
	lines = append(lines, spread(headerStyle.Render("All notes"), statusStyle.Render(meta), width))

	if c.err != "" {
		panel := errorPanelStyle.Render(strings.Join([]string{
			errorTitleStyle.Render("Couldn't load notes"),
			truncateToWidth(c.err, max(1, width-4)),
			buttonStyle.Render("[r] Try again"),
		}, "\n"))
		lines = append(lines, "", panel)
	}

	switch {
	case c.loading:
		lines = append(lines, "", activityStyle.Render(spinner+" Loading notes..."))
	case len(c.notes) == 0 && c.err == "":
		lines = append(lines,
			"",
			noteTitleStyle.Render("No notes yet"),
			mutedStyle.Render("Create your first note to get started."),
			buttonStyle.Render("[n] Create a note"),
		)
	case len(c.notes) > 0:
		lines = append(lines, "")
		lines = append(lines, c.rows(width, height-len(lines))...)
	}
	return strings.Join(lines, "\n")
}

func (c *ListController) rows(width, height int) []string {
	visible := c.Visible()
	capacity := len(visible)
	if height > 0 {
		capacity = max(1, height/listRowHeight)
	}
	if c.selected < c.offset {
		c.offset = c.selected
	}
	if c.selected >= c.offset+capacity {
		c.offset = c.selected - capacity + 1
	}
	c.offset = max(0, min(c.offset, max(0, len(visible)-capacity)))

	end := min(len(visible), c.offset+capacity)
	textWidth := max(1, width-2)
	out := make([]string, 0, (end-c.offset)*listRowHeight)
	for i := c.offset; i < end; i++ {
		note := visible[i]
		marker := "  "
		if i == c.selected {
			marker = "› "
		}
		title := fitPlain(note.DisplayTitle(), textWidth)
		titleLine := noteTitleStyle.Render(title)
		if c.deleting[note.ID] {
			titleLine = spread(titleLine, noteDeletingStyle.Render("Deleting..."), textWidth)
		}
		if i == c.selected {
			titleLine = selectedStyle.Render(padToWidth(titleLine, textWidth))
		}
		snippet := fitPlain(notes.Snippet(note.Content, notes.DefaultSnippetLength), textWidth)
		out = append(out, marker+titleLine, "  "+noteSnippetStyle.Render(snippet))
	}
	return out
}

func deleteConfirmMessage(note types.Note) string {
	return "Delete \"" + note.DisplayTitle() + "\"? This cannot be undone."
}
