package app

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"notes/internal/notes"
	"notes/internal/types"
)

const (
	titleInputLimit    = 200
	contentRows        = 10
	minFormInputWidth  = 20
	formHorizontalTrim = 4
)

type formField int

const (
	fieldTitle formField = iota
	fieldContent
)

// noteForm is the title/content editor shared by the create and edit views.
// Field errors only show once a field has been touched (left or submitted).
type noteForm struct {
	title       textinput.Model
	content     textarea.Model
	focus       formField
	touched     map[string]bool
	serverError string
	busy        bool
	submitLabel string
}

func newNoteForm(initial types.NoteDraft, submitLabel string) *noteForm {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "e.g., Meeting notes"
	title.CharLimit = titleInputLimit
	title.SetValue(initial.Title)

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.MaxHeight = 0
	content.SetHeight(contentRows)
	content.SetValue(initial.Content)

	return &noteForm{
		title:       title,
		content:     content,
		touched:     map[string]bool{},
		submitLabel: submitLabel,
	}
}

// Focus puts the cursor in the title field.
func (f *noteForm) Focus() tea.Cmd {
	f.focus = fieldTitle
	f.content.Blur()
	return f.title.Focus()
}

func (f *noteForm) Draft() types.NoteDraft {
	return types.NoteDraft{Title: f.title.Value(), Content: f.content.Value()}
}

func (f *noteForm) Errors() notes.FieldErrors {
	return notes.Validate(f.Draft())
}

func (f *noteForm) CanSubmit() bool {
	return !f.busy && f.Errors().OK()
}

func (f *noteForm) visibleError(field string) string {
	if !f.touched[field] {
		return ""
	}
	return f.Errors()[field]
}

func (f *noteForm) touchAll() {
	f.touched[notes.FieldTitle] = true
	f.touched[notes.FieldContent] = true
}

// Submit marks every field touched and returns the prepared draft when it
// validates.
func (f *noteForm) Submit() (types.NoteDraft, bool) {
	f.touchAll()
	if f.busy || !f.Errors().OK() {
		return types.NoteDraft{}, false
	}
	return notes.PrepareDraft(f.Draft()), true
}

func (f *noteForm) SetBusy(busy bool) {
	f.busy = busy
	if busy {
		f.serverError = ""
	}
}

func (f *noteForm) SetServerError(message string) {
	f.serverError = strings.TrimSpace(message)
}

// ToggleFocus moves to the other field. Leaving a field touches it.
func (f *noteForm) ToggleFocus() tea.Cmd {
	if f.focus == fieldTitle {
		f.touched[notes.FieldTitle] = true
		f.title.Blur()
		f.focus = fieldContent
		return f.content.Focus()
	}
	f.touched[notes.FieldContent] = true
	f.content.Blur()
	f.focus = fieldTitle
	return f.title.Focus()
}

func (f *noteForm) Update(msg tea.Msg) tea.Cmd {
	if f.busy {
		return nil
	}
	var cmd tea.Cmd
	switch f.focus {
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	default:
		f.title, cmd = f.title.Update(msg)
	}
	return cmd
}

func (f *noteForm) SetWidth(width int) {
	inner := max(minFormInputWidth, width-formHorizontalTrim)
	f.title.SetWidth(inner)
	f.content.SetWidth(inner)
}

func (f *noteForm) View(width int, preview string) string {
	lines := []string{}
	if f.serverError != "" {
		lines = append(lines, errorPanelStyle.Render(truncateToWidth(f.serverError, max(1, width-4))), "")
	}
	lines = append(lines, fieldLabelStyle.Render("Title"), f.title.View())
	if msg := f.visibleError(notes.FieldTitle); msg != "" {
		lines = append(lines, fieldErrorStyle.Render(msg))
	}
	lines = append(lines, "", fieldLabelStyle.Render("Content"))
	if preview != "" {
		lines = append(lines, preview)
	} else {
		lines = append(lines, f.content.View())
	}
	if msg := f.visibleError(notes.FieldContent); msg != "" {
		lines = append(lines, fieldErrorStyle.Render(msg))
	}
	lines = append(lines, "", f.buttonsLine())
	return strings.Join(lines, "\n")
}

func (f *noteForm) buttonsLine() string {
	label := f.submitLabel
	if f.busy {
		label = "Saving..."
	}
	submit := buttonStyle.Render("[ctrl+s] " + label)
	if !f.CanSubmit() {
		submit = buttonDisabledStyle.Render("[ctrl+s] " + label)
	}
	cancel := buttonStyle.Render("[esc] Cancel")
	if f.busy {
		cancel = buttonDisabledStyle.Render("[esc] Cancel")
	}
	return submit + "  " + cancel
}
