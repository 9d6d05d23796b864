package app

import (
	tea "charm.land/bubbletea/v2"

	"notes/internal/types"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleKey(msg)
		return m.resolveConfirm(choice)
	}
	if key == "ctrl+x" {
		m.dismissNewestToast()
		return nil
	}
	switch {
	case m.list != nil:
		return m.handleListKey(key)
	case m.create != nil:
		return m.handleCreateKey(msg)
	case m.edit != nil:
		return m.handleEditKey(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.confirm.IsOpen() {
		return nil
	}
	_, choice := m.confirm.HandleMouse(msg, m.contentWidth(), m.height)
	return m.resolveConfirm(choice)
}

func (m *Model) handleListKey(key string) tea.Cmd {
	switch key {
	case "q":
		return tea.Quit
	case "x":
		m.dismissNewestToast()
	case "r":
		return m.refreshList()
	case "n":
		return navigateCmd(CreateRoute())
	case "up", "k":
		m.list.Move(-1)
	case "down", "j":
		m.list.Move(1)
	case "home", "g":
		m.list.MoveTo(0)
	case "end", "G":
		m.list.MoveTo(len(m.list.notes) - 1)
	case "enter", "e":
		if note, ok := m.currentNote(); ok {
			return navigateCmd(EditRoute(note.ID))
		}
	case "d", "delete":
		if note, ok := m.currentNote(); ok && !m.list.IsDeleting(note.ID) {
			m.confirm.Open("Delete note", deleteConfirmMessage(note), "Delete", "Cancel", note.ID)
		}
	}
	return nil
}

func (m *Model) handleCreateKey(msg tea.KeyPressMsg) tea.Cmd {
	form := m.create.form
	switch msg.String() {
	case "esc":
		if form.busy {
			return nil
		}
		return navigateCmd(ListRoute())
	case "ctrl+s":
		draft, ok := form.Submit()
		if !ok {
			return nil
		}
		form.SetBusy(true)
		return createNoteCmd(m.api, m.create.gen, draft, m.timeout)
	case "tab", "shift+tab":
		return form.ToggleFocus()
	}
	return form.Update(msg)
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	edit := m.edit
	key := msg.String()
	if !edit.Ready() {
		switch key {
		case "esc":
			return navigateCmd(ListRoute())
		case "enter", "b", "q":
			if edit.loadErr != "" {
				return navigateCmd(ListRoute())
			}
		}
		return nil
	}

	form := edit.form
	switch key {
	case "esc":
		if form.busy {
			return nil
		}
		return navigateCmd(ListRoute())
	case "ctrl+s":
		draft, ok := form.Submit()
		if !ok {
			return nil
		}
		form.SetBusy(true)
		return updateNoteCmd(m.api, edit.gen, edit.id, draft, m.timeout)
	case "ctrl+d":
		if edit.deleting {
			return nil
		}
		m.confirm.Open("Delete note", deleteConfirmMessage(*edit.note), "Delete", "Cancel", edit.id)
		return nil
	case "ctrl+y":
		return copyToClipboardCmd(edit.Content())
	case "ctrl+p":
		edit.preview = !edit.preview
		return nil
	case "tab", "shift+tab":
		return form.ToggleFocus()
	}
	if edit.preview && form.focus == fieldContent {
		// The rendered preview replaces the editor; typing would be invisible.
		return nil
	}
	return form.Update(msg)
}

func (m *Model) resolveConfirm(choice confirmChoice) tea.Cmd {
	switch choice {
	case confirmChoiceCancel:
		m.confirm.Close()
	case confirmChoiceConfirm:
		id := m.confirm.Target()
		m.confirm.Close()
		return m.startDelete(id)
	}
	return nil
}

func (m *Model) startDelete(id types.NoteID) tea.Cmd {
	switch {
	case m.list != nil:
		if !m.list.BeginDelete(id) {
			return nil
		}
		return deleteNoteCmd(m.api, m.list.gen, id, m.timeout)
	case m.edit != nil:
		if m.edit.deleting {
			return nil
		}
		m.edit.deleting = true
		return deleteNoteCmd(m.api, m.edit.gen, id, m.timeout)
	}
	return nil
}
