package app

import (
	tea "charm.land/bubbletea/v2"

	"notes/internal/client"
	"notes/internal/logging"
)

const (
	msgNoteCreated   = "Note created."
	msgNoteSaved     = "Saved."
	msgNoteDeleted   = "Note deleted."
	msgCreateFailed  = "Failed to create note."
	msgSaveFailed    = "Failed to save note."
	msgDeleteFailed  = "Failed to delete note."
	msgCopied        = "Copied note content."
	msgCopiedOSC52   = "Copied note content (OSC52)."
	msgCopyFailedPre = "Copy failed: "
)

func (m *Model) dropStale(kind string, gen int) {
	m.logger.Debug("stale result dropped", logging.F("result", kind), logging.F("generation", gen), logging.F("current", m.gen))
}

func (m *Model) reduceNotesLoaded(msg notesLoadedMsg) tea.Cmd {
	if m.list == nil || m.list.gen != msg.gen {
		m.dropStale("list", msg.gen)
		return nil
	}
	m.list.ApplyLoaded(msg.notes, msg.err)
	return nil
}

func (m *Model) reduceNoteLoaded(msg noteLoadedMsg) tea.Cmd {
	if m.edit == nil || m.edit.gen != msg.gen {
		m.dropStale("note", msg.gen)
		return nil
	}
	m.edit.ApplyLoaded(msg.note, msg.err)
	if !m.edit.Ready() {
		return nil
	}
	m.edit.form.SetWidth(m.contentWidth())
	return m.edit.form.Focus()
}

// Mutation outcomes are always announced; state and navigation only change
// while the issuing view is still mounted.
func (m *Model) reduceNoteCreated(msg noteCreatedMsg) tea.Cmd {
	live := m.create != nil && m.create.gen == msg.gen
	if msg.err != nil {
		text := client.ErrorMessage(msg.err, msgCreateFailed)
		m.notifyError(text)
		if live {
			m.create.form.SetBusy(false)
			m.create.form.SetServerError(text)
		}
		return nil
	}
	m.notifySuccess(msgNoteCreated)
	if !live {
		m.dropStale("create", msg.gen)
		return nil
	}
	m.create.form.SetBusy(false)
	if msg.note != nil && !msg.note.ID.IsZero() {
		return navigateCmd(EditRoute(msg.note.ID))
	}
	return navigateCmd(ListRoute())
}

func (m *Model) reduceNoteSaved(msg noteSavedMsg) tea.Cmd {
	live := m.edit != nil && m.edit.gen == msg.gen
	if msg.err != nil {
		text := client.ErrorMessage(msg.err, msgSaveFailed)
		m.notifyError(text)
		if live && m.edit.form != nil {
			m.edit.form.SetBusy(false)
			m.edit.form.SetServerError(text)
		}
		return nil
	}
	m.notifySuccess(msgNoteSaved)
	if !live {
		m.dropStale("save", msg.gen)
		return nil
	}
	m.edit.ApplySaved(msg.note, msg.draft, m.now())
	m.edit.form.SetBusy(false)
	return navigateCmd(ListRoute())
}

func (m *Model) reduceNoteDeleted(msg noteDeletedMsg) tea.Cmd {
	if msg.err != nil {
		m.notifyError(client.ErrorMessage(msg.err, msgDeleteFailed))
	} else {
		m.notifySuccess(msgNoteDeleted)
	}
	switch {
	case m.list != nil && m.list.gen == msg.gen:
		m.list.FinishDelete(msg.id, msg.err)
	case m.edit != nil && m.edit.gen == msg.gen:
		m.edit.deleting = false
		if msg.err == nil {
			return navigateCmd(ListRoute())
		}
	default:
		m.dropStale("delete", msg.gen)
	}
	return nil
}

func (m *Model) reduceClipboardResult(msg clipboardResultMsg) {
	if msg.err != nil {
		m.notifyError(msgCopyFailedPre + msg.err.Error())
		return
	}
	if msg.method == clipboardMethodOSC52 {
		m.notifyInfo(msgCopiedOSC52)
		return
	}
	m.notifyInfo(msgCopied)
}
