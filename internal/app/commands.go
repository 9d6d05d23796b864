package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"notes/internal/types"
)

func fetchNotesCmd(api NotesAPI, gen int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		list, err := api.ListNotes(ctx)
		return notesLoadedMsg{gen: gen, notes: list, err: err}
	}
}

func fetchNoteCmd(api NotesAPI, gen int, id types.NoteID, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		note, err := api.GetNote(ctx, id)
		return noteLoadedMsg{gen: gen, id: id, note: note, err: err}
	}
}

func createNoteCmd(api NotesAPI, gen int, draft types.NoteDraft, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		note, err := api.CreateNote(ctx, draft)
		return noteCreatedMsg{gen: gen, note: note, err: err}
	}
}

func updateNoteCmd(api NotesAPI, gen int, id types.NoteID, draft types.NoteDraft, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		note, err := api.UpdateNote(ctx, id, draft)
		return noteSavedMsg{gen: gen, id: id, draft: draft, note: note, err: err}
	}
}

func deleteNoteCmd(api NotesAPI, gen int, id types.NoteID, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := api.DeleteNote(ctx, id)
		return noteDeletedMsg{gen: gen, id: id, err: err}
	}
}

func navigateCmd(route Route) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: route}
	}
}

func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		method, err := copyTextToClipboard(text)
		return clipboardResultMsg{method: method, err: err}
	}
}
