package app

import "notes/internal/types"

// Every result message carries the generation of the view that issued the
// request. Results for a view that is no longer mounted are dropped.

type notesLoadedMsg struct {
	gen   int
	notes []types.Note
	err   error
}

type noteLoadedMsg struct {
	gen  int
	id   types.NoteID
	note *types.Note
	err  error
}

type noteCreatedMsg struct {
	gen  int
	note *types.Note
	err  error
}

type noteSavedMsg struct {
	gen   int
	id    types.NoteID
	draft types.NoteDraft
	note  *types.Note
	err   error
}

type noteDeletedMsg struct {
	gen int
	id  types.NoteID
	err error
}

type clipboardResultMsg struct {
	method clipboardMethod
	err    error
}

// toastsChangedMsg repaints after the toast queue changes outside Update,
// e.g. when a timer expires.
type toastsChangedMsg struct{}

type navigateMsg struct {
	route Route
}
