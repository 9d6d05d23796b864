package app

import (
	"context"

	"notes/internal/client"
	"notes/internal/types"
)

// NotesAPI is the backend surface the views depend on.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	GetNote(ctx context.Context, id types.NoteID) (*types.Note, error)
	CreateNote(ctx context.Context, draft types.NoteDraft) (*types.Note, error)
	UpdateNote(ctx context.Context, id types.NoteID, draft types.NoteDraft) (*types.Note, error)
	DeleteNote(ctx context.Context, id types.NoteID) (*types.Note, error)
}

var _ NotesAPI = (*client.Client)(nil)
