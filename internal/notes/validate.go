package notes

import (
	"errors"
	"strings"
	"unicode/utf8"

	"notes/internal/types"
)

const (
	MaxTitleLength   = 120
	MaxContentLength = 20000

	FieldTitle   = "title"
	FieldContent = "content"

	MsgTitleRequired   = "Title is required."
	MsgTitleTooLong    = "Title must be 120 characters or fewer."
	MsgContentRequired = "Content is required."
	MsgContentTooLong  = "Content is too long."
)

var ErrInvalidDraft = errors.New("invalid note")

// FieldErrors maps a draft field name to its message.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool {
	return len(e) == 0
}

func (e FieldErrors) Err() error {
	if e.OK() {
		return nil
	}
	parts := make([]string, 0, len(e))
	for _, field := range []string{FieldTitle, FieldContent} {
		if msg, ok := e[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return &ValidationError{Fields: e, summary: strings.Join(parts, "; ")}
}

type ValidationError struct {
	Fields  FieldErrors
	summary string
}

func (e *ValidationError) Error() string {
	return e.summary
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDraft
}

// Validate checks every rule; a later rule for the same field replaces the
// earlier message.
func Validate(draft types.NoteDraft) FieldErrors {
	errs := FieldErrors{}
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		errs[FieldTitle] = MsgTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		errs[FieldTitle] = MsgTitleTooLong
	}
	if strings.TrimSpace(draft.Content) == "" {
		errs[FieldContent] = MsgContentRequired
	}
	if utf8.RuneCountInString(draft.Content) > MaxContentLength {
		errs[FieldContent] = MsgContentTooLong
	}
	return errs
}

// PrepareDraft returns the draft as it is sent to the backend.
func PrepareDraft(draft types.NoteDraft) types.NoteDraft {
	return types.NoteDraft{
		Title:   strings.TrimSpace(draft.Title),
		Content: draft.Content,
	}
}
