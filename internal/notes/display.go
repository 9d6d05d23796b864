package notes

import (
	"sort"
	"strings"
	"unicode/utf8"

	"notes/internal/types"
)

const DefaultSnippetLength = 120

// SortForDisplay orders notes newest first by updatedAt, then createdAt.
// When no note carries a timestamp the input order is kept. The input slice
// is never modified.
func SortForDisplay(list []types.Note) []types.Note {
	out := append([]types.Note(nil), list...)
	hasTimestamp := false
	for _, note := range out {
		if note.HasTimestamp() {
			hasTimestamp = true
			break
		}
	}
	if !hasTimestamp {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortTime().After(out[j].SortTime())
	})
	return out
}

// Snippet collapses whitespace and truncates to maxLen characters.
func Snippet(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSnippetLength
	}
	clean := strings.Join(strings.Fields(text), " ")
	if clean == "" {
		return ""
	}
	if utf8.RuneCountInString(clean) <= maxLen {
		return clean
	}
	runes := []rune(clean)
	return string(runes[:maxLen]) + "…"
}

// Remove returns list without the note whose id matches.
func Remove(list []types.Note, id types.NoteID) []types.Note {
	out := make([]types.Note, 0, len(list))
	for _, note := range list {
		if note.ID == id {
			continue
		}
		out = append(out, note)
	}
	return out
}
