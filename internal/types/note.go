package types

import (
	"strconv"
	"strings"
	"time"
)

// NoteID is the backend-assigned identifier of a note. Backends send either
// JSON strings or JSON numbers; both are kept in their exact textual form.
type NoteID string

func (id NoteID) IsZero() bool {
	return id == ""
}

func (id NoteID) String() string {
	return string(id)
}

// Timestamp is a createdAt/updatedAt value exactly as the backend sent it.
type Timestamp string

func (t Timestamp) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time derives an instant for ordering. All-digit values are epoch
// milliseconds. Absent or unparseable values map to the Unix epoch.
func (t Timestamp) Time() time.Time {
	raw := strings.TrimSpace(string(t))
	if raw == "" {
		return time.Unix(0, 0).UTC()
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	if ms, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.UnixMilli(int64(ms)).UTC()
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Unix(0, 0).UTC()
}

func TimestampFromTime(at time.Time) Timestamp {
	return Timestamp(at.UTC().Format(time.RFC3339Nano))
}

type Note struct {
	ID        NoteID    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
	UpdatedAt Timestamp `json:"updatedAt,omitempty"`
}

// Fields renders the note in the canonical wire shape.
func (n Note) Fields() map[string]any {
	out := map[string]any{
		"id":      string(n.ID),
		"title":   n.Title,
		"content": n.Content,
	}
	if !n.CreatedAt.IsZero() {
		out["createdAt"] = string(n.CreatedAt)
	}
	if !n.UpdatedAt.IsZero() {
		out["updatedAt"] = string(n.UpdatedAt)
	}
	return out
}

func (n Note) HasTimestamp() bool {
	return !n.UpdatedAt.IsZero() || !n.CreatedAt.IsZero()
}

// SortTime is updatedAt, falling back to createdAt, falling back to the epoch.
func (n Note) SortTime() time.Time {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt.Time()
	}
	return n.CreatedAt.Time()
}

func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return "Untitled"
	}
	return n.Title
}

type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (n Note) Draft() NoteDraft {
	return NoteDraft{Title: n.Title, Content: n.Content}
}
