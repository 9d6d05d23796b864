package notes

import (
	"encoding/json"
	"strings"
	"testing"

	"notes/internal/types"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestNormalizeUnderscoreID(t *testing.T) {
	note := Normalize(map[string]any{"_id": json.Number("5"), "title": "t"})
	want := types.Note{ID: "5", Title: "t", Content: ""}
	if note != want {
		t.Fatalf("expected %+v, got %+v", want, note)
	}
}

func TestNormalizeIDPrecedence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.NoteID
	}{
		{name: "id first", raw: `{"id":"a","_id":"b","noteId":"c"}`, want: "a"},
		{name: "null id skipped", raw: `{"id":null,"_id":"b"}`, want: "b"},
		{name: "noteId last", raw: `{"noteId":42}`, want: "42"},
		{name: "large number kept exact", raw: `{"id":12345678901234567890}`, want: "12345678901234567890"},
		{name: "zero is an id", raw: `{"id":0,"_id":"b"}`, want: "0"},
		{name: "missing", raw: `{"title":"x"}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, ok := NewNormalizer().NormalizeValue(decode(t, tt.raw))
			if !ok {
				t.Fatalf("expected object")
			}
			if note.ID != tt.want {
				t.Fatalf("expected id %q, got %q", tt.want, note.ID)
			}
		})
	}
}

func TestNormalizeCustomIDFields(t *testing.T) {
	n := Normalizer{IDFields: []string{"uuid"}}
	note := n.Normalize(map[string]any{"id": "ignored", "uuid": "u-1"})
	if note.ID != "u-1" {
		t.Fatalf("expected custom id field to win, got %q", note.ID)
	}
}

func TestNormalizePassesTimestampsThrough(t *testing.T) {
	note, _ := NewNormalizer().NormalizeValue(decode(t, `{"id":1,"title":"a","content":"b","createdAt":"2024-01-01T00:00:00Z","updatedAt":1700000000000}`))
	if note.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("unexpected createdAt %q", note.CreatedAt)
	}
	if note.UpdatedAt != "1700000000000" {
		t.Fatalf("unexpected updatedAt %q", note.UpdatedAt)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		`{"_id":5,"title":"t"}`,
		`{"id":"x","title":"a","content":"b","createdAt":"2024-01-01T00:00:00Z"}`,
		`{"noteId":"n","content":"only content","updatedAt":"2024-02-02"}`,
		`{"title":"no id"}`,
	}
	for _, raw := range inputs {
		first, _ := NewNormalizer().NormalizeValue(decode(t, raw))
		second := Normalize(first.Fields())
		if first != second {
			t.Fatalf("normalize not idempotent for %s: %+v vs %+v", raw, first, second)
		}
	}
}

func TestNormalizeValueRejectsNonObjects(t *testing.T) {
	for _, v := range []any{nil, "ok", []any{}, json.Number("1")} {
		if _, ok := NewNormalizer().NormalizeValue(v); ok {
			t.Fatalf("expected %v to be rejected", v)
		}
	}
}

func TestNormalizeListKeepsEmptyStringIDs(t *testing.T) {
	list := NewNormalizer().NormalizeList(decode(t, `[{"id":"","title":"blank"},{"id":null,"title":"null"},{"_id":null,"noteId":"n"}]`))
	if len(list) != 2 {
		t.Fatalf("expected blank id kept and null id dropped, got %+v", list)
	}
	if list[0].Title != "blank" || !list[0].ID.IsZero() {
		t.Fatalf("unexpected first entry: %+v", list[0])
	}
	if list[1].ID != "n" {
		t.Fatalf("expected null _id to fall through to noteId, got %+v", list[1])
	}
}

func TestNormalizeList(t *testing.T) {
	bare := decode(t, `[{"id":1,"title":"a"},{"title":"no id"},{"_id":"2"}]`)
	list := NewNormalizer().NormalizeList(bare)
	if len(list) != 2 || list[0].ID != "1" || list[1].ID != "2" {
		t.Fatalf("unexpected bare list: %+v", list)
	}

	wrapped := decode(t, `{"notes":[{"noteId":"w"}],"total":1}`)
	list = NewNormalizer().NormalizeList(wrapped)
	if len(list) != 1 || list[0].ID != "w" {
		t.Fatalf("unexpected wrapped list: %+v", list)
	}

	for _, v := range []any{nil, "text", map[string]any{"items": []any{}}} {
		if got := NewNormalizer().NormalizeList(v); len(got) != 0 {
			t.Fatalf("expected empty list for %v, got %+v", v, got)
		}
	}
}
