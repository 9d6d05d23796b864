package notes

import (
	"strings"
	"testing"

	"notes/internal/types"
)

func ids(list []types.Note) string {
	parts := make([]string, 0, len(list))
	for _, n := range list {
		parts = append(parts, string(n.ID))
	}
	return strings.Join(parts, ",")
}

func TestSortForDisplayKeepsOrderWithoutTimestamps(t *testing.T) {
	list := []types.Note{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	if got := ids(SortForDisplay(list)); got != "c,a,b" {
		t.Fatalf("expected original order, got %s", got)
	}
}

func TestSortForDisplayNewestFirst(t *testing.T) {
	list := []types.Note{
		{ID: "old", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "none"},
		{ID: "updated", CreatedAt: "2023-01-01T00:00:00Z", UpdatedAt: "2024-06-01T00:00:00Z"},
		{ID: "mid", CreatedAt: "2024-03-01T00:00:00Z"},
		{ID: "none2"},
	}
	got := ids(SortForDisplay(list))
	if got != "updated,mid,old,none,none2" {
		t.Fatalf("unexpected order: %s", got)
	}
	if ids(list) != "old,none,updated,mid,none2" {
		t.Fatalf("input slice was modified: %s", ids(list))
	}
}

func TestSortForDisplayMixedTimestampFormats(t *testing.T) {
	list := []types.Note{
		{ID: "iso", UpdatedAt: "2023-11-14T22:13:20Z"},
		{ID: "millis", UpdatedAt: "1700000001000"},
		{ID: "garbage", UpdatedAt: "not a date"},
	}
	if got := ids(SortForDisplay(list)); got != "millis,iso,garbage" {
		t.Fatalf("unexpected order: %s", got)
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "", max: 10, want: ""},
		{in: "   \n\t ", max: 10, want: ""},
		{in: "hello\n\n  world", max: 20, want: "hello world"},
		{in: "abcdefghij", max: 10, want: "abcdefghij"},
		{in: "abcdefghijk", max: 10, want: "abcdefghij…"},
		{in: "ééééé", max: 3, want: "ééé…"},
		{in: strings.Repeat("a", 130), max: 0, want: strings.Repeat("a", 120) + "…"},
	}
	for _, tt := range tests {
		if got := Snippet(tt.in, tt.max); got != tt.want {
			t.Fatalf("Snippet(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRemove(t *testing.T) {
	list := []types.Note{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	if got := ids(Remove(list, "2")); got != "1,3" {
		t.Fatalf("unexpected list: %s", got)
	}
	if got := ids(Remove(list, "missing")); got != "1,2,3" {
		t.Fatalf("unexpected list: %s", got)
	}
}
