package notes

import (
	"encoding/json"
	"strconv"

	"notes/internal/types"
)

// DefaultIDFields lists the identifier keys backends are known to use, in
// lookup order.
var DefaultIDFields = []string{"id", "_id", "noteId"}

// Normalizer maps backend note objects onto types.Note.
type Normalizer struct {
	IDFields []string
}

func NewNormalizer() Normalizer {
	return Normalizer{IDFields: append([]string{}, DefaultIDFields...)}
}

// idValue returns the first candidate id that is present and not null. An
// empty string still counts as present.
func (n Normalizer) idValue(raw map[string]any) (any, bool) {
	for _, field := range n.idFields() {
		if value, ok := raw[field]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func (n Normalizer) idFields() []string {
	if len(n.IDFields) == 0 {
		return DefaultIDFields
	}
	return n.IDFields
}

func (n Normalizer) Normalize(raw map[string]any) types.Note {
	note := types.Note{}
	if value, ok := n.idValue(raw); ok {
		note.ID = types.NoteID(textOf(value))
	}
	note.Title = stringOf(raw["title"])
	note.Content = stringOf(raw["content"])
	note.CreatedAt = types.Timestamp(textOf(raw["createdAt"]))
	note.UpdatedAt = types.Timestamp(textOf(raw["updatedAt"]))
	return note
}

// NormalizeValue accepts any decoded JSON value. Non-objects report false.
func (n Normalizer) NormalizeValue(value any) (types.Note, bool) {
	raw, ok := value.(map[string]any)
	if !ok {
		return types.Note{}, false
	}
	return n.Normalize(raw), true
}

// NormalizeList accepts either a bare array or an object wrapping the array
// under "notes". Entries whose identifier is missing or null are dropped.
func (n Normalizer) NormalizeList(value any) []types.Note {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case map[string]any:
		items, _ = v["notes"].([]any)
	}
	out := make([]types.Note, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := n.idValue(raw); !ok {
			continue
		}
		out = append(out, n.Normalize(raw))
	}
	return out
}

func Normalize(raw map[string]any) types.Note {
	return NewNormalizer().Normalize(raw)
}

func stringOf(value any) string {
	s, _ := value.(string)
	return s
}

func textOf(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		buf, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(buf)
	}
}
