// Package testutil provides an in-memory notes backend for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// Failure is a canned response returned instead of the normal handler.
type Failure struct {
	Status      int
	ContentType string
	Body        string
}

// RecordedRequest is what the server saw for one call.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

type NotesServerOption func(*NotesServer)

// WithIDField stores and returns note ids under field ("id", "_id", "noteId").
func WithIDField(field string) NotesServerOption {
	return func(s *NotesServer) {
		if strings.TrimSpace(field) != "" {
			s.idField = field
		}
	}
}

// WithListEnvelope wraps list responses as {"notes": [...]}.
func WithListEnvelope() NotesServerOption {
	return func(s *NotesServer) {
		s.envelope = true
	}
}

// WithPrefix mounts the routes under prefix instead of "/api".
func WithPrefix(prefix string) NotesServerOption {
	return func(s *NotesServer) {
		s.prefix = strings.TrimRight(prefix, "/")
	}
}

// WithNumericIDs returns ids as JSON numbers.
func WithNumericIDs() NotesServerOption {
	return func(s *NotesServer) {
		s.numericIDs = true
	}
}

// NotesServer is an httptest backend speaking the notes REST contract.
type NotesServer struct {
	*httptest.Server

	mu         sync.Mutex
	prefix     string
	idField    string
	envelope   bool
	numericIDs bool
	nextID     int
	order      []string
	notes      map[string]map[string]any
	failures   map[string]Failure
	requests   []RecordedRequest
	now        func() time.Time
}

func NewNotesServer(t testing.TB, opts ...NotesServerOption) *NotesServer {
	t.Helper()
	s := &NotesServer{
		prefix:   "/api",
		idField:  "id",
		notes:    map[string]map[string]any{},
		failures: map[string]Failure{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+s.prefix+"/notes", s.handleList)
	mux.HandleFunc("POST "+s.prefix+"/notes", s.handleCreate)
	mux.HandleFunc("GET "+s.prefix+"/notes/{id}", s.handleGet)
	mux.HandleFunc("PUT "+s.prefix+"/notes/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE "+s.prefix+"/notes/{id}", s.handleDelete)
	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the server URL including the route prefix.
func (s *NotesServer) BaseURL() string {
	return s.URL + s.prefix
}

// Seed stores a note and returns its id. createdAt/updatedAt are optional.
func (s *NotesServer) Seed(title, content, updatedAt string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocIDLocked()
	note := map[string]any{"title": title, "content": content}
	if updatedAt != "" {
		note["createdAt"] = updatedAt
		note["updatedAt"] = updatedAt
	}
	s.storeLocked(id, note)
	return id
}

// Fail makes route ("GET /notes", "DELETE /notes/{id}", ...) answer with f.
func (s *NotesServer) Fail(route string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = f
}

func (s *NotesServer) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = map[string]Failure{}
}

func (s *NotesServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

func (s *NotesServer) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Note returns a copy of the stored wire object.
func (s *NotesServer) Note(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.notes[id]
	if !ok {
		return nil, false
	}
	return s.wireLocked(id, note), true
}

func (s *NotesServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = readAll(r)
		}
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		failure, failing := s.failures[routeKey(r, s.prefix)]
		s.mu.Unlock()
		if failing {
			if failure.ContentType != "" {
				w.Header().Set("Content-Type", failure.ContentType)
			}
			w.WriteHeader(failure.Status)
			_, _ = w.Write([]byte(failure.Body))
			return
		}
		r.Body = newBody(body)
		next.ServeHTTP(w, r)
	})
}

func (s *NotesServer) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	list := make([]map[string]any, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.wireLocked(id, s.notes[id]))
	}
	envelope := s.envelope
	s.mu.Unlock()
	if envelope {
		writeJSON(w, http.StatusOK, map[string]any{"notes": list})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *NotesServer) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	note, ok := s.notes[id]
	var out map[string]any
	if ok {
		out = s.wireLocked(id, note)
	}
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Note not found"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *NotesServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid body"})
		return
	}
	s.mu.Lock()
	id := s.allocIDLocked()
	stamp := s.now().UTC().Format(time.RFC3339Nano)
	s.storeLocked(id, map[string]any{
		"title":     draft.Title,
		"content":   draft.Content,
		"createdAt": stamp,
		"updatedAt": stamp,
	})
	out := s.wireLocked(id, s.notes[id])
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, out)
}

func (s *NotesServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var draft struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "invalid body"})
		return
	}
	s.mu.Lock()
	note, ok := s.notes[id]
	if ok {
		note["title"] = draft.Title
		note["content"] = draft.Content
		note["updatedAt"] = s.now().UTC().Format(time.RFC3339Nano)
	}
	var out map[string]any
	if ok {
		out = s.wireLocked(id, note)
	}
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Note not found"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *NotesServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	_, ok := s.notes[id]
	if ok {
		delete(s.notes, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Note not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *NotesServer) allocIDLocked() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

func (s *NotesServer) storeLocked(id string, note map[string]any) {
	s.notes[id] = note
	s.order = append(s.order, id)
}

func (s *NotesServer) wireLocked(id string, note map[string]any) map[string]any {
	out := make(map[string]any, len(note)+1)
	for k, v := range note {
		out[k] = v
	}
	if s.numericIDs {
		n, _ := strconv.Atoi(id)
		out[s.idField] = n
	} else {
		out[s.idField] = id
	}
	return out
}

func routeKey(r *http.Request, prefix string) string {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	if strings.HasPrefix(path, "/notes/") {
		path = "/notes/{id}"
	}
	return r.Method + " " + path
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func readAll(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func newBody(data []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(data))
}
