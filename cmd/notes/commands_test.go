package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"notes/internal/app"
	"notes/internal/client"
	"notes/internal/config"
	"notes/internal/logging"
	"notes/internal/notes"
	"notes/internal/testutil"
	"notes/internal/types"
)

type fakeCommandClient struct {
	mu sync.Mutex

	listResp  []types.Note
	listErr   error
	getResp   *types.Note
	getErr    error
	getNoID   bool
	createErr error
	updateErr error
	deleteErr map[types.NoteID]error

	creates []types.NoteDraft
	updates []types.NoteDraft
	deletes []types.NoteID
}

func (f *fakeCommandClient) ListNotes(context.Context) ([]types.Note, error) {
	return f.listResp, f.listErr
}

func (f *fakeCommandClient) GetNote(_ context.Context, id types.NoteID) (*types.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getResp == nil {
		return nil, nil
	}
	note := *f.getResp
	if !f.getNoID {
		note.ID = id
	}
	return &note, nil
}

func (f *fakeCommandClient) CreateNote(_ context.Context, draft types.NoteDraft) (*types.Note, error) {
	f.creates = append(f.creates, draft)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &types.Note{ID: "new-1", Title: draft.Title, Content: draft.Content}, nil
}

func (f *fakeCommandClient) UpdateNote(_ context.Context, id types.NoteID, draft types.NoteDraft) (*types.Note, error) {
	f.updates = append(f.updates, draft)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &types.Note{ID: id, Title: draft.Title, Content: draft.Content}, nil
}

func (f *fakeCommandClient) DeleteNote(_ context.Context, id types.NoteID) (*types.Note, error) {
	f.mu.Lock()
	f.deletes = append(f.deletes, id)
	f.mu.Unlock()
	if err := f.deleteErr[id]; err != nil {
		return nil, err
	}
	return nil, nil
}

type testIO struct {
	stdin  *bytes.Buffer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func testSettings() settings {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "error"
	return settings{
		Config:     cfg,
		ConfigPath: "/tmp/notes-test/config.toml",
		APIBase:    "/api",
		APIURL:     "http://127.0.0.1:8080/api",
	}
}

func fixedFactory(api commandClient) clientFactory {
	return func(settings, logging.Logger) commandClient {
		return api
	}
}

func newTestWiring(api commandClient) (commandWiring, testIO) {
	streams := testIO{stdin: &bytes.Buffer{}, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	return commandWiring{
		stdin:  streams.stdin,
		stdout: streams.stdout,
		stderr: streams.stderr,
		loadSettings: func() (settings, error) {
			return testSettings(), nil
		},
		newClient: fixedFactory(api),
		runUI: func(context.Context, app.Options) error {
			return errors.New("ui not expected")
		},
		openLog: func(logging.Level) (logging.Logger, io.Closer, error) {
			return logging.Nop(), nil, nil
		},
	}, streams
}

func runCLI(w commandWiring, args ...string) error {
	root := buildRootCommand(w)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestLSCommandPrintsNotesNewestFirst(t *testing.T) {
	fake := &fakeCommandClient{
		listResp: []types.Note{
			{ID: "1", Title: "older", Content: "first body", UpdatedAt: "2024-01-01T00:00:00Z"},
			{ID: "2", Title: "newer", Content: "second\n\nbody", UpdatedAt: "2024-02-01T00:00:00Z"},
		},
	}
	w, streams := newTestWiring(fake)

	if err := runCLI(w, "ls"); err != nil {
		t.Fatalf("expected ls to succeed, got err=%v", err)
	}
	out := streams.stdout.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "SNIPPET") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "newer") || !strings.Contains(lines[2], "older") {
		t.Fatalf("expected newest first, got %q", out)
	}
	if !strings.Contains(lines[1], "second body") {
		t.Fatalf("expected collapsed snippet, got %q", lines[1])
	}
}

func TestLSCommandJSON(t *testing.T) {
	fake := &fakeCommandClient{listResp: []types.Note{{ID: "7", Title: "t", Content: "c"}}}
	w, streams := newTestWiring(fake)

	if err := runCLI(w, "ls", "--json"); err != nil {
		t.Fatalf("expected ls --json to succeed, got err=%v", err)
	}
	if !strings.Contains(streams.stdout.String(), `"id": "7"`) {
		t.Fatalf("expected JSON output, got %q", streams.stdout.String())
	}
}

func TestLSCommandReportsServerError(t *testing.T) {
	fake := &fakeCommandClient{listErr: &client.APIError{StatusCode: 500, Message: "boom"}}
	w, _ := newTestWiring(fake)

	err := runCLI(w, "ls")
	if err == nil || err.Error() != "ls error: boom" {
		t.Fatalf("expected labelled error, got %v", err)
	}
	if client.AsAPIError(err) == nil {
		t.Fatalf("expected APIError to stay reachable through the label")
	}
}

func TestAddCommandValidatesBeforeSending(t *testing.T) {
	fake := &fakeCommandClient{}
	w, _ := newTestWiring(fake)

	err := runCLI(w, "add", "--title", "   ", "--content", "body")
	if !errors.Is(err, notes.ErrInvalidDraft) {
		t.Fatalf("expected invalid draft error, got %v", err)
	}
	if !strings.Contains(err.Error(), notes.MsgTitleRequired) {
		t.Fatalf("expected title message, got %q", err.Error())
	}
	if len(fake.creates) != 0 {
		t.Fatalf("expected no request, got %d", len(fake.creates))
	}
}

func TestAddCommandReadsStdinAndTrimsTitle(t *testing.T) {
	fake := &fakeCommandClient{}
	w, streams := newTestWiring(fake)
	streams.stdin.WriteString("  line one\nline two\n")

	if err := runCLI(w, "add", "--title", "  Groceries ", "--content", "-"); err != nil {
		t.Fatalf("expected add to succeed, got err=%v", err)
	}
	if len(fake.creates) != 1 {
		t.Fatalf("expected one create, got %d", len(fake.creates))
	}
	got := fake.creates[0]
	if got.Title != "Groceries" {
		t.Fatalf("expected trimmed title, got %q", got.Title)
	}
	if got.Content != "  line one\nline two\n" {
		t.Fatalf("expected content untouched, got %q", got.Content)
	}
	if streams.stdout.String() != "new-1\n" {
		t.Fatalf("unexpected stdout: %q", streams.stdout.String())
	}
}

func TestEditCommandMergesChangedFlags(t *testing.T) {
	fake := &fakeCommandClient{getResp: &types.Note{Title: "old title", Content: "kept content"}}
	w, streams := newTestWiring(fake)

	if err := runCLI(w, "edit", "9", "--title", "new title"); err != nil {
		t.Fatalf("expected edit to succeed, got err=%v", err)
	}
	if len(fake.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(fake.updates))
	}
	if got := fake.updates[0]; got.Title != "new title" || got.Content != "kept content" {
		t.Fatalf("unexpected merged draft: %#v", got)
	}
	if streams.stdout.String() != "saved 9\n" {
		t.Fatalf("unexpected stdout: %q", streams.stdout.String())
	}
}

func TestEditCommandRequiresAChange(t *testing.T) {
	fake := &fakeCommandClient{getResp: &types.Note{Title: "t", Content: "c"}}
	w, _ := newTestWiring(fake)

	err := runCLI(w, "edit", "9")
	if err == nil || !strings.HasPrefix(err.Error(), "edit error: nothing to change") {
		t.Fatalf("expected nothing-to-change error, got %v", err)
	}
	if len(fake.updates) != 0 {
		t.Fatalf("expected no update, got %d", len(fake.updates))
	}
}

func TestEditCommandRejectsClearedContent(t *testing.T) {
	fake := &fakeCommandClient{getResp: &types.Note{Title: "t", Content: "c"}}
	w, _ := newTestWiring(fake)

	err := runCLI(w, "edit", "9", "--content", "  ")
	if !errors.Is(err, notes.ErrInvalidDraft) {
		t.Fatalf("expected invalid draft error, got %v", err)
	}
	if len(fake.updates) != 0 {
		t.Fatalf("expected no update, got %d", len(fake.updates))
	}
}

func TestRMCommandDeletesAllAndReportsFailures(t *testing.T) {
	fake := &fakeCommandClient{
		deleteErr: map[types.NoteID]error{"2": &client.APIError{StatusCode: 404, Message: "Note not found"}},
	}
	w, streams := newTestWiring(fake)

	err := runCLI(w, "rm", "1", "2", "3")
	if err == nil {
		t.Fatalf("expected partial failure error")
	}
	if !strings.Contains(err.Error(), "2: Note not found") {
		t.Fatalf("expected failing id in error, got %q", err.Error())
	}
	if len(fake.deletes) != 3 {
		t.Fatalf("expected every id attempted, got %v", fake.deletes)
	}
	if streams.stdout.String() != "deleted 1\ndeleted 3\n" {
		t.Fatalf("unexpected stdout: %q", streams.stdout.String())
	}
}

func TestShowCommandRaw(t *testing.T) {
	fake := &fakeCommandClient{getResp: &types.Note{Title: "Plan", Content: "# Heading", UpdatedAt: "2024-01-01T00:00:00Z"}}
	w, streams := newTestWiring(fake)

	if err := runCLI(w, "show", "4", "--raw"); err != nil {
		t.Fatalf("expected show to succeed, got err=%v", err)
	}
	want := "Plan\nid: 4  updated: 2024-01-01T00:00:00Z\n\n# Heading\n"
	if streams.stdout.String() != want {
		t.Fatalf("unexpected stdout:\n%q\nwant:\n%q", streams.stdout.String(), want)
	}
}

func TestShowCommandFallsBackToRequestedID(t *testing.T) {
	fake := &fakeCommandClient{getResp: &types.Note{Title: "Plan", Content: "body"}, getNoID: true}
	w, streams := newTestWiring(fake)

	if err := runCLI(w, "show", "17", "--raw"); err != nil {
		t.Fatalf("expected show to succeed, got err=%v", err)
	}
	if !strings.Contains(streams.stdout.String(), "id: 17\n") {
		t.Fatalf("expected requested id in output, got %q", streams.stdout.String())
	}
}

func TestShowCommandRendersMarkdown(t *testing.T) {
	fake := &fakeCommandClient{getResp: &types.Note{Title: "Plan", Content: "some **bold** text"}}
	w, streams := newTestWiring(fake)

	if err := runCLI(w, "show", "4"); err != nil {
		t.Fatalf("expected show to succeed, got err=%v", err)
	}
	out := streams.stdout.String()
	if strings.Contains(out, "**bold**") || !strings.Contains(out, "bold") {
		t.Fatalf("expected rendered markdown, got %q", out)
	}
}

func TestShowCommandEmptyResponse(t *testing.T) {
	w, _ := newTestWiring(&fakeCommandClient{})

	err := runCLI(w, "show", "4")
	if err == nil || err.Error() != "show error: empty response from server" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUICommandPassesRouteAndSettings(t *testing.T) {
	fake := &fakeCommandClient{}
	w, _ := newTestWiring(fake)
	var got app.Options
	calls := 0
	w.runUI = func(_ context.Context, opts app.Options) error {
		calls++
		got = opts
		return nil
	}

	if err := runCLI(w, "ui", "--open", "/notes/42"); err != nil {
		t.Fatalf("expected ui to succeed, got err=%v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one ui run, got %d", calls)
	}
	if got.InitialRoute != app.EditRoute("42") {
		t.Fatalf("unexpected route: %q", got.InitialRoute.Path())
	}
	if got.APIBase != "/api" || got.Toasts == nil || got.API == nil {
		t.Fatalf("unexpected options: %#v", got)
	}
}

func TestRootCommandRunsUI(t *testing.T) {
	w, _ := newTestWiring(&fakeCommandClient{})
	var got app.Options
	w.runUI = func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	}

	if err := runCLI(w, "--open", "/new"); err != nil {
		t.Fatalf("expected root to run ui, got err=%v", err)
	}
	if got.InitialRoute != app.CreateRoute() {
		t.Fatalf("unexpected route: %q", got.InitialRoute.Path())
	}
}

func TestConfigCommandFormats(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"url": "http://127.0.0.1:8080/api"`},
		{format: "toml", want: "url = "},
		{format: "yaml", want: "url: http://127.0.0.1:8080/api"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			w, streams := newTestWiring(&fakeCommandClient{})
			if err := runCLI(w, "config", "--format", tc.format); err != nil {
				t.Fatalf("expected config to succeed, got err=%v", err)
			}
			out := streams.stdout.String()
			if !strings.Contains(out, tc.want) || !strings.Contains(out, "http://127.0.0.1:8080/api") {
				t.Fatalf("expected %q in output, got %q", tc.want, out)
			}
		})
	}
}

func TestConfigCommandRejectsUnknownFormat(t *testing.T) {
	w, _ := newTestWiring(&fakeCommandClient{})
	err := runCLI(w, "config", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Fatalf("expected invalid format error, got %v", err)
	}
}

func TestSettingsFromEnvResolvesBaseAgainstOrigin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[server]\norigin = \"http://notes.local:9000/\"\n[api]\ntimeout = \"3s\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := settingsFromEnv(config.EnvConfig{ConfigPath: path, BackendURL: "/v2/"})
	if err != nil {
		t.Fatalf("expected settings, got err=%v", err)
	}
	if s.APIBase != "/v2" {
		t.Fatalf("expected base /v2, got %q", s.APIBase)
	}
	if s.APIURL != "http://notes.local:9000/v2" {
		t.Fatalf("unexpected url: %q", s.APIURL)
	}
	if s.ConfigPath != path {
		t.Fatalf("unexpected config path: %q", s.ConfigPath)
	}
	if s.Config.RequestTimeout().String() != "3s" {
		t.Fatalf("unexpected timeout: %v", s.Config.RequestTimeout())
	}
}

func TestCommandsAgainstNotesServer(t *testing.T) {
	srv := testutil.NewNotesServer(t)
	srv.Seed("existing", "already here", "2024-01-01T00:00:00Z")

	w, streams := newTestWiring(nil)
	w.loadSettings = func() (settings, error) {
		s := testSettings()
		s.APIURL = srv.BaseURL()
		return s, nil
	}
	w.newClient = newNotesClient

	if err := runCLI(w, "add", "--title", "fresh", "--content", "new body"); err != nil {
		t.Fatalf("expected add to succeed, got err=%v", err)
	}
	id := strings.TrimSpace(streams.stdout.String())
	if id != "2" {
		t.Fatalf("expected created id 2, got %q", id)
	}

	streams.stdout.Reset()
	if err := runCLI(w, "ls"); err != nil {
		t.Fatalf("expected ls to succeed, got err=%v", err)
	}
	lines := strings.Split(strings.TrimSpace(streams.stdout.String()), "\n")
	if len(lines) != 3 || !strings.Contains(lines[1], "fresh") {
		t.Fatalf("expected the new note first, got %q", streams.stdout.String())
	}

	streams.stdout.Reset()
	if err := runCLI(w, "rm", id); err != nil {
		t.Fatalf("expected rm to succeed, got err=%v", err)
	}
	if srv.Count() != 1 {
		t.Fatalf("expected one note left, got %d", srv.Count())
	}

	err := runCLI(w, "show", id)
	if err == nil || err.Error() != "show error: Note not found" {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
