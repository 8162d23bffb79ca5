package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"taskcli/internal/config"
	"taskcli/internal/service"
)

// fakeAPI serves the subset of the Tasks REST API the client uses.
type fakeAPI struct {
	mu       sync.Mutex
	lists    []map[string]any
	tasks    []map[string]any
	inserted []map[string]any
	patched  []map[string]any
	deleted  []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && path == "/tasks/v1/users/@me/lists":
		json.NewEncoder(w).Encode(map[string]any{"items": f.lists})
	case r.Method == http.MethodPost && path == "/tasks/v1/users/@me/lists":
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		body["id"] = "new-list"
		f.lists = append(f.lists, body)
		json.NewEncoder(w).Encode(body)
	case r.Method == http.MethodGet && path == "/tasks/v1/lists/L1/tasks":
		json.NewEncoder(w).Encode(map[string]any{"items": f.tasks})
	case r.Method == http.MethodPost && path == "/tasks/v1/lists/L1/tasks":
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		f.inserted = append(f.inserted, body)
		json.NewEncoder(w).Encode(body)
	case r.Method == http.MethodPatch && path == "/tasks/v1/lists/L1/tasks/T1":
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		f.patched = append(f.patched, body)
		json.NewEncoder(w).Encode(body)
	case r.Method == http.MethodDelete && path == "/tasks/v1/lists/L1/tasks/T1":
		f.deleted = append(f.deleted, "T1")
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": {"code": 404, "message": "not found"}}`)
	}
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	return c
}

func TestEnsureList_Existing(t *testing.T) {
	api := &fakeAPI{lists: []map[string]any{
		{"id": "L0", "title": "My Tasks"},
		{"id": "L1", "title": "Task-CLI "},
	}}
	c := newTestClient(t, api)

	list, err := c.EnsureList(context.Background(), "task-cli")
	if err != nil {
		t.Fatalf("EnsureList: %v", err)
	}
	if list.ID != "L1" {
		t.Errorf("expected L1, got %+v", list)
	}
	if len(api.lists) != 2 {
		t.Error("no list should have been created")
	}
}

func TestEnsureList_Creates(t *testing.T) {
	api := &fakeAPI{}
	c := newTestClient(t, api)

	list, err := c.EnsureList(context.Background(), "task-cli")
	if err != nil {
		t.Fatalf("EnsureList: %v", err)
	}
	if list.ID != "new-list" || list.Title != "task-cli" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestListTasks(t *testing.T) {
	api := &fakeAPI{tasks: []map[string]any{
		{"id": "T1", "title": "Buy milk", "notes": "task-cli:a", "status": "needsAction"},
		{"id": "T2", "title": "Old", "status": "completed"},
	}}
	c := newTestClient(t, api)

	got, err := c.ListTasks(context.Background(), "L1")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	expected := []service.RemoteTask{
		{ID: "T1", Title: "Buy milk", Notes: "task-cli:a"},
		{ID: "T2", Title: "Old", Completed: true},
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d tasks, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("task %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	api := &fakeAPI{}
	c := newTestClient(t, api)
	ctx := context.Background()

	if err := c.CreateTask(ctx, "L1", service.RemoteTask{Title: "A", Notes: "task-cli:a", Completed: true}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := c.UpdateTask(ctx, "L1", service.RemoteTask{ID: "T1", Title: "B"}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if err := c.DeleteTask(ctx, "L1", "T1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	if len(api.inserted) != 1 || api.inserted[0]["status"] != "completed" || api.inserted[0]["notes"] != "task-cli:a" {
		t.Errorf("unexpected insert: %+v", api.inserted)
	}
	if len(api.patched) != 1 || api.patched[0]["status"] != "needsAction" || api.patched[0]["title"] != "B" {
		t.Errorf("unexpected patch: %+v", api.patched)
	}
	if len(api.deleted) != 1 {
		t.Errorf("expected one delete, got %v", api.deleted)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	c := newTestClient(t, &fakeAPI{})

	err := c.DeleteTask(context.Background(), "L1", "missing")
	if err == nil || err.Error() != "not found" {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		in   error
		want string
	}{
		{errors.New("Get x: context deadline exceeded"), "request timed out"},
		{errors.New("googleapi: Error 401: Invalid Credentials"), "auth error: token expired or revoked (run: task-cli login)"},
		{errors.New("googleapi: Error 404: Not Found"), "not found"},
		{errors.New("other"), "other"},
	}
	for _, tt := range tests {
		if got := wrapError(tt.in); got.Error() != tt.want {
			t.Errorf("wrapError(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) should be nil")
	}
}

const testClientJSON = `{"installed": {
  "client_id": "id.apps.googleusercontent.com",
  "client_secret": "secret",
  "auth_uri": "https://accounts.google.com/o/oauth2/auth",
  "token_uri": "https://oauth2.googleapis.com/token",
  "redirect_uris": ["http://localhost"]
}}`

func TestLoadOAuthConfig(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	if _, err := LoadOAuthConfig(cfg); err == nil {
		t.Fatal("expected error without oauth_client.json")
	}

	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(testClientJSON), 0600); err != nil {
		t.Fatal(err)
	}
	oc, err := LoadOAuthConfig(cfg)
	if err != nil {
		t.Fatalf("LoadOAuthConfig: %v", err)
	}
	if oc.ClientID != "id.apps.googleusercontent.com" {
		t.Errorf("unexpected client id %q", oc.ClientID)
	}
	if len(oc.Scopes) != 1 || oc.Scopes[0] != tasksScope {
		t.Errorf("unexpected scopes %v", oc.Scopes)
	}
}

func TestSaveTokenAndTokenValid(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	if TokenValid(cfg) {
		t.Fatal("no token should be invalid")
	}

	// Without a refresh token the stored token is never considered valid.
	if err := SaveToken(cfg.TokenPath(), &oauth2.Token{AccessToken: "a"}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	info, err := os.Stat(cfg.TokenPath())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
	if TokenValid(cfg) {
		t.Error("token without refresh token should be invalid")
	}
}

func TestNew_MissingFiles(t *testing.T) {
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "none")}
	_, err := New(context.Background(), cfg)
	if !errors.Is(err, service.ErrAuth) {
		t.Errorf("expected ErrAuth when credentials are missing, got %v", err)
	}
}
