package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"logdeck/internal/config"
	"logdeck/internal/logs"
	"logdeck/internal/server"
	"logdeck/internal/store"
	"logdeck/internal/testsupport"
)

type fixture struct {
	srv        *server.Server
	catalog    *store.Store
	supervisor *store.Supervisor
}

func newFixture(t *testing.T, token string, lines ...string) *fixture {
	t.Helper()

	dir := t.TempDir()
	logPath := testsupport.WriteLog(t, dir, "worker.log", lines...)

	catalog, err := store.Open(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = catalog.Close() })

	project, err := catalog.CreateProject(context.Background(), "webshop")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	supervisor, err := catalog.CreateSupervisor(context.Background(), project.ID, "worker", logPath, "default")
	if err != nil {
		t.Fatalf("create supervisor: %v", err)
	}

	cfg := config.Default()
	cfg.Paths.APIToken = token

	srv, err := server.New(&cfg, catalog, nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return &fixture{srv: srv, catalog: catalog, supervisor: supervisor}
}

func (f *fixture) get(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var payload T
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture(t, "")
	rec := f.get(t, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	payload := decode[map[string]any](t, rec)
	if payload["status"] != "ok" {
		t.Errorf("payload = %v", payload)
	}
}

func TestListSupervisors(t *testing.T) {
	f := newFixture(t, "")
	rec := f.get(t, "/api/supervisors", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	payload := decode[struct {
		Supervisors []store.Supervisor `json:"supervisors"`
	}](t, rec)
	if len(payload.Supervisors) != 1 || payload.Supervisors[0].Name != "worker" {
		t.Errorf("supervisors = %+v", payload.Supervisors)
	}
}

func TestLogWindowEndpoint(t *testing.T) {
	lines := []string{
		"2024-12-10 08:00:01 one",
		"2024-12-10 08:00:02 two",
		"2024-12-10 08:00:03 three",
		"2024-12-10 08:00:04 four",
	}
	f := newFixture(t, "", lines...)

	rec := f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs?limit=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	window := decode[logs.Window](t, rec)
	if window.TotalLines != 4 || len(window.Entries) != 2 {
		t.Fatalf("window = %+v", window)
	}
	if window.Entries[0].Message != "three" || window.Entries[1].Message != "four" {
		t.Errorf("entries = %+v", window.Entries)
	}
	if !window.HasMore || window.OldestLineLoaded != 3 {
		t.Errorf("pagination cursors = %+v", window)
	}

	older := decode[logs.Window](t, f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs?limit=2&before_line=3", nil))
	if older.Entries[0].Message != "one" || older.Entries[1].Message != "two" {
		t.Errorf("older entries = %+v", older.Entries)
	}
	if older.HasMore {
		t.Error("older page hasMore = true, want false")
	}
}

func TestLogWindowFilters(t *testing.T) {
	f := newFixture(t, "",
		"2024-12-10 08:00:01 ERROR boom",
		"2024-12-10 08:00:02 fine",
		"2024-12-11 08:00:03 ERROR later boom",
	)

	rec := f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs?level=error&end_date=2024-12-10", nil)
	window := decode[logs.Window](t, rec)
	if len(window.Entries) != 1 || window.Entries[0].LineNumber != 1 {
		t.Errorf("filtered window = %+v", window)
	}

	if rec := f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs?start_date=12-01-2024", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", rec.Code)
	}
}

func TestTailEndpoint(t *testing.T) {
	f := newFixture(t, "", "one", "two", "three", "four", "five")

	rec := f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs/tail?last_line=3&fetch=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	result := decode[logs.TailResult](t, rec)
	if result.NewCount != 2 || result.TotalLines != 5 {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Entries) != 2 || result.Entries[0].Message != "four" {
		t.Errorf("entries = %+v", result.Entries)
	}

	counted := decode[logs.TailResult](t, f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs/tail?last_line=5", nil))
	if counted.NewCount != 0 || counted.Entries != nil {
		t.Errorf("count-only result = %+v", counted)
	}
}

func TestMissingLogFileYieldsEmptyWindow(t *testing.T) {
	f := newFixture(t, "")
	if _, err := f.catalog.UpdateSupervisor(context.Background(), f.supervisor.ID, "/nonexistent/place.log", "default"); err != nil {
		t.Fatalf("update supervisor: %v", err)
	}

	window := decode[logs.Window](t, f.get(t, "/api/supervisors/"+f.supervisor.ID+"/logs", nil))
	if window.TotalLines != 0 || window.HasMore || len(window.Entries) != 0 {
		t.Errorf("window = %+v, want empty", window)
	}
}

func TestUnknownSupervisor(t *testing.T) {
	f := newFixture(t, "")
	if rec := f.get(t, "/api/supervisors/does-not-exist/logs", nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestBearerTokenAuth(t *testing.T) {
	f := newFixture(t, "secret")

	if rec := f.get(t, "/api/supervisors", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", rec.Code)
	}
	if rec := f.get(t, "/api/supervisors", map[string]string{"Authorization": "Bearer wrong"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", rec.Code)
	}
	if rec := f.get(t, "/api/supervisors", map[string]string{"Authorization": "Bearer secret"}); rec.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", rec.Code)
	}
	// Health stays open for liveness probes.
	if rec := f.get(t, "/api/health", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}
