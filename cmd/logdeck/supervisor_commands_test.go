package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"logdeck/internal/store"
)

func TestSupervisorLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := filepath.Join(env.baseDir, "worker.log")

	if _, _, err := runCLI(t, env, "project", "add", "webshop"); err != nil {
		t.Fatalf("project add: %v", err)
	}

	out, _, err := runCLI(t, env, "supervisor", "add", "webshop", "worker", logPath, "--template", "laravel", "--json")
	if err != nil {
		t.Fatalf("supervisor add: %v", err)
	}
	var created store.Supervisor
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if created.Name != "worker" || created.Template != "laravel" || created.LogPath != logPath {
		t.Fatalf("supervisor = %+v", created)
	}

	out, _, err = runCLI(t, env, "supervisor", "list")
	if err != nil {
		t.Fatalf("supervisor list: %v", err)
	}
	requireContains(t, out, "worker")
	requireContains(t, out, "webshop")
	requireContains(t, out, "laravel")

	out, _, err = runCLI(t, env, "supervisor", "list", "--project", "webshop")
	if err != nil {
		t.Fatalf("supervisor list --project: %v", err)
	}
	requireContains(t, out, "worker")

	if _, _, err := runCLI(t, env, "supervisor", "remove", "worker"); err != nil {
		t.Fatalf("supervisor remove: %v", err)
	}
	out, _, err = runCLI(t, env, "supervisor", "list")
	if err != nil {
		t.Fatalf("supervisor list after remove: %v", err)
	}
	requireContains(t, out, "No supervisors registered")
}

func TestSupervisorAddRejectsBadTemplate(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env, "project", "add", "webshop"); err != nil {
		t.Fatalf("project add: %v", err)
	}
	logPath := filepath.Join(env.baseDir, "worker.log")
	if _, _, err := runCLI(t, env, "supervisor", "add", "webshop", "worker", logPath, "--template", "log4j"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestSupervisorAddRequiresProject(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := filepath.Join(env.baseDir, "worker.log")
	if _, _, err := runCLI(t, env, "supervisor", "add", "ghost", "worker", logPath); err == nil {
		t.Fatal("expected error for missing project")
	}
}
