package main

import (
	"encoding/json"
	"testing"

	"logdeck/internal/store"
)

func TestProjectAddListRemove(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "project", "add", "webshop")
	if err != nil {
		t.Fatalf("project add: %v", err)
	}
	requireContains(t, out, `Created project "webshop"`)

	// Project names are unique.
	if _, _, err := runCLI(t, env, "project", "add", "webshop"); err == nil {
		t.Fatal("expected error for duplicate project name")
	}

	out, _, err = runCLI(t, env, "project", "list")
	if err != nil {
		t.Fatalf("project list: %v", err)
	}
	requireContains(t, out, "webshop")

	out, _, err = runCLI(t, env, "project", "list", "--json")
	if err != nil {
		t.Fatalf("project list --json: %v", err)
	}
	var payload struct {
		Projects []store.Project `json:"projects"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(payload.Projects) != 1 || payload.Projects[0].Name != "webshop" {
		t.Fatalf("projects = %+v", payload.Projects)
	}

	if _, _, err := runCLI(t, env, "project", "remove", "webshop"); err != nil {
		t.Fatalf("project remove: %v", err)
	}
	out, _, err = runCLI(t, env, "project", "list")
	if err != nil {
		t.Fatalf("project list after remove: %v", err)
	}
	requireContains(t, out, "No projects registered")
}

func TestProjectRemoveUnknown(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env, "project", "remove", "ghost"); err == nil {
		t.Fatal("expected error for unknown project")
	}
}
