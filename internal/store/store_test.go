package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"logdeck/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProjectCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	project, err := s.CreateProject(ctx, "webshop")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.ID == 0 || project.Name != "webshop" {
		t.Fatalf("unexpected project: %+v", project)
	}

	byName, err := s.GetProjectByName(ctx, "webshop")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName.ID != project.ID {
		t.Errorf("lookup id = %d, want %d", byName.ID, project.ID)
	}

	if _, err := s.CreateProject(ctx, "webshop"); err == nil {
		t.Error("duplicate project name should fail")
	}
	if _, err := s.CreateProject(ctx, "  "); err == nil {
		t.Error("blank project name should fail")
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(projects))
	}

	if err := s.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if err := s.DeleteProject(ctx, project.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestSupervisorCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	project, err := s.CreateProject(ctx, "webshop")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	supervisor, err := s.CreateSupervisor(ctx, project.ID, "queue-worker", "/var/log/worker.log", "laravel")
	if err != nil {
		t.Fatalf("create supervisor: %v", err)
	}
	if supervisor.ID == "" {
		t.Fatal("supervisor id not assigned")
	}
	if supervisor.Template != "laravel" {
		t.Errorf("template = %q, want laravel", supervisor.Template)
	}

	fetched, err := s.GetSupervisor(ctx, supervisor.ID)
	if err != nil {
		t.Fatalf("get supervisor: %v", err)
	}
	if fetched.LogPath != "/var/log/worker.log" || fetched.ProjectID != project.ID {
		t.Errorf("unexpected supervisor: %+v", fetched)
	}

	updated, err := s.UpdateSupervisor(ctx, supervisor.ID, "/var/log/worker-2.log", "fastapi")
	if err != nil {
		t.Fatalf("update supervisor: %v", err)
	}
	if updated.LogPath != "/var/log/worker-2.log" || updated.Template != "fastapi" {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := s.DeleteSupervisor(ctx, supervisor.ID); err != nil {
		t.Fatalf("delete supervisor: %v", err)
	}
	if _, err := s.GetSupervisor(ctx, supervisor.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
}

func TestSupervisorValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	project, err := s.CreateProject(ctx, "webshop")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	if _, err := s.CreateSupervisor(ctx, project.ID, "api", "/var/log/api.log", "nginx"); err == nil {
		t.Error("unknown template should be rejected")
	}
	if _, err := s.CreateSupervisor(ctx, project.ID, "", "/var/log/api.log", ""); err == nil {
		t.Error("blank name should be rejected")
	}
	if _, err := s.CreateSupervisor(ctx, project.ID, "api", "", ""); err == nil {
		t.Error("blank log path should be rejected")
	}

	supervisor, err := s.CreateSupervisor(ctx, project.ID, "api", "/var/log/api.log", "")
	if err != nil {
		t.Fatalf("create with empty template: %v", err)
	}
	if supervisor.Template != "default" {
		t.Errorf("empty template stored as %q, want default", supervisor.Template)
	}

	if _, err := s.CreateSupervisor(ctx, project.ID, "api", "/var/log/api2.log", ""); err == nil {
		t.Error("duplicate supervisor name within project should fail")
	}
}

func TestListSupervisorsByProject(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.CreateProject(ctx, "webshop")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	second, err := s.CreateProject(ctx, "blog")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := s.CreateSupervisor(ctx, first.ID, "worker", "/var/log/a.log", ""); err != nil {
		t.Fatalf("create supervisor: %v", err)
	}
	if _, err := s.CreateSupervisor(ctx, second.ID, "scheduler", "/var/log/b.log", ""); err != nil {
		t.Fatalf("create supervisor: %v", err)
	}

	all, err := s.ListSupervisors(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d, want 2", len(all))
	}

	scoped, err := s.ListSupervisors(ctx, first.ID)
	if err != nil {
		t.Fatalf("list scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Name != "worker" {
		t.Errorf("scoped = %+v, want only worker", scoped)
	}
}

func TestDeleteProjectCascadesSupervisors(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	project, err := s.CreateProject(ctx, "webshop")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	supervisor, err := s.CreateSupervisor(ctx, project.ID, "worker", "/var/log/a.log", "")
	if err != nil {
		t.Fatalf("create supervisor: %v", err)
	}

	if err := s.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if _, err := s.GetSupervisor(ctx, supervisor.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("supervisor survived cascade: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.CreateProject(context.Background(), "webshop"); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	projects, err := reopened.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "webshop" {
		t.Errorf("projects after reopen = %+v", projects)
	}
}
