package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CreateProject inserts a new project.
func (s *Store) CreateProject(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name is required")
	}

	now := time.Now().UTC()
	res, err := s.execWithRetry(ctx,
		"INSERT INTO projects (name, created_at) VALUES (?, ?)",
		name, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &Project{ID: id, Name: name, CreatedAt: now}, nil
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (*Project, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT id, name, created_at FROM projects WHERE id = ?", id)
	return scanProject(row)
}

// GetProjectByName returns one project by its unique name.
func (s *Store) GetProjectByName(ctx context.Context, name string) (*Project, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT id, name, created_at FROM projects WHERE name = ?", strings.TrimSpace(name))
	return scanProject(row)
}

// ListProjects returns all projects ordered by name.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		"SELECT id, name, created_at FROM projects ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var (
			project Project
			created string
		)
		if err := rows.Scan(&project.ID, &project.Name, &created); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		project.CreatedAt = parseStoredTime(created)
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project and, via cascade, its supervisors.
func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	res, err := s.execWithRetry(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanProject(row *sql.Row) (*Project, error) {
	var (
		project Project
		created string
	)
	if err := row.Scan(&project.ID, &project.Name, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	project.CreatedAt = parseStoredTime(created)
	return &project, nil
}

func parseStoredTime(value string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
