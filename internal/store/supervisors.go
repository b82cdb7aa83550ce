package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"logdeck/internal/logparse"
)

const supervisorColumns = "id, project_id, name, log_path, template, created_at, updated_at"

// CreateSupervisor registers a supervisor under a project. An empty
// template falls back to "default"; unknown templates are rejected.
func (s *Store) CreateSupervisor(ctx context.Context, projectID int64, name, logPath, template string) (*Supervisor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("supervisor name is required")
	}
	logPath = strings.TrimSpace(logPath)
	if logPath == "" {
		return nil, errors.New("supervisor log path is required")
	}
	parsed, err := logparse.ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	id := uuid.NewString()

	if _, err := s.execWithRetry(ctx,
		`INSERT INTO supervisors (id, project_id, name, log_path, template, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, projectID, name, logPath, parsed.String(), timestamp, timestamp,
	); err != nil {
		return nil, fmt.Errorf("insert supervisor: %w", err)
	}

	return &Supervisor{
		ID:        id,
		ProjectID: projectID,
		Name:      name,
		LogPath:   logPath,
		Template:  parsed.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetSupervisor returns one supervisor by id.
func (s *Store) GetSupervisor(ctx context.Context, id string) (*Supervisor, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT "+supervisorColumns+" FROM supervisors WHERE id = ?", id)
	return scanSupervisor(row)
}

// ListSupervisors returns supervisors, optionally restricted to one
// project, ordered by name.
func (s *Store) ListSupervisors(ctx context.Context, projectID int64) ([]Supervisor, error) {
	query := "SELECT " + supervisorColumns + " FROM supervisors ORDER BY name"
	args := []any{}
	if projectID > 0 {
		query = "SELECT " + supervisorColumns + " FROM supervisors WHERE project_id = ? ORDER BY name"
		args = append(args, projectID)
	}

	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supervisors: %w", err)
	}
	defer rows.Close()

	var supervisors []Supervisor
	for rows.Next() {
		supervisor, err := scanSupervisorRow(rows)
		if err != nil {
			return nil, err
		}
		supervisors = append(supervisors, *supervisor)
	}
	return supervisors, rows.Err()
}

// UpdateSupervisor changes a supervisor's log path and template.
func (s *Store) UpdateSupervisor(ctx context.Context, id, logPath, template string) (*Supervisor, error) {
	logPath = strings.TrimSpace(logPath)
	if logPath == "" {
		return nil, errors.New("supervisor log path is required")
	}
	parsed, err := logparse.ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	res, err := s.execWithRetry(ctx,
		"UPDATE supervisors SET log_path = ?, template = ?, updated_at = ? WHERE id = ?",
		logPath, parsed.String(), time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update supervisor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("supervisor %s: %w", id, ErrNotFound)
	}
	return s.GetSupervisor(ctx, id)
}

// DeleteSupervisor removes one supervisor.
func (s *Store) DeleteSupervisor(ctx context.Context, id string) error {
	res, err := s.execWithRetry(ctx, "DELETE FROM supervisors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete supervisor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("supervisor %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSupervisor(row *sql.Row) (*Supervisor, error) {
	supervisor, err := scanSupervisorRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan supervisor: %w", err)
	}
	return supervisor, nil
}

func scanSupervisorRow(row rowScanner) (*Supervisor, error) {
	var (
		supervisor Supervisor
		created    string
		updated    string
	)
	if err := row.Scan(
		&supervisor.ID,
		&supervisor.ProjectID,
		&supervisor.Name,
		&supervisor.LogPath,
		&supervisor.Template,
		&created,
		&updated,
	); err != nil {
		return nil, err
	}
	supervisor.CreatedAt = parseStoredTime(created)
	supervisor.UpdatedAt = parseStoredTime(updated)
	return &supervisor, nil
}
