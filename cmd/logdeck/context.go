package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"logdeck/internal/config"
	"logdeck/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	catalog, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer catalog.Close()
	return fn(catalog)
}

// resolveProject accepts a project name. The catalog keys projects by
// name, so lookup is a single query.
func resolveProject(ctx context.Context, catalog *store.Store, name string) (*store.Project, error) {
	project, err := catalog.GetProjectByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("project %q not found; create it with `logdeck project add %s`", name, name)
	}
	if err != nil {
		return nil, fmt.Errorf("look up project: %w", err)
	}
	return project, nil
}

// resolveSupervisor accepts either a supervisor ID or a name. Names are
// only unique per project, so a bare name that matches more than one
// supervisor is rejected with a hint to use the ID.
func resolveSupervisor(ctx context.Context, catalog *store.Store, ref string) (*store.Supervisor, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("supervisor reference is required")
	}

	supervisor, err := catalog.GetSupervisor(ctx, ref)
	if err == nil {
		return supervisor, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("look up supervisor: %w", err)
	}

	all, err := catalog.ListSupervisors(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list supervisors: %w", err)
	}
	var matches []store.Supervisor
	for _, candidate := range all {
		if strings.EqualFold(candidate.Name, ref) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("supervisor %q not found", ref)
	case 1:
		match := matches[0]
		return &match, nil
	default:
		return nil, fmt.Errorf("supervisor name %q is ambiguous across projects; use its ID", ref)
	}
}
