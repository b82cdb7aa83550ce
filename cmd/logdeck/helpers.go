package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"logdeck/internal/logparse"
	"logdeck/internal/logs"
	"logdeck/internal/store"
)

// logTarget is a resolved log source for the read and tail commands.
type logTarget struct {
	Path     string
	Template logparse.Template
	Label    string
}

// resolveLogTarget turns a command argument into a readable log source.
// An argument naming an existing file is used directly; anything else is
// treated as a supervisor ID or name and looked up in the catalog. The
// template flag, when set, wins over the supervisor's stored template.
func resolveLogTarget(ctx context.Context, cmdCtx *commandContext, ref, templateFlag string) (logTarget, error) {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return logTarget{}, err
	}

	defaultTemplate, err := logparse.ParseTemplate(cfg.Logs.DefaultTemplate)
	if err != nil {
		defaultTemplate = logparse.TemplateDefault
	}

	override := strings.TrimSpace(templateFlag)
	if info, statErr := os.Stat(ref); statErr == nil && !info.IsDir() {
		template := defaultTemplate
		if override != "" {
			template, err = logparse.ParseTemplate(override)
			if err != nil {
				return logTarget{}, err
			}
		}
		return logTarget{Path: ref, Template: template, Label: ref}, nil
	}

	var target logTarget
	err = cmdCtx.withStore(func(catalog *store.Store) error {
		supervisor, err := resolveSupervisor(ctx, catalog, ref)
		if err != nil {
			return err
		}
		template := defaultTemplate
		if override != "" {
			template, err = logparse.ParseTemplate(override)
			if err != nil {
				return err
			}
		} else if stored, err := logparse.ParseTemplate(supervisor.Template); err == nil {
			template = stored
		}
		target = logTarget{Path: supervisor.LogPath, Template: template, Label: supervisor.Name}
		return nil
	})
	return target, err
}

// filterFromFlags assembles the shared filter flags of read and tail.
func filterFromFlags(level, search, since, until string) (logs.Filter, error) {
	filter := logs.Filter{
		Search: strings.TrimSpace(search),
		Level:  strings.ToLower(strings.TrimSpace(level)),
	}
	if value := strings.TrimSpace(since); value != "" {
		bound, err := logs.ParseDateBound(value)
		if err != nil {
			return logs.Filter{}, fmt.Errorf("invalid --since: %w", err)
		}
		filter.StartDate = bound
	}
	if value := strings.TrimSpace(until); value != "" {
		bound, err := logs.ParseDateBound(value)
		if err != nil {
			return logs.Filter{}, fmt.Errorf("invalid --until: %w", err)
		}
		filter.EndDate = bound
	}
	return filter, nil
}
