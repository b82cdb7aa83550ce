package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"logdeck/internal/store"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	projectCmd.AddCommand(newProjectAddCommand(ctx))
	projectCmd.AddCommand(newProjectListCommand(ctx))
	projectCmd.AddCommand(newProjectRemoveCommand(ctx))

	return projectCmd
}

func newProjectAddCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(catalog *store.Store) error {
				project, err := catalog.CreateProject(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("create project: %w", err)
				}
				if jsonOutput {
					return writeJSON(cmd, project)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %q (id %d)\n", project.Name, project.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func newProjectListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(catalog *store.Store) error {
				projects, err := catalog.ListProjects(cmd.Context())
				if err != nil {
					return fmt.Errorf("list projects: %w", err)
				}
				if jsonOutput {
					return writeJSON(cmd, map[string]any{"projects": projects})
				}
				if len(projects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects registered")
					return nil
				}
				rows := make([][]string, 0, len(projects))
				for _, project := range projects {
					rows = append(rows, []string{
						strconv.FormatInt(project.ID, 10),
						project.Name,
						project.CreatedAt.Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Created"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func newProjectRemoveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a project and its supervisors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(catalog *store.Store) error {
				project, err := resolveProject(cmd.Context(), catalog, args[0])
				if err != nil {
					return err
				}
				if err := catalog.DeleteProject(cmd.Context(), project.ID); err != nil {
					return fmt.Errorf("delete project: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed project %q\n", project.Name)
				return nil
			})
		},
	}
	return cmd
}
