package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logdeck/internal/logparse"
	"logdeck/internal/store"
)

func newSupervisorCommand(ctx *commandContext) *cobra.Command {
	supervisorCmd := &cobra.Command{
		Use:     "supervisor",
		Aliases: []string{"sup"},
		Short:   "Manage supervisors",
	}

	supervisorCmd.AddCommand(newSupervisorAddCommand(ctx))
	supervisorCmd.AddCommand(newSupervisorListCommand(ctx))
	supervisorCmd.AddCommand(newSupervisorRemoveCommand(ctx))

	return supervisorCmd
}

func newSupervisorAddCommand(ctx *commandContext) *cobra.Command {
	var (
		template   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "add <project> <name> <log-path>",
		Short: "Register a supervisor log file under a project",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(template) == "" {
				template = cfg.Logs.DefaultTemplate
			}
			return ctx.withStore(func(catalog *store.Store) error {
				project, err := resolveProject(cmd.Context(), catalog, args[0])
				if err != nil {
					return err
				}
				supervisor, err := catalog.CreateSupervisor(cmd.Context(), project.ID, args[1], args[2], template)
				if err != nil {
					return fmt.Errorf("create supervisor: %w", err)
				}
				if jsonOutput {
					return writeJSON(cmd, supervisor)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Created supervisor %q in project %q\n", supervisor.Name, project.Name)
				fmt.Fprintf(out, "ID:       %s\n", supervisor.ID)
				fmt.Fprintf(out, "Log path: %s\n", supervisor.LogPath)
				fmt.Fprintf(out, "Template: %s\n", supervisor.Template)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "",
		fmt.Sprintf("Log template (%s); defaults to the configured one", strings.Join(logparse.TemplateNames(), ", ")))
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func newSupervisorListCommand(ctx *commandContext) *cobra.Command {
	var (
		projectName string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supervisors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(catalog *store.Store) error {
				var projectID int64
				projectNames := map[int64]string{}

				projects, err := catalog.ListProjects(cmd.Context())
				if err != nil {
					return fmt.Errorf("list projects: %w", err)
				}
				for _, project := range projects {
					projectNames[project.ID] = project.Name
				}

				if strings.TrimSpace(projectName) != "" {
					project, err := resolveProject(cmd.Context(), catalog, projectName)
					if err != nil {
						return err
					}
					projectID = project.ID
				}

				supervisors, err := catalog.ListSupervisors(cmd.Context(), projectID)
				if err != nil {
					return fmt.Errorf("list supervisors: %w", err)
				}
				if jsonOutput {
					return writeJSON(cmd, map[string]any{"supervisors": supervisors})
				}
				if len(supervisors) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No supervisors registered")
					return nil
				}
				rows := make([][]string, 0, len(supervisors))
				for _, supervisor := range supervisors {
					rows = append(rows, []string{
						supervisor.ID,
						projectNames[supervisor.ProjectID],
						supervisor.Name,
						supervisor.Template,
						supervisor.LogPath,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Project", "Name", "Template", "Log Path"},
					rows,
					nil,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", "", "Only show supervisors of this project")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func newSupervisorRemoveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <supervisor>",
		Short: "Remove a supervisor by ID or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(catalog *store.Store) error {
				supervisor, err := resolveSupervisor(cmd.Context(), catalog, args[0])
				if err != nil {
					return err
				}
				if err := catalog.DeleteSupervisor(cmd.Context(), supervisor.ID); err != nil {
					return fmt.Errorf("delete supervisor: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed supervisor %q\n", supervisor.Name)
				return nil
			})
		},
	}
	return cmd
}
