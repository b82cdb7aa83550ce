package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"logdeck/internal/logs"
)

func newReadCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		beforeLine int
		level      string
		search     string
		since      string
		until      string
		template   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "read <supervisor|file>",
		Short: "Read the newest window of a log file",
		Long: "Read shows the newest entries of a supervisor's log file in\n" +
			"chronological order. Repeat with --before set to the reported\n" +
			"oldest line to page further into the past.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target, err := resolveLogTarget(cmd.Context(), ctx, args[0], template)
			if err != nil {
				return err
			}
			filter, err := filterFromFlags(level, search, since, until)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Logs.PageSize
			}

			reader := logs.NewReader(nil)
			window := reader.ReadBackward(target.Path, logs.BackwardOptions{
				Limit:      limit,
				BeforeLine: beforeLine,
				Template:   target.Template,
				Filter:     filter,
			})

			if jsonOutput {
				return writeJSON(cmd, window)
			}

			out := cmd.OutOrStdout()
			if len(window.Entries) == 0 {
				fmt.Fprintf(out, "%s: no matching entries\n", target.Label)
				return nil
			}
			colorize := shouldColorize(out)
			for _, entry := range window.Entries {
				fmt.Fprintln(out, renderEntry(entry, colorize))
			}
			fmt.Fprintf(out, "\nLines %d-%d of %d", window.OldestLineLoaded, window.NewestLineLoaded, window.TotalLines)
			if window.HasMore {
				fmt.Fprintf(out, " (older entries available; rerun with --before %d)", window.OldestLineLoaded)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries per window; defaults to the configured page size")
	cmd.Flags().IntVar(&beforeLine, "before", 0, "Only show lines numbered below this; use for paging backward")
	cmd.Flags().StringVarP(&level, "level", "l", "", "Only show entries of this level (error, warning, info, debug)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring match against raw lines")
	cmd.Flags().StringVar(&since, "since", "", "Only show entries on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "Only show entries on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&template, "template", "t", "", "Override the log template")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the window as JSON")

	return cmd
}
