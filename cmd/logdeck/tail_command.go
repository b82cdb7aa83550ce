package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logdeck/internal/logparse"
	"logdeck/internal/logs"
)

func newTailCommand(ctx *commandContext) *cobra.Command {
	var (
		lastLine   int
		countOnly  bool
		follow     bool
		fromStart  bool
		level      string
		search     string
		template   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "tail <supervisor|file>",
		Short: "Report or stream log lines added since a cursor",
		Long: "Tail compares the file against a cursor (--last, the count of\n" +
			"non-empty lines already seen) and prints what was added since.\n" +
			"With --follow it streams new lines until interrupted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveLogTarget(cmd.Context(), ctx, args[0], template)
			if err != nil {
				return err
			}
			filter, err := filterFromFlags(level, search, "", "")
			if err != nil {
				return err
			}

			reader := logs.NewReader(nil)
			if follow {
				return followTarget(cmd, reader, target, filter, fromStart)
			}

			result := reader.Tail(target.Path, logs.TailOptions{
				Template:     target.Template,
				LastLine:     lastLine,
				FetchEntries: !countOnly,
				Filter:       filter,
			})

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, entry := range result.Entries {
				fmt.Fprintln(out, renderEntry(entry, colorize))
			}
			fmt.Fprintf(out, "%d new of %d total lines; next cursor %d\n",
				result.NewCount, result.TotalLines, result.TotalLines)
			return nil
		},
	}

	cmd.Flags().IntVar(&lastLine, "last", 0, "Tail cursor: count of non-empty lines already consumed")
	cmd.Flags().BoolVar(&countOnly, "count-only", false, "Only report counts, do not print entries")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Stream new lines until interrupted")
	cmd.Flags().BoolVar(&fromStart, "from-start", false, "With --follow, replay the whole file first")
	cmd.Flags().StringVarP(&level, "level", "l", "", "Only show entries of this level (error, warning, info, debug)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring match against raw lines")
	cmd.Flags().StringVarP(&template, "template", "t", "", "Override the log template")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")

	return cmd
}

func followTarget(cmd *cobra.Command, reader *logs.Reader, target logTarget, filter logs.Filter, fromStart bool) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	err := reader.Follow(signalCtx, target.Path, logs.FollowOptions{
		Template:  target.Template,
		Filter:    filter,
		FromStart: fromStart,
	}, func(entry logparse.Entry) error {
		fmt.Fprintln(out, renderEntry(entry, colorize))
		return nil
	})
	if signalCtx.Err() != nil {
		return nil
	}
	return err
}
