package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-planner/internal/planner"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <line>",
		Short:   "Parse a planner line into a task",
		Example: `  plannerctl parse "Yoga @6am to 7am $high %health #fitness"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validFormat(); err != nil {
				return err
			}
			task, err := opts.parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, task)
			}
			fmt.Fprintf(out, "title:    %s\n", task.Title)
			fmt.Fprintf(out, "date:     %s\n", task.Date.Format("2006-01-02 (Mon)"))
			fmt.Fprintf(out, "time:     %s-%s (%s)\n", task.Start.Format("15:04"), task.End.Format("15:04"), task.Duration())
			fmt.Fprintf(out, "priority: %s (rank %d)\n", task.Priority, task.PriorityRank())
			fmt.Fprintf(out, "category: %s %s\n", task.Category.Icon(), task.Category)
			if len(task.Tags) > 0 {
				fmt.Fprintf(out, "tags:     #%s\n", strings.Join(task.Tags, " #"))
			}
			if task.Quadrant != planner.QuadrantNone {
				fmt.Fprintf(out, "quadrant: %s %s\n", task.Quadrant, task.Quadrant.Label())
			}
			return nil
		},
	}
}

func newSlotsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "slots <line>",
		Short: "Show the half-hour slots a planner line fills",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validFormat(); err != nil {
				return err
			}
			task, err := opts.parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			slots := planner.Expand(task)
			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, slots)
			}
			for _, s := range slots {
				fmt.Fprintf(out, "%s #%02d %s-%s %s\n", s.Date.Format("2006-01-02"), s.Index, s.Start.Format("15:04"), s.End.Format("15:04"), s.Title)
			}
			fmt.Fprintf(out, "%d slot(s)\n", len(slots))
			return nil
		},
	}
}
