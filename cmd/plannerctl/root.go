package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"daily-planner/internal/planner"
	"daily-planner/pkg/datemath"
)

type options struct {
	timezone string
	date     string
	lenient  bool
	format   string
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &options{now: time.Now}

	root := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Try planner lines from the terminal",
		Long:          "Parse planner lines and show the half-hour slots they fill. Nothing is saved.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.timezone, "tz", planner.DefaultTimezone, "Civil timezone lines are read in")
	root.PersistentFlags().StringVarP(&opts.date, "date", "d", "", "UI date: YYYY-MM-DD, today, tomorrow or yesterday (default: today)")
	root.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "Accept bare 24-hour times such as 21")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or text")

	root.AddCommand(newParseCmd(opts), newSlotsCmd(opts))
	return root
}

// parse resolves the line against the configured timezone and UI date.
func (o *options) parse(line string) (planner.ParsedTask, error) {
	dates, err := datemath.NewParser(o.timezone)
	if err != nil {
		return planner.ParsedTask{}, fmt.Errorf("timezone %q: %w", o.timezone, err)
	}
	uiDate, err := dates.ParseDate(o.date, o.now())
	if err != nil {
		return planner.ParsedTask{}, fmt.Errorf("date %q: %w", o.date, err)
	}

	mode := planner.TimeModeStrict
	if o.lenient {
		mode = planner.TimeModeLenient
	}
	return planner.New(dates, mode).Parse(line, uiDate)
}

func (o *options) validFormat() error {
	if o.format != "json" && o.format != "text" {
		return fmt.Errorf("unknown format %q: use json or text", o.format)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
