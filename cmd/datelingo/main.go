// Command datelingo extracts date/time expressions from the text
// given on the command line and prints how each one resolves.
//
//	datelingo "next Friday at 3pm"
//	datelingo --timezone America/Los_Angeles --ref 2025-01-06T00:00:00Z "3 days ago"
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/datelingo/datelingo"
	"github.com/datelingo/datelingo/en"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datelingo [text]",
		Short: "Extract date/time expressions from natural-language text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, strings.Join(args, " "))
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("timezone", "UTC", "IANA timezone name, e.g. America/Los_Angeles")
	cmd.Flags().String("ref", "", "reference instant as RFC3339; defaults to now")
	cmd.Flags().Bool("strict", false, "restrict to explicit numeric/calendar formats")
	cmd.Flags().Bool("forward", false, "bias ambiguous dates to the future")
	cmd.Flags().Bool("debug", false, "trace parser and refiner activity to stderr")

	viper.SetEnvPrefix("datelingo")
	viper.AutomaticEnv()
	for _, flag := range []string{"timezone", "ref", "strict", "forward"} {
		_ = viper.BindPFlag(flag, cmd.Flags().Lookup(flag))
	}
	return cmd
}

func run(cmd *cobra.Command, text string) error {
	loc, err := time.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		return fmt.Errorf("unknown timezone: %w", err)
	}

	refInstant := time.Now()
	if refStr := viper.GetString("ref"); refStr != "" {
		refInstant, err = time.Parse(time.RFC3339, refStr)
		if err != nil {
			return fmt.Errorf("invalid --ref: %w", err)
		}
	}
	ref := datelingo.NewReference(refInstant.In(loc))

	opt := datelingo.Option{ForwardDate: viper.GetBool("forward")}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg := en.Casual()
	if viper.GetBool("strict") {
		cfg = en.Strict()
	}

	results := datelingo.Parse(text, ref, cfg, opt)
	if len(results) == 0 {
		fmt.Println("no date/time expressions found")
		return nil
	}

	table := termtables.CreateTable()
	table.AddHeaders("Text", "Index", "Start", "End", "Certain")
	for _, r := range results {
		start, err := r.Time()
		if err != nil {
			continue
		}
		end := ""
		if r.IsRange() {
			if et, err := r.EndTime(); err == nil {
				end = et.Format(time.RFC3339)
			}
		}
		table.AddRow(r.Text, r.Index, start.Format(time.RFC3339), end, certainNames(r))
	}
	fmt.Println(table.Render())
	return nil
}

func certainNames(r *datelingo.Result) string {
	fields := r.Start.CertainFields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
