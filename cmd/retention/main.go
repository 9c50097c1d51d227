// Package main provides the CLI entry point for the retention tracker.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/chart"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/roster"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/store"
)

var (
	configPath   string
	workbookPath string
	verbose      bool
	memberID     string
	chartOutput  string
	chartTopN    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "retention",
		Short:        "Track member points and event attendance in an Excel workbook",
		Long:         `retention keeps a small group's points and event attendance in a single xlsx workbook and derives a deterministic leaderboard from it.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (yaml)")
	rootCmd.PersistentFlags().StringVarP(&workbookPath, "file", "f", "", "Workbook file path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		leaderboardCmd(),
		awardCmd(),
		addMemberCmd(),
		attendCmd(),
		sheetsCmd(),
		chartCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (Config, *tracker.Tracker, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return cfg, nil, err
	}
	if workbookPath != "" {
		cfg.Workbook = workbookPath
	}

	level := slog.LevelInfo
	if verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, tracker.New(cfg.Workbook, logger), nil
}

func leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the ranked leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tr, err := setup()
			if err != nil {
				return err
			}
			entries, err := tr.Leaderboard()
			if err != nil {
				return friendly(err)
			}
			if len(entries) == 0 {
				fmt.Println("No member data to rank.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tID\tNAME\tPOINTS\tEVENTS")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", e.Rank, e.ID, e.Name, e.Points, e.EventsAttended)
			}
			return w.Flush()
		},
	}
}

func awardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "award [id] [delta]",
		Short: "Add (or subtract) points for a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid point delta %q", args[1])
			}
			if err := roster.CheckDelta(delta); err != nil {
				// Advisory only; proceed after warning.
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}

			_, tr, err := setup()
			if err != nil {
				return err
			}
			if err := tr.AwardPoints(args[0], delta); err != nil {
				return friendly(err)
			}
			fmt.Printf("Logged %+d points for member %s.\n", delta, args[0])
			return nil
		},
	}
}

func addMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-member [name] [points]",
		Short: "Add a member, generating an id unless --id is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var basePoints any
			if len(args) == 2 {
				basePoints = args[1]
			}

			_, tr, err := setup()
			if err != nil {
				return err
			}
			id, err := tr.AddMember(memberID, args[0], basePoints)
			if err != nil {
				return friendly(err)
			}
			fmt.Printf("Added member %s with id %s.\n", args[0], id)
			return nil
		},
	}
	cmd.Flags().StringVar(&memberID, "id", "", "Member id (generated when empty)")
	return cmd
}

func attendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attend [event] [id...]",
		Short: "Record event attendance for one or more members",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tr, err := setup()
			if err != nil {
				return err
			}
			if err := tr.LogAttendance(args[0], args[1:]); err != nil {
				return friendly(err)
			}
			fmt.Printf("Recorded %d attendee(s) for %q.\n", len(args[1:]), args[0])
			return nil
		},
	}
}

func sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List the sheets in the workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tr, err := setup()
			if err != nil {
				return err
			}
			names, err := tr.SheetNames()
			if err != nil {
				return friendly(err)
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the top members as a PNG bar chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, tr, err := setup()
			if err != nil {
				return err
			}
			output := cfg.Chart.Output
			if chartOutput != "" {
				output = chartOutput
			}
			topN := cfg.Chart.TopN
			if chartTopN > 0 {
				topN = chartTopN
			}

			entries, err := tr.Leaderboard()
			if err != nil {
				return friendly(err)
			}
			png, err := chart.TopMembers(entries, topN)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Printf("Wrote %s.\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&chartOutput, "output", "o", "", "Output PNG path")
	cmd.Flags().IntVar(&chartTopN, "top", 0, "Number of members to draw")
	return cmd
}

// friendly rewords store conditions into actionable messages.
func friendly(err error) error {
	switch {
	case errors.Is(err, store.ErrLocked):
		return fmt.Errorf("%w\nClose the workbook in the other application and try again.", err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w\nCheck the workbook path (see --file or the config's workbook setting).", err)
	case errors.Is(err, store.ErrCorrupt):
		return fmt.Errorf("%w\nThe file does not look like a valid xlsx workbook.", err)
	}
	return err
}
