package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"travel-planner/internal/itinerary"
	"travel-planner/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "segment [file]",
		Short: "Split itinerary text into day buckets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSegment,
	}
	RootCmd.AddCommand(cmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	raw, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return printDays(cmd.OutOrStdout(), itinerary.Segment(raw))
}

func printDays(w io.Writer, days []model.DayBucket) error {
	if formatFlag == formatJSON {
		return printJSON(w, days)
	}
	for i, d := range days {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, d.Day)
		for _, line := range d.Details {
			marker := "-"
			if line.IsHighlight {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %s\n", marker, line.Text)
		}
	}
	return nil
}
