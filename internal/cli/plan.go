package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travel-planner/internal/itinerary"
	itineraryUC "travel-planner/internal/itinerary/usecase"
	"travel-planner/pkg/log"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a day-wise itinerary",
		Args:  cobra.NoArgs,
		RunE:  runPlan,
	}

	cmd.Flags().StringP("name", "n", "", "Traveller name (required)")
	cmd.Flags().String("from", "", "Starting place (required)")
	cmd.Flags().String("to", "", "Destination (required)")
	cmd.Flags().IntP("days", "d", 0, "Trip length in days (required)")
	cmd.Flags().IntP("budget", "b", 0, "Budget in INR (required)")
	cmd.Flags().Bool("raw", false, "Print the model text instead of day buckets")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("days")
	cmd.MarkFlagRequired("budget")

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	days, _ := cmd.Flags().GetInt("days")
	budget, _ := cmd.Flags().GetInt("budget")
	raw, _ := cmd.Flags().GetBool("raw")

	if err := checkFormat(); err != nil {
		return err
	}

	llm, err := newGenerator()
	if err != nil {
		return err
	}

	uc := itineraryUC.New(log.NewNop(), llm)
	out, err := uc.Generate(cmd.Context(), itinerary.TripRequest{
		Name:          name,
		StartingPlace: from,
		Destination:   to,
		DurationDays:  days,
		Budget:        budget,
	})
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if raw {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out.RawText)
		return err
	}
	return printDays(cmd.OutOrStdout(), out.Days)
}
