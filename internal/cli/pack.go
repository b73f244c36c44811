package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"travel-planner/internal/packing"
	packingUC "travel-planner/internal/packing/usecase"
	"travel-planner/internal/session"
	"travel-planner/pkg/log"
)

func init() {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Generate a packing checklist for a destination",
		Args:  cobra.NoArgs,
		RunE:  runPack,
	}
	cmd.Flags().StringP("to", "t", "", "Destination")
	cmd.Flags().BoolP("markdown", "m", false, "Print the checklist as markdown")
	RootCmd.AddCommand(cmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	asMarkdown, _ := cmd.Flags().GetBool("markdown")

	if err := checkFormat(); err != nil {
		return err
	}

	llm, err := newGenerator()
	if err != nil {
		return err
	}

	l := log.NewNop()
	uc := packingUC.New(l, llm, session.New(l, 0, 1), packing.NewULIDSource())

	ctx := cmd.Context()
	out, err := uc.CreateSession(ctx, packing.CreateSessionInput{Destination: to})
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	defer uc.Close(ctx, out.SessionID)

	if asMarkdown {
		exp, err := uc.Export(ctx, out.SessionID)
		if err != nil {
			return fmt.Errorf("pack: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), exp.Markdown)
		return err
	}
	return printChecklist(cmd.OutOrStdout(), out.Items, out.Progress)
}
