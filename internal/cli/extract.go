package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"travel-planner/internal/checklist"
	"travel-planner/internal/model"
	"travel-planner/internal/packing"
)

func init() {
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Turn a packing list into a checklist",
		Long:  "Turns a packing list into a checklist. With --from-markdown the input is a checklist exported earlier.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}
	cmd.Flags().Bool("from-markdown", false, "Input is a markdown checklist")
	cmd.Flags().BoolP("markdown", "m", false, "Print the checklist as markdown")
	RootCmd.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	fromMarkdown, _ := cmd.Flags().GetBool("from-markdown")
	asMarkdown, _ := cmd.Flags().GetBool("markdown")

	if err := checkFormat(); err != nil {
		return err
	}
	raw, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	ids := packing.NewULIDSource()
	var store *checklist.Store
	if fromMarkdown {
		store = checklist.ImportMarkdown(raw, ids)
	} else {
		store = checklist.NewStore(packing.Extract(raw, ids), ids)
	}
	if asMarkdown {
		_, err := fmt.Fprint(cmd.OutOrStdout(), store.RenderMarkdown())
		return err
	}
	items, _, progress := store.Snapshot()
	return printChecklist(cmd.OutOrStdout(), items, progress)
}

type progressView struct {
	Packed  int `json:"packed"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

type checklistView struct {
	Items    []model.ChecklistItem `json:"items"`
	Progress progressView          `json:"progress"`
}

func printChecklist(w io.Writer, items []model.ChecklistItem, progress checklist.Progress) error {
	if formatFlag == formatJSON {
		return printJSON(w, checklistView{
			Items:    items,
			Progress: progressView{Packed: progress.Packed, Total: progress.Total, Percent: progress.Percent},
		})
	}
	for _, it := range items {
		box := "[ ]"
		if it.Packed {
			box = "[x]"
		}
		fmt.Fprintf(w, "%s %s\n", box, it.Text)
	}
	fmt.Fprintf(w, "\n%d/%d packed (%d%%)\n", progress.Packed, progress.Total, progress.Percent)
	return nil
}
