// Package cli implements the tripcli commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"travel-planner/config"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
)

const (
	formatJSON = "json"
	formatText = "text"
)

var formatFlag string

// Generator is the text generation dependency of the model backed commands.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// newGenerator builds the provider chain from config. Tests replace it.
var newGenerator = func() (Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("init providers: %w", err)
	}
	return llmprovider.NewManager(providers, llmprovider.ParseManagerConfig(&cfg.LLM), log.NewNop()), nil
}

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "tripcli",
	Short:         "Plan trips and packing lists from the terminal",
	Long:          "Segments itineraries into days, turns packing lists into checklists, and asks Gemini or Qwen for new ones.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", formatJSON, "Output format: json or text")
}

// readInput returns the named file, or stdin when no file is given or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func checkFormat() error {
	if formatFlag != formatJSON && formatFlag != formatText {
		return fmt.Errorf("unknown format %q: use json or text", formatFlag)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
