package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/decline-curve/pkg/services/config"
	"github.com/spf13/cobra"
)

type WellsCmd struct {
	wellsPath string
}

func NewWellsCmd() *cobra.Command {
	wc := &WellsCmd{}
	cmd := &cobra.Command{
		Use:   "wells",
		Short: "List wells defined in a wells configuration file",
		RunE:  wc.run,
	}

	cmd.Flags().StringVar(&wc.wellsPath, "wells", "", "Path to a wells configuration file")
	_ = cmd.MarkFlagRequired("wells")

	return cmd
}

func (wc *WellsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(wc.wellsPath)
	if err != nil {
		return fmt.Errorf("failed to open wells configuration: %w", err)
	}

	names, err := registry.GetWells(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No wells found in %s\n", wc.wellsPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wells in %s:\n%s\n", wc.wellsPath, strings.Join(names, "\n"))
	return nil
}
