package commands

import (
	"fmt"

	"github.com/de-tools/decline-curve/pkg/services/decline"
	"github.com/spf13/cobra"
)

type CumulativeCmd struct {
	profileFlags
	month int
}

func NewCumulativeCmd() *cobra.Command {
	cc := &CumulativeCmd{}
	cmd := &cobra.Command{
		Use:   "cumulative",
		Short: "Total produced volume from time zero to a given month",
		RunE:  cc.run,
	}

	cc.register(cmd)
	cmd.Flags().IntVar(&cc.month, "month", -1, "Elapsed months (defaults to the full horizon)")

	return cmd
}

func (cc *CumulativeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profile, err := cc.resolve(ctx)
	if err != nil {
		return err
	}

	month := cc.month
	if month < 0 {
		month = profile.Years * decline.MonthsPerYear
	}

	volume, err := decline.Cumulative(profile.Params, month)
	if err != nil {
		return fmt.Errorf("failed to integrate %s: %w", profile.Well.Name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %.0f bbl after %d months\n", profile.Well.Name, volume, month)
	return nil
}
