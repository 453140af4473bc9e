package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/decline-curve/pkg/models/domain"
	"github.com/de-tools/decline-curve/pkg/services/config"
	"github.com/de-tools/decline-curve/pkg/services/wells"
	"github.com/spf13/cobra"
)

// profileFlags holds the three ways a command can receive a decline case:
// a wells configuration plus well name, a single-well profile file, or raw
// parameter flags.
type profileFlags struct {
	wellsPath   string
	well        string
	profilePath string

	qi    float64
	d     float64
	b     float64
	dlim  float64
	years int
}

func (pf *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.wellsPath, "wells", "", "Path to a wells configuration file")
	cmd.Flags().StringVar(&pf.well, "well", "", "Well name inside the wells configuration")
	cmd.Flags().StringVar(&pf.profilePath, "profile", "", "Path to a single-well profile file")
	cmd.Flags().Float64Var(&pf.qi, "qi", 0, "Initial rate, bbl/day or scf/day")
	cmd.Flags().Float64Var(&pf.d, "decline", 0, "Secant effective annual decline, fraction of 1")
	cmd.Flags().Float64Var(&pf.b, "b-factor", 0, "Hyperbolic exponent")
	cmd.Flags().Float64Var(&pf.dlim, "dlim", 0, "Limiting effective annual decline, fraction of 1")
	cmd.Flags().IntVar(&pf.years, "years", 30, "Projection horizon in years")

	cmd.MarkFlagsRequiredTogether("wells", "well")
	cmd.MarkFlagsMutuallyExclusive("wells", "profile")
	cmd.MarkFlagsMutuallyExclusive("wells", "qi")
	cmd.MarkFlagsMutuallyExclusive("profile", "qi")
}

func (pf *profileFlags) resolve(ctx context.Context) (domain.WellProfile, error) {
	switch {
	case pf.wellsPath != "":
		registry, err := config.NewRegistry(pf.wellsPath)
		if err != nil {
			return domain.WellProfile{}, fmt.Errorf("failed to open wells configuration: %w", err)
		}
		return wells.NewExplorer(registry).GetProfile(ctx, domain.Well{Name: pf.well})
	case pf.profilePath != "":
		return wells.LoadProfile(pf.profilePath)
	default:
		return domain.WellProfile{
			Well:   domain.Well{Name: "ad-hoc"},
			Params: domain.DeclineParameters{Qi: pf.qi, D: pf.d, B: pf.b, Dlim: pf.dlim},
			Years:  pf.years,
		}, nil
	}
}
