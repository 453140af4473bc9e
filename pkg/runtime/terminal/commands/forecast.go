package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/decline-curve/pkg/export/chart"
	"github.com/de-tools/decline-curve/pkg/runtime/terminal/export"
	"github.com/de-tools/decline-curve/pkg/services/decline"
	"github.com/de-tools/decline-curve/pkg/services/wells"
	"github.com/spf13/cobra"
)

type ForecastCmd struct {
	profileFlags
	chartPath string
	reporter  *export.Reporter
}

func NewForecastCmd(reporter *export.Reporter) *cobra.Command {
	fc := &ForecastCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project daily and monthly production for a decline case",
		RunE:  fc.run,
	}

	fc.register(cmd)
	cmd.Flags().StringVar(&fc.chartPath, "chart", "", "Write a dual-axis HTML chart to this path")

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	profile, err := fc.resolve(ctx)
	if err != nil {
		return err
	}

	forecast, err := decline.Forecast(profile.Params, profile.Years)
	if err != nil {
		return fmt.Errorf("failed to project %s: %w", profile.Well.Name, err)
	}

	cum, err := decline.Cumulative(profile.Params, profile.Years*decline.MonthsPerYear)
	if err != nil {
		return fmt.Errorf("failed to integrate %s: %w", profile.Well.Name, err)
	}

	if fc.chartPath != "" {
		f, err := os.Create(fc.chartPath)
		if err != nil {
			return fmt.Errorf("failed to create chart file: %w", err)
		}
		defer f.Close()

		if err := chart.Render(f, "Arps Forecast: "+profile.Well.Name, forecast.Monthly); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	}

	return fc.reporter.Handle(wells.BuildReport(profile, forecast, cum))
}
