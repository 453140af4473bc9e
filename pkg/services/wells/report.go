package wells

import (
	"time"

	"github.com/de-tools/decline-curve/pkg/models/domain"
	"github.com/de-tools/decline-curve/pkg/services/decline"
	"gonum.org/v1/gonum/floats"
)

// BuildReport assembles a forecast report for the terminal reporter: headline
// volumes plus one section summarizing the decline case and its transition.
func BuildReport(profile domain.WellProfile, fc *domain.RateForecast, cum float64) *domain.Report {
	now := time.Now()
	report := &domain.Report{
		Title: "Arps Forecast: " + profile.Well.Name,
		Period: domain.TimePeriod{
			Start:    now,
			End:      now.AddDate(profile.Years, 0, 0),
			Duration: profile.Years * decline.DaysPerYear,
		},
		TotalVolume: cum,
		Unit:        "bbl",
	}

	transitionMonth := fc.Tlim * decline.MonthsPerYear / decline.DaysPerYear

	section := domain.ReportSection{
		Title: "Decline case",
		Summary: map[string]any{
			"Well":             profile.Well.Name,
			"Horizon (years)":  profile.Years,
			"Transition month": transitionMonth,
		},
		Details: []domain.ReportDetail{
			{
				Name:        "Initial rate",
				Value:       profile.Params.Qi,
				Unit:        "bbl/day",
				Description: "Rate at day 0",
			},
			{
				Name:        "Transition rate",
				Value:       fc.Qlim,
				Unit:        "bbl/day",
				Description: "Rate at the hyperbolic-to-exponential switch",
			},
			{
				Name:        "Final rate",
				Value:       fc.Daily[len(fc.Daily)-1],
				Unit:        "bbl/day",
				Description: "Rate at the end of the horizon",
			},
			{
				Name:        "Rate-summed volume",
				Value:       floats.Sum(fc.Monthly),
				Unit:        "bbl",
				Description: "Sum of monthly volumes over the horizon",
			},
			{
				Name:        "Closed-form volume",
				Value:       cum,
				Unit:        "bbl",
				Description: "Cumulative volume from the Arps integrals",
			},
		},
	}
	report.Sections = append(report.Sections, section)

	return report
}
