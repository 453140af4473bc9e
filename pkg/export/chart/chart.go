// Package chart renders a monthly forecast as a self-contained HTML page:
// rate on the left axis, running cumulative volume on the right, both over a
// shared month index.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

func Render(w io.Writer, title string, monthly []float64) error {
	cum := make([]float64, len(monthly))
	floats.CumSum(cum, monthly)

	rate := make([]opts.LineData, len(monthly))
	cumulative := make([]opts.LineData, len(monthly))
	months := make([]int, len(monthly))
	for i, v := range monthly {
		months[i] = i
		rate[i] = opts.LineData{Value: v}
		cumulative[i] = opts.LineData{Value: cum[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1100px",
			Height:    "550px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Months"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Q, rate"}),
	)
	line.ExtendYAxis(opts.YAxis{Name: "Q, cumulative", Type: "value"})

	line.SetXAxis(months).
		AddSeries("Monthly rate", rate).
		AddSeries("Cumulative", cumulative,
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)

	return line.Render(w)
}
