package domain

// RateForecast holds the projected production of a single well. Daily has one
// rate per elapsed day starting at day 0; Monthly has one produced volume per
// elapsed month (rate-units x day, e.g. bbl/month for a bbl/day Qi).
type RateForecast struct {
	Daily   []float64
	Monthly []float64

	// Qlim and Tlim locate the hyperbolic-to-exponential switch: the rate at
	// the switch and the elapsed days at which it happens.
	Qlim float64
	Tlim int
}
