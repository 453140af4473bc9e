package decline

import (
	"fmt"
	"math"

	"github.com/de-tools/decline-curve/pkg/models/domain"
)

// Cumulative returns the total produced volume from time zero to the given
// elapsed month, in rate-units x day (bbl for a bbl/day Qi). It evaluates the
// closed-form Arps integrals: the hyperbolic form up to the transition, plus
// an exponential increment beyond it.
//
// The hyperbolic form divides by (1-B), so B may not sit at 1; harmonic
// decline needs its own integral and is rejected here.
func Cumulative(p domain.DeclineParameters, month int) (float64, error) {
	if err := validate(p); err != nil {
		return 0, err
	}
	if math.Abs(p.B-1) < bEpsilon {
		return 0, fmt.Errorf("%w: B must not equal 1 for cumulative volumes", ErrInvalidParameter)
	}
	if month < 0 {
		return 0, fmt.Errorf("%w: month must be non-negative, got %d", ErrInvalidArgument, month)
	}

	dNom, dlimNom := Nominal(p)
	qlim, tlim := transition(p, dNom, dlimNom)

	// Hyperbolic cumulative volume after the given number of elapsed years.
	hyperbolic := func(years float64) float64 {
		return p.Qi / ((1 - p.B) * dNom) * DaysPerYear *
			(1 - math.Pow(1+p.B*dNom*years, 1-1/p.B))
	}

	tDays := float64(month) * DaysPerYear / MonthsPerYear

	var cum float64
	if tDays < float64(tlim) {
		cum = hyperbolic(float64(month) / MonthsPerYear)
	} else {
		atSwitch := hyperbolic(float64(tlim) / DaysPerYear)
		cum = qlim/dlimNom*DaysPerYear*(1-math.Exp(-dlimNom*(tDays-float64(tlim))/DaysPerYear)) + atSwitch
	}

	if cum == 0 {
		// The closed form produces -0 at month 0.
		return 0, nil
	}
	return cum, nil
}
