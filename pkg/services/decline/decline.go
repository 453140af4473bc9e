// Package decline implements rate-based Arps decline-curve forecasting:
// hyperbolic decline that switches to exponential decline once the effective
// decline rate falls to a limiting value.
//
// References:
// https://secure.spee.org/sites/spee.org/files/wp-files/pdf/ReferencesResources/REP06-DeclineCurves.pdf
// https://petrowiki.org/Production_forecasting_decline_curve_analysis
package decline

import (
	"errors"
	"fmt"
	"math"

	"github.com/de-tools/decline-curve/pkg/models/domain"
)

const (
	DaysPerYear   = 365
	MonthsPerYear = 12

	// bEpsilon guards the 1/(1-B) factor in the cumulative closed form.
	bEpsilon = 1e-9
)

var (
	// ErrInvalidParameter marks decline parameters outside the mathematically
	// valid domain.
	ErrInvalidParameter = errors.New("invalid decline parameter")

	// ErrInvalidArgument marks a non-parameter argument out of range, such as
	// a negative horizon or a non-positive group count.
	ErrInvalidArgument = errors.New("invalid argument")
)

// validate rejects parameters that would make a later real-valued operation
// undefined: log of a non-positive number, division by zero, or a fractional
// power of a negative base.
func validate(p domain.DeclineParameters) error {
	switch {
	case p.Qi <= 0:
		return fmt.Errorf("%w: Qi must be positive, got %g", ErrInvalidParameter, p.Qi)
	case p.D >= 1:
		return fmt.Errorf("%w: D must be below 1, got %g", ErrInvalidParameter, p.D)
	case p.Dlim >= 1:
		return fmt.Errorf("%w: Dlim must be below 1, got %g", ErrInvalidParameter, p.Dlim)
	case p.B <= 0:
		return fmt.Errorf("%w: B must be positive, got %g", ErrInvalidParameter, p.B)
	}
	return nil
}

// Nominal converts the secant effective annual declines D and Dlim into the
// nominal (continuously compounded) decline rates used by the rate and
// cumulative equations. Both results are in 1/year.
func Nominal(p domain.DeclineParameters) (dNom, dlimNom float64) {
	dNom = (math.Pow(1-p.D, -p.B) - 1) / p.B
	dlimNom = -math.Log(1 - p.Dlim)
	return dNom, dlimNom
}

// transition locates the hyperbolic-to-exponential switch. The ceiling is
// applied to the year count and then scaled to days, so the switch always
// lands on a year boundary; this matches the published forecast series and
// must not be tightened to day granularity.
func transition(p domain.DeclineParameters, dNom, dlimNom float64) (qlim float64, tlim int) {
	qlim = p.Qi * math.Pow(dlimNom/dNom, 1/p.B)
	tlim = int(math.Ceil((math.Pow(p.Qi/qlim, p.B)-1)/(p.B*dNom))) * DaysPerYear
	return qlim, tlim
}
