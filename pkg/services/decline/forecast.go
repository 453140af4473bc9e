package decline

import (
	"fmt"
	"math"

	"github.com/de-tools/decline-curve/pkg/models/domain"
	"gonum.org/v1/gonum/floats"
)

// Forecast projects daily and monthly production rates over the given horizon.
// The daily series has years*365+1 points, day 0 included; the monthly series
// has years*12 values, each the sum of one contiguous bucket of daily rates.
// Days before the transition decline hyperbolically, days at or past it
// exponentially at the limiting nominal decline.
func Forecast(p domain.DeclineParameters, years int) (*domain.RateForecast, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	if years < 0 {
		return nil, fmt.Errorf("%w: years must be non-negative, got %d", ErrInvalidArgument, years)
	}

	dNom, dlimNom := Nominal(p)
	qlim, tlim := transition(p, dNom, dlimNom)

	daily := make([]float64, years*DaysPerYear+1)
	for day := range daily {
		if day < tlim {
			daily[day] = p.Qi / math.Pow(1+p.B*dNom*float64(day)/DaysPerYear, 1/p.B)
		} else {
			daily[day] = qlim * math.Exp(-dlimNom*float64(day-tlim)/DaysPerYear)
		}
	}

	months := years * MonthsPerYear
	monthly := make([]float64, 0, months)
	if months > 0 {
		buckets, err := Split(daily, months)
		if err != nil {
			return nil, err
		}
		for _, bucket := range buckets {
			monthly = append(monthly, floats.Sum(bucket))
		}
	}

	return &domain.RateForecast{
		Daily:   daily,
		Monthly: monthly,
		Qlim:    qlim,
		Tlim:    tlim,
	}, nil
}
