package domain

import "fmt"

type Well struct {
	Name string
}

// DeclineParameters describe a single Arps decline case. Qi is the initial
// rate in bbl/day or scf/day; D and Dlim are secant effective annual decline
// fractions in (0,1); B is the hyperbolic exponent.
type DeclineParameters struct {
	Qi   float64
	D    float64
	B    float64
	Dlim float64
}

// WellProfile is a configured forecast case: a well plus its decline
// parameters and projection horizon in years.
type WellProfile struct {
	Well   Well
	Params DeclineParameters
	Years  int
}

func (p WellProfile) String() string {
	return fmt.Sprintf("%s (Qi=%g, D=%g, B=%g, Dlim=%g, %d years)",
		p.Well.Name, p.Params.Qi, p.Params.D, p.Params.B, p.Params.Dlim, p.Years)
}
