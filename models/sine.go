package models

import "math"

const (
	SineName       = "sine"
	SineOffsetName = "sine_offset"
)

// Sine is the family f(x; a, b) = a·sin(b·x).
//
// Gauss-Newton frequently fails to converge on the sine families unless the
// initial frequency guess is already close: the residual surface is highly
// oscillatory in b and the normal equations become ill conditioned. This is
// a property of the method on these families, not an engine defect.
type Sine struct{}

func (Sine) Evaluate(x float64, coef []float64) (float64, error) {
	if err := validateCoef(Sine{}, coef); err != nil {
		return 0, err
	}
	return coef[0] * math.Sin(coef[1]*x), nil
}

func (Sine) PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error) {
	if err := validateCoef(Sine{}, coef); err != nil {
		return 0, err
	}
	if err := validateCoefIdx(Sine{}, coefIdx); err != nil {
		return 0, err
	}
	switch coefIdx {
	case 0:
		return math.Sin(coef[1] * x), nil
	default:
		return coef[0] * x * math.Cos(coef[1]*x), nil
	}
}

func (Sine) NumCoefficients() int {
	return 2
}

func (Sine) Name() string {
	return SineName
}

// SineOffset is the family f(x; a, b, c) = a·sin(b·x) + c. The convergence
// caveat on Sine applies here as well.
type SineOffset struct{}

func (SineOffset) Evaluate(x float64, coef []float64) (float64, error) {
	if err := validateCoef(SineOffset{}, coef); err != nil {
		return 0, err
	}
	return coef[0]*math.Sin(coef[1]*x) + coef[2], nil
}

func (SineOffset) PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error) {
	if err := validateCoef(SineOffset{}, coef); err != nil {
		return 0, err
	}
	if err := validateCoefIdx(SineOffset{}, coefIdx); err != nil {
		return 0, err
	}
	switch coefIdx {
	case 0:
		return math.Sin(coef[1] * x), nil
	case 1:
		return coef[0] * x * math.Cos(coef[1]*x), nil
	default:
		return 1, nil
	}
}

func (SineOffset) NumCoefficients() int {
	return 3
}

func (SineOffset) Name() string {
	return SineOffsetName
}
