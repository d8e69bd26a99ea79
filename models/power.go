package models

import "math"

const (
	PowerName       = "power"
	LogarithmicName = "logarithmic"
)

// Power is the family f(x; a, b) = a·x^b. It is only defined over x > 0.
type Power struct{}

func (Power) Evaluate(x float64, coef []float64) (float64, error) {
	if err := validateCoef(Power{}, coef); err != nil {
		return 0, err
	}
	return coef[0] * math.Pow(x, coef[1]), nil
}

func (Power) PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error) {
	if err := validateCoef(Power{}, coef); err != nil {
		return 0, err
	}
	if err := validateCoefIdx(Power{}, coefIdx); err != nil {
		return 0, err
	}
	switch coefIdx {
	case 0:
		return math.Pow(x, coef[1]), nil
	default:
		return coef[0] * math.Pow(x, coef[1]) * math.Log(x), nil
	}
}

func (Power) NumCoefficients() int {
	return 2
}

func (Power) Name() string {
	return PowerName
}

// Logarithmic is the family f(x; a, b) = a + b·ln(x). It is only defined
// over x > 0. The family is linear in its parameters, so a single
// refinement step reaches the least-squares optimum.
type Logarithmic struct{}

func (Logarithmic) Evaluate(x float64, coef []float64) (float64, error) {
	if err := validateCoef(Logarithmic{}, coef); err != nil {
		return 0, err
	}
	return coef[0] + coef[1]*math.Log(x), nil
}

func (Logarithmic) PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error) {
	if err := validateCoef(Logarithmic{}, coef); err != nil {
		return 0, err
	}
	if err := validateCoefIdx(Logarithmic{}, coefIdx); err != nil {
		return 0, err
	}
	switch coefIdx {
	case 0:
		return 1, nil
	default:
		return math.Log(x), nil
	}
}

func (Logarithmic) NumCoefficients() int {
	return 2
}

func (Logarithmic) Name() string {
	return LogarithmicName
}
