package models

import (
	"fmt"
	"math"
)

const (
	ExponentialName     = "exponential"
	ExponentialBaseName = "exponential_base"
)

// Exponential is the family f(x; a, b) = a·e^(b·x).
type Exponential struct{}

func (Exponential) Evaluate(x float64, coef []float64) (float64, error) {
	if err := validateCoef(Exponential{}, coef); err != nil {
		return 0, err
	}
	return coef[0] * math.Exp(coef[1]*x), nil
}

func (Exponential) PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error) {
	if err := validateCoef(Exponential{}, coef); err != nil {
		return 0, err
	}
	if err := validateCoefIdx(Exponential{}, coefIdx); err != nil {
		return 0, err
	}
	switch coefIdx {
	case 0:
		return math.Exp(coef[1] * x), nil
	default:
		return coef[0] * x * math.Exp(coef[1]*x), nil
	}
}

func (Exponential) NumCoefficients() int {
	return 2
}

func (Exponential) Name() string {
	return ExponentialName
}

// ExponentialBase is the family f(x; a, b) = a·base^(b·x) for a fixed base
// chosen at construction.
type ExponentialBase struct {
	base float64
}

// NewExponentialBase creates an exponential family over the given fixed
// base. The base must be positive.
func NewExponentialBase(base float64) (ExponentialBase, error) {
	if base <= 0 {
		return ExponentialBase{}, fmt.Errorf("got base %f, %w", base, ErrInvalidBase)
	}
	return ExponentialBase{base: base}, nil
}

// Base returns the fixed exponent base of the family.
func (e ExponentialBase) Base() float64 {
	return e.base
}

func (e ExponentialBase) Evaluate(x float64, coef []float64) (float64, error) {
	if err := validateCoef(e, coef); err != nil {
		return 0, err
	}
	return coef[0] * math.Pow(e.base, coef[1]*x), nil
}

func (e ExponentialBase) PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error) {
	if err := validateCoef(e, coef); err != nil {
		return 0, err
	}
	if err := validateCoefIdx(e, coefIdx); err != nil {
		return 0, err
	}
	switch coefIdx {
	case 0:
		return math.Pow(e.base, coef[1]*x), nil
	default:
		return coef[0] * x * math.Log(e.base) * math.Pow(e.base, coef[1]*x), nil
	}
}

func (ExponentialBase) NumCoefficients() int {
	return 2
}

func (ExponentialBase) Name() string {
	return ExponentialBaseName
}
