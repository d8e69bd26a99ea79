// Package models is a collection of closed-form parametric model families to
// be fit with the gaussnewton engine. Each model is a stateless value type
// exposing its function value, its exact analytic partial derivatives, and
// its parameter count.
package models

import (
	"errors"
	"fmt"
)

var (
	ErrCoefficientLen   = errors.New("coefficient length does not match model parameter count")
	ErrCoefficientIndex = errors.New("coefficient index is out of range")
	ErrUnknownModel     = errors.New("unknown model name")
	ErrMissingParam     = errors.New("missing model construction parameter")
	ErrInvalidBase      = errors.New("exponent base must be positive")
)

// Model describes a parametric function family f(x; c). Implementations are
// immutable after construction; any fixed constant of the family is set once
// at construction time.
type Model interface {
	// Evaluate returns f(x; coef).
	Evaluate(x float64, coef []float64) (float64, error)
	// PartialDerivative returns ∂f(x; coef)/∂coef[coefIdx]. The derivative
	// must be the exact analytic derivative of Evaluate.
	PartialDerivative(x float64, coefIdx int, coef []float64) (float64, error)
	// NumCoefficients returns the number of free parameters of the family.
	NumCoefficients() int
	// Name returns the registry name of the family.
	Name() string
}

// ForName returns the catalog model registered under name. Families carrying
// a construction constant read it from params, e.g. "base" for
// exponential_base.
func ForName(name string, params map[string]float64) (Model, error) {
	switch name {
	case ExponentialName:
		return Exponential{}, nil
	case ExponentialBaseName:
		base, ok := params["base"]
		if !ok {
			return nil, fmt.Errorf("%s requires a base, %w", name, ErrMissingParam)
		}
		return NewExponentialBase(base)
	case PowerName:
		return Power{}, nil
	case LogarithmicName:
		return Logarithmic{}, nil
	case SineName:
		return Sine{}, nil
	case SineOffsetName:
		return SineOffset{}, nil
	}
	return nil, fmt.Errorf("no model registered as %q, %w", name, ErrUnknownModel)
}

func validateCoef(m Model, coef []float64) error {
	if len(coef) != m.NumCoefficients() {
		return fmt.Errorf("got %d coefficients, but %s expects %d, %w",
			len(coef), m.Name(), m.NumCoefficients(), ErrCoefficientLen)
	}
	return nil
}

func validateCoefIdx(m Model, coefIdx int) error {
	if coefIdx < 0 || coefIdx >= m.NumCoefficients() {
		return fmt.Errorf("index %d with %d parameters, %w", coefIdx, m.NumCoefficients(), ErrCoefficientIndex)
	}
	return nil
}
