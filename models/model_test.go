package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkDerivatives verifies every analytic partial derivative of a model
// against the central finite difference of Evaluate.
func checkDerivatives(t *testing.T, m Model, xs, coef []float64) {
	t.Helper()

	h := 1e-6
	tol := 1e-4

	for _, x := range xs {
		for k := 0; k < m.NumCoefficients(); k++ {
			analytic, err := m.PartialDerivative(x, k, coef)
			require.Nil(t, err)

			upper := make([]float64, len(coef))
			lower := make([]float64, len(coef))
			copy(upper, coef)
			copy(lower, coef)
			upper[k] += h
			lower[k] -= h

			fUpper, err := m.Evaluate(x, upper)
			require.Nil(t, err)
			fLower, err := m.Evaluate(x, lower)
			require.Nil(t, err)

			numeric := (fUpper - fLower) / (2 * h)
			assert.InDeltaf(t, numeric, analytic, tol*(1+math.Abs(numeric)),
				"x=%f k=%d", x, k)
		}
	}
}

func TestPartialDerivativeMatchesFiniteDifference(t *testing.T) {
	mustExponentialBase := func(base float64) Model {
		m, err := NewExponentialBase(base)
		require.Nil(t, err)
		return m
	}

	testData := map[string]struct {
		model Model
		xs    []float64
		coef  []float64
	}{
		"exponential": {
			Exponential{},
			[]float64{-2, -0.5, 0, 0.5, 2},
			[]float64{1.3, 0.7},
		},
		"exponential base 2": {
			mustExponentialBase(2),
			[]float64{-2, -0.5, 0, 0.5, 2},
			[]float64{0.8, 1.1},
		},
		"exponential base 10": {
			mustExponentialBase(10),
			[]float64{-1, 0, 0.5, 1},
			[]float64{2.2, 0.3},
		},
		"power": {
			Power{},
			[]float64{0.25, 1, 2, 5},
			[]float64{1.5, 2.3},
		},
		"logarithmic": {
			Logarithmic{},
			[]float64{0.25, 1, 2, 5},
			[]float64{0.4, 3.1},
		},
		"sine": {
			Sine{},
			[]float64{-3, -1, 0, 1, 3},
			[]float64{2.1, 1.4},
		},
		"sine offset": {
			SineOffset{},
			[]float64{-3, -1, 0, 1, 3},
			[]float64{2.1, 1.4, -0.6},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			checkDerivatives(t, td.model, td.xs, td.coef)
		})
	}
}

func TestModelArgumentValidation(t *testing.T) {
	catalog := []Model{
		Exponential{},
		Power{},
		Logarithmic{},
		Sine{},
		SineOffset{},
	}

	for _, m := range catalog {
		t.Run(m.Name(), func(t *testing.T) {
			coef := make([]float64, m.NumCoefficients())
			for i := range coef {
				coef[i] = 1
			}

			_, err := m.Evaluate(1, coef[:len(coef)-1])
			assert.ErrorIs(t, err, ErrCoefficientLen)

			_, err = m.PartialDerivative(1, 0, append(coef, 1))
			assert.ErrorIs(t, err, ErrCoefficientLen)

			_, err = m.PartialDerivative(1, -1, coef)
			assert.ErrorIs(t, err, ErrCoefficientIndex)

			_, err = m.PartialDerivative(1, m.NumCoefficients(), coef)
			assert.ErrorIs(t, err, ErrCoefficientIndex)
		})
	}
}

func TestNewExponentialBase(t *testing.T) {
	testData := map[string]struct {
		base float64
		err  error
	}{
		"base 2":        {2, nil},
		"base e":        {math.E, nil},
		"zero base":     {0, ErrInvalidBase},
		"negative base": {-3, ErrInvalidBase},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			m, err := NewExponentialBase(td.base)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.base, m.Base())
		})
	}
}

func TestExponentialBaseMatchesExponential(t *testing.T) {
	// a·e^(b·x) and a·base^(b·x) coincide for base e
	m, err := NewExponentialBase(math.E)
	require.Nil(t, err)

	coef := []float64{1.7, -0.4}
	for _, x := range []float64{-2, 0, 1, 3.5} {
		expected, err := Exponential{}.Evaluate(x, coef)
		require.Nil(t, err)
		actual, err := m.Evaluate(x, coef)
		require.Nil(t, err)
		assert.InDelta(t, expected, actual, 1e-12)
	}
}

func TestForName(t *testing.T) {
	testData := map[string]struct {
		name   string
		params map[string]float64
		err    error
	}{
		"exponential":           {ExponentialName, nil, nil},
		"exponential base":      {ExponentialBaseName, map[string]float64{"base": 10}, nil},
		"exponential base miss": {ExponentialBaseName, nil, ErrMissingParam},
		"power":                 {PowerName, nil, nil},
		"logarithmic":           {LogarithmicName, nil, nil},
		"sine":                  {SineName, nil, nil},
		"sine offset":           {SineOffsetName, nil, nil},
		"unknown":               {"quadratic", nil, ErrUnknownModel},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			m, err := ForName(td.name, td.params)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.name, m.Name())
		})
	}
}
