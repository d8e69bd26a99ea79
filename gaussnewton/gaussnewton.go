// Package gaussnewton implements a single-step Gauss-Newton refinement
// engine for non-linear least squares. The engine holds no state between
// calls beyond the immutable model it was created with; every operation is a
// pure function of its inputs. Stopping policy is deliberately left to the
// caller, which composes Refine calls with its own iteration and tolerance
// rules.
package gaussnewton

import (
	"errors"
	"fmt"

	mat_ "github.com/mikemounier/gauss-newton-regression/mat"
	"github.com/mikemounier/gauss-newton-regression/models"
	"github.com/mikemounier/gauss-newton-regression/solver"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoModel         = errors.New("no model provided")
	ErrNoSampleData    = errors.New("no sample data")
	ErrDataLenMismatch = errors.New("x and y have different lengths")
	ErrDegenerateData  = errors.New("all target values are identical")
)

// Engine performs Gauss-Newton refinement steps over a fixed model.
type Engine struct {
	model models.Model
}

// New creates an engine for the given model.
func New(model models.Model) (*Engine, error) {
	if model == nil {
		return nil, ErrNoModel
	}
	return &Engine{model: model}, nil
}

// Model returns the model the engine refines against.
func (e *Engine) Model() models.Model {
	return e.model
}

func (e *Engine) validate(x, y, coef []float64) error {
	if len(x) == 0 {
		return ErrNoSampleData
	}
	if len(x) != len(y) {
		return fmt.Errorf("x has %d values and y has %d, %w", len(x), len(y), ErrDataLenMismatch)
	}
	if len(coef) != e.model.NumCoefficients() {
		return fmt.Errorf("got %d coefficients, but %s expects %d, %w",
			len(coef), e.model.Name(), e.model.NumCoefficients(), models.ErrCoefficientLen)
	}
	return nil
}

// Refine performs one Gauss-Newton step: it builds the Jacobian and residual
// at the current coefficients, solves the normal equations JᵗJ·Δ = Jᵗr, and
// returns coef + Δ as a new slice. The input slices are never mutated. A
// degenerate Jacobian surfaces as a wrapped solver.ErrSingularMatrix.
func (e *Engine) Refine(x, y, coef []float64) ([]float64, error) {
	if err := e.validate(x, y, coef); err != nil {
		return nil, err
	}

	n := len(x)
	m := e.model.NumCoefficients()

	jac := mat.NewDense(n, m, nil)
	resid := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < m; k++ {
			d, err := e.model.PartialDerivative(x[i], k, coef)
			if err != nil {
				return nil, fmt.Errorf("unable to build jacobian row %d, %w", i, err)
			}
			jac.Set(i, k, d)
		}
		f, err := e.model.Evaluate(x[i], coef)
		if err != nil {
			return nil, fmt.Errorf("unable to build residual row %d, %w", i, err)
		}
		resid.Set(i, 0, y[i]-f)
	}

	jacT, err := mat_.Transpose(jac)
	if err != nil {
		return nil, err
	}
	normal, err := mat_.Multiply(jacT, jac)
	if err != nil {
		return nil, err
	}
	rhs, err := mat_.Multiply(jacT, resid)
	if err != nil {
		return nil, err
	}

	delta, err := solver.Solve(normal, mat.Col(nil, 0, rhs))
	if err != nil {
		return nil, fmt.Errorf("unable to solve normal equations, %w", err)
	}

	next := make([]float64, m)
	floats.AddTo(next, coef, delta)
	return next, nil
}

// RSquared computes the coefficient of determination 1 − RSS/TSS of the
// model at the given coefficients. A fit worse than the mean baseline
// yields a negative value, which is valid. If every y value is identical
// the statistic is undefined and the call fails with ErrDegenerateData.
func (e *Engine) RSquared(x, y, coef []float64) (float64, error) {
	if err := e.validate(x, y, coef); err != nil {
		return 0, err
	}

	mean := stat.Mean(y, nil)

	var rss, tss float64
	for i := range x {
		f, err := e.model.Evaluate(x[i], coef)
		if err != nil {
			return 0, err
		}
		r := y[i] - f
		rss += r * r

		d := y[i] - mean
		tss += d * d
	}
	if tss == 0 {
		return 0, fmt.Errorf("cannot compute r-squared, %w", ErrDegenerateData)
	}
	return 1 - rss/tss, nil
}
