// Package regression fits non-linear parametric models to sample data with
// Gauss-Newton least squares. A Fitter wraps the single-step gaussnewton
// engine with a stopping rule, scoring, and model serialization; callers
// needing a custom stopping policy can drive the engine directly.
package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/mikemounier/gauss-newton-regression/gaussnewton"
	"github.com/mikemounier/gauss-newton-regression/models"

	"gonum.org/v1/gonum/floats"
)

var ErrUntrainedFitter = errors.New("fitter has not been fit yet")

// Fitter fits one model family to sample data and can be used to predict
// values of the fitted curve.
type Fitter struct {
	opt    *Options
	engine *gaussnewton.Engine

	x []float64
	y []float64

	coef       []float64
	iterations int
	converged  bool
	residual   []float64
	scores     *Scores
	trained    bool
}

// New creates a new instance of a Fitter for the given model using the
// provided options. If no options are provided a default is used.
func New(model models.Model, opt *Options) (*Fitter, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid fit options, %w", err)
	}

	engine, err := gaussnewton.New(model)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize engine, %w", err)
	}

	return &Fitter{
		opt:    opt,
		engine: engine,
	}, nil
}

// Fit refines the initial coefficient guess against the sample data until
// the step size drops below the configured tolerance or the iteration
// budget is spent. The input slices are never mutated. On failure the
// fitter keeps the state of its last successful fit.
func (f *Fitter) Fit(x, y, initial []float64) error {
	coef := make([]float64, len(initial))
	copy(coef, initial)

	var converged bool
	var iterations int
	for i := 0; i < f.opt.MaxIterations; i++ {
		next, err := f.engine.Refine(x, y, coef)
		if err != nil {
			return fmt.Errorf("unable to refine coefficients at iteration %d, %w", i, err)
		}

		step := floats.Distance(next, coef, math.Inf(1))
		coef = next
		iterations = i + 1
		if step < f.opt.Tolerance {
			converged = true
			break
		}
	}

	predicted, err := f.predict(x, coef)
	if err != nil {
		return fmt.Errorf("unable to predict over training data, %w", err)
	}

	rsq, err := f.engine.RSquared(x, y, coef)
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}
	scores, err := NewScores(predicted, y, rsq)
	if err != nil {
		return fmt.Errorf("unable to compute scores, %w", err)
	}

	residual := make([]float64, len(y))
	floats.SubTo(residual, y, predicted)

	f.x = make([]float64, len(x))
	copy(f.x, x)
	f.y = make([]float64, len(y))
	copy(f.y, y)

	f.coef = coef
	f.iterations = iterations
	f.converged = converged
	f.residual = residual
	f.scores = scores
	f.trained = true
	return nil
}

func (f *Fitter) predict(x, coef []float64) ([]float64, error) {
	model := f.engine.Model()

	res := make([]float64, len(x))
	for i := range x {
		v, err := model.Evaluate(x[i], coef)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// Predict evaluates the fitted curve at the given x values.
func (f *Fitter) Predict(x []float64) ([]float64, error) {
	if !f.trained {
		return nil, ErrUntrainedFitter
	}
	return f.predict(x, f.coef)
}

// Coefficients returns a copy of the fitted coefficient vector.
func (f *Fitter) Coefficients() ([]float64, error) {
	if !f.trained {
		return nil, ErrUntrainedFitter
	}
	coef := make([]float64, len(f.coef))
	copy(coef, f.coef)
	return coef, nil
}

// Iterations returns the number of refinement steps the last fit ran.
func (f *Fitter) Iterations() int {
	return f.iterations
}

// Converged reports whether the last fit stopped on tolerance rather than
// on the iteration budget.
func (f *Fitter) Converged() bool {
	return f.converged
}

// Residuals returns a copy of the training residuals of the last fit.
func (f *Fitter) Residuals() []float64 {
	residual := make([]float64, len(f.residual))
	copy(residual, f.residual)
	return residual
}

// Scores returns the fit scores of the last fit.
func (f *Fitter) Scores() *Scores {
	return f.scores
}
