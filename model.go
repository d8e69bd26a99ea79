package regression

import (
	"fmt"

	"github.com/mikemounier/gauss-newton-regression/gaussnewton"
	"github.com/mikemounier/gauss-newton-regression/models"
)

// Model represents a serializable trained fit. This can be generated from a
// previous Fitter call to Model() and loaded with NewFromModel.
type Model struct {
	Name         string             `json:"name"`
	Params       map[string]float64 `json:"params,omitempty"`
	Options      *Options           `json:"options"`
	Coefficients []float64          `json:"coefficients"`
	Scores       *Scores            `json:"scores,omitempty"`
}

// Model returns a serializable representation of the trained fit.
func (f *Fitter) Model() (Model, error) {
	if !f.trained {
		return Model{}, ErrUntrainedFitter
	}

	m := f.engine.Model()

	var params map[string]float64
	if eb, ok := m.(models.ExponentialBase); ok {
		params = map[string]float64{"base": eb.Base()}
	}

	coef := make([]float64, len(f.coef))
	copy(coef, f.coef)

	return Model{
		Name:         m.Name(),
		Params:       params,
		Options:      f.opt,
		Coefficients: coef,
		Scores:       f.scores,
	}, nil
}

// NewFromModel creates a new instance of Fitter from a pre-existing model.
// This instance can be used for prediction immediately and does not need to
// be fit again.
func NewFromModel(model Model) (*Fitter, error) {
	mdl, err := models.ForName(model.Name, model.Params)
	if err != nil {
		return nil, fmt.Errorf("unable to load model, %w", err)
	}

	opt, err := model.Options.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid options in model, %w", err)
	}

	if len(model.Coefficients) != mdl.NumCoefficients() {
		return nil, fmt.Errorf("model carries %d coefficients, but %s expects %d, %w",
			len(model.Coefficients), mdl.Name(), mdl.NumCoefficients(), models.ErrCoefficientLen)
	}

	engine, err := gaussnewton.New(mdl)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize engine, %w", err)
	}

	coef := make([]float64, len(model.Coefficients))
	copy(coef, model.Coefficients)

	return &Fitter{
		opt:     opt,
		engine:  engine,
		coef:    coef,
		scores:  model.Scores,
		trained: true,
	}, nil
}
