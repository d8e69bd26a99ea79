package regression

import "errors"

var (
	ErrNonPositiveMaxIterations = errors.New("max iterations must be positive")
	ErrNonPositiveTolerance     = errors.New("tolerance must be positive")
)

const (
	DefaultMaxIterations = 50
	DefaultTolerance     = 1e-6
)

// Options configures the refinement loop of a Fitter.
type Options struct {
	// MaxIterations bounds the number of refinement steps per Fit call.
	MaxIterations int `json:"max_iterations"`

	// Tolerance stops the loop once the largest absolute coefficient update
	// of a step falls below it.
	Tolerance float64 `json:"tolerance"`
}

// NewDefaultOptions returns a default set of fit options.
func NewDefaultOptions() *Options {
	return &Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Validate returns the options to use, substituting a default set for nil.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.MaxIterations <= 0 {
		return nil, ErrNonPositiveMaxIterations
	}
	if o.Tolerance <= 0 {
		return nil, ErrNonPositiveTolerance
	}
	return o, nil
}
