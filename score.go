package regression

import (
	"errors"
	"fmt"
	"math"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the fit quality scores of a trained Fitter.
type Scores struct {
	MSE      float64 `json:"mse"`       // mean squared error
	MAPE     float64 `json:"mape"`      // mean average percent error
	RSquared float64 `json:"r_squared"` // coefficient of determination
}

// NewScores computes the fit scores given the predicted and actual training
// values along with the coefficient of determination from the engine.
func NewScores(predicted, actual []float64, rsquared float64) (*Scores, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	return &Scores{
		MSE:      mse,
		MAPE:     mape,
		RSquared: rsquared,
	}, nil
}

// MSE computes the mean squared error between predicted and actual, skipping
// NaN values.
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
	}
	mse /= float64(len(actual))
	return mse, nil
}

// MAPE computes the mean average percent error between predicted and actual,
// skipping NaN values and zero actuals.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	mape := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
	}
	mape /= float64(len(actual))
	return mape, nil
}
