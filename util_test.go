package regression

import (
	"bytes"
	"testing"

	"github.com/mikemounier/gauss-newton-regression/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotFit(t *testing.T) {
	f, err := New(models.Exponential{}, nil)
	require.Nil(t, err)

	t.Run("untrained", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, f.PlotFit(&buf, "Fit"), ErrUntrainedFitter)
	})

	x := []float64{0, 1, 2, 3}
	y := []float64{1, 2.71828, 7.38906, 20.0855}
	require.Nil(t, f.Fit(x, y, []float64{1, 1}))

	t.Run("trained", func(t *testing.T) {
		var buf bytes.Buffer
		require.Nil(t, f.PlotFit(&buf, "Exponential Fit"))
		assert.Contains(t, buf.String(), "Exponential Fit")
	})
}

func TestLineFit(t *testing.T) {
	line := LineFit("Fit", []float64{1, 2}, []float64{1, 4}, []float64{1.1, 3.9})
	require.NotNil(t, line)
	assert.Equal(t, "Fit", line.Title.Title)
}
