package regression

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineFit generates an echart line chart for some x/actual/fitted
// combination. The actual and fitted inputs must have the same length as x.
func LineFit(title string, x, actual, fitted []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	actualData := make([]opts.LineData, 0, len(actual))
	fittedData := make([]opts.LineData, 0, len(fitted))
	for i := 0; i < len(x); i++ {
		actualData = append(actualData, opts.LineData{Value: actual[i]})
		fittedData = append(fittedData, opts.LineData{Value: fitted[i]})
	}

	line.SetXAxis(x).
		AddSeries("Actual", actualData).
		AddSeries("Fitted", fittedData)
	return line
}

// PlotFit renders a chart of the training data along with the fitted curve
// to the given writer.
func (f *Fitter) PlotFit(w io.Writer, title string) error {
	if !f.trained {
		return ErrUntrainedFitter
	}

	fitted := make([]float64, len(f.y))
	for i := range f.y {
		fitted[i] = f.y[i] - f.residual[i]
	}

	page := components.NewPage()
	page.AddCharts(
		LineFit(title, f.x, f.y, fitted),
	)
	return page.Render(io.MultiWriter(w))
}
