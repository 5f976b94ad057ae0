package regressor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/vizgo/linear"
	"github.com/YuminosukeSato/vizgo/pkg/errors"
)

func TestNewResidualsPlotRejectsNonRegressor(t *testing.T) {
	viz, err := NewResidualsPlot(&stubClassifier{})
	require.Error(t, err)
	assert.Nil(t, viz)

	var tmErr *errors.TypeMismatchError
	require.True(t, errors.As(err, &tmErr))
	assert.Equal(t, "classifier", tmErr.Got)
}

func TestResidualsPlotTestPointStyle(t *testing.T) {
	viz, err := NewResidualsPlot(newFixedRegressor(1.1, 1.9, 3.2))
	require.NoError(t, err)

	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	sf, err := viz.Score(X, y)
	require.NoError(t, err)

	records := sf.Scatters()
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].N)
	assert.Equal(t, DefaultTestPointColor, records[0].Style.Color)
	assert.Equal(t, 1.0, records[0].Style.Alpha)

	// The observed predicted range drives the reference line in Poof.
	assert.InDelta(t, 1.1, viz.xMin, 1e-12)
	assert.InDelta(t, 3.2, viz.xMax, 1e-12)
}

func TestResidualsPlotTrainPointStyle(t *testing.T) {
	viz, err := NewResidualsPlot(newFixedRegressor())
	require.NoError(t, err)

	sf, err := viz.Draw([]float64{1.1, 1.9}, []float64{0.1, -0.1}, true)
	require.NoError(t, err)

	records := sf.Scatters()
	require.Len(t, records, 1)
	assert.Equal(t, DefaultTrainPointColor, records[0].Style.Color)
	assert.Equal(t, 0.5, records[0].Style.Alpha)
}

func TestResidualsPlotFitDrawsTrainingResiduals(t *testing.T) {
	est := &fixedRegressor{predictions: []float64{1.1, 1.9, 3.2}}
	viz, err := NewResidualsPlot(est)
	require.NoError(t, err)

	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	require.NoError(t, viz.Fit(X, y))
	assert.Equal(t, 1, est.fitCalls)

	sf := viz.Surface()
	require.NotNil(t, sf, "Fit eagerly draws training residuals")
	records := sf.Scatters()
	require.Len(t, records, 1)
	assert.Equal(t, DefaultTrainPointColor, records[0].Style.Color)

	// Scoring a held-out set overlays test marks on the same surface.
	_, err = viz.Score(X, y)
	require.NoError(t, err)
	records = sf.Scatters()
	require.Len(t, records, 2)
	assert.Equal(t, DefaultTestPointColor, records[1].Style.Color)
}

func TestResidualsPlotDrawLengthMismatch(t *testing.T) {
	viz, err := NewResidualsPlot(newFixedRegressor())
	require.NoError(t, err)

	_, err = viz.Draw([]float64{1, 2}, []float64{1}, false)
	require.Error(t, err)

	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestResidualsPlotPoofBeforeDrawIsNoop(t *testing.T) {
	viz, err := NewResidualsPlot(newFixedRegressor())
	require.NoError(t, err)

	sf, err := viz.Poof()
	assert.NoError(t, err)
	assert.Nil(t, sf)
	assert.Nil(t, viz.Surface())
}

func TestResidualsPlotPoof(t *testing.T) {
	var out bytes.Buffer
	viz, err := NewResidualsPlot(newFixedRegressor(1.1, 1.9, 3.2), WithOutput(&out))
	require.NoError(t, err)

	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	sf, err := viz.Score(X, y)
	require.NoError(t, err)

	poofed, err := viz.Poof()
	require.NoError(t, err)
	require.Same(t, sf, poofed)

	assert.Equal(t, 1, sf.NumLines(), "zero-residual reference line")
	assert.Equal(t, "Residuals for fixedRegressor Model", sf.Title())
	assert.Equal(t, "Residuals", sf.YLabel())
	assert.Equal(t, "Predicted Value", sf.XLabel())

	require.Greater(t, out.Len(), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), out.Bytes()[:8])
}

func TestResidualsPlotWithFittedModel(t *testing.T) {
	// y = 2x + 1 with mild noise; residuals of the fitted line stay small.
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := mat.NewDense(5, 1, []float64{3.1, 4.9, 7.2, 8.8, 11.1})

	viz, err := NewResidualsPlot(linear.NewRegression())
	require.NoError(t, err)

	require.NoError(t, viz.Fit(X, y))

	sf, err := viz.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 10, sf.NumPoints(), "train and test residuals overlay")

	_, err = viz.Poof()
	require.NoError(t, err)
	assert.Equal(t, "Residuals for Regression Model", sf.Title())
}
