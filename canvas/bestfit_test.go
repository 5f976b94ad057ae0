package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	vizerrors "github.com/YuminosukeSato/vizgo/pkg/errors"
)

func TestDrawBestFitAddsOneLine(t *testing.T) {
	sf := New()

	x := []float64{1, 2, 3, 4}
	y := []float64{3.1, 4.9, 7.2, 8.8} // roughly y = 2x + 1

	require.NoError(t, DrawBestFit(x, y, sf, FitLinear, LineStyle{}))
	assert.Equal(t, 1, sf.NumLines())
	assert.Equal(t, 0, sf.NumScatters())
}

func TestDrawBestFitRecoversCoefficients(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, 1.0, alpha, 1e-9)
	assert.InDelta(t, 2.0, beta, 1e-9)

	sf := New()
	require.NoError(t, DrawBestFit(x, y, sf, FitLinear, LineStyle{}))
}

func TestDrawBestFitValidation(t *testing.T) {
	sf := New()

	err := DrawBestFit([]float64{1, 2}, []float64{1}, sf, FitLinear, LineStyle{})
	var dimErr *vizerrors.DimensionError
	assert.True(t, vizerrors.As(err, &dimErr), "mismatched lengths")

	err = DrawBestFit([]float64{1}, []float64{1}, sf, FitLinear, LineStyle{})
	assert.Error(t, err, "single point")

	err = DrawBestFit([]float64{1, 2}, []float64{1, 2}, sf, FitKind(99), LineStyle{})
	assert.Error(t, err, "unknown fit kind")
}

func TestDrawBestFitDegenerateXWarnsAndSkips(t *testing.T) {
	var warned error
	vizerrors.SetWarningHandler(func(w error) { warned = w })
	defer vizerrors.SetWarningHandler(nil)

	sf := New()
	err := DrawBestFit([]float64{2, 2, 2}, []float64{1, 2, 3}, sf, FitLinear, LineStyle{})

	require.NoError(t, err)
	assert.Equal(t, 0, sf.NumLines())
	assert.Error(t, warned, "degenerate input emits a warning")
}
