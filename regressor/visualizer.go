// Package regressor provides visual diagnostics for regression models:
// prediction-error scatter plots and residuals plots. Each visualizer wraps
// a capability-checked regressor and renders onto a canvas.Surface through
// the fit/score/draw/poof lifecycle.
package regressor

import (
	"io"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/vizgo/canvas"
	"github.com/YuminosukeSato/vizgo/core/model"
	"github.com/YuminosukeSato/vizgo/pkg/errors"
	vizlog "github.com/YuminosukeSato/vizgo/pkg/log"
)

// Visualizer is the lifecycle contract shared by the model diagnostics.
// Score triggers prediction and drawing; Poof finalizes titles and labels
// and, when an output writer is configured, renders the figure. Every
// side-effecting operation returns the surface it drew on.
type Visualizer interface {
	// Fit trains the wrapped estimator.
	Fit(X, y mat.Matrix) error

	// Score predicts on X, draws the diagnostic against y, and returns the
	// surface drawn on.
	Score(X, y mat.Matrix) (*canvas.Surface, error)

	// Poof finalizes the figure. It is a no-op returning (nil, nil) when
	// nothing has been drawn yet.
	Poof() (*canvas.Surface, error)
}

// scoreVisualizer is the shared core of the concrete diagnostics: the
// capability-checked estimator, its display name, and the lazily-acquired
// surface. Concrete visualizers embed it rather than subclassing.
type scoreVisualizer struct {
	est    model.Regressor
	name   string
	sf     *canvas.Surface
	output io.Writer
	logger *slog.Logger
}

// newScoreVisualizer gates construction on regression capability. The
// surface is never touched on the failure path.
func newScoreVisualizer(visualizer string, est interface{}, cfg config) (*scoreVisualizer, error) {
	if !model.IsRegressor(est) {
		return nil, errors.NewTypeMismatchError(
			model.ModelName(est), model.KindRegressor.String(), model.KindOf(est).String())
	}

	name := model.ModelName(est)
	return &scoreVisualizer{
		est:    est.(model.Regressor),
		name:   name,
		sf:     cfg.surface,
		output: cfg.output,
		logger: slog.Default().With(
			slog.String(vizlog.VisualizerKey, visualizer),
			slog.String(vizlog.ModelNameKey, name),
		),
	}, nil
}

// Name returns the display name derived from the wrapped estimator.
func (v *scoreVisualizer) Name() string {
	return v.name
}

// Surface returns the drawing surface, or nil before the first draw.
func (v *scoreVisualizer) Surface() *canvas.Surface {
	return v.sf
}

// surface returns the drawing surface, acquiring one on first use.
func (v *scoreVisualizer) surface() *canvas.Surface {
	if v.sf == nil {
		v.sf = canvas.New()
	}
	return v.sf
}

// fit trains the estimator, converting gonum shape panics into errors.
func (v *scoreVisualizer) fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	v.logger.Debug("fitting estimator",
		slog.String(vizlog.OperationKey, "fit"),
		slog.Int(vizlog.SamplesKey, rows),
		slog.Int(vizlog.FeaturesKey, cols),
	)

	return errors.SafeExecute("estimator fit", func() error {
		return v.est.Fit(X, y)
	})
}

// predict runs the estimator on X and flattens the n×1 result.
func (v *scoreVisualizer) predict(X mat.Matrix) ([]float64, error) {
	var yPred mat.Matrix
	err := errors.SafeExecute("estimator predict", func() error {
		var predictErr error
		yPred, predictErr = v.est.Predict(X)
		return predictErr
	})
	if err != nil {
		return nil, err
	}
	return flattenColumn(yPred, "predict")
}

// render writes the finished figure to the configured output, if any.
func (v *scoreVisualizer) render() error {
	if v.output == nil {
		return nil
	}
	if _, err := v.sf.WriteTo(v.output); err != nil {
		return errors.Wrap(err, "rendering to output")
	}
	v.logger.Debug("figure rendered",
		slog.String(vizlog.OperationKey, "poof"),
		slog.Int(vizlog.PointsKey, v.sf.NumPoints()),
	)
	return nil
}

// flattenColumn converts an n×1 matrix into a slice.
func flattenColumn(m mat.Matrix, op string) ([]float64, error) {
	rows, cols := m.Dims()
	if cols != 1 {
		return nil, errors.NewDimensionError(op, 1, cols, 1)
	}
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = m.At(i, 0)
	}
	return out, nil
}

func minMax(series []float64) (min, max float64) {
	min, max = series[0], series[0]
	for _, v := range series[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
