package regressor

import (
	"fmt"
	"image/color"
	"log/slog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/vizgo/canvas"
	"github.com/YuminosukeSato/vizgo/pkg/errors"
	vizlog "github.com/YuminosukeSato/vizgo/pkg/log"
)

// PredictionError plots the actual targets against the values predicted by
// the wrapped regressor, with a dashed best-fit line overlaid. A perfect
// model puts every mark on the identity diagonal.
type PredictionError struct {
	*scoreVisualizer

	pointColor color.Color
	lineColor  color.Color
	appendMode bool
}

var _ Visualizer = (*PredictionError)(nil)

// NewPredictionError wraps est in a prediction-error visualizer. It fails
// with a TypeMismatchError when est does not declare regression capability.
func NewPredictionError(est interface{}, opts ...Option) (*PredictionError, error) {
	cfg := newConfig(opts)
	if cfg.lineColor == nil {
		cfg.lineColor = DefaultLineColor
	}

	core, err := newScoreVisualizer("PredictionError", est, cfg)
	if err != nil {
		return nil, err
	}

	return &PredictionError{
		scoreVisualizer: core,
		pointColor:      cfg.pointColor,
		lineColor:       cfg.lineColor,
		appendMode:      cfg.appendMode,
	}, nil
}

// Fit trains the wrapped estimator.
func (pe *PredictionError) Fit(X, y mat.Matrix) error {
	return pe.fit(X, y)
}

// Score predicts on X and draws predicted against actual values.
func (pe *PredictionError) Score(X, y mat.Matrix) (*canvas.Surface, error) {
	yPred, err := pe.predict(X)
	if err != nil {
		return nil, err
	}
	yTrue, err := flattenColumn(y, "PredictionError.Score")
	if err != nil {
		return nil, err
	}
	return pe.Draw(yTrue, yPred)
}

// Draw adds one mark per sample at (actual, predicted), overlays the linear
// best-fit line, and pads the axis limits by one unit on each side so edge
// points are not clipped. In the default fresh mode the surface is cleared
// first; with WithAppend, marks accumulate across calls.
func (pe *PredictionError) Draw(y, yPred []float64) (*canvas.Surface, error) {
	if len(y) != len(yPred) {
		return nil, errors.NewDimensionError("PredictionError.Draw", len(y), len(yPred), 0)
	}
	if len(y) == 0 {
		return nil, errors.NewValueError("PredictionError.Draw", "empty series")
	}

	sf := pe.surface()
	if !pe.appendMode {
		sf.Clear()
	}

	if err := sf.AddScatter(y, yPred, canvas.ScatterStyle{Color: pe.pointColor}); err != nil {
		return nil, err
	}

	if len(y) >= 2 {
		style := canvas.LineStyle{
			Color:  pe.lineColor,
			Width:  vg.Points(2),
			Dashes: []vg.Length{vg.Points(6), vg.Points(3)},
		}
		if err := canvas.DrawBestFit(y, yPred, sf, canvas.FitLinear, style); err != nil {
			return nil, err
		}
	} else {
		errors.Warn(errors.New("best-fit skipped: a single sample has no trend"))
	}

	yMin, yMax := minMax(y)
	sf.SetXLim(yMin-1, yMax+1)
	predMin, predMax := minMax(yPred)
	sf.SetYLim(predMin-1, predMax+1)

	pe.logger.Debug("prediction error drawn",
		slog.String(vizlog.OperationKey, "draw"),
		slog.Int(vizlog.SamplesKey, len(y)),
		slog.Int(vizlog.PointsKey, sf.NumPoints()),
	)
	return sf, nil
}

// Poof sets the title and axis labels and renders to the configured output.
// It is a no-op returning (nil, nil) before the first draw.
func (pe *PredictionError) Poof() (*canvas.Surface, error) {
	sf := pe.Surface()
	if sf == nil {
		return nil, nil
	}

	sf.SetTitle(fmt.Sprintf("Prediction Error for %s", pe.Name()))
	sf.SetYLabel("Predicted")
	sf.SetXLabel("Measured")

	if err := pe.render(); err != nil {
		return nil, err
	}
	return sf, nil
}
