package regressor

import (
	"fmt"
	"image/color"
	"log/slog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/vizgo/canvas"
	"github.com/YuminosukeSato/vizgo/metrics"
	"github.com/YuminosukeSato/vizgo/pkg/errors"
	vizlog "github.com/YuminosukeSato/vizgo/pkg/log"
)

// Residual point opacity: training marks are faded so an overlaid test set
// stays distinguishable.
const (
	trainAlpha = 0.5
	testAlpha  = 1.0
)

// ResidualsPlot plots residuals (predicted minus actual) against the
// predicted values. Randomly dispersed residuals around the zero line
// suggest a linear model fits the data; visible structure suggests it
// does not. Train and test sets are drawn in different colors and
// opacities and accumulate on the same surface by design.
type ResidualsPlot struct {
	*scoreVisualizer

	trainPointColor color.Color
	testPointColor  color.Color
	lineColor       color.Color

	// Observed predicted-value range across all draws; the zero-residual
	// reference line in Poof spans it.
	xMin, xMax float64
	hasRange   bool
}

var _ Visualizer = (*ResidualsPlot)(nil)

// NewResidualsPlot wraps est in a residuals visualizer. It fails with a
// TypeMismatchError when est does not declare regression capability.
func NewResidualsPlot(est interface{}, opts ...Option) (*ResidualsPlot, error) {
	cfg := newConfig(opts)
	if cfg.lineColor == nil {
		cfg.lineColor = DefaultRefLineColor
	}

	core, err := newScoreVisualizer("ResidualsPlot", est, cfg)
	if err != nil {
		return nil, err
	}

	return &ResidualsPlot{
		scoreVisualizer: core,
		trainPointColor: cfg.trainPointColor,
		testPointColor:  cfg.testPointColor,
		lineColor:       cfg.lineColor,
	}, nil
}

// Fit trains the wrapped estimator, then eagerly draws the training
// residuals so a following Score call overlays the test set on top.
func (rp *ResidualsPlot) Fit(X, y mat.Matrix) error {
	if err := rp.fit(X, y); err != nil {
		return err
	}
	_, err := rp.ScoreTrain(X, y)
	return err
}

// Score predicts on X and draws the test-set residuals.
func (rp *ResidualsPlot) Score(X, y mat.Matrix) (*canvas.Surface, error) {
	return rp.score(X, y, false)
}

// ScoreTrain predicts on X and draws the training-set residuals.
func (rp *ResidualsPlot) ScoreTrain(X, y mat.Matrix) (*canvas.Surface, error) {
	return rp.score(X, y, true)
}

func (rp *ResidualsPlot) score(X, y mat.Matrix, train bool) (*canvas.Surface, error) {
	yPred, err := rp.predict(X)
	if err != nil {
		return nil, err
	}
	yTrue, err := flattenColumn(y, "ResidualsPlot.Score")
	if err != nil {
		return nil, err
	}
	residuals, err := metrics.Residuals(yTrue, yPred)
	if err != nil {
		return nil, err
	}
	return rp.Draw(yPred, residuals, train)
}

// Draw adds one mark per sample at (predicted, residual). Training marks
// use the train color at half opacity, test marks the test color at full
// opacity. Marks accumulate across calls so train and test sets overlay.
func (rp *ResidualsPlot) Draw(yPred, residuals []float64, train bool) (*canvas.Surface, error) {
	if len(yPred) != len(residuals) {
		return nil, errors.NewDimensionError("ResidualsPlot.Draw", len(yPred), len(residuals), 0)
	}
	if len(yPred) == 0 {
		return nil, errors.NewValueError("ResidualsPlot.Draw", "empty series")
	}

	sf := rp.surface()

	style := canvas.ScatterStyle{
		Color:  rp.testPointColor,
		Alpha:  testAlpha,
		Radius: vg.Points(4),
	}
	if train {
		style.Color = rp.trainPointColor
		style.Alpha = trainAlpha
	}

	if err := sf.AddScatter(yPred, residuals, style); err != nil {
		return nil, err
	}

	min, max := minMax(yPred)
	if !rp.hasRange || min < rp.xMin {
		rp.xMin = min
	}
	if !rp.hasRange || max > rp.xMax {
		rp.xMax = max
	}
	rp.hasRange = true

	rp.logger.Debug("residuals drawn",
		slog.String(vizlog.OperationKey, "draw"),
		slog.Bool(vizlog.TrainKey, train),
		slog.Int(vizlog.SamplesKey, len(yPred)),
		slog.Int(vizlog.PointsKey, sf.NumPoints()),
	)
	return sf, nil
}

// Poof draws the zero-residual reference line across the observed predicted
// range, sets the title and axis labels, and renders to the configured
// output. It is a no-op returning (nil, nil) before the first draw.
func (rp *ResidualsPlot) Poof() (*canvas.Surface, error) {
	sf := rp.Surface()
	if sf == nil {
		return nil, nil
	}

	if rp.hasRange && rp.xMin < rp.xMax {
		err := sf.AddHLine(0, rp.xMin, rp.xMax, canvas.LineStyle{Color: rp.lineColor})
		if err != nil {
			return nil, err
		}
	}

	sf.SetTitle(fmt.Sprintf("Residuals for %s Model", rp.Name()))
	sf.SetYLabel("Residuals")
	sf.SetXLabel("Predicted Value")

	if err := rp.render(); err != nil {
		return nil, err
	}
	return sf, nil
}
