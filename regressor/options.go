package regressor

import (
	"image/color"
	"io"

	"github.com/YuminosukeSato/vizgo/canvas"
)

// Default palette, carried over from the classic diagnostic styling.
var (
	// DefaultPointColor is the warm yellow used for prediction-error marks.
	DefaultPointColor = color.RGBA{R: 0xF2, G: 0xBE, B: 0x2C, A: 0xFF}

	// DefaultLineColor is the blue used for the best-fit overlay.
	DefaultLineColor = color.RGBA{R: 0x2B, G: 0x94, B: 0xE9, A: 0xFF}

	// DefaultTrainPointColor is the blue used for training residuals.
	DefaultTrainPointColor = color.RGBA{R: 0x2B, G: 0x94, B: 0xE9, A: 0xFF}

	// DefaultTestPointColor is the green used for test residuals.
	DefaultTestPointColor = color.RGBA{R: 0x94, G: 0xBA, B: 0x65, A: 0xFF}

	// DefaultRefLineColor is the dark gray used for the zero-residual line.
	DefaultRefLineColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// config holds construction-time settings shared by the visualizers.
// It is fixed once the constructor returns.
type config struct {
	surface    *canvas.Surface
	output     io.Writer
	appendMode bool

	pointColor      color.Color
	lineColor       color.Color
	trainPointColor color.Color
	testPointColor  color.Color
}

// Option configures a visualizer at construction time.
type Option func(*config)

// WithSurface supplies an externally-owned drawing surface instead of
// letting the visualizer acquire one lazily on first draw.
func WithSurface(sf *canvas.Surface) Option {
	return func(c *config) {
		c.surface = sf
	}
}

// WithOutput sets the writer Poof renders the finished PNG to. Without it,
// Poof only finalizes titles and labels and the caller renders the returned
// surface itself.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithAppend makes repeated Score/Draw calls accumulate marks on the same
// surface instead of starting from a fresh one each time. ResidualsPlot
// always accumulates so train and test sets can overlay; the option applies
// to PredictionError.
func WithAppend() Option {
	return func(c *config) {
		c.appendMode = true
	}
}

// WithPointColor overrides the prediction-error point color.
func WithPointColor(col color.Color) Option {
	return func(c *config) {
		c.pointColor = col
	}
}

// WithLineColor overrides the line color: the best-fit stroke for
// PredictionError, the zero-residual reference for ResidualsPlot.
func WithLineColor(col color.Color) Option {
	return func(c *config) {
		c.lineColor = col
	}
}

// WithTrainPointColor overrides the training residual point color.
func WithTrainPointColor(col color.Color) Option {
	return func(c *config) {
		c.trainPointColor = col
	}
}

// WithTestPointColor overrides the test residual point color.
func WithTestPointColor(col color.Color) Option {
	return func(c *config) {
		c.testPointColor = col
	}
}

func newConfig(opts []Option) config {
	// lineColor stays nil here; each visualizer fills in its own default
	// (best-fit blue vs. reference-line gray).
	c := config{
		pointColor:      DefaultPointColor,
		trainPointColor: DefaultTrainPointColor,
		testPointColor:  DefaultTestPointColor,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
