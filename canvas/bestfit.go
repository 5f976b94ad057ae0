package canvas

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"

	"github.com/YuminosukeSato/vizgo/pkg/errors"
)

// FitKind selects the trend model DrawBestFit fits to the series.
type FitKind int

const (
	// FitLinear fits y = alpha + beta*x by ordinary least squares.
	FitLinear FitKind = iota
)

// String returns the fit kind name.
func (k FitKind) String() string {
	switch k {
	case FitLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// DrawBestFit fits a trend of the given kind through (x, y) and draws it on
// the surface across the observed x range.
func DrawBestFit(x, y []float64, sf *Surface, kind FitKind, style LineStyle) error {
	if len(x) != len(y) {
		return errors.NewDimensionError("DrawBestFit", len(x), len(y), 0)
	}
	if len(x) < 2 {
		return errors.NewValueError("DrawBestFit", "need at least two points to fit a trend")
	}
	if kind != FitLinear {
		return errors.NewValueError("DrawBestFit", "unknown fit kind: "+kind.String())
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	xmin, xmax := x[0], x[0]
	for _, v := range x[1:] {
		if v < xmin {
			xmin = v
		}
		if v > xmax {
			xmax = v
		}
	}
	if xmin == xmax {
		// A vertical stack of points has no usable trend; warn and skip
		// rather than draw a zero-length line.
		errors.Warn(errors.Newf("best-fit skipped: all %d x values equal %g", len(x), xmin))
		return nil
	}

	pts := plotter.XYs{
		{X: xmin, Y: alpha + beta*xmin},
		{X: xmax, Y: alpha + beta*xmax},
	}
	return sf.AddLine(pts, style)
}
