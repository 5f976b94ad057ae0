// Package canvas adapts gonum/plot into the drawing surface the visualizers
// render onto. A Surface owns one plot, accepts scatter and line marks with
// explicit styling, and hands finished figures to an io.Writer or a file as
// PNG. It also records what has been drawn so callers can inspect a figure
// without rasterizing it.
package canvas

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/vizgo/pkg/errors"
)

// Default figure size used by WriteTo and SavePNG when the caller does not
// override it with SetSize.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ScatterStyle controls how a scatter series is drawn.
type ScatterStyle struct {
	// Color of the marks. Nil falls back to the plotter default.
	Color color.Color
	// Radius of each mark. Zero falls back to 3pt.
	Radius vg.Length
	// Alpha in [0, 1] applied to Color. Zero means fully opaque.
	Alpha float64
}

// LineStyle controls how a line is drawn.
type LineStyle struct {
	// Color of the stroke. Nil falls back to the plotter default.
	Color color.Color
	// Width of the stroke. Zero falls back to 1pt.
	Width vg.Length
	// Dashes is the dash pattern; empty draws a solid line.
	Dashes []vg.Length
}

// ScatterRecord describes one scatter series added to a Surface.
type ScatterRecord struct {
	// N is the number of marks in the series.
	N int
	// Style is the style the series was drawn with.
	Style ScatterStyle
}

// Surface is a single drawing canvas. It is not safe for concurrent use;
// the visualizer layer is single-caller by design.
type Surface struct {
	p *plot.Plot

	width  vg.Length
	height vg.Length

	scatters []ScatterRecord
	lines    int
	points   int
}

// New creates an empty Surface.
func New() *Surface {
	return &Surface{
		p:      plot.New(),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// Plot exposes the underlying gonum plot for callers that need styling
// beyond what Surface offers.
func (s *Surface) Plot() *plot.Plot {
	return s.p
}

// SetSize overrides the figure dimensions used when rendering.
func (s *Surface) SetSize(width, height vg.Length) {
	s.width = width
	s.height = height
}

// AddScatter draws one mark per sample at (x[i], y[i]).
func (s *Surface) AddScatter(x, y []float64, style ScatterStyle) error {
	if len(x) != len(y) {
		return errors.NewDimensionError("Surface.AddScatter", len(x), len(y), 0)
	}
	if len(x) == 0 {
		return errors.NewValueError("Surface.AddScatter", "empty series")
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "building scatter")
	}

	sc.GlyphStyle = draw.GlyphStyle{
		Color:  applyAlpha(style.Color, style.Alpha),
		Radius: style.Radius,
		Shape:  draw.CircleGlyph{},
	}
	if sc.GlyphStyle.Color == nil {
		sc.GlyphStyle.Color = color.Black
	}
	if sc.GlyphStyle.Radius == 0 {
		sc.GlyphStyle.Radius = vg.Points(3)
	}

	s.p.Add(sc)
	s.scatters = append(s.scatters, ScatterRecord{N: len(pts), Style: style})
	s.points += len(pts)
	return nil
}

// AddLine draws a polyline through pts.
func (s *Surface) AddLine(pts plotter.XYs, style LineStyle) error {
	if len(pts) < 2 {
		return errors.NewValueError("Surface.AddLine", "a line needs at least two points")
	}

	ln, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "building line")
	}

	ln.LineStyle = lineStyle(style)
	s.p.Add(ln)
	s.lines++
	return nil
}

// AddHLine draws a horizontal reference line at height y spanning
// [xmin, xmax].
func (s *Surface) AddHLine(y, xmin, xmax float64, style LineStyle) error {
	return s.AddLine(plotter.XYs{{X: xmin, Y: y}, {X: xmax, Y: y}}, style)
}

// SetXLim fixes the x-axis range.
func (s *Surface) SetXLim(min, max float64) {
	s.p.X.Min = min
	s.p.X.Max = max
}

// SetYLim fixes the y-axis range.
func (s *Surface) SetYLim(min, max float64) {
	s.p.Y.Min = min
	s.p.Y.Max = max
}

// XLim returns the current x-axis range.
func (s *Surface) XLim() (min, max float64) {
	return s.p.X.Min, s.p.X.Max
}

// YLim returns the current y-axis range.
func (s *Surface) YLim() (min, max float64) {
	return s.p.Y.Min, s.p.Y.Max
}

// SetTitle sets the figure title.
func (s *Surface) SetTitle(title string) {
	s.p.Title.Text = title
}

// Title returns the figure title.
func (s *Surface) Title() string {
	return s.p.Title.Text
}

// SetXLabel sets the x-axis label.
func (s *Surface) SetXLabel(label string) {
	s.p.X.Label.Text = label
}

// XLabel returns the x-axis label.
func (s *Surface) XLabel() string {
	return s.p.X.Label.Text
}

// SetYLabel sets the y-axis label.
func (s *Surface) SetYLabel(label string) {
	s.p.Y.Label.Text = label
}

// YLabel returns the y-axis label.
func (s *Surface) YLabel() string {
	return s.p.Y.Label.Text
}

// NumScatters returns how many scatter series have been added.
func (s *Surface) NumScatters() int {
	return len(s.scatters)
}

// Scatters returns a record of every scatter series added, in draw order.
func (s *Surface) Scatters() []ScatterRecord {
	return s.scatters
}

// NumLines returns how many lines have been added.
func (s *Surface) NumLines() int {
	return s.lines
}

// NumPoints returns the total number of scatter marks added.
func (s *Surface) NumPoints() int {
	return s.points
}

// Clear discards all marks, limits, and labels, returning the Surface to
// its freshly-constructed state. Figure size is preserved.
func (s *Surface) Clear() {
	s.p = plot.New()
	s.scatters = nil
	s.lines = 0
	s.points = 0
}

// WriteTo renders the figure as PNG bytes to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	wt, err := s.p.WriterTo(s.width, s.height, "png")
	if err != nil {
		return 0, errors.Wrap(err, "rendering surface")
	}
	return wt.WriteTo(w)
}

// SavePNG renders the figure to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.p.Save(s.width, s.height, path); err != nil {
		return errors.Wrapf(err, "saving surface to %s", path)
	}
	return nil
}

func lineStyle(style LineStyle) draw.LineStyle {
	ls := draw.LineStyle{
		Color:  style.Color,
		Width:  style.Width,
		Dashes: style.Dashes,
	}
	if ls.Color == nil {
		ls.Color = color.Black
	}
	if ls.Width == 0 {
		ls.Width = vg.Points(1)
	}
	return ls
}

// applyAlpha scales the alpha channel of c. An alpha of 0 is treated as
// "unset" and leaves c fully opaque, matching the zero value of
// ScatterStyle.
func applyAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return nil
	}
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 255),
	}
}
