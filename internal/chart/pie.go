package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// pieStartAngle places the first slice edge at twelve o'clock.
	pieStartAngle = math.Pi / 2
	// label distances as fractions of the radius
	pieValueDistance = 0.6
	pieLabelDistance = 1.1
)

// Slice is one wedge of a Pie.
type Slice struct {
	Label string
	Value float64
	Color color.Color
}

// Pie draws proportional wedges counter-clockwise from pieStartAngle, each
// annotated with its share of the total as a percentage.
type Pie struct {
	Slices []Slice

	// Radius is the fraction of the smaller canvas dimension used as radius.
	Radius float64
	// EdgeStyle outlines each wedge.
	EdgeStyle draw.LineStyle
}

// NewPie returns a Pie with default styling.
func NewPie(slices []Slice) *Pie {
	return &Pie{
		Slices: slices,
		Radius: 0.38,
		EdgeStyle: draw.LineStyle{
			Color: colorBackground,
			Width: vg.Points(1),
		},
	}
}

// Percentages returns each slice's share of the total, or zeros when the
// total is not positive.
func (p *Pie) Percentages() []float64 {
	total := 0.0
	for _, s := range p.Slices {
		total += s.Value
	}

	out := make([]float64, len(p.Slices))
	if total <= 0 {
		return out
	}

	for i, s := range p.Slices {
		out[i] = s.Value / total * 100
	}

	return out
}

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	width := c.Max.X - c.Min.X
	height := c.Max.Y - c.Min.Y
	center := vg.Point{X: c.Min.X + width/2, Y: c.Min.Y + height/2}

	radius := vg.Length(p.Radius) * height
	if width < height {
		radius = vg.Length(p.Radius) * width
	}

	valueStyle := plt.X.Tick.Label
	valueStyle.XAlign = draw.XCenter
	valueStyle.YAlign = draw.YCenter
	valueStyle.Rotation = 0
	valueStyle.Font.Size = vg.Points(11)

	labelStyle := valueStyle
	labelStyle.Font.Size = vg.Points(12)

	for _, w := range p.wedges() {
		if w.Sweep > 0 {
			var path vg.Path
			path.Move(center)
			path.Line(polar(center, radius, w.Start))
			path.Arc(center, radius, w.Start, w.Sweep)
			path.Close()

			c.SetColor(w.Color)
			c.Fill(path)
			c.SetLineStyle(p.EdgeStyle)
			c.Stroke(path)
		}

		c.FillText(valueStyle, polar(center, radius*pieValueDistance, w.Mid()), fmt.Sprintf("%.1f%%", w.Share))

		ls := labelStyle
		if math.Cos(w.Mid()) < -1e-9 {
			ls.XAlign = draw.XRight
		} else if math.Cos(w.Mid()) > 1e-9 {
			ls.XAlign = draw.XLeft
		}
		c.FillText(ls, polar(center, radius*pieLabelDistance, w.Mid()), w.Label)
	}
}

// wedge is the angular extent of one slice, in radians.
type wedge struct {
	Label string
	Color color.Color
	Share float64
	Start float64
	Sweep float64
}

// Mid is the bisecting angle, where the slice annotations sit.
func (w wedge) Mid() float64 {
	return w.Start + w.Sweep/2
}

// wedges lays the slices out counter-clockwise. Empty slices keep a zero
// sweep so their labels are still drawn.
func (p *Pie) wedges() []wedge {
	out := make([]wedge, len(p.Slices))

	angle := pieStartAngle
	for i, share := range p.Percentages() {
		sweep := 0.0
		if share > 0 {
			sweep = share / 100 * 2 * math.Pi
		}

		out[i] = wedge{
			Label: p.Slices[i].Label,
			Color: p.Slices[i].Color,
			Share: share,
			Start: angle,
			Sweep: sweep,
		}
		angle += sweep
	}

	return out
}

// DataRange implements plot.DataRanger with a unit box so the pie is not
// stretched by any other plotter.
func (p *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

func polar(center vg.Point, radius vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + radius*vg.Length(math.Cos(angle)),
		Y: center.Y + radius*vg.Length(math.Sin(angle)),
	}
}

func newPiePlot(title string, slices []Slice) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(20)
	p.BackgroundColor = colorBackground
	p.HideAxes()
	p.Add(NewPie(slices))

	return p
}

var (
	_ plot.Plotter    = (*Pie)(nil)
	_ plot.DataRanger = (*Pie)(nil)
)
