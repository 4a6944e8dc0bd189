package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ethpandaops/k6viz/internal/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	checksTitle = "Checks Success Rate"

	// headroom keeps value labels inside the data area.
	headroom = 1.12
)

var (
	colorBackground = color.White
	colorTiming     = color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}
	colorDuration   = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colorThroughput = color.RGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF}
	colorIteration  = color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}
	colorPassed     = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	colorFailed     = color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
	colorGrid       = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0x4D}
)

// barPanel is one labelled bar chart.
type barPanel struct {
	Title       string
	YLabel      string
	Labels      []string
	Values      []float64
	Color       color.Color
	ValueFormat string
	RotateTicks bool
}

func timingPanel(t report.Timing) barPanel {
	return barPanel{
		Title:       "HTTP Request Timing Breakdown (avg, ms)",
		YLabel:      "Time (ms)",
		Labels:      t.Labels(),
		Values:      t.Values(),
		Color:       colorTiming,
		ValueFormat: "%.3f",
		RotateTicks: true,
	}
}

func durationPanel(d report.Distribution) barPanel {
	return barPanel{
		Title:       "Response Time Distribution (ms)",
		YLabel:      "Time (ms)",
		Labels:      d.Labels(),
		Values:      d.Values(),
		Color:       colorDuration,
		ValueFormat: "%.3f",
	}
}

func throughputPanel(t report.Throughput) barPanel {
	return barPanel{
		Title:       "Throughput Analysis",
		YLabel:      "Rate",
		Labels:      t.Labels(),
		Values:      t.Values(),
		Color:       colorThroughput,
		ValueFormat: "%.2f",
		RotateTicks: true,
	}
}

func iterationPanel(d report.Distribution) barPanel {
	return barPanel{
		Title:       "Iteration Duration Analysis (ms)",
		YLabel:      "Duration (ms)",
		Labels:      d.Labels(),
		Values:      d.Values(),
		Color:       colorIteration,
		ValueFormat: "%.2f",
	}
}

// annotations formats each value for display above its bar.
func (b barPanel) annotations() []string {
	out := make([]string, len(b.Values))
	for i, v := range b.Values {
		out[i] = fmt.Sprintf(b.ValueFormat, v)
	}

	return out
}

func newBarPlot(b barPanel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = b.Title
	p.Title.Padding = vg.Points(20)
	p.Y.Label.Text = b.YLabel
	p.BackgroundColor = colorBackground

	grid := plotter.NewGrid()
	grid.Vertical.Color = colorGrid
	grid.Horizontal.Color = colorGrid
	p.Add(grid)

	bars, err := plotter.NewBarChart(plotter.Values(b.Values), vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Title, err)
	}
	bars.Color = b.Color
	bars.LineStyle.Width = 0
	p.Add(bars)

	xys := make(plotter.XYs, len(b.Values))
	for i, v := range b.Values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: b.annotations()})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Title, err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	labels.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(labels)

	p.NominalX(b.Labels...)

	if b.RotateTicks {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	p.Y.Min = 0
	if bottom := minValue(b.Values); bottom < 0 {
		p.Y.Min = bottom * headroom
	}

	if top := maxValue(b.Values); top > 0 {
		p.Y.Max = top * headroom
	}

	return p, nil
}

func maxValue(values []float64) float64 {
	top := 0.0
	for _, v := range values {
		if v > top {
			top = v
		}
	}

	return top
}

func minValue(values []float64) float64 {
	bottom := 0.0
	for _, v := range values {
		if v < bottom {
			bottom = v
		}
	}

	return bottom
}
