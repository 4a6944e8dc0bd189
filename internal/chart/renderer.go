// Package chart renders k6 summaries into PNG charts with gonum/plot.
//
// Rendering is always headless: every chart is drawn onto an in-memory
// vgimg canvas and encoded straight to disk.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethpandaops/k6viz/internal/config"
	"github.com/ethpandaops/k6viz/internal/report"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Artifact describes a chart file written to disk.
type Artifact struct {
	Name      string
	Path      string
	SizeBytes int64
	Duration  time.Duration
}

// Options configures where and how charts are written.
type Options struct {
	OutputDir string
	DPI       int
}

// Renderer draws the fixed chart set for a summary.
type Renderer interface {
	Render(summary *report.Summary) ([]Artifact, error)
}

type renderer struct {
	log  logrus.FieldLogger
	opts Options
}

// NewRenderer creates a new chart renderer.
func NewRenderer(log logrus.FieldLogger, opts Options) Renderer {
	if opts.OutputDir == "" {
		opts.OutputDir = config.DefaultOutputDir
	}

	if opts.DPI <= 0 {
		opts.DPI = config.DefaultDPI
	}

	return &renderer{
		log:  log.WithField("component", "chart.renderer"),
		opts: opts,
	}
}

// Render writes the multi-panel results image followed by the iteration
// duration image. A failure on the second file leaves the first in place.
func (r *renderer) Render(summary *report.Summary) ([]Artifact, error) {
	success, err := summary.Checks.SuccessRate()
	if err != nil {
		return nil, err
	}

	timing, err := newBarPlot(timingPanel(summary.Timing))
	if err != nil {
		return nil, err
	}

	duration, err := newBarPlot(durationPanel(summary.Duration))
	if err != nil {
		return nil, err
	}

	throughput, err := newBarPlot(throughputPanel(summary.Throughput))
	if err != nil {
		return nil, err
	}

	checks := newPiePlot(checksTitle, []Slice{
		{Label: "Passed", Value: success, Color: colorPassed},
		{Label: "Failed", Value: 100 - success, Color: colorFailed},
	})

	iteration, err := newBarPlot(iterationPanel(summary.Iteration))
	if err != nil {
		return nil, err
	}

	panels := [][]*plot.Plot{
		{timing, duration},
		{throughput, checks},
	}

	artifacts := make([]Artifact, 0, 2)

	results, err := r.write(config.ResultsFileName, 15*vg.Inch, 10*vg.Inch, func(dc draw.Canvas) {
		tiles := draw.Tiles{
			Rows:      2,
			Cols:      2,
			PadX:      vg.Points(36),
			PadY:      vg.Points(36),
			PadTop:    vg.Points(12),
			PadBottom: vg.Points(12),
			PadLeft:   vg.Points(12),
			PadRight:  vg.Points(12),
		}

		canvases := plot.Align(panels, tiles, dc)
		for row := range panels {
			for col := range panels[row] {
				panels[row][col].Draw(canvases[row][col])
			}
		}
	})
	if err != nil {
		return artifacts, err
	}
	artifacts = append(artifacts, results)

	iter, err := r.write(config.IterationFileName, 10*vg.Inch, 6*vg.Inch, func(dc draw.Canvas) {
		iteration.Draw(draw.Crop(dc, vg.Points(6), -vg.Points(6), vg.Points(6), -vg.Points(6)))
	})
	if err != nil {
		return artifacts, err
	}
	artifacts = append(artifacts, iter)

	return artifacts, nil
}

// write draws onto a white raster canvas of the given size and encodes it as
// PNG, replacing any existing file.
func (r *renderer) write(name string, width, height vg.Length, drawFn func(draw.Canvas)) (Artifact, error) {
	start := time.Now()
	path := filepath.Join(r.opts.OutputDir, name)

	img := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(r.opts.DPI),
		vgimg.UseBackgroundColor(colorBackground),
	)
	drawFn(draw.New(img))

	f, err := os.Create(path) //nolint:gosec // G304: output path is built from fixed names
	if err != nil {
		return Artifact{}, fmt.Errorf("creating %s: %w", path, err)
	}

	size, err := vgimg.PngCanvas{Canvas: img}.WriteTo(f)
	if err != nil {
		_ = f.Close()
		return Artifact{}, fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return Artifact{}, fmt.Errorf("closing %s: %w", path, err)
	}

	artifact := Artifact{
		Name:      name,
		Path:      path,
		SizeBytes: size,
		Duration:  time.Since(start),
	}

	r.log.WithFields(logrus.Fields{
		"path":     artifact.Path,
		"bytes":    artifact.SizeBytes,
		"duration": artifact.Duration,
		"dpi":      r.opts.DPI,
	}).Debug("wrote chart")

	return artifact, nil
}

// Compile-time interface compliance check
var _ Renderer = (*renderer)(nil)
