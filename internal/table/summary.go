package table

import (
	"fmt"
	"strings"

	"github.com/ethpandaops/k6viz/internal/chart"
	"github.com/ethpandaops/k6viz/internal/format"
	"github.com/ethpandaops/k6viz/internal/report"
	"github.com/sirupsen/logrus"
)

// SummaryFormatter formats the derived summary numbers as tables.
type SummaryFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *ColorHelper
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(log logrus.FieldLogger, renderer Renderer) *SummaryFormatter {
	return &SummaryFormatter{
		log:      log.WithField("component", "table.summary_formatter"),
		renderer: renderer,
		colors:   NewColorHelper(),
	}
}

// Format converts the summary and written charts into a formatted string.
func (f *SummaryFormatter) Format(summary *report.Summary, artifacts []chart.Artifact) string {
	var sb strings.Builder

	sb.WriteString("\n" + f.colors.Header("▸ Request Timing") + "\n\n")
	sb.WriteString(f.renderer.RenderToString(
		[]string{"Phase", "Avg"},
		labelledRows(summary.Timing.Labels(), summary.Timing.Values(), format.Millis),
	))

	sb.WriteString("\n" + f.colors.Header("▸ Distribution") + "\n\n")
	sb.WriteString(f.renderer.RenderToString(
		append([]string{"Metric"}, summary.Duration.Labels()...),
		[][]string{
			append([]string{report.MetricReqDuration}, formatAll(summary.Duration.Values(), "%.3f")...),
			append([]string{report.MetricIterationDuration}, formatAll(summary.Iteration.Values(), "%.2f")...),
		},
	))

	sb.WriteString("\n" + f.colors.Header("▸ Throughput") + "\n\n")
	sb.WriteString(f.renderer.RenderToString(
		[]string{"Rate", "Value"},
		labelledRows(summary.Throughput.Labels(), summary.Throughput.Values(), func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		}),
	))

	sb.WriteString("\n" + f.colors.Header("▸ Checks") + "\n\n")
	sb.WriteString(f.renderer.RenderToString([]string{"Metric", "Value"}, f.checkRows(summary.Checks)))

	if len(artifacts) > 0 {
		rows := make([][]string, 0, len(artifacts))
		for _, a := range artifacts {
			rows = append(rows, []string{
				a.Path,
				format.Bytes(a.SizeBytes),
				f.colors.Muted(format.Duration(a.Duration)),
			})
		}

		sb.WriteString("\n" + f.colors.Header("▸ Charts") + "\n\n")
		sb.WriteString(f.renderer.RenderToString([]string{"File", "Size", "Render Time"}, rows))
	}

	return sb.String()
}

func (f *SummaryFormatter) checkRows(checks report.Checks) [][]string {
	passed := int64(checks.Passes)
	total := int64(checks.Total())

	rate, err := checks.SuccessRate()
	if err != nil {
		f.log.WithError(err).Debug("no check success rate")

		return [][]string{
			{"Checks", f.colors.Muted("0/0")},
			{"Success Rate", f.colors.Muted("n/a")},
		}
	}

	return [][]string{
		{"Checks", f.colors.FormatChecks(passed, total)},
		{"Success Rate", f.colors.FormatPercentage(rate)},
	}
}

func labelledRows(labels []string, values []float64, fn func(float64) string) [][]string {
	rows := make([][]string, len(labels))
	for i := range labels {
		rows[i] = []string{labels[i], fn(values[i])}
	}

	return rows
}

func formatAll(values []float64, verb string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf(verb, v)
	}

	return out
}
