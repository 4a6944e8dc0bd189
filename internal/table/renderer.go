// Package table renders the derived summary numbers as terminal tables.
package table

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Renderer provides table rendering utilities
type Renderer interface {
	RenderToString(headers []string, rows [][]string, opts ...RenderOption) string
	RenderToWriter(w io.Writer, headers []string, rows [][]string, opts ...RenderOption)
}

// renderer implements Renderer interface
type renderer struct {
	log logrus.FieldLogger
}

// NewRenderer creates a new table renderer
func NewRenderer(log logrus.FieldLogger) Renderer {
	return &renderer{
		log: log.WithField("component", "table.renderer"),
	}
}

// RenderOption configures table rendering
type RenderOption func(*tablewriter.Table)

// WithBorder controls border visibility
func WithBorder(show bool) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetBorder(show)
	}
}

// WithAlignment sets column alignment (use tablewriter constants)
func WithAlignment(alignment int) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetAlignment(alignment)
	}
}

func (r *renderer) RenderToString(headers []string, rows [][]string, opts ...RenderOption) string {
	buf := &bytes.Buffer{}
	r.RenderToWriter(buf, headers, rows, opts...)
	return buf.String()
}

func (r *renderer) RenderToWriter(w io.Writer, headers []string, rows [][]string, opts ...RenderOption) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	// Apply default styling
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetBorder(true)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)

	for _, opt := range opts {
		opt(table)
	}

	table.AppendBulk(rows)
	table.Render()

	r.log.WithField("rows", len(rows)).Debug("rendered table")
}

// Compile-time interface compliance check
var _ Renderer = (*renderer)(nil)
