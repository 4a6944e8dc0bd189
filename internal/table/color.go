package table

import (
	"fmt"

	"github.com/fatih/color"
)

// ColorHelper colors summary table cells. It is a no-op when fatih/color
// has detected a non-terminal stdout or NO_COLOR.
type ColorHelper struct {
	enabled bool
}

// NewColorHelper snapshots color.NoColor at construction time.
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

func (c *ColorHelper) paint(attrs []color.Attribute, text string) string {
	if !c.enabled {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

// Success marks a fully passing check set.
func (c *ColorHelper) Success(text string) string {
	return c.paint([]color.Attribute{color.FgGreen}, text)
}

// Failure marks a success rate below the warning band.
func (c *ColorHelper) Failure(text string) string {
	return c.paint([]color.Attribute{color.FgRed}, text)
}

// Warning marks partially failing checks.
func (c *ColorHelper) Warning(text string) string {
	return c.paint([]color.Attribute{color.FgYellow}, text)
}

// Muted is used for render timings and unavailable values.
func (c *ColorHelper) Muted(text string) string {
	return c.paint([]color.Attribute{color.FgHiBlack}, text)
}

// Header styles the "▸ Section" titles between tables.
func (c *ColorHelper) Header(text string) string {
	return c.paint([]color.Attribute{color.FgCyan, color.Bold}, text)
}

// FormatChecks renders passed/total k6 checks: green when none failed,
// red when none passed, yellow otherwise.
func (c *ColorHelper) FormatChecks(passed, total int64) string {
	text := fmt.Sprintf("%d/%d", passed, total)

	switch {
	case passed == total:
		return c.Success(text)
	case passed == 0:
		return c.Failure(text)
	default:
		return c.Warning(text)
	}
}

// FormatPercentage renders a check success rate to one decimal place, the
// same precision as the pie annotation. 90% and above is yellow.
func (c *ColorHelper) FormatPercentage(value float64) string {
	text := fmt.Sprintf("%.1f%%", value)

	switch {
	case value == 100.0:
		return c.Success(text)
	case value >= 90.0:
		return c.Warning(text)
	default:
		return c.Failure(text)
	}
}
