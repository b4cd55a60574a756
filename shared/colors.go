package shared

import (
	color "github.com/fatih/color"
)

// Badge attributes used when rendering diagnostics.
var (
	ErrorBadge   = []color.Attribute{color.FgWhite, color.BgRed, color.Bold}
	ArgumentText = []color.Attribute{color.FgCyan}
)

// ColorString applies the given attributes to str.
// Attributes are dropped when color output is disabled (non-tty, NO_COLOR).
func ColorString(str string, colorAttrs []color.Attribute) string {
	if len(colorAttrs) == 0 {
		return str
	}
	return color.New(colorAttrs...).Sprint(str)
}
