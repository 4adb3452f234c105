package ui

import (
	"fmt"

	"github.com/openlend/loanledger/internal/model"
)

// ANSI256 color codes.
const (
	colorAccent  = 74  // blue
	colorMuted   = 245 // medium gray
	colorGood    = 114 // green
	colorWarn    = 179 // amber
	colorDanger  = 167 // red
	colorNeutral = 250 // light gray
)

var noColor bool

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	return render(colorAccent, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	return render(colorMuted, s)
}

// RenderStatus returns the status string colored by lifecycle state:
// green for active, gray for settled, red for defaulted, amber for
// restructured.
func RenderStatus(s model.Status) string {
	switch s {
	case model.StatusActive:
		return render(colorGood, string(s))
	case model.StatusSettled:
		return render(colorMuted, string(s))
	case model.StatusDefaulted:
		return render(colorDanger, string(s))
	case model.StatusRestructured:
		return render(colorWarn, string(s))
	}
	return render(colorNeutral, string(s))
}

func render(color int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
