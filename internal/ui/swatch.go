package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/faizmokh/tasklist/internal/tasklist"
)

// Bright ANSI background colors used for swatches.
const (
	brightRed    = lipgloss.Color("9")
	brightGreen  = lipgloss.Color("10")
	brightYellow = lipgloss.Color("11")
	brightBlue   = lipgloss.Color("12")
)

var (
	priorityColors = map[string]lipgloss.Color{
		tasklist.PriorityCritical: brightRed,
		tasklist.PriorityHigh:     brightYellow,
		tasklist.PriorityNormal:   brightGreen,
		tasklist.PriorityLow:      brightBlue,
	}

	dueColors = map[tasklist.DueStatus]lipgloss.Color{
		tasklist.DueIncoming: brightGreen,
		tasklist.DueToday:    brightYellow,
		tasklist.DueOverdue:  brightRed,
	}
)

// swatches renders one-cell color markers. With color off each swatch falls
// back to a visible letter so the column keeps its width.
type swatches struct {
	renderer *lipgloss.Renderer
	color    bool
}

func newSwatches(color bool) swatches {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return swatches{renderer: r, color: color}
}

func (s swatches) priority(p string) string {
	c, ok := priorityColors[p]
	if !ok {
		return " "
	}
	if !s.color {
		return strings.ToUpper(p)
	}
	return s.cell(c)
}

func (s swatches) due(status tasklist.DueStatus) string {
	c, ok := dueColors[status]
	if !ok {
		return " "
	}
	if !s.color {
		return status.String()
	}
	return s.cell(c)
}

func (s swatches) cell(c lipgloss.Color) string {
	return s.renderer.NewStyle().Background(c).Render(" ")
}
