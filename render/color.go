package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color is the display state of a vertex or edge.
type Color int

const (
	// Neutral is the initial and post-reset color.
	Neutral Color = iota
	// Visiting marks the vertex visited by the latest step.
	Visiting
	// Visited marks vertices visited earlier in the search.
	Visited
	// AlreadySeen marks a vertex that was popped after being visited.
	AlreadySeen
)

// String returns the lowercase name of c.
func (c Color) String() string {
	switch c {
	case Neutral:
		return "neutral"
	case Visiting:
		return "visiting"
	case Visited:
		return "visited"
	case AlreadySeen:
		return "already_seen"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// Palette, ANSI 256.
var (
	neutralStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	visitingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	visitedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("88"))
	alreadySeenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	edgeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Style returns the lipgloss style used to draw c.
func (c Color) Style() lipgloss.Style {
	switch c {
	case Visiting:
		return visitingStyle
	case Visited:
		return visitedStyle
	case AlreadySeen:
		return alreadySeenStyle
	default:
		return neutralStyle
	}
}
