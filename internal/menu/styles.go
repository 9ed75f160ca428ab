package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

// styles are bound to the renderer of the menu's output, so plain writers
// (pipes, buffers) receive unstyled text.
type styles struct {
	banner lipgloss.Style
	header lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		banner: r.NewStyle().Bold(true).Foreground(colorPass),
		header: r.NewStyle().Bold(true).Foreground(colorAccent),
		ok:     r.NewStyle().Foreground(colorPass),
		warn:   r.NewStyle().Foreground(colorWarn),
		muted:  r.NewStyle().Foreground(colorMuted),
	}
}
