package format

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles holds the renderers the tree encoder applies to each kind of text.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Index   lipgloss.Style
	Tag     lipgloss.Style
	Name    lipgloss.Style
	Type    lipgloss.Style
	Flags   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles builds styles bound to w. The renderer's color profile is set
// explicitly, so colorEnabled alone decides whether escapes are written.
func NewStyles(w io.Writer, colorEnabled bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !colorEnabled {
		r.SetColorProfile(termenv.Ascii)
		return newNoColorStyles(r)
	}
	r.SetColorProfile(termenv.ANSI256)
	return newColorStyles(r)
}

func newColorStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Heading: r.NewStyle().Bold(true),
		Index:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Tag:     r.NewStyle().Foreground(lipgloss.Color("14")),
		Name:    r.NewStyle().Bold(true),
		Type:    r.NewStyle().Foreground(lipgloss.Color("10")),
		Flags:   r.NewStyle().Foreground(lipgloss.Color("11")),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func newNoColorStyles(r *lipgloss.Renderer) *Styles {
	plain := r.NewStyle()
	return &Styles{
		Title:   plain,
		Heading: plain,
		Index:   plain,
		Tag:     plain,
		Name:    plain,
		Type:    plain,
		Flags:   plain,
		Dim:     plain,
	}
}

// ColorEnabled resolves a color mode ("auto", "always" or "never") for w.
// In auto mode color is used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
