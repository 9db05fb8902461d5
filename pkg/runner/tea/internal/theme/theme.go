package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/serenitas/pkg/library"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Faint    lipgloss.Style
	Quote    lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Link     lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	Footer FooterTheme

	categories map[library.Category]lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

const (
	stone = "#78716c"
	teal  = "#0f766e"
	amber = "#b45309"
)

// Default picks a palette for the terminal's background.
func Default() Theme {
	return New(termenv.HasDarkBackground())
}

// New builds the theme for a dark or light background.
func New(dark bool) Theme {
	text, muted := "#292524", "#a8a29e"
	if dark {
		text, muted = "#e7e5e4", "#78716c"
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(muted)).
		Padding(1, 2)

	t := Theme{
		Dark:      dark,
		Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Faint(true),
		Quote:     lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Italic(true),
		Card:      card,
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color(teal)).Bold(true),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color(teal)),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Bold(true).Underline(true).Padding(0, 1),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(amber)),
		},
		categories: map[library.Category]lipgloss.Style{},
	}
	for c, hex := range CategoryAccents() {
		t.categories[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
	}
	return t
}

// Category returns the accent style for c.
func (t Theme) Category(c library.Category) lipgloss.Style {
	if s, ok := t.categories[c]; ok {
		return s
	}
	return t.Subtitle
}

// CategoryAccents spreads the categories between teal and amber, pulled
// toward stone so none of them shouts.
func CategoryAccents() map[library.Category]string {
	from := mustHex(teal)
	to := mustHex(amber)
	base := mustHex(stone)

	all := library.AllCategories()
	out := make(map[library.Category]string, len(all))
	for i, c := range all {
		step := 0.0
		if len(all) > 1 {
			step = float64(i) / float64(len(all)-1)
		}
		out[c] = from.BlendLab(to, step).BlendLab(base, 0.2).Clamped().Hex()
	}
	return out
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
