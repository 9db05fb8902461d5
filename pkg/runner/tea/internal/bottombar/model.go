package bottombar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/serenitas/pkg/nav"
	"tableflip.dev/serenitas/pkg/runner/tea/internal/theme"
)

var keyHelp = map[nav.Kind]string{
	nav.KindNavigate:    "1/2/3 tabs",
	nav.KindNewEntry:    "n nueva",
	nav.KindSelectEntry: "enter abrir",
	nav.KindSelectItem:  "enter leer",
	nav.KindReflect:     "r reflexionar",
	nav.KindBack:        "esc volver",
	nav.KindSave:        "ctrl+s guardar",
	nav.KindCancel:      "esc cancelar",
	nav.KindDiscover:    "s descubrir",
}

// Model tracks footer/help/status rendering state.
type Model struct {
	theme      theme.FooterTheme
	helpLine   string
	statusLine string
	isError    bool
}

// New returns a footer model with the given styles.
func New(t theme.FooterTheme) Model {
	return Model{theme: t}
}

// SetIntents rebuilds the help line for the intents a view can emit. Extra
// hints are appended before the quit hint. Views that accept typing quit
// with ctrl+c only.
func (m *Model) SetIntents(kinds []nav.Kind, extra ...string) {
	parts := make([]string, 0, len(kinds)+len(extra)+1)
	seen := map[string]bool{}
	quit := "q salir"
	for _, k := range kinds {
		if k == nav.KindSave {
			quit = "ctrl+c salir"
		}
		h, ok := keyHelp[k]
		if !ok || seen[h] {
			continue
		}
		seen[h] = true
		parts = append(parts, h)
	}
	parts = append(parts, extra...)
	parts = append(parts, quit)
	m.helpLine = strings.Join(parts, " · ")
}

// SetStatus shows an informational message.
func (m *Model) SetStatus(s string) {
	m.statusLine = s
	m.isError = false
}

// SetError shows an error message.
func (m *Model) SetError(err error) {
	if err == nil {
		return
	}
	m.statusLine = err.Error()
	m.isError = true
}

// Status is the current status message.
func (m Model) Status() string {
	return m.statusLine
}

// Help is the current help line.
func (m Model) Help() string {
	return m.helpLine
}

// View renders the footer.
func (m Model) View() string {
	status := m.theme.Status.Render(m.statusLine)
	if m.isError {
		status = m.theme.Error.Render(m.statusLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.theme.Help.Render(m.helpLine))
}
