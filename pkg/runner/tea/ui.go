package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/serenitas/pkg/controller"
	"tableflip.dev/serenitas/pkg/library"
	"tableflip.dev/serenitas/pkg/logger"
	"tableflip.dev/serenitas/pkg/nav"
	"tableflip.dev/serenitas/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/serenitas/pkg/runner/tea/internal/theme"
	"tableflip.dev/serenitas/pkg/views"
)

// editor fields
type field int

const (
	fieldContent field = iota
	fieldTitle
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxTextWidth  = 72
)

// Model contains UI state. Application state lives in the controller; the
// model only keeps what is local to the screen.
type Model struct {
	ctl   *controller.Controller
	ctx   context.Context
	log   logger.Logger
	theme theme.Theme

	// cursor indexes the selectable rows of the current view.
	cursor int
	filter library.Category

	title textinput.Model
	body  textarea.Model
	focus field

	footer bottombar.Model

	termWidth  int
	termHeight int
}

// New creates a UI model on top of a controller.
func New(ctl *controller.Controller, log logger.Logger, th theme.Theme) Model {
	if log == nil {
		log = logger.Nop()
	}
	ti := textinput.New()
	ti.Placeholder = "Título (opcional)"
	ti.CharLimit = 200
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "¿Qué ocupa tu mente hoy? Deja que tus pensamientos fluyan..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	m := Model{
		ctl:        ctl,
		ctx:        context.Background(),
		log:        log,
		theme:      th,
		title:      ti,
		body:       ta,
		footer:     bottombar.New(th.Footer),
		termWidth:  defaultWidth,
		termHeight: defaultHeight,
	}
	m.applySizes()
	m.syncFooter()
	return m
}

// Init has nothing to load; the controller is hydrated before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tea.KeyPressMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if _, ok := m.ctl.State().View.(nav.Write); ok {
			cmds = append(cmds, m.updateEditor(msg)...)
		} else {
			if key == "q" {
				return m, tea.Quit
			}
			cmds = append(cmds, m.updateBrowse(key)...)
		}
	}
	m.syncFooter()
	return m, tea.Batch(cmds...)
}

func (m *Model) updateEditor(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.String() {
	case "esc":
		m.dispatch(nav.Cancel{})
		m.footer.SetStatus("Cancelado")
	case "ctrl+s":
		before := len(m.ctl.State().Entries)
		editing := m.editor().Editing()
		if m.dispatch(nav.Save{Title: m.title.Value(), Content: m.body.Value()}) {
			if _, still := m.ctl.State().View.(nav.Write); still {
				m.footer.SetStatus("Escribe algo antes de guardar")
			} else if editing || len(m.ctl.State().Entries) > before {
				m.footer.SetStatus("Guardado")
			}
		}
	case "tab", "shift+tab":
		cmds = append(cmds, m.toggleField())
	default:
		var cmd tea.Cmd
		if m.focus == fieldTitle {
			m.title, cmd = m.title.Update(msg)
		} else {
			m.body, cmd = m.body.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (m *Model) updateBrowse(key string) []tea.Cmd {
	var cmds []tea.Cmd
	view := m.ctl.State().View
	switch key {
	case "1", "2", "3":
		tabs := nav.Tabs()
		idx := int(key[0] - '1')
		m.dispatch(nav.Navigate{To: tabs[idx]})
	case "n":
		if m.dispatch(nav.NewEntry{}) {
			cmds = append(cmds, m.loadEditor())
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "enter":
		if in := m.selection(); in != nil && m.dispatch(in) {
			if _, ok := m.ctl.State().View.(nav.Write); ok {
				cmds = append(cmds, m.loadEditor())
			}
		}
	case "s":
		if m.dispatch(nav.Discover{}) {
			lib := m.ctl.State().Library
			if len(lib) > 0 {
				m.footer.SetStatus(fmt.Sprintf("Descubierto: %s — %s", lib[0].Title, lib[0].Author))
			}
			m.filter = ""
			m.cursor = 0
		}
	case "f":
		if _, ok := view.(nav.Library); ok {
			m.filter = views.NextFilter(m.filter)
			m.cursor = 0
		}
	case "r":
		if m.dispatch(nav.Reflect{}) {
			cmds = append(cmds, m.loadEditor())
		}
	case "esc", "backspace":
		if _, ok := view.(nav.ReadItem); ok {
			m.dispatch(nav.Back{})
		}
	}
	return cmds
}

// dispatch sends an intent and reports whether it was accepted. Moving to a
// different view resets the cursor.
func (m *Model) dispatch(in nav.Intent) bool {
	before := m.ctl.State().View.Name()
	if err := m.ctl.Dispatch(m.ctx, in); err != nil {
		m.log.Debug("intent rejected", logger.String("intent", in.Kind().String()), logger.Error(err))
		m.footer.SetError(err)
		return false
	}
	if m.ctl.State().View.Name() != before {
		m.cursor = 0
		m.footer.SetStatus("")
	}
	return true
}

// selection is the intent for the highlighted row.
func (m *Model) selection() nav.Intent {
	s := m.ctl.State()
	switch s.View.(type) {
	case nav.Dashboard:
		d := views.Dashboard(s.Entries, s.Library)
		idx := m.cursor
		if d.Featured != nil {
			if idx == 0 {
				return nav.SelectItem{Item: *d.Featured}
			}
			idx--
		}
		if idx >= 0 && idx < len(d.Recent) {
			return nav.SelectEntry{Entry: d.Recent[idx]}
		}
	case nav.Journal:
		rows := views.JournalList(s.Entries).Rows
		if m.cursor < len(rows) {
			return nav.SelectEntry{Entry: rows[m.cursor].Entry}
		}
	case nav.Library:
		items := views.LibraryList(s.Library, m.filter).Items
		if m.cursor < len(items) {
			return nav.SelectItem{Item: items[m.cursor]}
		}
	}
	return nil
}

func (m *Model) rowCount() int {
	s := m.ctl.State()
	switch s.View.(type) {
	case nav.Dashboard:
		d := views.Dashboard(s.Entries, s.Library)
		n := len(d.Recent)
		if d.Featured != nil {
			n++
		}
		return n
	case nav.Journal:
		return len(s.Entries)
	case nav.Library:
		return len(views.LibraryList(s.Library, m.filter).Items)
	}
	return 0
}

func (m *Model) editor() views.EditorModel {
	if w, ok := m.ctl.State().View.(nav.Write); ok {
		return views.Editor(w)
	}
	return views.EditorModel{}
}

// loadEditor fills the inputs from the editor contract and focuses the body.
func (m *Model) loadEditor() tea.Cmd {
	ed := m.editor()
	m.title.SetValue(ed.Title)
	m.body.SetValue(ed.Content)
	m.focus = fieldContent
	m.title.Blur()
	return m.body.Focus()
}

func (m *Model) toggleField() tea.Cmd {
	if m.focus == fieldContent {
		m.focus = fieldTitle
		m.body.Blur()
		return m.title.Focus()
	}
	m.focus = fieldContent
	m.title.Blur()
	return m.body.Focus()
}

func (m *Model) syncFooter() {
	s := m.ctl.State()
	switch v := s.View.(type) {
	case nav.Dashboard:
		m.footer.SetIntents(views.Dashboard(s.Entries, s.Library).Intents, "↑/↓ mover")
	case nav.Journal:
		m.footer.SetIntents(views.JournalList(s.Entries).Intents, "↑/↓ mover")
	case nav.Library:
		m.footer.SetIntents(views.LibraryList(s.Library, m.filter).Intents, "f categoría", "↑/↓ mover")
	case nav.ReadItem:
		m.footer.SetIntents(views.Reader(v).Intents)
	case nav.Write:
		m.footer.SetIntents(views.Editor(v).Intents, "tab campo")
	}
}

// applySizes recalculates input sizes based on current terminal size.
func (m *Model) applySizes() {
	w := m.textWidth()
	m.title.SetWidth(w)
	m.body.SetWidth(w)
	h := m.termHeight - 12
	if h < 3 {
		h = 3
	}
	m.body.SetHeight(h)
}

func (m Model) textWidth() int {
	w := m.termWidth - 4
	if w > maxTextWidth {
		w = maxTextWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the current screen.
func (m Model) View() string {
	s := m.ctl.State()
	var body string
	switch v := s.View.(type) {
	case nav.Dashboard:
		body = m.viewDashboard(views.Dashboard(s.Entries, s.Library))
	case nav.Journal:
		body = m.viewJournal(views.JournalList(s.Entries))
	case nav.Library:
		body = m.viewLibrary(views.LibraryList(s.Library, m.filter))
	case nav.ReadItem:
		body = m.viewReader(views.Reader(v))
	case nav.Write:
		body = m.viewEditor(views.Editor(v))
	}

	parts := []string{}
	if nav.IsTab(s.View.Name()) {
		parts = append(parts, m.viewTabs(s.View.Name()))
	}
	parts = append(parts, body, m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs(current nav.Name) string {
	tabs := make([]string, 0, 3)
	for i, n := range nav.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, views.TabLabel(n))
		if n == current {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) row(i int, text string) string {
	if i == m.cursor {
		return m.theme.Selected.Render("› " + text)
	}
	return "  " + text
}

func (m Model) viewDashboard(d views.DashboardModel) string {
	w := m.textWidth()
	var b strings.Builder
	b.WriteString(m.theme.Heading.Render("Buenos días.") + "\n")
	b.WriteString(m.theme.Subtitle.Render("Tómate un momento para conectar contigo mismo.") + "\n\n")

	idx := 0
	if d.Featured != nil {
		b.WriteString(m.theme.Faint.Render("SABIDURÍA DIARIA") + "\n")
		quote := m.theme.Quote.Render(wordwrap.String("“"+d.Featured.Content+"”", w-6))
		card := m.theme.Card.Render(quote + "\n\n— " + d.Featured.Author)
		if m.cursor == idx {
			card = m.theme.Card.BorderForeground(m.theme.Selected.GetForeground()).Render(quote + "\n\n— " + d.Featured.Author)
		}
		b.WriteString(card + "\n\n")
		idx++
	}

	b.WriteString(fmt.Sprintf("%d Entradas\n\n", d.EntryCount))

	if len(d.Recent) > 0 {
		b.WriteString(m.theme.Faint.Render("RECIENTE") + "\n")
		for _, e := range d.Recent {
			line := fmt.Sprintf("%s  %s", e.DisplayTitle(), m.theme.Faint.Render(e.Date.Format("2006-01-02")))
			b.WriteString(m.row(idx, line) + "\n")
			idx++
		}
	}
	return b.String()
}

func (m Model) viewJournal(j views.JournalModel) string {
	w := m.textWidth()
	var b strings.Builder
	b.WriteString(m.theme.Heading.Render("Mi Diario") + "\n")
	b.WriteString(m.theme.Subtitle.Render("Un espacio seguro para tu mente") + "\n\n")

	if j.Empty() {
		b.WriteString(m.theme.Heading.Render("Tu historia comienza hoy") + "\n")
		b.WriteString(m.theme.Faint.Render(wordwrap.String("Escribe tus pensamientos, miedos y gratitudes para cultivar la paz interior.", w)) + "\n")
		return b.String()
	}
	for i, r := range j.Rows {
		marker := " "
		if r.Linked {
			marker = m.theme.Link.Render("↳")
		}
		line := fmt.Sprintf("%s %s %s", m.theme.Faint.Render(r.Entry.Date.Format("2006-01-02")), marker, r.Title)
		b.WriteString(m.row(i, line) + "\n")
		if i == m.cursor {
			b.WriteString("    " + m.theme.Faint.Render(preview(r.Entry.Content, w-4)) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewLibrary(l views.LibraryModel) string {
	var b strings.Builder
	b.WriteString(m.theme.Heading.Render("Biblioteca") + "\n")
	sub := "Reflexiones para el alma"
	if l.Filter != "" {
		sub += " · " + l.Filter.String()
	}
	b.WriteString(m.theme.Subtitle.Render(sub) + "\n\n")

	if len(l.Items) == 0 {
		b.WriteString(m.theme.Faint.Render("No hay lecturas en esta categoría.") + "\n")
		return b.String()
	}
	for i, it := range l.Items {
		cat := m.theme.Category(it.Category).Render(strings.ToUpper(it.Category.String()))
		line := fmt.Sprintf("%s  %s %s", cat, it.Title, m.theme.Faint.Render("— "+it.Author))
		if it.IsFavorite {
			line += " ★"
		}
		b.WriteString(m.row(i, line) + "\n")
	}
	return b.String()
}

func (m Model) viewReader(r views.ReaderModel) string {
	w := m.textWidth()
	it := r.Item
	var b strings.Builder
	b.WriteString(m.theme.Category(it.Category).Render(strings.ToUpper(it.Category.String())) + "\n")
	b.WriteString(m.theme.Heading.Render(it.Title) + "\n\n")
	b.WriteString(m.theme.Quote.Render(wordwrap.String("“"+it.Content+"”", w)) + "\n\n")
	b.WriteString(m.theme.Subtitle.Render("— "+it.Author) + "\n\n")
	b.WriteString(m.theme.Selected.Render("r  Reflexionar sobre esto") + "\n")
	return b.String()
}

func (m Model) viewEditor(ed views.EditorModel) string {
	w := m.textWidth()
	var b strings.Builder
	heading := "Nueva entrada"
	if ed.Editing() {
		heading = "Editar entrada"
	}
	b.WriteString(m.theme.Heading.Render(heading) + "\n")
	if ed.Linked != nil {
		b.WriteString(m.theme.Link.Render("Inspirado en: "+ed.Linked.Title+" — "+ed.Linked.Author) + "\n")
	}
	b.WriteString("\n" + m.title.View() + "\n\n" + m.body.View() + "\n")
	if ed.Reflection != "" {
		b.WriteString("\n" + m.theme.Faint.Render(wordwrap.String(ed.Reflection, w)) + "\n")
	}
	return b.String()
}

func preview(content string, width int) string {
	line := strings.Join(strings.Fields(content), " ")
	return truncate.StringWithTail(line, uint(width), "…")
}

// Program entry
func Run(ctx context.Context, ctl *controller.Controller, log logger.Logger) error {
	m := New(ctl, log, theme.Default())
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
