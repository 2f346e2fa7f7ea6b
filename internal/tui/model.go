package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jveigel/brachistochrone-calculators/internal/calc"
	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
	"github.com/jveigel/brachistochrone-calculators/internal/solver"
)

// Mode indicates whether the TUI shows the home list or a calculator form.
type Mode int

const (
	ModeHome Mode = iota
	ModeForm
)

// flashDuration is how long a status bar flash note stays visible.
const flashDuration = 3 * time.Second

// AppModel is the root BubbleTea model: a home list of calculators and a
// form view for the one being worked.
type AppModel struct {
	Mode      Mode
	Home      HomeView
	Form      FormView
	StatusBar StatusBar
	Keys      KeyMap
	Width     int
	Height    int

	Calcs      []*calc.Calculator
	SolverOpts solver.Options

	Catalog *catalog.Catalog
	Reloads <-chan catalog.Reload

	flashGen int
}

// NewAppModel creates a root model over the given calculators.
func NewAppModel(calcs []*calc.Calculator, cat *catalog.Catalog, opts solver.Options) AppModel {
	choices := make([]CalcChoice, len(calcs))
	for i, c := range calcs {
		choices[i] = CalcChoice{Name: c.Name, Title: c.Title, Blurb: c.Blurb}
	}
	m := AppModel{
		Mode:       ModeHome,
		Home:       HomeView{Choices: choices},
		Keys:       DefaultKeyMap(),
		Calcs:      calcs,
		SolverOpts: opts,
		Catalog:    cat,
	}
	m.StatusBar.SetCatalog(cat)
	return m
}

// Init starts the cursor blink and, when a watcher is wired, the catalog
// reload subscription.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.Reloads != nil {
		cmds = append(cmds, waitForReload(m.Reloads))
	}
	return tea.Batch(cmds...)
}

// waitForReload blocks on the watcher channel and converts the next reload
// into a message. The update loop re-arms it after each delivery.
func waitForReload(ch <-chan catalog.Reload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return MsgCatalogReloaded{Catalog: r.Catalog, Path: r.Path, Err: r.Err}
	}
}

// expireFlashCmd schedules the flash note of generation gen to clear.
func expireFlashCmd(gen int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return MsgFlashExpired{Gen: gen}
	})
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.StatusBar.Width = msg.Width
		m.Home.Width = msg.Width
		m.Form.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgCatalogReloaded:
		return m.handleReload(msg)

	case MsgFlashExpired:
		if msg.Gen == m.flashGen {
			m.StatusBar.Flash = ""
			m.StatusBar.FlashErr = false
		}
		return m, nil
	}

	// Everything else (cursor blink and friends) feeds the focused input.
	if m.Mode == ModeForm {
		cmd := m.Form.UpdateFocused(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.Mode == ModeForm {
		return m.handleFormKey(msg)
	}
	return m.handleHomeKey(msg)
}

// handleHomeKey processes keys on the home list.
func (m AppModel) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		m.Home.MoveUp()

	case key.Matches(msg, m.Keys.Down):
		m.Home.MoveDown()

	case key.Matches(msg, m.Keys.Enter):
		m.openForm()
	}
	return m, nil
}

// handleFormKey processes keys on a calculator form. Unmatched keys flow
// into the focused text input.
func (m AppModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.Keys.Calculate):
		m.Form.Calculate()
		return m, nil

	case key.Matches(msg, m.Keys.PrevField):
		m.Form.FocusPrev()
		return m, nil

	case key.Matches(msg, m.Keys.NextField):
		m.Form.FocusNext()
		return m, nil

	case key.Matches(msg, m.Keys.CycleUnit):
		m.Form.CycleUnit()
		return m, nil

	case key.Matches(msg, m.Keys.Reset):
		m.Form.Reset()
		return m, nil
	}

	cmd := m.Form.UpdateFocused(msg)
	return m, cmd
}

// openForm enters form mode for the calculator under the home cursor.
func (m *AppModel) openForm() {
	i := m.Home.Cursor
	if i < 0 || i >= len(m.Calcs) {
		return
	}
	m.Form = NewFormView(m.Calcs[i], m.SolverOpts)
	m.Form.Width = m.Width
	m.Mode = ModeForm
	m.StatusBar.Name = m.Calcs[i].Title
}

// closeForm returns to the home list.
func (m *AppModel) closeForm() {
	m.Mode = ModeHome
	m.StatusBar.Name = ""
}

// handleReload applies a catalog reload and flashes the outcome.
func (m AppModel) handleReload(msg MsgCatalogReloaded) (tea.Model, tea.Cmd) {
	m.flashGen++
	if msg.Err != nil {
		m.StatusBar.Flash = "catalog reload failed"
		m.StatusBar.FlashErr = true
	} else {
		m.Catalog = msg.Catalog
		m.StatusBar.SetCatalog(msg.Catalog)
		m.StatusBar.Flash = "catalog reloaded"
		m.StatusBar.FlashErr = false
	}

	cmds := []tea.Cmd{expireFlashCmd(m.flashGen)}
	if m.Reloads != nil {
		cmds = append(cmds, waitForReload(m.Reloads))
	}
	return m, tea.Batch(cmds...)
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}

	var sections []string
	sections = append(sections, m.StatusBar.View())

	switch m.Mode {
	case ModeForm:
		m.Form.Width = m.Width
		sections = append(sections, m.Form.View())
	default:
		m.Home.Width = m.Width
		sections = append(sections, m.Home.View())
	}

	sections = append(sections, m.buildFooter().View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// buildFooter creates the footer with the bindings for the current mode.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width}
	if m.Mode == ModeForm {
		f.Bindings = FormFooterBindings(m.Keys)
	} else {
		f.Bindings = HomeFooterBindings(m.Keys)
	}
	return f
}
