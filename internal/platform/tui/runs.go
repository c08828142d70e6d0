package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stickhero/internal/games/stickhero"
	"github.com/vovakirdan/stickhero/internal/storage"
)

// Runs browser layout constants
const (
	maxRuns       = 100 // Max runs to load
	tableMinWidth = 50  // Minimum table width
)

// RunJournal is the part of the store the runs browser needs.
type RunJournal interface {
	ListRuns(limit int) ([]storage.Run, error)
	DeleteRun(id int64) error
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// runRow is a journaled run with its replayed outcome.
type runRow struct {
	run   storage.Run
	score int
	err   error
}

// RunsModel is the Bubble Tea model for the runs browser.
type RunsModel struct {
	store    RunJournal
	rows     []runRow
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	selected *stickhero.Recording
	quitting bool
}

// NewRunsModel creates a new runs browser.
func NewRunsModel(store RunJournal, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}

	// Give the seed column whatever is left
	tableWidth := max(m.width-4, tableMinWidth)
	fixed := 0
	for i, c := range columns {
		if i != 3 {
			fixed += c.Width + 2
		}
	}
	columns[3].Width = min(max(tableWidth-fixed-2, 10), 20)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reads the journal and replays every run to recover its score.
func (m *RunsModel) loadRuns() {
	m.rows = nil
	m.loadErr = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	runs, err := m.store.ListRuns(maxRuns)
	if err != nil {
		m.loadErr = err
		m.updateTableRows()
		return
	}

	for _, run := range runs {
		snap, err := stickhero.Replay(run.Recording())
		m.rows = append(m.rows, runRow{run: run, score: snap.Score, err: err})
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		score := fmt.Sprintf("%d", r.score)
		if r.err != nil {
			score = "?"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.run.ID),
			score,
			fmt.Sprintf("%d", r.run.Ticks),
			fmt.Sprintf("%d", r.run.Seed),
			r.run.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if r, ok := m.current(); ok && r.err == nil {
				rec := r.run.Recording()
				m.selected = &rec
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteRun(r.run.ID); err != nil {
					m.loadErr = err
					return m, nil
				}
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RunsModel) current() (runRow, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return runRow{}, false
	}
	return m.rows[i], true
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDED RUNS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.loadErr.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to see it here!")
	}

	return m.table.View()
}

// Selected returns the run chosen for replay, if any.
func (m RunsModel) Selected() (stickhero.Recording, bool) {
	if m.selected == nil {
		return stickhero.Recording{}, false
	}
	return *m.selected, true
}

// IsQuitting returns true if the user closed the browser without choosing a run.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers every line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunRunsBrowser runs the runs browser and returns the recording the user
// picked for replay. ok is false when the user quit instead.
func RunRunsBrowser(store RunJournal, width, height int) (rec stickhero.Recording, ok bool, err error) {
	model := NewRunsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return stickhero.Recording{}, false, err
	}

	m, isRuns := finalModel.(RunsModel)
	if !isRuns {
		return stickhero.Recording{}, false, nil
	}

	rec, ok = m.Selected()
	return rec, ok, nil
}
