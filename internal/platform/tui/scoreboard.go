package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardentis/runeway/internal/storage"
)

const maxScoreboardRuns = 100

// ScoreboardKeyMap defines the key bindings for the run scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	best     int
	quitting bool
}

// NewScoreboardModel builds the scoreboard from stored runs.
func NewScoreboardModel(store *storage.Store, width int) (ScoreboardModel, error) {
	runs, err := store.TopRuns(maxScoreboardRuns)
	if err != nil {
		return ScoreboardModel{}, err
	}
	best, err := store.BestScore()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Lv", Width: 3},
		{Title: "Gems", Width: 5},
		{Title: "Dist", Width: 7},
		{Title: "Outcome", Width: 9},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Gems),
			formatDistance(r.Distance),
			r.Outcome,
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("14"))
	t.SetStyles(styles)

	h := help.New()
	h.Width = width

	return ScoreboardModel{
		table: t,
		help:  h,
		keys:  DefaultScoreboardKeyMap(),
		best:  best,
	}, nil
}

// Init is a no-op; the table is static.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and quitting.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a title and help footer.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Runeway — Run History (best: %d)", m.best))

	return title + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys) + "\n"
}

// RunScoreboard shows the interactive run history.
func RunScoreboard(store *storage.Store, width int) error {
	model, err := NewScoreboardModel(store, width)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
