package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show variant sidebar
	sidebarWidth       = 20  // Width of variant sidebar
	maxScores          = 100 // Max scores to load
)

// Column widths; the date column takes what is left, up to maxDateWidth.
const (
	rankWidth    = 6
	scoreWidth   = 8
	resultWidth  = 7
	levelWidth   = 8
	minDateWidth = 14
	maxDateWidth = 20
)

// ScoreboardKeyMap switches layouts and scrolls the score table.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Up, k.Down, k.Top}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(label, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
	}
	return ScoreboardKeyMap{
		Up:   bind("↑/k", "up", "up", "k"),
		Down: bind("↓/j", "down", "down", "j"),
		Top:  bind("g", "best", "home", "g"),
		Next: bind("→/tab", "next layout", "right", "l", "tab"),
		Prev: bind("←/S-tab", "prev layout", "left", "h", "shift+tab"),
		Back: bind("esc/b", "back", "esc", "b"),
		Quit: bind("q", "quit", "q", "ctrl+c"),
	}
}

// scoreboardStyles are built from one renderer so SSH clients get colors
// matching their own terminal.
type scoreboardStyles struct {
	title     lipgloss.Style
	stats     lipgloss.Style
	box       lipgloss.Style
	sidebar   lipgloss.Style
	current   lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	empty     lipgloss.Style
	help      lipgloss.Style
	table     table.Styles
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return scoreboardStyles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		stats:     r.NewStyle().Foreground(lipgloss.Color("245")),
		box:       box,
		sidebar:   box.Width(sidebarWidth),
		current:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		tab:       r.NewStyle().Foreground(lipgloss.Color("241")),
		activeTab: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		empty:     r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		help:      r.NewStyle().Foreground(lipgloss.Color("241")),
		table: table.Styles{
			Header: r.NewStyle().Bold(true).Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true),
			Cell:     r.NewStyle().Padding(0, 1),
			Selected: r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		},
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
// It has one tab per registered variant.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	styles      scoreboardStyles
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the variant sidebar
}

// NewScoreboardModel creates a scoreboard drawn with the default renderer.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return NewScoreboardModelWithRenderer(store, width, height, nil)
}

// NewScoreboardModelWithRenderer creates a scoreboard whose styles come from r.
func NewScoreboardModelWithRenderer(store *storage.Store, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		styles:      newScoreboardStyles(r),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}

	return m
}

// createTable creates a table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	fixed := rankWidth + scoreWidth + resultWidth + levelWidth
	dateWidth := clampInt(tableWidth-fixed, minDateWidth, maxDateWidth)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: rankWidth},
			{Title: "Score", Width: scoreWidth},
			{Title: "Result", Width: resultWidth},
			{Title: "Level", Width: levelWidth},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // header, stats, help and margins
		table.WithStyles(m.styles.table),
	)
	return t
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// loadScores loads the top scores and the totals for one variant.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			resultLabel(s.Won),
			difficultyLabel(s.Difficulty),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultLabel(won bool) string {
	if won {
		return "Win"
	}
	return "Loss"
}

func difficultyLabel(d string) string {
	if d == "" {
		return "-"
	}
	return d
}

// layoutName strips the game name from a variant title: "Breakout (Wall)" -> "Wall".
func layoutName(title string) string {
	if i := strings.IndexByte(title, '('); i >= 0 && strings.HasSuffix(title, ")") {
		return title[i+1 : len(title)-1]
	}
	return title
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.selectGame(m.gameCursor + 1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.selectGame(m.gameCursor - 1)
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectGame moves to variant i, wrapping around.
func (m *ScoreboardModel) selectGame(i int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.gameCursor = (i%n + n) % n
	m.loadScores(m.games[m.gameCursor].ID)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString("\n")
	b.WriteString(m.styles.title.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(m.styles.stats.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes all runs of the current variant.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d  Wins: %d  Best: %d  Avg: %.0f  Last: %s",
		st.GamesCount, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02"))
}

// renderWideLayout renders the variant list next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Layouts\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		name := layoutName(g.Title)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		if i == m.gameCursor {
			sidebar.WriteString(m.styles.current.Render("> " + name))
		} else {
			sidebar.WriteString("  " + name)
		}
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.sidebar.Render(sidebar.String()),
		"  ",
		m.styles.box.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders variant tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(m.games))
	plain := 0
	for i, g := range m.games {
		name := layoutName(g.Title)
		plain += len(name) + 3
		if i == m.gameCursor {
			tabs[i] = m.styles.activeTab.Render(name)
		} else {
			tabs[i] = m.styles.tab.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if plain > m.width-4 && len(m.games) > 0 {
		// Just show current variant with arrows
		tabLine = fmt.Sprintf("< %s >", layoutName(m.games[m.gameCursor].Title))
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.styles.box.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return m.styles.empty.Render("No scores recorded yet.\nClear a layout to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
