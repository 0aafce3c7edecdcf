package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/agent-bridge/pkg/objectives"
	"github.com/jwebster45206/agent-bridge/pkg/prompts"
	"github.com/jwebster45206/agent-bridge/pkg/state"
	"github.com/jwebster45206/agent-bridge/pkg/statusline"
	"github.com/jwebster45206/agent-bridge/pkg/textfilter"
)

const refreshInterval = time.Second

// WatchConfig names the files the dashboard reads.
type WatchConfig struct {
	StatePath      string
	HistoryPath    string
	ObjectivesPath string
	Filter         *textfilter.ProfanityFilter
}

// WatchUI is the BubbleTea model for the dashboard.
// https://github.com/charmbracelet/bubbletea
type WatchUI struct {
	config         *WatchConfig
	changes        <-chan struct{}
	now            func() time.Time
	assessViewport viewport.Model
	statusViewport viewport.Model
	ready          bool
	width          int
	height         int
	lastChange     time.Time
}

type stateChangedMsg struct{}

type tickMsg time.Time

var (
	assessPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingLeft(2)

	statusPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	staleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewWatchUI(cfg *WatchConfig, changes <-chan struct{}) WatchUI {
	return WatchUI{
		config:         cfg,
		changes:        changes,
		now:            time.Now,
		assessViewport: viewport.New(60, 20),
		statusViewport: viewport.New(30, 20),
	}
}

func (m WatchUI) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), tick())
}

// waitForChange blocks on the watcher channel. It is re-armed after every change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m WatchUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		avCmd tea.Cmd
		svCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		assessWidth := int(float64(m.width)*0.65) - 2
		statusWidth := m.width - assessWidth - 4

		m.assessViewport.Width = assessWidth - 2
		m.assessViewport.Height = m.height - 3
		m.statusViewport.Width = statusWidth - 2
		m.statusViewport.Height = m.height - 3
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case stateChangedMsg:
		m.lastChange = m.now()
		m.refresh()
		return m, waitForChange(m.changes)

	case tickMsg:
		// Staleness is time-based, so the status panel updates without file events.
		m.statusViewport.SetContent(m.renderStatus())
		return m, tick()
	}

	m.assessViewport, avCmd = m.assessViewport.Update(msg)
	m.statusViewport, svCmd = m.statusViewport.Update(msg)

	return m, tea.Batch(avCmd, svCmd)
}

func (m *WatchUI) refresh() {
	m.assessViewport.SetContent(m.renderAssessment())
	m.statusViewport.SetContent(m.renderStatus())
}

func (m WatchUI) renderAssessment() string {
	text := prompts.New().
		WithState(state.LoadMapping(m.config.StatePath)).
		WithHistory(state.LoadSequence(m.config.HistoryPath)).
		WithObjectives(objectives.Load(m.config.ObjectivesPath)).
		WithFilter(m.config.Filter).
		WithHeaderStyle(func(s string) string { return headerStyle.Render(s) }).
		BuildAssessment()

	if w := m.assessViewport.Width; w > 0 {
		text = wordwrap.String(text, w)
	}
	return text
}

func (m WatchUI) renderStatus() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	line, ok := statusline.Build(m.config.StatePath, m.now())
	if !ok {
		content.WriteString(staleStyle.Render("Game not running") + "\n")
		content.WriteString("State file is missing, stale or unreadable.\n\n")
	} else {
		for _, part := range strings.Split(line, " | ") {
			content.WriteString(part + "\n")
		}
		content.WriteString("\n")
	}

	content.WriteString("History:\n")
	content.WriteString(fmt.Sprintf("%d exchanges\n\n", len(state.LoadSequence(m.config.HistoryPath))))

	if !m.lastChange.IsZero() {
		content.WriteString("Last change:\n")
		content.WriteString(m.lastChange.Format("15:04:05") + "\n\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• ↑/↓: Scroll\n")
	content.WriteString("• q: Quit\n")

	return content.String()
}

func (m WatchUI) View() string {
	if !m.ready {
		return "Initializing..."
	}

	left := assessPanelStyle.Render(m.assessViewport.View())
	right := statusPanelStyle.Render(m.statusViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		helpStyle.Render("  watching "+m.config.StatePath),
	)
}
