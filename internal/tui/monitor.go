// Package tui provides terminal user interface components for switchctl
package tui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/signalbay/switchctl/internal/parse"
)

// DefaultInterval is the monitor refresh period.
const DefaultInterval = 5 * time.Second

// StatusFetcher queries the current sofia status. The monitor calls it
// on every refresh tick.
type StatusFetcher func(ctx context.Context) (*parse.Status, error)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type tickMsg time.Time

type statusMsg struct {
	status *parse.Status
	err    error
}

// Monitor is the bubbletea model for the live sofia status view.
type Monitor struct {
	host     string
	fetch    StatusFetcher
	interval time.Duration

	table   table.Model
	updated time.Time
	lastErr error
	rows    int
}

// NewMonitor builds a monitor polling fetch every interval.
func NewMonitor(host string, fetch StatusFetcher, interval time.Duration) Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}

	columns := []table.Column{
		{Title: "Kind", Width: 8},
		{Title: "Name", Width: 24},
		{Title: "Profile", Width: 12},
		{Title: "State", Width: 14},
		{Title: "Data", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)

	return Monitor{
		host:     host,
		fetch:    fetch,
		interval: interval,
		table:    t,
	}
}

func (m Monitor) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.tickCmd())
}

func (m Monitor) fetchCmd() tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		status, err := fetch(context.Background())
		return statusMsg{status: status, err: err}
	}
}

func (m Monitor) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.fetchCmd()
		}

	case tickMsg:
		return m, tea.Batch(m.fetchCmd(), m.tickCmd())

	case statusMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.updated = time.Now()
			rows := statusRows(msg.status)
			m.rows = len(rows)
			m.table.SetRows(rows)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Monitor) View() string {
	title := titleStyle.Render(fmt.Sprintf("sofia status — %s", m.host))

	var footer string
	switch {
	case m.lastErr != nil:
		footer = errStyle.Render(fmt.Sprintf("error: %v", m.lastErr))
	case m.updated.IsZero():
		footer = "loading..."
	default:
		footer = fmt.Sprintf("%d rows | updated %s", m.rows, m.updated.Format("15:04:05"))
	}

	help := helpStyle.Render("r: refresh • q: quit")
	return title + "\n" + m.table.View() + "\n" + footer + help
}

// statusRows flattens the status maps into stable, sorted table rows:
// profiles, then gateways, then aliases.
func statusRows(status *parse.Status) []table.Row {
	var rows []table.Row

	for _, name := range sortedKeys(status.Profiles) {
		row := status.Profiles[name]
		rows = append(rows, table.Row{"profile", name, "", row["state"], row["data"]})
	}
	for _, name := range sortedKeys(status.Gateways) {
		row := status.Gateways[name]
		rows = append(rows, table.Row{"gateway", name, row["profile"], row["state"], row["data"]})
	}
	for _, name := range sortedKeys(status.Aliases) {
		row := status.Aliases[name]
		rows = append(rows, table.Row{"alias", name, "", row["state"], row["data"]})
	}

	return rows
}

func sortedKeys(m map[string]parse.Row) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
