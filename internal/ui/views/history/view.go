package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reviewdto "gakuplan/internal/modules/review/dto"
	weeklydto "gakuplan/internal/modules/weekly/dto"
	"gakuplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	History(ctx context.Context) ([]reviewdto.CycleOutput, error)
	ListSnapshots(ctx context.Context) ([]weeklydto.SnapshotOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type HistoryLoadedMsg struct {
	Cycles    []reviewdto.CycleOutput
	Snapshots []weeklydto.SnapshotOutput
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      HistoryPort
	cycles    []reviewdto.CycleOutput
	snapshots []weeklydto.SnapshotOutput
	body      viewport.Model
	loaded    bool
	width     int
	height    int
}

func New(port HistoryPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, body: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cycles, err := m.port.History(ctx)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		snapshots, err := m.port.ListSnapshots(ctx)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		return HistoryLoadedMsg{Cycles: cycles, Snapshots: snapshots}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 2
		m.body.Height = m.height - 2

	case HistoryLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.loaded = true
		m.cycles = msg.Cycles
		m.snapshots = msg.Snapshots
		m.body.SetContent(m.renderBody())
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}
	return m.body.View()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderBody() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("振り返り履歴") + "\n\n")
	if len(m.cycles) == 0 {
		sb.WriteString(theme.Muted.Render("no completed cycles yet") + "\n")
	}
	for _, cycle := range m.cycles {
		verdict := theme.Behind.Render("未達")
		if cycle.PrevScore >= cycle.Target {
			verdict = theme.Reached.Render("達成")
		}
		sb.WriteString(fmt.Sprintf("%s  %s  %d/%d点  %s  %s\n",
			theme.Hot.Render(cycle.At.Format("2006-01-02")),
			cycle.Subject, cycle.PrevScore, cycle.Target, verdict, theme.Muted.Render(cycle.Label)))
		for _, sol := range cycle.Solutions {
			sb.WriteString("    - " + sol.Title + ": " + theme.Muted.Render(sol.Reason) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Title.Render("週間スナップショット") + "\n\n")
	if len(m.snapshots) == 0 {
		sb.WriteString(theme.Muted.Render("no saved weeks") + "\n")
	}
	for _, snap := range m.snapshots {
		sb.WriteString(fmt.Sprintf("%s  week of %s  (%d rows)\n",
			theme.Hot.Render(snap.At.Format("2006-01-02")), snap.WeekStart, len(snap.Rows)))
		for _, row := range snap.Rows {
			var cells []string
			for day := 0; day < 7; day++ {
				if text, ok := row.Cells[day]; ok {
					cells = append(cells, fmt.Sprintf("%d:%s", day, text))
				}
			}
			sb.WriteString("    " + row.Subject + "/" + row.Title + "  " + theme.Muted.Render(strings.Join(cells, "  ")) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
