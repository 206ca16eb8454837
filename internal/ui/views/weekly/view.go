package weekly

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	weeklydto "gakuplan/internal/modules/weekly/dto"
	"gakuplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type WeeklyPort interface {
	Grid(ctx context.Context) (weeklydto.GridOutput, error)
	SetCell(ctx context.Context, itemIndex, day int, text string) (weeklydto.GridOutput, error)
	SaveSnapshot(ctx context.Context) (weeklydto.SnapshotOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type GridLoadedMsg struct {
	Grid weeklydto.GridOutput
	Err  error
}

// SnapshotSavedMsg bubbles up so the app model can show save feedback.
type SnapshotSavedMsg struct {
	Snapshot weeklydto.SnapshotOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    WeeklyPort
	grid    weeklydto.GridOutput
	input   textinput.Model
	row     int
	day     int
	editing bool
	loaded  bool
	width   int
	height  int
}

func New(port WeeklyPort) Model {
	ti := textinput.New()
	ti.Placeholder = "タスク…"
	ti.CharLimit = 120
	return Model{port: port, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		grid, err := m.port.Grid(context.Background())
		return GridLoadedMsg{Grid: grid, Err: err}
	}
}

// Editing reports whether the cell editor is open, in which case global
// key bindings must yield to allow free typing.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case GridLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.loaded = true
		m.grid = msg.Grid
		if m.row >= len(m.grid.Rows) {
			m.row = 0
		}

	case SnapshotSavedMsg:
		return m, m.Reload()

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				m.input.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.input.Value())
				m.editing = false
				m.input.Blur()
				return m, m.setCellCmd(m.grid.Rows[m.row].Index, m.day, text)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if !m.loaded || len(m.grid.Rows) == 0 {
			if msg.String() == "s" {
				return m, m.saveCmd()
			}
			break
		}
		switch msg.String() {
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
		case "down", "j":
			if m.row < len(m.grid.Rows)-1 {
				m.row++
			}
		case "left", "h":
			if m.day > 0 {
				m.day--
			}
		case "right", "l":
			if m.day < len(m.grid.Dates)-1 {
				m.day++
			}
		case "enter", "e":
			m.editing = true
			m.input.SetValue(m.grid.Rows[m.row].Cells[m.day])
			return m, m.input.Focus()
		case "d":
			return m, m.setCellCmd(m.grid.Rows[m.row].Index, m.day, "")
		case "s":
			return m, m.saveCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("週間戦略") + "  " + theme.Muted.Render("week of "+m.grid.WeekStart) + "\n\n")

	cellW := 12
	header := make([]string, len(m.grid.Dates))
	for i, date := range m.grid.Dates {
		label := m.grid.Labels[i] + " " + shortDate(date)
		header[i] = pad(label, cellW)
	}
	sb.WriteString(strings.Repeat(" ", 18) + theme.Muted.Render(strings.Join(header, "")) + "\n")

	if len(m.grid.Rows) == 0 {
		sb.WriteString(theme.Muted.Render("no weekly items — enroll a plan item with w on the strategy tab") + "\n")
		return sb.String()
	}
	for rowIdx, row := range m.grid.Rows {
		name := pad(row.Subject+"/"+row.Title, 18)
		if rowIdx == m.row {
			name = theme.Hot.Render(name)
		}
		sb.WriteString(name)
		for day := range m.grid.Dates {
			text := pad(row.Cells[day], cellW)
			if rowIdx == m.row && day == m.day {
				text = lipgloss.NewStyle().Background(theme.Surface1).Foreground(theme.Lavender).Render(text)
			}
			sb.WriteString(text)
		}
		sb.WriteString("\n")
	}

	if m.editing {
		sb.WriteString("\n" + theme.Title.Render("cell: ") + m.input.View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓/←/→: move  enter: edit  d: clear  s: save snapshot"))
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func shortDate(date string) string {
	if len(date) == len("2006-01-02") {
		return date[5:]
	}
	return date
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}

func (m Model) setCellCmd(itemIndex, day int, text string) tea.Cmd {
	return func() tea.Msg {
		grid, err := m.port.SetCell(context.Background(), itemIndex, day, text)
		return GridLoadedMsg{Grid: grid, Err: err}
	}
}

// SaveSnapshot is also reachable from the palette via the app model.
func (m Model) SaveSnapshot() tea.Cmd { return m.saveCmd() }

func (m Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.port.SaveSnapshot(context.Background())
		return SnapshotSavedMsg{Snapshot: snapshot, Err: err}
	}
}
