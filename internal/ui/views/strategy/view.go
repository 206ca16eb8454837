package strategy

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	strategydto "gakuplan/internal/modules/strategy/dto"
	"gakuplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StrategyPort interface {
	List(ctx context.Context) (strategydto.PlanOutput, error)
	ToggleMonth(ctx context.Context, itemIndex, month int) (strategydto.PlanOutput, error)
	SetWeekly(ctx context.Context, itemIndex int, weekly bool) (strategydto.PlanOutput, error)
	Remove(ctx context.Context, itemIndex int) (strategydto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PlanLoadedMsg struct {
	Plan strategydto.PlanOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   StrategyPort
	plan   strategydto.PlanOutput
	cursor int
	month  int
	loaded bool
	width  int
	height int
}

func New(port StrategyPort) Model {
	return Model{port: port, month: 1}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.List(context.Background())
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case PlanLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.loaded = true
		m.plan = msg.Plan
		if m.cursor >= len(m.plan.Items) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		if !m.loaded || len(m.plan.Items) == 0 {
			break
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.plan.Items)-1 {
				m.cursor++
			}
		case "left", "h":
			if m.month > 1 {
				m.month--
			}
		case "right", "l":
			if m.month < 12 {
				m.month++
			}
		case "enter":
			return m, m.mutateCmd(func(ctx context.Context) (strategydto.PlanOutput, error) {
				return m.port.ToggleMonth(ctx, m.cursor, m.month)
			})
		case "w":
			weekly := !m.plan.Items[m.cursor].Weekly
			return m, m.mutateCmd(func(ctx context.Context) (strategydto.PlanOutput, error) {
				return m.port.SetWeekly(ctx, m.cursor, weekly)
			})
		case "x":
			return m, m.mutateCmd(func(ctx context.Context) (strategydto.PlanOutput, error) {
				return m.port.Remove(ctx, m.cursor)
			})
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("全体戦略（12ヶ月）") + "\n\n")
	if len(m.plan.Items) == 0 {
		sb.WriteString(theme.Muted.Render("no plan items — promote a recommendation first") + "\n")
		return sb.String()
	}
	for _, item := range m.plan.Items {
		selected := item.Index == m.cursor
		prefix := "  "
		if selected {
			prefix = theme.Hot.Render("> ")
		}
		weekly := ""
		if item.Weekly {
			weekly = theme.Reached.Render(" [週間]")
		}
		sb.WriteString(fmt.Sprintf("%s%s / %s%s\n", prefix, item.Subject, item.Title, weekly))
		sb.WriteString("    " + m.renderMonths(item, selected) + "\n")
		if selected {
			sb.WriteString("    " + theme.Muted.Render(item.Reason) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓: item  ←/→: month  enter: click month  w: weekly  x: remove"))
	return sb.String()
}

// renderMonths draws the twelve month cells for one item, highlighting
// the filled range and, on the selected row, the month cursor.
func (m Model) renderMonths(item strategydto.ItemOutput, selected bool) string {
	cells := make([]string, 12)
	for month := 1; month <= 12; month++ {
		label := fmt.Sprintf("%2d", month)
		inRange := item.HasMonths && month >= item.MonthsStart && month <= item.MonthsEnd
		switch {
		case selected && month == m.month && inRange:
			label = theme.Hot.Render("[" + label + "]")
		case selected && month == m.month:
			label = theme.Hot.Render(" " + label + " ")
		case inRange:
			label = lipgloss.NewStyle().Background(theme.Surface1).Foreground(theme.Lavender).Render(" " + label + " ")
		default:
			label = theme.Muted.Render(" " + label + " ")
		}
		cells[month-1] = label
	}
	return strings.Join(cells, "")
}

func (m Model) mutateCmd(mutate func(context.Context) (strategydto.PlanOutput, error)) tea.Cmd {
	return func() tea.Msg {
		plan, err := mutate(context.Background())
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}
