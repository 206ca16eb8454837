package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	advicedto "gakuplan/internal/modules/advice/dto"
	catalogdto "gakuplan/internal/modules/catalog/dto"
	profiledto "gakuplan/internal/modules/profile/dto"
	"gakuplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlanPort interface {
	Show(ctx context.Context) (profiledto.SessionOutput, error)
	ListCauses(ctx context.Context, subject string) ([]catalogdto.CauseOutput, error)
	ToggleCause(ctx context.Context, key string, selected bool) (profiledto.SessionOutput, error)
	Advise(ctx context.Context) (advicedto.AdviceOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StateLoadedMsg struct {
	Session profiledto.SessionOutput
	Causes  []catalogdto.CauseOutput
	Advice  advicedto.AdviceOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    PlanPort
	session profiledto.SessionOutput
	causes  []catalogdto.CauseOutput
	advice  advicedto.AdviceOutput
	preview viewport.Model
	cursor  int
	loaded  bool
	width   int
	height  int
}

func New(port PlanPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, preview: vp}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches the session, its cause checklist, and the advice.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		session, err := m.port.Show(ctx)
		if err != nil {
			return StateLoadedMsg{Err: err}
		}
		causes, err := m.port.ListCauses(ctx, session.Subject)
		if err != nil {
			return StateLoadedMsg{Err: err}
		}
		advice, err := m.port.Advise(ctx)
		if err != nil {
			return StateLoadedMsg{Err: err}
		}
		return StateLoadedMsg{Session: session, Causes: causes, Advice: advice}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case StateLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		m.loaded = true
		m.session = msg.Session
		m.causes = msg.Causes
		m.advice = msg.Advice
		if m.cursor >= len(m.causes) {
			m.cursor = 0
		}
		m.preview.SetContent(m.renderAdvice())

	case tea.KeyMsg:
		if !m.loaded {
			break
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.causes)-1 {
				m.cursor++
			}
		case " ":
			if m.cursor < len(m.causes) {
				key := m.causes[m.cursor].Key
				selected := !m.session.Causes[key]
				return m, m.toggleCmd(key, selected)
			}
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("loading…")
	}

	leftW := m.width * 4 / 10
	rightW := m.width - leftW

	left := lipgloss.NewStyle().
		Width(leftW).
		Height(m.height).
		Render(m.renderChecklist(leftW))

	right := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(rightW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	rightW := m.width - m.width*4/10
	m.preview.Width = rightW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderChecklist(width int) string {
	var sb strings.Builder
	score := fmt.Sprintf("%d/%d点", m.session.Score, m.session.Target)
	if m.session.Score >= m.session.Target {
		score = theme.Reached.Render(score)
	} else {
		score = theme.Behind.Render(score)
	}
	sb.WriteString(theme.Title.Render(m.session.Subject) + "  " + score + "\n")
	sb.WriteString(theme.Muted.Render(m.session.ExamLabel) + "\n\n")
	sb.WriteString(theme.Title.Render("原因チェック") + "\n")
	for i, cause := range m.causes {
		mark := "[ ]"
		if m.session.Causes[cause.Key] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, cause.Label)
		if i == m.cursor {
			line = theme.Hot.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(line) + "\n")
	}
	if m.session.Memo != "" {
		sb.WriteString("\n" + theme.Muted.Render("memo: "+m.session.Memo) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("space: toggle  ↑/↓: move"))
	return sb.String()
}

func (m Model) renderAdvice() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("おすすめの次の一手") + "  " + theme.Muted.Render("("+m.advice.Tier+")") + "\n\n")
	if len(m.advice.Solutions) == 0 {
		sb.WriteString(theme.Muted.Render("no recommendations"))
		return sb.String()
	}
	for idx, sol := range m.advice.Solutions {
		sb.WriteString(fmt.Sprintf("%s %s\n", theme.Hot.Render(fmt.Sprintf("%d.", idx)), sol.Title))
		sb.WriteString("   " + sol.Reason + "\n")
		if sol.URL != "" {
			sb.WriteString("   " + theme.Muted.Render(sol.URL) + "\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Muted.Render("promote <n> via palette to add to the plan"))
	return sb.String()
}

func (m Model) toggleCmd(key string, selected bool) tea.Cmd {
	reload := m.Reload()
	return func() tea.Msg {
		if _, err := m.port.ToggleCause(context.Background(), key, selected); err != nil {
			return StateLoadedMsg{Err: err}
		}
		return reload()
	}
}
