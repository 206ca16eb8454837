package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	advicedto "gakuplan/internal/modules/advice/dto"
	catalogdto "gakuplan/internal/modules/catalog/dto"
	profiledto "gakuplan/internal/modules/profile/dto"
	reviewdto "gakuplan/internal/modules/review/dto"
	strategydto "gakuplan/internal/modules/strategy/dto"
	weeklydto "gakuplan/internal/modules/weekly/dto"
	"gakuplan/internal/ui/components"
	"gakuplan/internal/ui/theme"
	historyview "gakuplan/internal/ui/views/history"
	planview "gakuplan/internal/ui/views/plan"
	strategyview "gakuplan/internal/ui/views/strategy"
	weeklyview "gakuplan/internal/ui/views/weekly"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	ListCauses(ctx context.Context, subject string) ([]catalogdto.CauseOutput, error)
}

type profilePort interface {
	Show(ctx context.Context) (profiledto.SessionOutput, error)
	SetSubject(ctx context.Context, subject string) (profiledto.SessionOutput, error)
	SetTarget(ctx context.Context, target int) (profiledto.SessionOutput, error)
	SetScore(ctx context.Context, score int) (profiledto.SessionOutput, error)
	SetExamYear(ctx context.Context, year int) (profiledto.SessionOutput, error)
	SetExamType(ctx context.Context, examType string) (profiledto.SessionOutput, error)
	SetExamLabel(ctx context.Context, label string) (profiledto.SessionOutput, error)
	SetWeeklyStart(ctx context.Context, date string) (profiledto.SessionOutput, error)
	ToggleCause(ctx context.Context, key string, selected bool) (profiledto.SessionOutput, error)
	SetMemo(ctx context.Context, memo string) (profiledto.SessionOutput, error)
	SetPurpose(ctx context.Context, note string) (profiledto.SessionOutput, error)
}

type advicePort interface {
	Advise(ctx context.Context) (advicedto.AdviceOutput, error)
}

type strategyPort interface {
	List(ctx context.Context) (strategydto.PlanOutput, error)
	Promote(ctx context.Context, solutionIndex int) (strategydto.PlanOutput, error)
	ToggleMonth(ctx context.Context, itemIndex, month int) (strategydto.PlanOutput, error)
	SetWeekly(ctx context.Context, itemIndex int, weekly bool) (strategydto.PlanOutput, error)
	Remove(ctx context.Context, itemIndex int) (strategydto.PlanOutput, error)
}

type weeklyPort interface {
	Grid(ctx context.Context) (weeklydto.GridOutput, error)
	SetCell(ctx context.Context, itemIndex, day int, text string) (weeklydto.GridOutput, error)
	SaveSnapshot(ctx context.Context) (weeklydto.SnapshotOutput, error)
	ListSnapshots(ctx context.Context) ([]weeklydto.SnapshotOutput, error)
	Reindex(ctx context.Context) error
}

type reviewPort interface {
	ResetToRetry(ctx context.Context) (reviewdto.CycleOutput, error)
	History(ctx context.Context) ([]reviewdto.CycleOutput, error)
	Reindex(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabPlan tabID = iota
	tabStrategy
	tabWeekly
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{
	"問題解決", "全体戦略", "週間戦略", "履歴",
}

// ─── async messages ───────────────────────────────────────────────────────────

type mutationDoneMsg struct {
	status string
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Edit    key.Binding
	Save    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle cause")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell / click month")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save week snapshot")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Edit},
		{k.Save},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to
// port interfaces; all rendering is delegated to sub-views.
type Model struct {
	dataPath string

	// ports used at this orchestration level only
	profile  profilePort
	strategy strategyPort
	weekly   weeklyPort
	review   reviewPort

	// sub-views (one per tab)
	planView     planview.Model
	strategyView strategyview.Model
	weeklyView   weeklyview.Model
	historyView  historyview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	dataPath string,
	catalog catalogPort,
	profile profilePort,
	advice advicePort,
	strategy strategyPort,
	weekly weeklyPort,
	review reviewPort,
) Model {
	return Model{
		dataPath: dataPath,
		profile:  profile,
		strategy: strategy,
		weekly:   weekly,
		review:   review,
		planView: planview.New(planPortBridge{
			profile: profile,
			catalog: catalog,
			advice:  advice,
		}),
		strategyView: strategyview.New(strategyPortBridge{p: strategy}),
		weeklyView:   weeklyview.New(weeklyPortBridge{p: weekly}),
		historyView: historyview.New(historyPortBridge{
			review: review,
			weekly: weekly,
		}),
		activeTab: tabPlan,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.planView.Init(),
		m.strategyView.Init(),
		m.weeklyView.Init(),
		m.historyView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		return m, m.reloadAll()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// SnapshotSavedMsg is produced by the weekly view but bubbles up through
	// the top level so the status bar can show the result everywhere.
	case weeklyview.SnapshotSavedMsg:
		if msg.Err != nil {
			m.status = "snapshot: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("snapshot saved: week of %s (%d rows)", msg.Snapshot.WeekStart, len(msg.Snapshot.Rows))
			cmds = append(cmds, m.historyView.Reload())
		}
		var cmd tea.Cmd
		m.weeklyView, cmd = m.weeklyView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the weekly view while its cell editor is open.
		if m.activeTab == tabWeekly && m.weeklyView.Editing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmds = append(cmds, m.reloadTab(m.activeTab))
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmds = append(cmds, m.reloadTab(m.activeTab))
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabPlan:
		m.planView, tabCmd = m.planView.Update(msg)
	case tabStrategy:
		m.strategyView, tabCmd = m.strategyView.Update(msg)
	case tabWeekly:
		m.weeklyView, tabCmd = m.weeklyView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabPlan:
		return m.planView.View()
	case tabStrategy:
		return m.strategyView.View()
	case tabWeekly:
		return m.weeklyView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "gakuplan  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	rest := func(n int) string {
		return strings.TrimSpace(strings.TrimPrefix(input, strings.Join(parts[:n], " ")))
	}
	parseInt := func(raw string) (int, bool) {
		value, err := strconv.Atoi(raw)
		if err != nil {
			m.status = "not a number: " + raw
			return 0, false
		}
		return value, true
	}

	switch parts[0] {
	case "subject:set":
		if len(parts) < 2 {
			m.status = "usage: subject:set <name>"
			return m, nil
		}
		subject := rest(1)
		return m, m.mutationCmd("subject: "+subject, func(ctx context.Context) error {
			_, err := m.profile.SetSubject(ctx, subject)
			return err
		})

	case "target:set", "score:set", "exam:year":
		if len(parts) < 2 {
			m.status = "usage: " + parts[0] + " <number>"
			return m, nil
		}
		value, ok := parseInt(parts[1])
		if !ok {
			return m, nil
		}
		op := parts[0]
		return m, m.mutationCmd(op+" "+parts[1], func(ctx context.Context) error {
			var err error
			switch op {
			case "target:set":
				_, err = m.profile.SetTarget(ctx, value)
			case "score:set":
				_, err = m.profile.SetScore(ctx, value)
			case "exam:year":
				_, err = m.profile.SetExamYear(ctx, value)
			}
			return err
		})

	case "exam:type":
		if len(parts) < 2 {
			m.status = "usage: exam:type <name>"
			return m, nil
		}
		name := rest(1)
		return m, m.mutationCmd("exam type: "+name, func(ctx context.Context) error {
			_, err := m.profile.SetExamType(ctx, name)
			return err
		})

	case "exam:label":
		if len(parts) < 2 {
			m.status = "usage: exam:label <label>"
			return m, nil
		}
		label := rest(1)
		return m, m.mutationCmd("exam label: "+label, func(ctx context.Context) error {
			_, err := m.profile.SetExamLabel(ctx, label)
			return err
		})

	case "cause:toggle":
		if len(parts) < 2 {
			m.status = "usage: cause:toggle <key>"
			return m, nil
		}
		key := parts[1]
		return m, m.mutationCmd("toggled "+key, func(ctx context.Context) error {
			session, err := m.profile.Show(ctx)
			if err != nil {
				return err
			}
			_, err = m.profile.ToggleCause(ctx, key, !session.Causes[key])
			return err
		})

	case "memo:set":
		memo := rest(1)
		return m, m.mutationCmd("memo updated", func(ctx context.Context) error {
			_, err := m.profile.SetMemo(ctx, memo)
			return err
		})

	case "purpose:set":
		note := rest(1)
		return m, m.mutationCmd("purpose updated", func(ctx context.Context) error {
			_, err := m.profile.SetPurpose(ctx, note)
			return err
		})

	case "promote":
		if len(parts) < 2 {
			m.status = "usage: promote <solution>"
			return m, nil
		}
		index, ok := parseInt(parts[1])
		if !ok {
			return m, nil
		}
		m.activeTab = tabStrategy
		return m, m.mutationCmd("promoted solution "+parts[1], func(ctx context.Context) error {
			_, err := m.strategy.Promote(ctx, index)
			return err
		})

	case "month":
		if len(parts) < 3 {
			m.status = "usage: month <item> <1-12>"
			return m, nil
		}
		item, ok := parseInt(parts[1])
		if !ok {
			return m, nil
		}
		month, ok := parseInt(parts[2])
		if !ok {
			return m, nil
		}
		return m, m.mutationCmd(fmt.Sprintf("month %d clicked on item %d", month, item), func(ctx context.Context) error {
			_, err := m.strategy.ToggleMonth(ctx, item, month)
			return err
		})

	case "weekly":
		if len(parts) < 3 {
			m.status = "usage: weekly <item> <on|off>"
			return m, nil
		}
		item, ok := parseInt(parts[1])
		if !ok {
			return m, nil
		}
		on := parts[2] != "off"
		return m, m.mutationCmd("weekly updated", func(ctx context.Context) error {
			_, err := m.strategy.SetWeekly(ctx, item, on)
			return err
		})

	case "week:start":
		if len(parts) < 2 {
			m.status = "usage: week:start <date>"
			return m, nil
		}
		date := parts[1]
		return m, m.mutationCmd("week start: "+date, func(ctx context.Context) error {
			_, err := m.profile.SetWeeklyStart(ctx, date)
			return err
		})

	case "week:save":
		m.activeTab = tabWeekly
		return m, m.weeklyView.SaveSnapshot()

	case "reset":
		return m, m.mutationCmd("cycle archived", func(ctx context.Context) error {
			_, err := m.review.ResetToRetry(ctx)
			return err
		})

	case "reindex":
		return m, m.mutationCmd("read models rebuilt", func(ctx context.Context) error {
			if err := m.weekly.Reindex(ctx); err != nil {
				return err
			}
			return m.review.Reindex(ctx)
		})

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.planView, _ = m.planView.Update(sz)
	m.strategyView, _ = m.strategyView.Update(sz)
	m.weeklyView, _ = m.weeklyView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

func (m Model) reloadAll() tea.Cmd {
	return tea.Batch(
		m.planView.Reload(),
		m.strategyView.Reload(),
		m.weeklyView.Reload(),
		m.historyView.Reload(),
	)
}

func (m Model) reloadTab(tab tabID) tea.Cmd {
	switch tab {
	case tabPlan:
		return m.planView.Reload()
	case tabStrategy:
		return m.strategyView.Reload()
	case tabWeekly:
		return m.weeklyView.Reload()
	case tabHistory:
		return m.historyView.Reload()
	}
	return nil
}

func (m Model) mutationCmd(status string, mutate func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := mutate(context.Background()); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{status: status}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type planPortBridge struct {
	profile profilePort
	catalog catalogPort
	advice  advicePort
}

func (b planPortBridge) Show(ctx context.Context) (profiledto.SessionOutput, error) {
	return b.profile.Show(ctx)
}
func (b planPortBridge) ListCauses(ctx context.Context, subject string) ([]catalogdto.CauseOutput, error) {
	return b.catalog.ListCauses(ctx, subject)
}
func (b planPortBridge) ToggleCause(ctx context.Context, key string, selected bool) (profiledto.SessionOutput, error) {
	return b.profile.ToggleCause(ctx, key, selected)
}
func (b planPortBridge) Advise(ctx context.Context) (advicedto.AdviceOutput, error) {
	return b.advice.Advise(ctx)
}

type strategyPortBridge struct{ p strategyPort }

func (b strategyPortBridge) List(ctx context.Context) (strategydto.PlanOutput, error) {
	return b.p.List(ctx)
}
func (b strategyPortBridge) ToggleMonth(ctx context.Context, itemIndex, month int) (strategydto.PlanOutput, error) {
	return b.p.ToggleMonth(ctx, itemIndex, month)
}
func (b strategyPortBridge) SetWeekly(ctx context.Context, itemIndex int, weekly bool) (strategydto.PlanOutput, error) {
	return b.p.SetWeekly(ctx, itemIndex, weekly)
}
func (b strategyPortBridge) Remove(ctx context.Context, itemIndex int) (strategydto.PlanOutput, error) {
	return b.p.Remove(ctx, itemIndex)
}

type weeklyPortBridge struct{ p weeklyPort }

func (b weeklyPortBridge) Grid(ctx context.Context) (weeklydto.GridOutput, error) {
	return b.p.Grid(ctx)
}
func (b weeklyPortBridge) SetCell(ctx context.Context, itemIndex, day int, text string) (weeklydto.GridOutput, error) {
	return b.p.SetCell(ctx, itemIndex, day, text)
}
func (b weeklyPortBridge) SaveSnapshot(ctx context.Context) (weeklydto.SnapshotOutput, error) {
	return b.p.SaveSnapshot(ctx)
}

type historyPortBridge struct {
	review reviewPort
	weekly weeklyPort
}

func (b historyPortBridge) History(ctx context.Context) ([]reviewdto.CycleOutput, error) {
	return b.review.History(ctx)
}
func (b historyPortBridge) ListSnapshots(ctx context.Context) ([]weeklydto.SnapshotOutput, error) {
	return b.weekly.ListSnapshots(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
