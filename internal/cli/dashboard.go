package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/chorewheel/chorewheel/pkg/models"
	"github.com/spf13/cobra"
)

// Dashboard panel indices.
const (
	panelToday = iota
	panelStats
	panelMetrics
	panelCount
)

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	planData    *planSnapshot
	statsData   *statsSnapshot
	metricsData *dashMetricsSnapshot

	// State.
	loading bool
	err     error
}

type planSnapshot struct {
	date  string
	week  int
	focus string
	recs  []recSnapshot
}

type recSnapshot struct {
	name    string
	urgency string
	inFocus bool
}

type statsSnapshot struct {
	completionRate    float64
	currentStreak     int
	longestStreak     int
	totalCompletions  int
	recentCompletions int
	windowDays        int
}

type dashMetricsSnapshot struct {
	eventCount     int
	tasksCompleted int
	plansGenerated int
	plansReset     int
	entriesDropped int
}

// dashDataLoadedMsg carries loaded data back to the model.
type dashDataLoadedMsg struct {
	plan    *planSnapshot
	stats   *statsSnapshot
	metrics *dashMetricsSnapshot
	err     error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	urgencyHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	urgencyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	urgencyLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{
		activePanel: panelToday,
		loading:     true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadDashboardData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadDashboardData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashDataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.planData = msg.plan
		m.statsData = msg.stats
		m.metricsData = msg.metrics
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" Chorewheel Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading data...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	todayPanel := m.renderTodayPanel()
	statsPanel := m.renderStatsPanel()
	metricsPanel := m.renderMetricsPanel()

	// Available width for panels after accounting for margins.
	availableWidth := m.width - 2

	var body string
	if availableWidth > 120 {
		// Horizontal layout: three columns.
		colWidth := availableWidth / 3
		todayPanel = m.applyPanelStyle(panelToday, todayPanel, colWidth-4)
		statsPanel = m.applyPanelStyle(panelStats, statsPanel, colWidth-4)
		metricsPanel = m.applyPanelStyle(panelMetrics, metricsPanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, todayPanel, statsPanel, metricsPanel)
	} else {
		// Vertical layout: stacked.
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		todayPanel = m.applyPanelStyle(panelToday, todayPanel, panelWidth)
		statsPanel = m.applyPanelStyle(panelStats, statsPanel, panelWidth)
		metricsPanel = m.applyPanelStyle(panelMetrics, metricsPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, todayPanel, statsPanel, metricsPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderTodayPanel() string {
	var b strings.Builder

	if m.planData == nil {
		b.WriteString(headerStyle.Render("Today"))
		b.WriteString("\n  No plan available.")
		return b.String()
	}

	pd := m.planData
	b.WriteString(headerStyle.Render(fmt.Sprintf("Today (week %d, focus: %s)", pd.week, pd.focus)))
	b.WriteString("\n")

	if len(pd.recs) == 0 {
		b.WriteString("  Everything is on schedule.")
		return b.String()
	}

	for _, r := range pd.recs {
		name := r.name
		if r.inFocus {
			name = focusStyle.Render(name + " *")
		}
		band := styleForUrgency(r.urgency).Render(fmt.Sprintf("[%s]", r.urgency))
		b.WriteString(fmt.Sprintf("  %s %s\n", band, name))
	}

	return b.String()
}

func (m dashboardModel) renderStatsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Stats"))
	b.WriteString("\n")

	if m.statsData == nil {
		b.WriteString("  No stats available.")
		return b.String()
	}

	sd := m.statsData
	b.WriteString(fmt.Sprintf("  %-16s %.0f%%\n", "On schedule", sd.completionRate*100))
	b.WriteString(fmt.Sprintf("  %-16s %d day(s)\n", "Streak", sd.currentStreak))
	b.WriteString(fmt.Sprintf("  %-16s %d day(s)\n", "Best streak", sd.longestStreak))
	b.WriteString(fmt.Sprintf("  %-16s %d\n", "Completions", sd.totalCompletions))
	b.WriteString(fmt.Sprintf("  %-16s %d (last %dd)\n", "Recent", sd.recentCompletions, sd.windowDays))

	return b.String()
}

func (m dashboardModel) renderMetricsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Metrics (7d)"))
	b.WriteString("\n")

	if m.metricsData == nil {
		b.WriteString("  No metrics available.")
		return b.String()
	}

	md := m.metricsData
	lines := []struct {
		label string
		value int
	}{
		{"Events", md.eventCount},
		{"Completed", md.tasksCompleted},
		{"Plans", md.plansGenerated},
		{"Resets", md.plansReset},
		{"Dropped", md.entriesDropped},
	}

	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %-14s %d\n", l.label, l.value))
	}

	return b.String()
}

func styleForUrgency(band string) lipgloss.Style {
	switch band {
	case "high":
		return urgencyHigh
	case "medium":
		return urgencyMedium
	case "low":
		return urgencyLow
	default:
		return lipgloss.NewStyle()
	}
}

func loadDashboardData() tea.Msg {
	result := dashDataLoadedMsg{}
	now := time.Now().UTC()

	// Load today's plan from the scheduler.
	if Scheduler != nil {
		plan, err := Scheduler.PlanFor(core.Day(now))
		if err != nil {
			result.err = fmt.Errorf("loading plan: %w", err)
			return result
		}
		ps := &planSnapshot{
			date:  plan.Date,
			week:  plan.WeekNumber,
			focus: string(plan.FocusCategory),
		}
		for _, r := range plan.ByEnergy[models.EnergyModerate] {
			ps.recs = append(ps.recs, recSnapshot{
				name:    r.Name,
				urgency: core.Band(r.Score),
				inFocus: r.InFocus,
			})
		}
		result.plan = ps

		stats, err := Scheduler.Stats(now)
		if err != nil {
			result.err = fmt.Errorf("loading stats: %w", err)
			return result
		}
		result.stats = &statsSnapshot{
			completionRate:    stats.CompletionRate,
			currentStreak:     stats.CurrentStreak,
			longestStreak:     stats.LongestStreak,
			totalCompletions:  stats.TotalCompletions,
			recentCompletions: stats.RecentCompletions,
			windowDays:        stats.RecentWindowDays,
		}
	}

	// Load metrics from MetricsCalc.
	if MetricsCalc != nil {
		since := now.AddDate(0, 0, -7)
		metrics, err := MetricsCalc.Calculate(since)
		if err != nil {
			result.err = fmt.Errorf("loading metrics: %w", err)
			return result
		}
		result.metrics = &dashMetricsSnapshot{
			eventCount:     metrics.EventCount,
			tasksCompleted: metrics.TasksCompleted,
			plansGenerated: metrics.PlansGenerated,
			plansReset:     metrics.PlansReset,
			entriesDropped: metrics.EntriesDropped,
		}
	}

	return result
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard for today's plan and statistics",
	Long: `Launch an interactive terminal dashboard showing today's recommended
tasks, completion statistics, and scheduler metrics.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
