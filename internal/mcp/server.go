// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the chorewheel query surface as MCP tools, so an assistant can fetch
// today's recommendations, mark chores complete, and read statistics.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/chorewheel/chorewheel/internal/observability"
	"github.com/chorewheel/chorewheel/pkg/models"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the scheduler and exposes it as MCP tools.
type Server struct {
	server      *gomcp.Server
	scheduler   *core.Scheduler
	metricsCalc observability.MetricsCalculator

	// now supplies "today" for tool calls that omit a date. Overridable in
	// tests; the engine itself never reads a clock.
	now func() time.Time
}

// NewServer creates a new MCP server over the given scheduler. metricsCalc
// may be nil when observability is disabled.
func NewServer(scheduler *core.Scheduler, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{scheduler: scheduler, metricsCalc: metricsCalc, now: time.Now}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "chorewheel", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type getRecommendationsInput struct {
	Energy string `json:"energy" jsonschema:"required,energy level for the session (low, moderate, good)"`
	Date   string `json:"date,omitempty" jsonschema:"day to plan for in YYYY-MM-DD form. Defaults to today."`
}

type recommendationOutput struct {
	TaskID   string  `json:"task_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Priority string  `json:"priority"`
	Duration string  `json:"duration"`
	Score    float64 `json:"score"`
	Urgency  string  `json:"urgency"`
	InFocus  bool    `json:"in_focus,omitempty"`
}

type getRecommendationsOutput struct {
	Date            string                 `json:"date"`
	FocusCategory   string                 `json:"focus_category"`
	WeekNumber      int                    `json:"week_number"`
	Recommendations []recommendationOutput `json:"recommendations"`
	Count           int                    `json:"count"`
}

type completeTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the catalog task identifier (e.g. wipe-kitchen-counters)"`
	Date   string `json:"date,omitempty" jsonschema:"completion day in YYYY-MM-DD form. Defaults to today."`
}

type completeTaskOutput struct {
	Message string `json:"message"`
}

type getStatsInput struct{}

type frequencyStatsOutput struct {
	FrequencyDays int `json:"frequency_days"`
	TotalTasks    int `json:"total_tasks"`
	EverCompleted int `json:"ever_completed"`
	Overdue       int `json:"overdue"`
}

type getStatsOutput struct {
	AsOf              string                 `json:"as_of"`
	TotalTasks        int                    `json:"total_tasks"`
	TotalCompletions  int                    `json:"total_completions"`
	CompletionRate    float64                `json:"completion_rate"`
	CurrentStreak     int                    `json:"current_streak"`
	LongestStreak     int                    `json:"longest_streak"`
	RecentCompletions int                    `json:"recent_completions"`
	ByFrequency       []frequencyStatsOutput `json:"by_frequency"`
}

type getHistoryInput struct {
	DueOnly bool `json:"due_only,omitempty" jsonschema:"return only tasks that are currently due"`
}

type historyEntryOutput struct {
	TaskID    string `json:"task_id"`
	Name      string `json:"name"`
	Priority  string `json:"priority"`
	LastDone  string `json:"last_done,omitempty"`
	DaysSince int    `json:"days_since"`
	NeverDone bool   `json:"never_done"`
	Count     int    `json:"count"`
	Due       bool   `json:"due"`
}

type getHistoryOutput struct {
	Entries []historyEntryOutput `json:"entries"`
	Count   int                  `json:"count"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 24h). Defaults to 7d."`
}

type getMetricsOutput struct {
	Since          string `json:"since"`
	EventCount     int    `json:"event_count"`
	TasksCompleted int    `json:"tasks_completed"`
	PlansGenerated int    `json:"plans_generated"`
	PlansReset     int    `json:"plans_reset"`
	TasksReset     int    `json:"tasks_reset"`
	EntriesDropped int    `json:"entries_dropped"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_recommendations",
		Description: "Get the ordered cleaning task recommendations for a day and energy level, including this week's focus category.",
	}, s.handleGetRecommendations)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "complete_task",
		Description: "Mark a cleaning task complete on a given day. The task must exist in the catalog.",
	}, s.handleCompleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_stats",
		Description: "Get completion statistics: completion rate, streaks, and per-frequency breakdowns.",
	}, s.handleGetStats)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_history",
		Description: "Get the per-task completion history: last done, days since, completion counts, and due status.",
	}, s.handleGetHistory)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get operational metrics from the event log over a time window.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleGetRecommendations(_ context.Context, _ *gomcp.CallToolRequest, input getRecommendationsInput) (*gomcp.CallToolResult, getRecommendationsOutput, error) {
	energy, err := parseEnergy(input.Energy)
	if err != nil {
		return errorResult(err.Error()), getRecommendationsOutput{}, nil
	}
	day, err := s.parseDay(input.Date)
	if err != nil {
		return errorResult(err.Error()), getRecommendationsOutput{}, nil
	}

	plan, err := s.scheduler.PlanFor(day)
	if err != nil {
		return errorResult(fmt.Sprintf("planning day: %s", err)), getRecommendationsOutput{}, nil
	}

	recs := plan.ByEnergy[energy]
	out := getRecommendationsOutput{
		Date:            plan.Date,
		FocusCategory:   string(plan.FocusCategory),
		WeekNumber:      plan.WeekNumber,
		Recommendations: make([]recommendationOutput, len(recs)),
		Count:           len(recs),
	}
	for i, r := range recs {
		out.Recommendations[i] = recommendationOutput{
			TaskID:   r.TaskID,
			Name:     r.Name,
			Category: string(r.Category),
			Priority: string(r.Priority),
			Duration: string(r.Duration),
			Score:    r.Score,
			Urgency:  core.Band(r.Score),
			InFocus:  r.InFocus,
		}
	}
	return nil, out, nil
}

func (s *Server) handleCompleteTask(_ context.Context, _ *gomcp.CallToolRequest, input completeTaskInput) (*gomcp.CallToolResult, completeTaskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), completeTaskOutput{}, nil
	}
	day, err := s.parseDay(input.Date)
	if err != nil {
		return errorResult(err.Error()), completeTaskOutput{}, nil
	}

	if err := s.scheduler.MarkComplete(input.TaskID, day); err != nil {
		return errorResult(fmt.Sprintf("completing task %s: %s", input.TaskID, err)), completeTaskOutput{}, nil
	}
	return nil, completeTaskOutput{
		Message: fmt.Sprintf("task %s marked complete on %s", input.TaskID, day.Format(models.DateFormat)),
	}, nil
}

func (s *Server) handleGetStats(_ context.Context, _ *gomcp.CallToolRequest, _ getStatsInput) (*gomcp.CallToolResult, getStatsOutput, error) {
	stats, err := s.scheduler.Stats(s.now())
	if err != nil {
		return errorResult(fmt.Sprintf("computing stats: %s", err)), getStatsOutput{}, nil
	}

	out := getStatsOutput{
		AsOf:              stats.AsOf,
		TotalTasks:        stats.TotalTasks,
		TotalCompletions:  stats.TotalCompletions,
		CompletionRate:    stats.CompletionRate,
		CurrentStreak:     stats.CurrentStreak,
		LongestStreak:     stats.LongestStreak,
		RecentCompletions: stats.RecentCompletions,
		ByFrequency:       make([]frequencyStatsOutput, len(stats.ByFrequency)),
	}
	for i, fb := range stats.ByFrequency {
		out.ByFrequency[i] = frequencyStatsOutput{
			FrequencyDays: fb.FrequencyDays,
			TotalTasks:    fb.TotalTasks,
			EverCompleted: fb.EverCompleted,
			Overdue:       fb.Overdue,
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetHistory(_ context.Context, _ *gomcp.CallToolRequest, input getHistoryInput) (*gomcp.CallToolResult, getHistoryOutput, error) {
	entries, err := s.scheduler.History(s.now())
	if err != nil {
		return errorResult(fmt.Sprintf("loading history: %s", err)), getHistoryOutput{}, nil
	}

	out := getHistoryOutput{}
	for _, e := range entries {
		if input.DueOnly && !e.Due {
			continue
		}
		out.Entries = append(out.Entries, historyEntryOutput{
			TaskID:    e.TaskID,
			Name:      e.Name,
			Priority:  string(e.Priority),
			LastDone:  e.LastDone,
			DaysSince: e.DaysSince,
			NeverDone: e.NeverDone,
			Count:     e.Count,
			Due:       e.Due,
		})
	}
	out.Count = len(out.Entries)
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, getMetricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics are not available (observability disabled)"), getMetricsOutput{}, nil
	}

	since, err := parseSince(input.Since, s.now())
	if err != nil {
		return errorResult(err.Error()), getMetricsOutput{}, nil
	}

	metrics, err := s.metricsCalc.Calculate(since)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), getMetricsOutput{}, nil
	}

	return nil, getMetricsOutput{
		Since:          since.Format(time.RFC3339),
		EventCount:     metrics.EventCount,
		TasksCompleted: metrics.TasksCompleted,
		PlansGenerated: metrics.PlansGenerated,
		PlansReset:     metrics.PlansReset,
		TasksReset:     metrics.TasksReset,
		EntriesDropped: metrics.EntriesDropped,
	}, nil
}

// --- Helpers ---

// parseSince parses a window like "7d" or "24h" into a cutoff time. An empty
// string defaults to 7 days before now.
func parseSince(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.AddDate(0, 0, -7), nil
	}
	if strings.HasSuffix(raw, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day window %q", raw)
		}
		return now.AddDate(0, 0, -days), nil
	}
	if strings.HasSuffix(raw, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(raw, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour window %q", raw)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("unsupported window %q (use e.g. 7d, 24h)", raw)
}

func (s *Server) parseDay(date string) (time.Time, error) {
	if date == "" {
		return core.Day(s.now()), nil
	}
	d, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return d, nil
}

func parseEnergy(raw string) (models.EnergyLevel, error) {
	switch models.EnergyLevel(raw) {
	case models.EnergyLow, models.EnergyModerate, models.EnergyGood:
		return models.EnergyLevel(raw), nil
	}
	return "", fmt.Errorf("invalid energy %q: must be one of low, moderate, good", raw)
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
