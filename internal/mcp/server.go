// Package mcp exposes the reminder services as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"remindu/internal/app/services"
	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	addcategory "remindu/internal/core/services/add_category"
	createreminder "remindu/internal/core/services/create_reminder"
	listcategories "remindu/internal/core/services/list_categories"
	listreminders "remindu/internal/core/services/list_reminders"
	suggestdates "remindu/internal/core/services/suggest_dates"
)

const (
	serverName    = "remindu"
	serverVersion = "1.0.0"
)

type Server struct {
	mcpServer *server.MCPServer
	services  *services.Services
	log       logging.Logger
}

func NewServer(log logging.Logger, s *services.Services) *Server {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if s == nil {
		panic(e.NewNilArgumentError("services"))
	}
	srv := &Server{services: s, log: log}
	srv.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)
	srv.registerTools()
	return srv
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("add_reminder",
			mcp.WithDescription("Add a reminder. Title defaults to the description."),
			mcp.WithString("description", mcp.Required(), mcp.Description("What to be reminded of")),
			mcp.WithString("date_time", mcp.Required(), mcp.Description("Local date and time, e.g. 2024-01-10T18:00")),
			mcp.WithString("title", mcp.Description("Optional short title")),
			mcp.WithString("type", mcp.Description("Notification, Alarm or Voice (default: Voice)")),
			mcp.WithString("category_id", mcp.Description("ID of an existing category")),
			mcp.WithArray(
				"repeat_days",
				mcp.Description("Weekdays to repeat on, 1 (Monday) to 7 (Sunday)"),
				mcp.Items(map[string]any{"type": "integer", "minimum": 1, "maximum": 7}),
			),
		),
		s.handleAddReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_reminders",
			mcp.WithDescription("List reminders, optionally only those on one date"),
			mcp.WithString("date", mcp.Description("Date in YYYY-MM-DD format, or empty for all")),
		),
		s.handleListReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("suggest_dates",
			mcp.WithDescription("Quick date picks: today, tomorrow, weekend, next week and in one hour"),
		),
		s.handleSuggestDates,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List reminder categories and the selected one"),
		),
		s.handleListCategories,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("add_category",
			mcp.WithDescription("Add a reminder category"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Category name")),
			mcp.WithString("icon", mcp.Required(), mcp.Description("Icon name, e.g. fitness_center")),
			mcp.WithString("color", mcp.Required(), mcp.Description("Color as #RRGGBB")),
		),
		s.handleAddCategory,
	)
}

func (s *Server) handleAddReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := createreminder.Input{Description: req.GetString("description", "")}
	if title := req.GetString("title", ""); title != "" {
		input.Title = c.NewOptional(title, true)
	}
	if raw := req.GetString("date_time", ""); raw != "" {
		at, err := reminder.ParseDateTime(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		input.DateTime = c.NewOptional(at, true)
	}
	if raw := req.GetString("type", ""); raw != "" {
		t, err := reminder.ParseType(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		input.Type = t
	}
	if id := req.GetString("category_id", ""); id != "" {
		input.CategoryID = c.NewOptional(category.ID(id), true)
	}
	days, err := reminder.ParseRepeatDays(req.GetIntSlice("repeat_days", nil))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input.RepeatDays = days

	result, err := s.services.CreateReminder.Run(ctx, input)
	if err != nil {
		return s.toolError(ctx, "add reminder", err), nil
	}
	return jsonResult(map[string]any{
		"reminder":  views.FromReminder(result.Reminder),
		"persisted": result.Persisted,
	}), nil
}

func (s *Server) handleListReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := listreminders.Input{}
	if raw := req.GetString("date", ""); raw != "" {
		date, err := reminder.ParseDate(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		input.Date = c.NewOptional(date, true)
	}

	result, err := s.services.ListReminders.Run(ctx, input)
	if err != nil {
		return s.toolError(ctx, "list reminders", err), nil
	}
	if result.TotalCount == 0 {
		return mcp.NewToolResultText("No reminders found."), nil
	}
	return jsonResult(views.FromReminders(result.Reminders)), nil
}

func (s *Server) handleSuggestDates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.services.SuggestDates.Run(ctx, suggestdates.Input{})
	if err != nil {
		return s.toolError(ctx, "suggest dates", err), nil
	}
	return jsonResult(map[string]any{
		"now":         reminder.FormatDateTime(result.Now),
		"suggestions": views.FromSuggestions(result.Suggestions),
	}), nil
}

func (s *Server) handleListCategories(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.services.ListCategories.Run(ctx, listcategories.Input{})
	if err != nil {
		return s.toolError(ctx, "list categories", err), nil
	}
	return jsonResult(views.FromRegistry(result.Categories)), nil
}

func (s *Server) handleAddCategory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fields := category.Fields{Name: req.GetString("name", "")}
	if raw := req.GetString("icon", ""); raw != "" {
		icon, err := category.ParseIcon(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fields.Icon = icon
	}
	if raw := req.GetString("color", ""); raw != "" {
		color, err := category.ParseColor(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fields.Color = c.NewOptional(color, true)
	}

	result, err := s.services.AddCategory.Run(ctx, addcategory.Input{Fields: fields})
	if err != nil {
		return s.toolError(ctx, "add category", err), nil
	}
	return jsonResult(map[string]any{
		"category":  views.FromCategory(result.Category),
		"persisted": result.Persisted,
	}), nil
}

// toolError reports validation errors as they are and hides anything else
// behind a generic message.
func (s *Server) toolError(ctx context.Context, action string, err error) *mcp.CallToolResult {
	if e.IsValidationError(err) {
		return mcp.NewToolResultError(err.Error())
	}
	if errors.Is(err, category.ErrCategoryDoesNotExist) {
		return mcp.NewToolResultError("category does not exist")
	}
	logging.Error(s.log, ctx, err, logging.Entry("action", action))
	return mcp.NewToolResultError(fmt.Sprintf("failed to %s", action))
}

func jsonResult(v any) *mcp.CallToolResult {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not render result: %v", err))
	}
	return mcp.NewToolResultText(string(output))
}
