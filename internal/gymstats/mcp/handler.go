package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/fitplan/internal/gymstats/plans"
)

// Handler turns MCP tool calls into service calls and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// NoInput is the input of tools without arguments.
type NoInput struct{}

// DateRangeInput is the input of the tools working on a range of scheduled days.
type DateRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"First scheduled day (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"Last scheduled day, included (YYYY-MM-DD)"`
}

func (in DateRangeInput) parse() (plans.Date, plans.Date, *mcp.CallToolResult) {
	from, err := plans.ParseDate(in.FromDate)
	if err != nil {
		return plans.Date{}, plans.Date{}, errorResult("Invalid from_date: use YYYY-MM-DD")
	}
	to, err := plans.ParseDate(in.ToDate)
	if err != nil {
		return plans.Date{}, plans.Date{}, errorResult("Invalid to_date: use YYYY-MM-DD")
	}
	return from, to, nil
}

// GetPlanSchemaTool returns the handler of get_plan_schema.
func (h *Handler) GetPlanSchemaTool() mcp.ToolHandlerFor[NoInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// GetScheduledExercisesTool returns the handler of get_scheduled_exercises.
func (h *Handler) GetScheduledExercisesTool() mcp.ToolHandlerFor[DateRangeInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateRangeInput) (*mcp.CallToolResult, any, error) {
		from, to, invalid := in.parse()
		if invalid != nil {
			return invalid, nil, nil
		}
		exercises, err := h.service.ExercisesInRange(ctx, from, to)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(exercises), nil, nil
	}
}

// GetExerciseTypesTool returns the handler of get_exercise_types.
func (h *Handler) GetExerciseTypesTool() mcp.ToolHandlerFor[NoInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		types, err := h.service.ExerciseTypes(ctx)
		if err != nil {
			return errorResult("Error fetching exercise types: " + err.Error()), nil, nil
		}
		return jsonResult(types), nil, nil
	}
}

// GetTemplatesTool returns the handler of get_templates.
func (h *Handler) GetTemplatesTool() mcp.ToolHandlerFor[NoInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.Templates(ctx)
		if err != nil {
			return errorResult("Error listing templates: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// GetCaloriesSummaryTool returns the handler of get_calories_summary.
func (h *Handler) GetCaloriesSummaryTool() mcp.ToolHandlerFor[DateRangeInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateRangeInput) (*mcp.CallToolResult, any, error) {
		from, to, invalid := in.parse()
		if invalid != nil {
			return invalid, nil, nil
		}
		summary, err := h.service.CaloriesSummary(ctx, from, to)
		if err != nil {
			return errorResult("Error summarizing calories: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
