package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/gymstats/templates"
)

// NewServer builds an MCP server with read-only planning tools for one user:
// schema, scheduled exercises, exercise types, templates, calories summary.
func NewServer(pool *pgxpool.Pool, ownerID int) *mcp.Server {
	svc := NewContextService(
		ownerID,
		NewPoolSchemaRepo(pool),
		plans.NewRepo(pool),
		templates.NewRepo(pool),
	)
	return newServer(NewHandler(svc))
}

func newServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitplan-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan_schema",
		Description: "Returns the DB schema of the exercise plan tables (exercise, exercise_set, set_detail, exercise_type, template, body_composition): columns, types, nullable, default.",
	}, h.GetPlanSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_scheduled_exercises",
		Description: "Returns the full exercise trees (sets and set details, durations, calories) scheduled within the given days. Args: from_date, to_date (YYYY-MM-DD, both included).",
	}, h.GetScheduledExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_types",
		Description: "Returns the catalog of exercise types (id, name, description). Exercise calories use the MET of these types.",
	}, h.GetExerciseTypesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_templates",
		Description: "Returns the saved templates with the ids of the exercises they reference, most recently updated first.",
	}, h.GetTemplatesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_calories_summary",
		Description: "Returns totals for the exercises scheduled within the given days: count, minutes, calories, estimated fat loss, volume, and a breakdown per goal. Args: from_date, to_date (YYYY-MM-DD).",
	}, h.GetCaloriesSummaryTool())

	return s
}
