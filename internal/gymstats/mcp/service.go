package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/gymstats/templates"
)

// ExercisesStore reads exercise trees and the type catalog.
type ExercisesStore interface {
	ListExercisesScheduled(ctx context.Context, ownerID int, from, to plans.Date) ([]plans.Exercise, error)
	ExerciseTypes(ctx context.Context) ([]plans.ExerciseType, error)
}

// TemplatesStore reads the templates of an owner.
type TemplatesStore interface {
	List(ctx context.Context, ownerID int) ([]templates.Template, error)
}

// contextService is what the tool handlers need, scoped to a single user.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ExercisesInRange(ctx context.Context, from, to plans.Date) ([]plans.Exercise, error)
	ExerciseTypes(ctx context.Context) ([]plans.ExerciseType, error)
	Templates(ctx context.Context) ([]templates.Template, error)
	CaloriesSummary(ctx context.Context, from, to plans.Date) (*CaloriesSummary, error)
}

// GoalSummary aggregates the exercises of one goal.
type GoalSummary struct {
	Exercises int     `json:"exercises"`
	Minutes   int     `json:"minutes"`
	Calories  float64 `json:"calories"`
}

// CaloriesSummary aggregates the exercises scheduled within a date range.
type CaloriesSummary struct {
	From               plans.Date                 `json:"from"`
	To                 plans.Date                 `json:"to"`
	Exercises          int                        `json:"exercises"`
	TotalMinutes       int                        `json:"total_minutes"`
	TotalCalories      float64                    `json:"total_calories"`
	EstimatedFatLossKg float64                    `json:"estimated_fat_loss_kg"`
	TotalVolume        float64                    `json:"total_volume"`
	ByGoal             map[plans.Goal]GoalSummary `json:"by_goal"`
}

// ContextService answers planning questions about the exercises of one user.
type ContextService struct {
	ownerID   int
	schema    SchemaRepo
	exercises ExercisesStore
	templates TemplatesStore
}

func NewContextService(ownerID int, schemaRepo SchemaRepo, exercisesStore ExercisesStore, templatesStore TemplatesStore) *ContextService {
	return &ContextService{
		ownerID:   ownerID,
		schema:    schemaRepo,
		exercises: exercisesStore,
		templates: templatesStore,
	}
}

// GetSchema returns the exercise plan tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetPlanColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatPlanSchema(cols), nil
}

func formatPlanSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitplan DB Schema\n\nNo exercise plan tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Fitplan DB Schema\n\n")
	b.WriteString("Exercise trees: exercise -> exercise_set -> set_detail. Templates reference exercises via template_exercise.\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ExercisesInRange(ctx context.Context, from, to plans.Date) ([]plans.Exercise, error) {
	if to.Before(from.Time) {
		return nil, plans.NewValidationError("to_date", "must not be before from_date")
	}
	return s.exercises.ListExercisesScheduled(ctx, s.ownerID, from, to)
}

func (s *ContextService) ExerciseTypes(ctx context.Context) ([]plans.ExerciseType, error) {
	return s.exercises.ExerciseTypes(ctx)
}

func (s *ContextService) Templates(ctx context.Context) ([]templates.Template, error) {
	return s.templates.List(ctx, s.ownerID)
}

// CaloriesSummary totals the scheduled exercises in [from, to]. Manual calorie
// values win over calculated ones, the same way a single exercise reports them.
func (s *ContextService) CaloriesSummary(ctx context.Context, from, to plans.Date) (*CaloriesSummary, error) {
	exercises, err := s.ExercisesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &CaloriesSummary{
		From:   from,
		To:     to,
		ByGoal: make(map[plans.Goal]GoalSummary),
	}
	for _, ex := range exercises {
		calories := ex.CaloriesBurned()
		summary.Exercises++
		summary.TotalMinutes += ex.TotalDuration
		summary.TotalCalories += calories
		summary.EstimatedFatLossKg += ex.CalculateWeightLoss()
		summary.TotalVolume += ex.TotalVolume()

		goal := summary.ByGoal[ex.Goal]
		goal.Exercises++
		goal.Minutes += ex.TotalDuration
		goal.Calories += calories
		summary.ByGoal[ex.Goal] = goal
	}

	return summary, nil
}
