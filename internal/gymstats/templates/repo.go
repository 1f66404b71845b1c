package templates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the template and binds the given exercises to it. Every exercise
// must belong to the template owner.
func (r *Repo) Add(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkOwnership(ctx, tx, template.OwnerID, template.ExerciseIDs); err != nil {
			return err
		}
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO template (owner_id, name, created_at, updated_at)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
			template.OwnerID, template.Name, template.CreatedAt, template.UpdatedAt,
		).Scan(&template.ID); err != nil {
			return fmt.Errorf("insert template: %w", err)
		}
		return insertMembership(ctx, tx, template.ID, template.ExerciseIDs)
	})
	if err != nil {
		return nil, err
	}

	return &template, nil
}

func (r *Repo) Get(ctx context.Context, ownerID, templateID int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))

	var template Template
	err = r.db.QueryRow(
		ctx,
		`SELECT id, owner_id, name, created_at, updated_at
			FROM template
			WHERE id = $1 AND owner_id = $2`,
		templateID, ownerID,
	).Scan(
		&template.ID,
		&template.OwnerID,
		&template.Name,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("template [query row]: %w", err)
	}

	templates := []Template{template}
	if err := r.loadMembership(ctx, templates); err != nil {
		return nil, err
	}
	return &templates[0], nil
}

func (r *Repo) List(ctx context.Context, ownerID int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name, created_at, updated_at
			FROM template
			WHERE owner_id = $1
			ORDER BY updated_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("templates [query]: %w", err)
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		var template Template
		if err := rows.Scan(
			&template.ID,
			&template.OwnerID,
			&template.Name,
			&template.CreatedAt,
			&template.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("templates [rows scan]: %w", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("templates [rows error]: %w", err)
	}
	rows.Close()

	if err := r.loadMembership(ctx, templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Update renames the template and, when exerciseIDs is not nil, replaces its membership.
func (r *Repo) Update(ctx context.Context, template Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE template SET name = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4`,
			template.Name, template.UpdatedAt, template.ID, template.OwnerID,
		)
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrTemplateNotFound
		}
		if template.ExerciseIDs == nil {
			return nil
		}

		if err := checkOwnership(ctx, tx, template.OwnerID, template.ExerciseIDs); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM template_exercise WHERE template_id = $1`, template.ID); err != nil {
			return fmt.Errorf("clear template membership: %w", err)
		}
		return insertMembership(ctx, tx, template.ID, template.ExerciseIDs)
	})
}

func (r *Repo) Delete(ctx context.Context, ownerID, templateID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM template WHERE id = $1 AND owner_id = $2`, templateID, ownerID)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// Duplicate creates a template named newName whose membership is a copy of
// the current membership of the source template.
func (r *Repo) Duplicate(ctx context.Context, ownerID, templateID int, newName string, now time.Time) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.duplicate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var newID int
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var sourceID int
		err := tx.QueryRow(
			ctx,
			`SELECT id FROM template WHERE id = $1 AND owner_id = $2 FOR SHARE`,
			templateID, ownerID,
		).Scan(&sourceID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTemplateNotFound
		}
		if err != nil {
			return fmt.Errorf("source template [query row]: %w", err)
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO template (owner_id, name, created_at, updated_at)
				VALUES ($1, $2, $3, $3)
				RETURNING id`,
			ownerID, newName, now,
		).Scan(&newID); err != nil {
			return fmt.Errorf("insert template: %w", err)
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO template_exercise (template_id, exercise_id, position)
				SELECT $1, exercise_id, position FROM template_exercise WHERE template_id = $2`,
			newID, sourceID,
		); err != nil {
			return fmt.Errorf("copy template membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, ownerID, newID)
}

func (r *Repo) loadMembership(ctx context.Context, templates []Template) error {
	if len(templates) == 0 {
		return nil
	}

	ids := make([]int, len(templates))
	indexByID := make(map[int]int, len(templates))
	for i := range templates {
		ids[i] = templates[i].ID
		indexByID[templates[i].ID] = i
		templates[i].ExerciseIDs = []int{}
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT template_id, exercise_id
			FROM template_exercise
			WHERE template_id = ANY($1)
			ORDER BY template_id, position`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("template membership [query]: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var templateID, exerciseID int
		if err := rows.Scan(&templateID, &exerciseID); err != nil {
			return fmt.Errorf("template membership [rows scan]: %w", err)
		}
		t := &templates[indexByID[templateID]]
		t.ExerciseIDs = append(t.ExerciseIDs, exerciseID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("template membership [rows error]: %w", err)
	}
	return nil
}

func checkOwnership(ctx context.Context, tx pgx.Tx, ownerID int, exerciseIDs []int) error {
	if len(exerciseIDs) == 0 {
		return nil
	}
	var owned int
	if err := tx.QueryRow(
		ctx,
		`SELECT count(*) FROM exercise WHERE owner_id = $1 AND id = ANY($2)`,
		ownerID, exerciseIDs,
	).Scan(&owned); err != nil {
		return fmt.Errorf("exercise ownership [query row]: %w", err)
	}
	if owned != len(exerciseIDs) {
		return plans.ErrExerciseNotFound
	}
	return nil
}

func insertMembership(ctx context.Context, tx pgx.Tx, templateID int, exerciseIDs []int) error {
	for position, exerciseID := range exerciseIDs {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO template_exercise (template_id, exercise_id, position) VALUES ($1, $2, $3)`,
			templateID, exerciseID, position,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return plans.ErrExerciseNotFound
			}
			return fmt.Errorf("bind exercise %d: %w", exerciseID, err)
		}
	}
	return nil
}
