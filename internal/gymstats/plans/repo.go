package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `
	id, owner_id, name, goal, total_duration,
	manual_calories_burned, calculated_calories_burned, scheduled_date, created_at
`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

var _ Store = (*Repo)(nil)

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) WithTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.tx")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(&pgTx{tx: tx})
}

func (r *Repo) GetExercise(ctx context.Context, ownerID, exerciseID int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	return getExercise(ctx, r.db, ownerID, exerciseID, false)
}

func (r *Repo) ListExercisesSince(ctx context.Context, ownerID int, since time.Time) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.list_since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise
			WHERE owner_id = $1 AND created_at >= $2
			ORDER BY created_at DESC, id DESC`,
		ownerID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	if err := loadChildren(ctx, r.db, exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// ListExercisesScheduled returns the trees scheduled within [from, to], both days included.
func (r *Repo) ListExercisesScheduled(ctx context.Context, ownerID int, from, to Date) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.list_scheduled")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise
			WHERE owner_id = $1 AND scheduled_date BETWEEN $2 AND $3
			ORDER BY scheduled_date, id`,
		ownerID, from.Time, to.Time,
	)
	if err != nil {
		return nil, fmt.Errorf("scheduled exercises [query]: %w", err)
	}

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	if err := loadChildren(ctx, r.db, exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *Repo) ExerciseTypes(ctx context.Context) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise_types.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM exercise_type ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	exerciseTypes := []ExerciseType{}
	for rows.Next() {
		var et ExerciseType
		if err := rows.Scan(&et.ID, &et.Name, &et.Description); err != nil {
			return nil, fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise types [rows error]: %w", err)
	}

	return exerciseTypes, nil
}

func (r *Repo) AddExerciseType(ctx context.Context, exerciseType ExerciseType) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise_types.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_type (name, description) VALUES ($1, $2) RETURNING id`,
		exerciseType.Name, exerciseType.Description,
	).Scan(&exerciseType.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseTypeExists
		}
		return nil, fmt.Errorf("insert exercise type: %w", err)
	}

	return &exerciseType, nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) LockExercise(ctx context.Context, ownerID, exerciseID int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.lock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	return getExercise(ctx, t.tx, ownerID, exerciseID, true)
}

func (t *pgTx) LoadExercises(ctx context.Context, ownerID int, exerciseIDs []int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.load_many")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = $1 AND id = ANY($2)`,
		ownerID, exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	found, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	if err := loadChildren(ctx, t.tx, found); err != nil {
		return nil, err
	}

	byID := make(map[int]Exercise, len(found))
	for _, ex := range found {
		byID[ex.ID] = ex
	}
	exercises := make([]Exercise, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		ex, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("exercise [%d]: %w", id, ErrExerciseNotFound)
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

func (t *pgTx) ExerciseIDForSet(ctx context.Context, ownerID, setID int) (int, error) {
	var exerciseID int
	err := t.tx.QueryRow(
		ctx,
		`SELECT s.exercise_id
			FROM exercise_set s
			JOIN exercise e ON e.id = s.exercise_id
			WHERE s.id = $1 AND e.owner_id = $2`,
		setID, ownerID,
	).Scan(&exerciseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrExerciseSetNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("exercise set [query row]: %w", err)
	}
	return exerciseID, nil
}

func (t *pgTx) ExerciseIDForDetail(ctx context.Context, ownerID, detailID int) (int, error) {
	var exerciseID int
	err := t.tx.QueryRow(
		ctx,
		`SELECT s.exercise_id
			FROM set_detail d
			JOIN exercise_set s ON s.id = d.exercise_set_id
			JOIN exercise e ON e.id = s.exercise_id
			WHERE d.id = $1 AND e.owner_id = $2`,
		detailID, ownerID,
	).Scan(&exerciseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrSetDetailNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("set detail [query row]: %w", err)
	}
	return exerciseID, nil
}

func (t *pgTx) InsertExercise(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = t.tx.QueryRow(
		ctx,
		`INSERT INTO exercise
			(owner_id, name, goal, total_duration, manual_calories_burned,
			 calculated_calories_burned, scheduled_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
		exercise.OwnerID,
		exercise.Name,
		exercise.Goal.String(),
		exercise.TotalDuration,
		exercise.ManualCaloriesBurned,
		exercise.CalculatedCaloriesBurned,
		exercise.ScheduledDate.Time,
		exercise.CreatedAt,
	).Scan(&exercise.ID)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}

	if err := t.setExerciseTypes(ctx, exercise.ID, exercise.ExerciseTypes); err != nil {
		return err
	}

	for i := range exercise.Sets {
		if err := t.InsertSet(ctx, exercise.ID, &exercise.Sets[i]); err != nil {
			return fmt.Errorf("sets[%d]: %w", i, err)
		}
	}

	return nil
}

func (t *pgTx) UpdateExercise(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(
		ctx,
		`UPDATE exercise
			SET name = $1, goal = $2, manual_calories_burned = $3, scheduled_date = $4
			WHERE id = $5 AND owner_id = $6`,
		exercise.Name,
		exercise.Goal.String(),
		exercise.ManualCaloriesBurned,
		exercise.ScheduledDate.Time,
		exercise.ID,
		exercise.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return t.setExerciseTypes(ctx, exercise.ID, exercise.ExerciseTypes)
}

func (t *pgTx) UpdateExerciseTotals(ctx context.Context, exercise *Exercise) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE exercise SET total_duration = $1, calculated_calories_burned = $2 WHERE id = $3`,
		exercise.TotalDuration,
		exercise.CalculatedCaloriesBurned,
		exercise.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (t *pgTx) DeleteExercise(ctx context.Context, ownerID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exercise.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// template_exercise rows go with the exercise by cascade; the templates
	// that listed it have changed
	if _, err := t.tx.Exec(
		ctx,
		`UPDATE template SET updated_at = now()
			WHERE owner_id = $2
			AND id IN (SELECT template_id FROM template_exercise WHERE exercise_id = $1)`,
		exerciseID, ownerID,
	); err != nil {
		return fmt.Errorf("touch templates of exercise %d: %w", exerciseID, err)
	}

	tag, err := t.tx.Exec(ctx, `DELETE FROM exercise WHERE id = $1 AND owner_id = $2`, exerciseID, ownerID)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (t *pgTx) InsertSet(ctx context.Context, exerciseID int, set *ExerciseSet) error {
	set.ExerciseID = exerciseID
	err := t.tx.QueryRow(
		ctx,
		`INSERT INTO exercise_set (exercise_id, exercise_name, body_part, joint_type, sets)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
		exerciseID,
		set.ExerciseName,
		set.BodyPart.String(),
		set.JointType.String(),
		set.Sets,
	).Scan(&set.ID)
	if err != nil {
		return fmt.Errorf("insert exercise set: %w", err)
	}

	for i := range set.Details {
		if err := t.InsertDetail(ctx, set.ID, &set.Details[i]); err != nil {
			return fmt.Errorf("details[%d]: %w", i, err)
		}
	}
	return nil
}

func (t *pgTx) UpdateSet(ctx context.Context, set *ExerciseSet) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE exercise_set
			SET exercise_name = $1, body_part = $2, joint_type = $3, sets = $4
			WHERE id = $5`,
		set.ExerciseName,
		set.BodyPart.String(),
		set.JointType.String(),
		set.Sets,
		set.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseSetNotFound
	}
	return nil
}

func (t *pgTx) DeleteSet(ctx context.Context, setID int) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM exercise_set WHERE id = $1`, setID)
	if err != nil {
		return fmt.Errorf("delete exercise set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseSetNotFound
	}
	return nil
}

func (t *pgTx) DeleteSets(ctx context.Context, exerciseID int) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM exercise_set WHERE exercise_id = $1`, exerciseID); err != nil {
		return fmt.Errorf("delete exercise sets: %w", err)
	}
	return nil
}

func (t *pgTx) InsertDetail(ctx context.Context, setID int, detail *SetDetail) error {
	detail.ExerciseSetID = setID
	err := t.tx.QueryRow(
		ctx,
		`INSERT INTO set_detail (exercise_set_id, reps, weight, actual_duration, rest_time)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
		setID,
		detail.Reps,
		detail.Weight,
		detail.ActualDuration,
		detail.RestTime,
	).Scan(&detail.ID)
	if err != nil {
		return detailWriteError("insert set detail", err)
	}
	return nil
}

func (t *pgTx) UpdateDetail(ctx context.Context, detail *SetDetail) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE set_detail
			SET reps = $1, weight = $2, actual_duration = $3, rest_time = $4
			WHERE id = $5`,
		detail.Reps,
		detail.Weight,
		detail.ActualDuration,
		detail.RestTime,
		detail.ID,
	)
	if err != nil {
		return detailWriteError("update set detail", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetDetailNotFound
	}
	return nil
}

// detailWriteError turns a rejected CHECK constraint (negative weight or
// durations, non-positive reps) into a validation error.
func detailWriteError(action string, err error) error {
	if pkg.IsCheckViolationError(err) {
		return NewValidationError("details", "reps, weight or durations out of range")
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (t *pgTx) DeleteDetail(ctx context.Context, detailID int) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM set_detail WHERE id = $1`, detailID)
	if err != nil {
		return fmt.Errorf("delete set detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetDetailNotFound
	}
	return nil
}

// setExerciseTypes replaces the type tags of an exercise, resolving them by name.
func (t *pgTx) setExerciseTypes(ctx context.Context, exerciseID int, names []string) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM exercise_exercise_type WHERE exercise_id = $1`, exerciseID); err != nil {
		return fmt.Errorf("clear exercise types: %w", err)
	}
	if len(names) == 0 {
		return nil
	}

	rows, err := t.tx.Query(ctx, `SELECT id, name FROM exercise_type WHERE name = ANY($1)`, names)
	if err != nil {
		return fmt.Errorf("exercise types [query]: %w", err)
	}
	idByName := map[string]int{}
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		idByName[name] = id
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("exercise types [rows error]: %w", err)
	}

	for _, name := range names {
		id, ok := idByName[name]
		if !ok {
			return NewValidationError("exercise_type", fmt.Sprintf("unknown exercise type %q", name))
		}
		if _, err := t.tx.Exec(
			ctx,
			`INSERT INTO exercise_exercise_type (exercise_id, exercise_type_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
			exerciseID, id,
		); err != nil {
			return fmt.Errorf("tag exercise type %q: %w", name, err)
		}
	}
	return nil
}

func getExercise(ctx context.Context, q querier, ownerID, exerciseID int, forUpdate bool) (*Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercise WHERE id = $1 AND owner_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	rows, err := q.Query(ctx, query, exerciseID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("exercise [query]: %w", err)
	}
	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrExerciseNotFound
	}
	if err := loadChildren(ctx, q, exercises); err != nil {
		return nil, err
	}
	return &exercises[0], nil
}

func scanExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var (
			ex        Exercise
			goal      string
			scheduled time.Time
		)
		err := rows.Scan(
			&ex.ID,
			&ex.OwnerID,
			&ex.Name,
			&goal,
			&ex.TotalDuration,
			&ex.ManualCaloriesBurned,
			&ex.CalculatedCaloriesBurned,
			&scheduled,
			&ex.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		ex.Goal = Goal(goal)
		ex.ScheduledDate = DateOf(scheduled)
		ex.ExerciseTypes = []string{}
		ex.Sets = []ExerciseSet{}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}
	return exercises, nil
}

// loadChildren attaches type names, sets and details to the given exercises.
// Sets and details keep insertion order.
func loadChildren(ctx context.Context, q querier, exercises []Exercise) error {
	if len(exercises) == 0 {
		return nil
	}

	ids := make([]int, len(exercises))
	indexByID := make(map[int]int, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
		indexByID[ex.ID] = i
	}

	typeRows, err := q.Query(
		ctx,
		`SELECT eet.exercise_id, et.name
			FROM exercise_exercise_type eet
			JOIN exercise_type et ON et.id = eet.exercise_type_id
			WHERE eet.exercise_id = ANY($1)
			ORDER BY et.name`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("exercise types [query]: %w", err)
	}
	for typeRows.Next() {
		var (
			exerciseID int
			name       string
		)
		if err := typeRows.Scan(&exerciseID, &name); err != nil {
			typeRows.Close()
			return fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		ex := &exercises[indexByID[exerciseID]]
		ex.ExerciseTypes = append(ex.ExerciseTypes, name)
	}
	typeRows.Close()
	if err := typeRows.Err(); err != nil {
		return fmt.Errorf("exercise types [rows error]: %w", err)
	}

	setRows, err := q.Query(
		ctx,
		`SELECT id, exercise_id, exercise_name, body_part, joint_type, sets
			FROM exercise_set
			WHERE exercise_id = ANY($1)
			ORDER BY id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("exercise sets [query]: %w", err)
	}
	type setPos struct{ exercise, set int }
	setPosByID := map[int]setPos{}
	for setRows.Next() {
		var (
			s                   ExerciseSet
			bodyPart, jointType string
		)
		if err := setRows.Scan(&s.ID, &s.ExerciseID, &s.ExerciseName, &bodyPart, &jointType, &s.Sets); err != nil {
			setRows.Close()
			return fmt.Errorf("exercise sets [rows scan]: %w", err)
		}
		s.BodyPart = BodyPart(bodyPart)
		s.JointType = JointType(jointType)
		s.Details = []SetDetail{}
		exIdx := indexByID[s.ExerciseID]
		exercises[exIdx].Sets = append(exercises[exIdx].Sets, s)
		setPosByID[s.ID] = setPos{exercise: exIdx, set: len(exercises[exIdx].Sets) - 1}
	}
	setRows.Close()
	if err := setRows.Err(); err != nil {
		return fmt.Errorf("exercise sets [rows error]: %w", err)
	}

	detailRows, err := q.Query(
		ctx,
		`SELECT d.id, d.exercise_set_id, d.reps, d.weight, d.actual_duration, d.rest_time
			FROM set_detail d
			JOIN exercise_set s ON s.id = d.exercise_set_id
			WHERE s.exercise_id = ANY($1)
			ORDER BY d.id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("set details [query]: %w", err)
	}
	defer detailRows.Close()
	for detailRows.Next() {
		var d SetDetail
		if err := detailRows.Scan(&d.ID, &d.ExerciseSetID, &d.Reps, &d.Weight, &d.ActualDuration, &d.RestTime); err != nil {
			return fmt.Errorf("set details [rows scan]: %w", err)
		}
		pos := setPosByID[d.ExerciseSetID]
		set := &exercises[pos.exercise].Sets[pos.set]
		set.Details = append(set.Details, d)
	}
	if err := detailRows.Err(); err != nil {
		return fmt.Errorf("set details [rows error]: %w", err)
	}

	return nil
}
