package bodycomp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, bc BodyComposition) (_ *BodyComposition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodycomp.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO body_composition
			(user_id, height, weight, body_fat_percentage, muscle_mass, bmi, visceral_fat,
			 basal_metabolic_rate, waist_circumference, hip_circumference, measured_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
		bc.UserID,
		bc.Height,
		bc.Weight,
		bc.BodyFatPercentage,
		bc.MuscleMass,
		bc.BMI,
		bc.VisceralFat,
		bc.BasalMetabolicRate,
		bc.WaistCircumference,
		bc.HipCircumference,
		bc.MeasuredAt,
	).Scan(&bc.ID)
	if err != nil {
		return nil, fmt.Errorf("insert body composition: %w", err)
	}

	return &bc, nil
}

func (r *Repo) Latest(ctx context.Context, userID int) (_ *BodyComposition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodycomp.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var bc BodyComposition
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, height, weight, body_fat_percentage, muscle_mass, bmi, visceral_fat,
			    basal_metabolic_rate, waist_circumference, hip_circumference, measured_at
			FROM body_composition
			WHERE user_id = $1
			ORDER BY measured_at DESC, id DESC
			LIMIT 1`,
		userID,
	).Scan(
		&bc.ID,
		&bc.UserID,
		&bc.Height,
		&bc.Weight,
		&bc.BodyFatPercentage,
		&bc.MuscleMass,
		&bc.BMI,
		&bc.VisceralFat,
		&bc.BasalMetabolicRate,
		&bc.WaistCircumference,
		&bc.HipCircumference,
		&bc.MeasuredAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBodyCompositionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("body composition [query row]: %w", err)
	}

	return &bc, nil
}
