package plans

import (
	"context"
	"time"
)

// Store is the persistence of exercise trees. Every cascading write goes
// through WithTx, so a failed step leaves nothing behind.
type Store interface {
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	GetExercise(ctx context.Context, ownerID, exerciseID int) (*Exercise, error)
	ListExercisesSince(ctx context.Context, ownerID int, since time.Time) ([]Exercise, error)
	ExerciseTypes(ctx context.Context) ([]ExerciseType, error)
	AddExerciseType(ctx context.Context, exerciseType ExerciseType) (*ExerciseType, error)
}

// Tx is a unit of work on exercise trees. LockExercise must be called
// before mutating an existing tree; it serializes writers per exercise.
type Tx interface {
	LockExercise(ctx context.Context, ownerID, exerciseID int) (*Exercise, error)
	LoadExercises(ctx context.Context, ownerID int, exerciseIDs []int) ([]Exercise, error)
	ExerciseIDForSet(ctx context.Context, ownerID, setID int) (int, error)
	ExerciseIDForDetail(ctx context.Context, ownerID, detailID int) (int, error)

	InsertExercise(ctx context.Context, exercise *Exercise) error
	UpdateExercise(ctx context.Context, exercise *Exercise) error
	UpdateExerciseTotals(ctx context.Context, exercise *Exercise) error
	DeleteExercise(ctx context.Context, ownerID, exerciseID int) error

	InsertSet(ctx context.Context, exerciseID int, set *ExerciseSet) error
	UpdateSet(ctx context.Context, set *ExerciseSet) error
	DeleteSet(ctx context.Context, setID int) error
	DeleteSets(ctx context.Context, exerciseID int) error

	InsertDetail(ctx context.Context, setID int, detail *SetDetail) error
	UpdateDetail(ctx context.Context, detail *SetDetail) error
	DeleteDetail(ctx context.Context, detailID int) error
}
