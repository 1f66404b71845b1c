package plans

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// WeightProvider supplies the most recent body weight of a user.
type WeightProvider interface {
	LatestWeight(ctx context.Context, userID int) (weightKg float64, found bool, err error)
}

// Service owns every write to exercise trees. Each mutation runs in one
// transaction: lock the exercise, apply the change, recompute, persist totals.
type Service struct {
	store   Store
	weights WeightProvider
	now     func() time.Time
}

func NewService(store Store, weights WeightProvider) *Service {
	return &Service{
		store:   store,
		weights: weights,
		now:     time.Now,
	}
}

func (s *Service) CreateExercise(ctx context.Context, ownerID int, exercise Exercise) (*Exercise, error) {
	exercise.ID = 0
	exercise.OwnerID = ownerID
	exercise.CreatedAt = s.now()
	exercise.ApplyDefaults()
	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	weight, err := s.latestWeight(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	// the calculated value is never taken from the client
	exercise.CalculatedCaloriesBurned = 0
	exercise.Recompute(weight)

	if err := s.store.WithTx(ctx, func(tx Tx) error {
		return tx.InsertExercise(ctx, &exercise)
	}); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}

	log.Debugf("plans: exercise %d created for user %d, %d min", exercise.ID, ownerID, exercise.TotalDuration)
	return &exercise, nil
}

func (s *Service) GetExercise(ctx context.Context, ownerID, exerciseID int) (*Exercise, error) {
	return s.store.GetExercise(ctx, ownerID, exerciseID)
}

// maxSinceDays bounds the listing window; anything larger means "everything".
const maxSinceDays = 100 * 366

// ListExercises returns the trees created within the last days.
func (s *Service) ListExercises(ctx context.Context, ownerID, days int) ([]Exercise, error) {
	if days <= 0 {
		return nil, NewValidationError("since", "must be a positive number of days")
	}
	if days > maxSinceDays {
		days = maxSinceDays
	}
	since := s.now().AddDate(0, 0, -days)
	return s.store.ListExercisesSince(ctx, ownerID, since)
}

// UpdateExercise replaces the scalar fields of an exercise, and its whole set
// tree when replaceSets is true.
func (s *Service) UpdateExercise(ctx context.Context, ownerID, exerciseID int, patch Exercise, replaceSets bool) (*Exercise, error) {
	return s.mutate(ctx, ownerID, fixedExercise(exerciseID), func(tx Tx, ex *Exercise) error {
		ex.Name = patch.Name
		ex.Goal = patch.Goal
		ex.ManualCaloriesBurned = patch.ManualCaloriesBurned
		ex.ScheduledDate = patch.ScheduledDate
		if patch.ExerciseTypes != nil {
			ex.ExerciseTypes = patch.ExerciseTypes
		}
		if replaceSets {
			ex.Sets = patch.Sets
		}
		ex.ApplyDefaults()
		if err := ex.Validate(); err != nil {
			return err
		}

		if err := tx.UpdateExercise(ctx, ex); err != nil {
			return err
		}
		if !replaceSets {
			return nil
		}
		if err := tx.DeleteSets(ctx, ex.ID); err != nil {
			return err
		}
		for i := range ex.Sets {
			if err := tx.InsertSet(ctx, ex.ID, &ex.Sets[i]); err != nil {
				return fmt.Errorf("sets[%d]: %w", i, err)
			}
		}
		return nil
	})
}

func (s *Service) DeleteExercise(ctx context.Context, ownerID, exerciseID int) error {
	return s.store.WithTx(ctx, func(tx Tx) error {
		return tx.DeleteExercise(ctx, ownerID, exerciseID)
	})
}

func (s *Service) AddSet(ctx context.Context, ownerID, exerciseID int, set ExerciseSet) (*Exercise, error) {
	set.ID = 0
	set.applyDefaults()
	if err := set.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, ownerID, fixedExercise(exerciseID), func(tx Tx, ex *Exercise) error {
		if err := tx.InsertSet(ctx, ex.ID, &set); err != nil {
			return err
		}
		ex.Sets = append(ex.Sets, set)
		return nil
	})
}

// UpdateSet replaces the scalar fields of a set. Details are managed on their own.
func (s *Service) UpdateSet(ctx context.Context, ownerID, setID int, patch ExerciseSet) (*Exercise, error) {
	return s.mutate(ctx, ownerID, setExercise(ownerID, setID), func(tx Tx, ex *Exercise) error {
		i := indexOfSet(ex.Sets, setID)
		if i < 0 {
			return ErrExerciseSetNotFound
		}
		set := &ex.Sets[i]
		set.ExerciseName = patch.ExerciseName
		set.BodyPart = patch.BodyPart
		set.JointType = patch.JointType
		set.applyDefaults()
		if err := set.Validate(); err != nil {
			return err
		}
		return tx.UpdateSet(ctx, set)
	})
}

func (s *Service) DeleteSet(ctx context.Context, ownerID, setID int) (*Exercise, error) {
	return s.mutate(ctx, ownerID, setExercise(ownerID, setID), func(tx Tx, ex *Exercise) error {
		i := indexOfSet(ex.Sets, setID)
		if i < 0 {
			return ErrExerciseSetNotFound
		}
		if err := tx.DeleteSet(ctx, setID); err != nil {
			return err
		}
		ex.Sets = append(ex.Sets[:i], ex.Sets[i+1:]...)
		return nil
	})
}

func (s *Service) AddSetDetail(ctx context.Context, ownerID, setID int, detail SetDetail) (*Exercise, error) {
	if err := detail.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, ownerID, setExercise(ownerID, setID), func(tx Tx, ex *Exercise) error {
		i := indexOfSet(ex.Sets, setID)
		if i < 0 {
			return ErrExerciseSetNotFound
		}
		detail.ID = 0
		if err := tx.InsertDetail(ctx, setID, &detail); err != nil {
			return err
		}
		ex.Sets[i].Details = append(ex.Sets[i].Details, detail)
		return nil
	})
}

func (s *Service) UpdateSetDetail(ctx context.Context, ownerID, detailID int, detail SetDetail) (*Exercise, error) {
	if err := detail.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, ownerID, detailExercise(ownerID, detailID), func(tx Tx, ex *Exercise) error {
		si, di := indexOfDetail(ex.Sets, detailID)
		if si < 0 {
			return ErrSetDetailNotFound
		}
		detail.ID = detailID
		detail.ExerciseSetID = ex.Sets[si].ID
		if err := tx.UpdateDetail(ctx, &detail); err != nil {
			return err
		}
		ex.Sets[si].Details[di] = detail
		return nil
	})
}

func (s *Service) DeleteSetDetail(ctx context.Context, ownerID, detailID int) (*Exercise, error) {
	return s.mutate(ctx, ownerID, detailExercise(ownerID, detailID), func(tx Tx, ex *Exercise) error {
		si, di := indexOfDetail(ex.Sets, detailID)
		if si < 0 {
			return ErrSetDetailNotFound
		}
		if err := tx.DeleteDetail(ctx, detailID); err != nil {
			return err
		}
		details := ex.Sets[si].Details
		ex.Sets[si].Details = append(details[:di], details[di+1:]...)
		return nil
	})
}

// CloneExercises deep-copies the given trees into new exercises of the owner,
// all in one transaction. The copies keep every scalar field, scheduledDate
// overriding the scheduled date when set, and get their derived values fresh.
func (s *Service) CloneExercises(ctx context.Context, ownerID int, exerciseIDs []int, scheduledDate *Date) ([]Exercise, error) {
	weight, err := s.latestWeight(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var clones []Exercise
	err = s.store.WithTx(ctx, func(tx Tx) error {
		sources, err := tx.LoadExercises(ctx, ownerID, exerciseIDs)
		if err != nil {
			return err
		}

		createdAt := s.now()
		clones = make([]Exercise, 0, len(sources))
		for _, src := range sources {
			clone := src.Clone(ownerID, createdAt)
			if scheduledDate != nil && !scheduledDate.IsZero() {
				clone.ScheduledDate = *scheduledDate
			}
			clone.Recompute(weight)
			if err := tx.InsertExercise(ctx, &clone); err != nil {
				return fmt.Errorf("clone exercise %d: %w", src.ID, err)
			}
			clones = append(clones, clone)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clones, nil
}

func (s *Service) ExerciseTypes(ctx context.Context) ([]ExerciseType, error) {
	return s.store.ExerciseTypes(ctx)
}

func (s *Service) AddExerciseType(ctx context.Context, exerciseType ExerciseType) (*ExerciseType, error) {
	exerciseType.ID = 0
	exerciseType.Name = strings.TrimSpace(exerciseType.Name)
	if exerciseType.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	return s.store.AddExerciseType(ctx, exerciseType)
}

// mutate locks the exercise that resolve points at, applies change to its
// loaded tree and recomputes it, all within one transaction.
func (s *Service) mutate(
	ctx context.Context,
	ownerID int,
	resolve func(ctx context.Context, tx Tx) (int, error),
	change func(tx Tx, ex *Exercise) error,
) (*Exercise, error) {
	var updated *Exercise
	err := s.store.WithTx(ctx, func(tx Tx) error {
		exerciseID, err := resolve(ctx, tx)
		if err != nil {
			return err
		}
		ex, err := tx.LockExercise(ctx, ownerID, exerciseID)
		if err != nil {
			return err
		}
		if err := change(tx, ex); err != nil {
			return err
		}
		if err := s.recompute(ctx, tx, ex); err != nil {
			return err
		}
		updated = ex
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// recompute brings the set counts and exercise totals in line with the tree
// and persists whatever changed.
func (s *Service) recompute(ctx context.Context, tx Tx, ex *Exercise) error {
	for i := range ex.Sets {
		set := &ex.Sets[i]
		if set.Sets == len(set.Details) {
			continue
		}
		set.Sets = len(set.Details)
		if err := tx.UpdateSet(ctx, set); err != nil {
			return fmt.Errorf("update set count: %w", err)
		}
	}

	weight, err := s.latestWeight(ctx, ex.OwnerID)
	if err != nil {
		return err
	}
	ex.Recompute(weight)

	return tx.UpdateExerciseTotals(ctx, ex)
}

func (s *Service) latestWeight(ctx context.Context, ownerID int) (*float64, error) {
	if s.weights == nil {
		return nil, nil
	}
	weight, found, err := s.weights.LatestWeight(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &weight, nil
}

func fixedExercise(exerciseID int) func(context.Context, Tx) (int, error) {
	return func(context.Context, Tx) (int, error) {
		return exerciseID, nil
	}
}

func setExercise(ownerID, setID int) func(context.Context, Tx) (int, error) {
	return func(ctx context.Context, tx Tx) (int, error) {
		return tx.ExerciseIDForSet(ctx, ownerID, setID)
	}
}

func detailExercise(ownerID, detailID int) func(context.Context, Tx) (int, error) {
	return func(ctx context.Context, tx Tx) (int, error) {
		return tx.ExerciseIDForDetail(ctx, ownerID, detailID)
	}
}

func indexOfSet(sets []ExerciseSet, setID int) int {
	for i, s := range sets {
		if s.ID == setID {
			return i
		}
	}
	return -1
}

func indexOfDetail(sets []ExerciseSet, detailID int) (int, int) {
	for si, s := range sets {
		for di, d := range s.Details {
			if d.ID == detailID {
				return si, di
			}
		}
	}
	return -1, -1
}
