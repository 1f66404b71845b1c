package plans

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var errInjected = errors.New("injected failure")

// memStore keeps exercise trees in memory. Each WithTx works on a copy of the
// state that replaces the committed one only when fn succeeds.
type memStore struct {
	mu        sync.Mutex
	exercises map[int]Exercise
	types     map[string]ExerciseType
	nextID    int

	// failOn makes the named Tx method fail with errInjected.
	failOn string
}

func newMemStore(typeNames ...string) *memStore {
	s := &memStore{
		exercises: map[int]Exercise{},
		types:     map[string]ExerciseType{},
	}
	for _, name := range typeNames {
		s.nextID++
		s.types[name] = ExerciseType{ID: s.nextID, Name: name}
	}
	return s
}

func (s *memStore) WithTx(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, exercises: map[int]Exercise{}}
	for id, ex := range s.exercises {
		tx.exercises[id] = copyExercise(ex)
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.exercises = tx.exercises
	return nil
}

func (s *memStore) GetExercise(_ context.Context, ownerID, exerciseID int) (*Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.exercises[exerciseID]
	if !ok || ex.OwnerID != ownerID {
		return nil, ErrExerciseNotFound
	}
	ex = copyExercise(ex)
	return &ex, nil
}

func (s *memStore) ListExercisesSince(_ context.Context, ownerID int, since time.Time) ([]Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercises := []Exercise{}
	for _, ex := range s.exercises {
		if ex.OwnerID == ownerID && !ex.CreatedAt.Before(since) {
			exercises = append(exercises, copyExercise(ex))
		}
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].ID > exercises[j].ID
	})
	return exercises, nil
}

func (s *memStore) ExerciseTypes(context.Context) ([]ExerciseType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exerciseTypes := []ExerciseType{}
	for _, et := range s.types {
		exerciseTypes = append(exerciseTypes, et)
	}
	sort.Slice(exerciseTypes, func(i, j int) bool {
		return exerciseTypes[i].Name < exerciseTypes[j].Name
	})
	return exerciseTypes, nil
}

func (s *memStore) AddExerciseType(_ context.Context, exerciseType ExerciseType) (*ExerciseType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.types[exerciseType.Name]; ok {
		return nil, ErrExerciseTypeExists
	}
	s.nextID++
	exerciseType.ID = s.nextID
	s.types[exerciseType.Name] = exerciseType
	return &exerciseType, nil
}

// committed returns the stored tree, bypassing ownership checks.
func (s *memStore) committed(exerciseID int) (Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ex, ok := s.exercises[exerciseID]
	return copyExercise(ex), ok
}

type memTx struct {
	store     *memStore
	exercises map[int]Exercise
}

func (t *memTx) fail(method string) error {
	if t.store.failOn == method {
		return fmt.Errorf("%s: %w", method, errInjected)
	}
	return nil
}

func (t *memTx) newID() int {
	t.store.nextID++
	return t.store.nextID
}

func (t *memTx) LockExercise(_ context.Context, ownerID, exerciseID int) (*Exercise, error) {
	if err := t.fail("LockExercise"); err != nil {
		return nil, err
	}
	ex, ok := t.exercises[exerciseID]
	if !ok || ex.OwnerID != ownerID {
		return nil, ErrExerciseNotFound
	}
	ex = copyExercise(ex)
	return &ex, nil
}

func (t *memTx) LoadExercises(_ context.Context, ownerID int, exerciseIDs []int) ([]Exercise, error) {
	exercises := make([]Exercise, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		ex, ok := t.exercises[id]
		if !ok || ex.OwnerID != ownerID {
			return nil, fmt.Errorf("exercise [%d]: %w", id, ErrExerciseNotFound)
		}
		exercises = append(exercises, copyExercise(ex))
	}
	return exercises, nil
}

func (t *memTx) ExerciseIDForSet(_ context.Context, ownerID, setID int) (int, error) {
	for _, ex := range t.exercises {
		if ex.OwnerID != ownerID {
			continue
		}
		for _, s := range ex.Sets {
			if s.ID == setID {
				return ex.ID, nil
			}
		}
	}
	return 0, ErrExerciseSetNotFound
}

func (t *memTx) ExerciseIDForDetail(_ context.Context, ownerID, detailID int) (int, error) {
	for _, ex := range t.exercises {
		if ex.OwnerID != ownerID {
			continue
		}
		for _, s := range ex.Sets {
			for _, d := range s.Details {
				if d.ID == detailID {
					return ex.ID, nil
				}
			}
		}
	}
	return 0, ErrSetDetailNotFound
}

func (t *memTx) InsertExercise(ctx context.Context, exercise *Exercise) error {
	if err := t.fail("InsertExercise"); err != nil {
		return err
	}
	if err := t.checkTypes(exercise.ExerciseTypes); err != nil {
		return err
	}
	exercise.ID = t.newID()
	sets := exercise.Sets
	stored := copyExercise(*exercise)
	stored.Sets = []ExerciseSet{}
	t.exercises[exercise.ID] = stored
	for i := range sets {
		if err := t.InsertSet(ctx, exercise.ID, &sets[i]); err != nil {
			return err
		}
	}
	return nil
}

func (t *memTx) UpdateExercise(_ context.Context, exercise *Exercise) error {
	stored, ok := t.exercises[exercise.ID]
	if !ok || stored.OwnerID != exercise.OwnerID {
		return ErrExerciseNotFound
	}
	if err := t.checkTypes(exercise.ExerciseTypes); err != nil {
		return err
	}
	stored.Name = exercise.Name
	stored.Goal = exercise.Goal
	stored.ManualCaloriesBurned = exercise.ManualCaloriesBurned
	stored.ScheduledDate = exercise.ScheduledDate
	stored.ExerciseTypes = append([]string{}, exercise.ExerciseTypes...)
	t.exercises[exercise.ID] = stored
	return nil
}

func (t *memTx) UpdateExerciseTotals(_ context.Context, exercise *Exercise) error {
	if err := t.fail("UpdateExerciseTotals"); err != nil {
		return err
	}
	stored, ok := t.exercises[exercise.ID]
	if !ok {
		return ErrExerciseNotFound
	}
	stored.TotalDuration = exercise.TotalDuration
	stored.CalculatedCaloriesBurned = exercise.CalculatedCaloriesBurned
	t.exercises[exercise.ID] = stored
	return nil
}

func (t *memTx) DeleteExercise(_ context.Context, ownerID, exerciseID int) error {
	ex, ok := t.exercises[exerciseID]
	if !ok || ex.OwnerID != ownerID {
		return ErrExerciseNotFound
	}
	delete(t.exercises, exerciseID)
	return nil
}

func (t *memTx) InsertSet(ctx context.Context, exerciseID int, set *ExerciseSet) error {
	stored, ok := t.exercises[exerciseID]
	if !ok {
		return ErrExerciseNotFound
	}
	set.ID = t.newID()
	set.ExerciseID = exerciseID
	details := set.Details
	storedSet := *set
	storedSet.Details = []SetDetail{}
	stored.Sets = append(stored.Sets, storedSet)
	t.exercises[exerciseID] = stored
	for i := range details {
		if err := t.InsertDetail(ctx, set.ID, &details[i]); err != nil {
			return err
		}
	}
	return nil
}

func (t *memTx) UpdateSet(_ context.Context, set *ExerciseSet) error {
	if err := t.fail("UpdateSet"); err != nil {
		return err
	}
	ex, i := t.findSet(set.ID)
	if ex == nil {
		return ErrExerciseSetNotFound
	}
	stored := &ex.Sets[i]
	stored.ExerciseName = set.ExerciseName
	stored.BodyPart = set.BodyPart
	stored.JointType = set.JointType
	stored.Sets = set.Sets
	t.exercises[ex.ID] = *ex
	return nil
}

func (t *memTx) DeleteSet(_ context.Context, setID int) error {
	ex, i := t.findSet(setID)
	if ex == nil {
		return ErrExerciseSetNotFound
	}
	ex.Sets = append(ex.Sets[:i], ex.Sets[i+1:]...)
	t.exercises[ex.ID] = *ex
	return nil
}

func (t *memTx) DeleteSets(_ context.Context, exerciseID int) error {
	ex, ok := t.exercises[exerciseID]
	if !ok {
		return ErrExerciseNotFound
	}
	ex.Sets = []ExerciseSet{}
	t.exercises[exerciseID] = ex
	return nil
}

func (t *memTx) InsertDetail(_ context.Context, setID int, detail *SetDetail) error {
	if err := t.fail("InsertDetail"); err != nil {
		return err
	}
	ex, i := t.findSet(setID)
	if ex == nil {
		return ErrExerciseSetNotFound
	}
	detail.ID = t.newID()
	detail.ExerciseSetID = setID
	ex.Sets[i].Details = append(ex.Sets[i].Details, *detail)
	t.exercises[ex.ID] = *ex
	return nil
}

func (t *memTx) UpdateDetail(_ context.Context, detail *SetDetail) error {
	ex, si, di := t.findDetail(detail.ID)
	if ex == nil {
		return ErrSetDetailNotFound
	}
	ex.Sets[si].Details[di] = *detail
	t.exercises[ex.ID] = *ex
	return nil
}

func (t *memTx) DeleteDetail(_ context.Context, detailID int) error {
	ex, si, di := t.findDetail(detailID)
	if ex == nil {
		return ErrSetDetailNotFound
	}
	details := ex.Sets[si].Details
	ex.Sets[si].Details = append(details[:di], details[di+1:]...)
	t.exercises[ex.ID] = *ex
	return nil
}

func (t *memTx) checkTypes(names []string) error {
	for _, name := range names {
		if _, ok := t.store.types[name]; !ok {
			return NewValidationError("exercise_type", fmt.Sprintf("unknown exercise type %q", name))
		}
	}
	return nil
}

func (t *memTx) findSet(setID int) (*Exercise, int) {
	for _, ex := range t.exercises {
		for i, s := range ex.Sets {
			if s.ID == setID {
				return &ex, i
			}
		}
	}
	return nil, -1
}

func (t *memTx) findDetail(detailID int) (*Exercise, int, int) {
	for _, ex := range t.exercises {
		for si, s := range ex.Sets {
			for di, d := range s.Details {
				if d.ID == detailID {
					return &ex, si, di
				}
			}
		}
	}
	return nil, -1, -1
}

// copyExercise deep-copies a tree, identities included.
func copyExercise(ex Exercise) Exercise {
	c := ex
	c.ExerciseTypes = append([]string{}, ex.ExerciseTypes...)
	if ex.ManualCaloriesBurned != nil {
		manual := *ex.ManualCaloriesBurned
		c.ManualCaloriesBurned = &manual
	}
	c.Sets = make([]ExerciseSet, len(ex.Sets))
	for i, s := range ex.Sets {
		s.Details = append([]SetDetail{}, s.Details...)
		c.Sets[i] = s
	}
	return c
}
