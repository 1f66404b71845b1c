package templates

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplan/internal/gymstats/plans"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=templates

type templatesStore interface {
	Add(ctx context.Context, template Template) (*Template, error)
	Get(ctx context.Context, ownerID, templateID int) (*Template, error)
	List(ctx context.Context, ownerID int) ([]Template, error)
	Update(ctx context.Context, template Template) error
	Delete(ctx context.Context, ownerID, templateID int) error
	Duplicate(ctx context.Context, ownerID, templateID int, newName string, now time.Time) (*Template, error)
}

type exerciseCloner interface {
	CloneExercises(ctx context.Context, ownerID int, exerciseIDs []int, scheduledDate *plans.Date) ([]plans.Exercise, error)
}

// Service saves exercises as templates by reference and instantiates them by deep copy.
type Service struct {
	store  templatesStore
	cloner exerciseCloner
	now    func() time.Time
}

func NewService(store templatesStore, cloner exerciseCloner) *Service {
	return &Service{
		store:  store,
		cloner: cloner,
		now:    time.Now,
	}
}

func (s *Service) SaveAsTemplate(ctx context.Context, ownerID int, name string, exerciseIDs []int) (*Template, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	template, err := s.store.Add(ctx, Template{
		OwnerID:     ownerID,
		Name:        name,
		ExerciseIDs: uniqueIDs(exerciseIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("templates: template %d saved with %d exercises", template.ID, len(template.ExerciseIDs))
	return template, nil
}

// CreateFromTemplate deep-copies every exercise the template references into
// new exercises. The copies keep no link to the template.
func (s *Service) CreateFromTemplate(ctx context.Context, ownerID, templateID int, scheduledDate *plans.Date) ([]plans.Exercise, error) {
	template, err := s.store.Get(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}
	if len(template.ExerciseIDs) == 0 {
		return []plans.Exercise{}, nil
	}

	exercises, err := s.cloner.CloneExercises(ctx, ownerID, template.ExerciseIDs, scheduledDate)
	if err != nil {
		return nil, err
	}

	log.Debugf("templates: template %d instantiated into %d exercises", templateID, len(exercises))
	return exercises, nil
}

// DuplicateTemplate creates a new template with the membership the source
// template has right now. Later changes to either one stay their own.
func (s *Service) DuplicateTemplate(ctx context.Context, ownerID, templateID int, newName string) (*Template, error) {
	newName, err := validName(newName)
	if err != nil {
		return nil, err
	}
	return s.store.Duplicate(ctx, ownerID, templateID, newName, s.now())
}

func (s *Service) Get(ctx context.Context, ownerID, templateID int) (*Template, error) {
	return s.store.Get(ctx, ownerID, templateID)
}

func (s *Service) List(ctx context.Context, ownerID int) ([]Template, error) {
	return s.store.List(ctx, ownerID)
}

// Update renames the template and replaces its membership when exerciseIDs is not nil.
func (s *Service) Update(ctx context.Context, ownerID, templateID int, name string, exerciseIDs []int) (*Template, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}
	if exerciseIDs != nil {
		exerciseIDs = uniqueIDs(exerciseIDs)
	}

	if err := s.store.Update(ctx, Template{
		ID:          templateID,
		OwnerID:     ownerID,
		Name:        name,
		ExerciseIDs: exerciseIDs,
		UpdatedAt:   s.now(),
	}); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, ownerID, templateID)
}

func (s *Service) Delete(ctx context.Context, ownerID, templateID int) error {
	return s.store.Delete(ctx, ownerID, templateID)
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", plans.NewValidationError("name", "required")
	}
	if len(name) > 100 {
		return "", plans.NewValidationError("name", "must be at most 100 characters")
	}
	return name, nil
}
