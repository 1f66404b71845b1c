package templates

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templateService interface {
	SaveAsTemplate(ctx context.Context, ownerID int, name string, exerciseIDs []int) (*Template, error)
	CreateFromTemplate(ctx context.Context, ownerID, templateID int, scheduledDate *plans.Date) ([]plans.Exercise, error)
	DuplicateTemplate(ctx context.Context, ownerID, templateID int, newName string) (*Template, error)
	Get(ctx context.Context, ownerID, templateID int) (*Template, error)
	List(ctx context.Context, ownerID int) ([]Template, error)
	Update(ctx context.Context, ownerID, templateID int, name string, exerciseIDs []int) (*Template, error)
	Delete(ctx context.Context, ownerID, templateID int) error
}

type SaveTemplateRequest struct {
	Name        string `json:"name"`
	ExerciseIDs []int  `json:"exercise_ids"`
}

type CreateFromTemplateRequest struct {
	ScheduledDate *plans.Date `json:"scheduled_date"`
}

type DuplicateTemplateRequest struct {
	Name string `json:"name"`
}

type DeleteTemplateResponse struct {
	DeletedID int `json:"deleted_id"`
}

type Handler struct {
	service templateService
	metrics *metrics.Manager
}

func NewHandler(service templateService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.save")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}

	var req SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, plans.NewValidationError("body", err.Error()), "save template")
		return
	}

	template, err := handler.service.SaveAsTemplate(ctx, ownerID, req.Name, req.ExerciseIDs)
	if err != nil {
		writeError(w, err, "save template")
		return
	}

	pkg.WriteJSON(w, template, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	templates, err := handler.service.List(ctx, ownerID)
	if err != nil {
		writeError(w, err, "list templates")
		return
	}
	if templates == nil {
		templates = []Template{}
	}

	pkg.WriteJSON(w, templates, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	templateID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	template, err := handler.service.Get(ctx, ownerID, templateID)
	if err != nil {
		writeError(w, err, "get template")
		return
	}

	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.update")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	templateID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var req SaveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, plans.NewValidationError("body", err.Error()), "update template")
		return
	}

	template, err := handler.service.Update(ctx, ownerID, templateID, req.Name, req.ExerciseIDs)
	if err != nil {
		writeError(w, err, "update template")
		return
	}

	pkg.WriteJSON(w, template, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	templateID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, ownerID, templateID); err != nil {
		writeError(w, err, "delete template")
		return
	}

	pkg.WriteJSON(w, DeleteTemplateResponse{DeletedID: templateID}, http.StatusOK)
}

// HandleCreateFromTemplate accepts an empty body, or one that overrides the
// scheduled date of every created exercise.
func (handler *Handler) HandleCreateFromTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create_exercises")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	templateID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var req CreateFromTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		if !errors.Is(err, plans.ErrValidation) {
			err = plans.NewValidationError("body", err.Error())
		}
		writeError(w, err, "create exercises from template")
		return
	}

	exercises, err := handler.service.CreateFromTemplate(ctx, ownerID, templateID, req.ScheduledDate)
	if err != nil {
		writeError(w, err, "create exercises from template")
		return
	}
	if handler.metrics != nil {
		handler.metrics.CounterTemplatesInstantiated.Inc()
		handler.metrics.CounterExercisesCreated.Add(float64(len(exercises)))
	}

	pkg.WriteJSON(w, exercises, http.StatusCreated)
}

func (handler *Handler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.duplicate")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	templateID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var req DuplicateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, plans.NewValidationError("body", err.Error()), "duplicate template")
		return
	}

	template, err := handler.service.DuplicateTemplate(ctx, ownerID, templateID, req.Name)
	if err != nil {
		writeError(w, err, "duplicate template")
		return
	}

	pkg.WriteJSON(w, template, http.StatusCreated)
}

func writeError(w http.ResponseWriter, err error, action string) {
	pkg.WriteError(w, err, plans.HTTPStatus(err), action)
}
