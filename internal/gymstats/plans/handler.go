package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=plans_mocks_test.go -package=plans_test

type planService interface {
	CreateExercise(ctx context.Context, ownerID int, exercise Exercise) (*Exercise, error)
	GetExercise(ctx context.Context, ownerID, exerciseID int) (*Exercise, error)
	ListExercises(ctx context.Context, ownerID, days int) ([]Exercise, error)
	UpdateExercise(ctx context.Context, ownerID, exerciseID int, patch Exercise, replaceSets bool) (*Exercise, error)
	DeleteExercise(ctx context.Context, ownerID, exerciseID int) error
	AddSet(ctx context.Context, ownerID, exerciseID int, set ExerciseSet) (*Exercise, error)
	UpdateSet(ctx context.Context, ownerID, setID int, patch ExerciseSet) (*Exercise, error)
	DeleteSet(ctx context.Context, ownerID, setID int) (*Exercise, error)
	AddSetDetail(ctx context.Context, ownerID, setID int, detail SetDetail) (*Exercise, error)
	UpdateSetDetail(ctx context.Context, ownerID, detailID int, detail SetDetail) (*Exercise, error)
	DeleteSetDetail(ctx context.Context, ownerID, detailID int) (*Exercise, error)
	ExerciseTypes(ctx context.Context) ([]ExerciseType, error)
	AddExerciseType(ctx context.Context, exerciseType ExerciseType) (*ExerciseType, error)
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deleted_id"`
}

// updateExerciseRequest tells an absent "sets" apart from an empty one.
type updateExerciseRequest struct {
	Exercise
	Sets *[]ExerciseSet `json:"sets"`
}

type Handler struct {
	service           planService
	metrics           *metrics.Manager
	defaultWindowDays int
}

func NewHandler(service planService, metricsManager *metrics.Manager, defaultWindowDays int) *Handler {
	if defaultWindowDays <= 0 {
		defaultWindowDays = 30
	}
	return &Handler{
		service:           service,
		metrics:           metricsManager,
		defaultWindowDays: defaultWindowDays,
	}
}

func (handler *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("create plan, unmarshal json: %s", err)
		writeError(w, decodeError(err), "create exercise plan")
		return
	}

	created, err := handler.service.CreateExercise(ctx, ownerID, exercise)
	if err != nil {
		writeError(w, err, "create exercise plan")
		return
	}
	if handler.metrics != nil {
		handler.metrics.CounterExercisesCreated.Inc()
	}

	log.Debugf("exercise plan %d created, total duration %d min", created.ID, created.TotalDuration)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	days := handler.defaultWindowDays
	if since := r.URL.Query().Get("since"); since != "" {
		parsed, err := strconv.Atoi(since)
		if err != nil {
			http.Error(w, "error, invalid since parameter", http.StatusBadRequest)
			return
		}
		days = parsed
	}
	handler.list(w, r, days)
}

func (handler *Handler) HandleListWeekly(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, 7)
}

func (handler *Handler) HandleListMonthly(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, 30)
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, days int) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()
	span.SetAttributes(attribute.Int("since.days", days))

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	exercises, err := handler.service.ListExercises(ctx, ownerID, days)
	if err != nil {
		writeError(w, err, "list exercises")
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	exercise, err := handler.service.GetExercise(ctx, ownerID, exerciseID)
	if err != nil {
		writeError(w, err, "get exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	exerciseID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, decodeError(err), "update exercise")
		return
	}

	patch := req.Exercise
	replaceSets := req.Sets != nil
	if replaceSets {
		patch.Sets = *req.Sets
	}

	updated, err := handler.service.UpdateExercise(ctx, ownerID, exerciseID, patch, replaceSets)
	if err != nil {
		writeError(w, err, "update exercise")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	exerciseID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteExercise(ctx, ownerID, exerciseID); err != nil {
		writeError(w, err, "delete exercise")
		return
	}

	pkg.WriteJSON(w, DeleteExerciseResponse{DeletedID: exerciseID}, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.sets.add")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	exerciseID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var set ExerciseSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeError(w, decodeError(err), "add exercise set")
		return
	}

	updated, err := handler.service.AddSet(ctx, ownerID, exerciseID, set)
	if err != nil {
		writeError(w, err, "add exercise set")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.sets.update")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	setID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var set ExerciseSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		writeError(w, decodeError(err), "update exercise set")
		return
	}

	updated, err := handler.service.UpdateSet(ctx, ownerID, setID, set)
	if err != nil {
		writeError(w, err, "update exercise set")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.sets.delete")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	setID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	updated, err := handler.service.DeleteSet(ctx, ownerID, setID)
	if err != nil {
		writeError(w, err, "delete exercise set")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleAddDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.details.add")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	setID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var detail SetDetail
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil {
		writeError(w, decodeError(err), "add set detail")
		return
	}

	updated, err := handler.service.AddSetDetail(ctx, ownerID, setID, detail)
	if err != nil {
		writeError(w, err, "add set detail")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusCreated)
}

func (handler *Handler) HandleUpdateDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.details.update")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok || !pkg.RequireJSON(w, r) {
		return
	}
	detailID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	var detail SetDetail
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil {
		writeError(w, decodeError(err), "update set detail")
		return
	}

	updated, err := handler.service.UpdateSetDetail(ctx, ownerID, detailID, detail)
	if err != nil {
		writeError(w, err, "update set detail")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDeleteDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.details.delete")
	defer span.End()

	ownerID, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}
	detailID, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	updated, err := handler.service.DeleteSetDetail(ctx, ownerID, detailID)
	if err != nil {
		writeError(w, err, "delete set detail")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleListTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.exercise_types.list")
	defer span.End()

	exerciseTypes, err := handler.service.ExerciseTypes(ctx)
	if err != nil {
		writeError(w, err, "list exercise types")
		return
	}

	pkg.WriteJSON(w, exerciseTypes, http.StatusOK)
}

func (handler *Handler) HandleAddType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.exercise_types.add")
	defer span.End()

	if !pkg.RequireJSON(w, r) {
		return
	}

	var exerciseType ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		writeError(w, decodeError(err), "add exercise type")
		return
	}

	added, err := handler.service.AddExerciseType(ctx, exerciseType)
	if err != nil {
		writeError(w, err, "add exercise type")
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

// decodeError keeps field validation errors raised while decoding and turns
// anything else into a body error.
func decodeError(err error) error {
	if errors.Is(err, ErrValidation) {
		return err
	}
	return NewValidationError("body", err.Error())
}

func writeError(w http.ResponseWriter, err error, action string) {
	pkg.WriteError(w, err, HTTPStatus(err), action)
}
