package bodycomp

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodycomp_test

type bodyCompService interface {
	Add(ctx context.Context, userID int, bc BodyComposition) (*BodyComposition, error)
	Latest(ctx context.Context, userID int) (*BodyComposition, error)
}

type Handler struct {
	service bodyCompService
}

func NewHandler(service bodyCompService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodycomp.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !pkg.RequireJSON(w, r) {
		return
	}

	var bc BodyComposition
	if err := json.NewDecoder(r.Body).Decode(&bc); err != nil {
		log.Tracef("add body composition, unmarshal json: %s", err)
		http.Error(w, "error, invalid body composition", http.StatusBadRequest)
		return
	}

	added, err := handler.service.Add(ctx, userID, bc)
	if err != nil {
		status := plans.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Errorf("failed to add body composition for user %d: %s", userID, err)
			http.Error(w, "error, failed to add body composition", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

// HandleLatest responds with the latest measurement, or {} when there is none.
func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodycomp.latest")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	latest, err := handler.service.Latest(ctx, userID)
	if err != nil {
		log.Errorf("failed to get latest body composition for user %d: %s", userID, err)
		http.Error(w, "error, failed to get body composition", http.StatusInternalServerError)
		return
	}
	if latest == nil {
		pkg.WriteJSONResponseOK(w, "{}")
		return
	}

	resBytes, err := json.Marshal(latest)
	if err != nil {
		log.Errorf("marshal body composition: %s", err)
		http.Error(w, "error, failed to get body composition", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resBytes)
}
