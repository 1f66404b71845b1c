package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/gymstats/plans"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"
)

var _ entriesRepo = (*Repo)(nil)

type entriesRepo interface {
	Add(ctx context.Context, entry *Entry) (*Entry, error)
	Get(ctx context.Context, ownerID, id int) (*Entry, error)
	Update(ctx context.Context, entry *Entry, now time.Time) error
	Delete(ctx context.Context, ownerID, id int) error
	List(ctx context.Context, ownerID int) ([]Entry, error)
}

type entryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	repo    entriesRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo entriesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	entry, ok := handler.decodeEntry(w, r)
	if !ok {
		return
	}

	entry.OwnerID = userID
	entry.CreatedAt = handler.now()
	added, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add journal entry [%s]: %s", entry.Title, err)
		http.Error(w, "error, failed to add journal entry", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterJournalEntries.Inc()
	}

	log.Debugf("journal entry added: [%s] [%s]: %d", added.Title, added.CreatedAt, added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	id, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	entry, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		writeError(w, err, "get journal entry")
		return
	}
	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	id, ok := pkg.PathID(w, r)
	if !ok {
		return
	}
	entry, ok := handler.decodeEntry(w, r)
	if !ok {
		return
	}

	entry.ID = id
	entry.OwnerID = userID
	if err := handler.repo.Update(ctx, entry, handler.now()); err != nil {
		writeError(w, err, "update journal entry")
		return
	}

	log.Debugf("journal entry updated: [%s]: %d", entry.Title, entry.ID)
	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	id, ok := pkg.PathID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		writeError(w, err, "delete journal entry")
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list journal entries for user %d: %s", userID, err)
		http.Error(w, "failed to get journal entries", http.StatusInternalServerError)
		return
	}

	if len(entries) == 0 {
		entries = []Entry{}
	}
	pkg.WriteJSON(w, ListResponse{Entries: entries, Total: len(entries)}, http.StatusOK)
}

func (handler *Handler) decodeEntry(w http.ResponseWriter, r *http.Request) (*Entry, bool) {
	if !pkg.RequireJSON(w, r) {
		return nil, false
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("journal entry, unmarshal json: %s", err)
		http.Error(w, "error, invalid journal entry", http.StatusBadRequest)
		return nil, false
	}

	entry := &Entry{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return entry, true
}

func writeError(w http.ResponseWriter, err error, action string) {
	status := http.StatusInternalServerError
	if errors.Is(err, plans.ErrNotFound) {
		status = http.StatusNotFound
	}
	pkg.WriteError(w, err, status, action)
}

