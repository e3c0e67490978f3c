package audithandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/export"
	"aisg/internal/transport/http/api"
	"aisg/internal/transport/http/middleware"
	"aisg/internal/transport/http/shared"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type Handler struct {
	Service *audit.Service
	Now     func() time.Time
}

func NewHandler(service *audit.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

// RegisterRoutes mounts the audit routes. mutate wraps the write endpoints.
func (h *Handler) RegisterRoutes(r chi.Router, mutate func(http.Handler) http.Handler) {
	r.Route("/audits", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.With(mutate).Post("/", h.handleCreate)
		r.Route("/{auditID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.With(mutate).Delete("/", h.handleDelete)
			r.Get("/pdf", h.handlePDF)
		})
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload audit.Submission
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", reqID)
			return
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	created, err := h.Service.Create(r.Context(), payload.Input())
	if err != nil {
		var verr *audit.ValidationError
		if errors.As(err, &verr) {
			v := shared.NewValidator()
			v.AddAuditIssues(verr.Issues)
			v.Reject(w, reqID)
			return
		}
		slog.Error("audit create failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "audit_create_failed", "failed to save audit", reqID)
		return
	}
	api.Created(w, created.Summary(), reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, defaultPageSize, maxPageSize)

	audits, err := h.Service.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("nama")))
	if err != nil {
		slog.Error("audit list failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audits", reqID)
		return
	}

	start, end := page.Bounds(len(audits))
	items := make([]audit.ListItem, 0, end-start)
	for _, a := range audits[start:end] {
		items = append(items, a.ListItem())
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(len(audits)))
	api.Success(w, items, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	api.Success(w, a.View(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "auditID")); err != nil {
		if errors.Is(err, audit.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "audit not found", reqID)
			return
		}
		slog.Error("audit delete failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "audit_delete_failed", "failed to delete audit", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	now := h.Now()

	// Render fully before writing headers so a failure can still be a JSON error.
	var buf bytes.Buffer
	if err := export.RenderPDF(&buf, a, now); err != nil {
		reqID := middleware.GetRequestID(r.Context())
		slog.Error("audit pdf failed", "err", err, "audit_id", a.ID, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render pdf", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+export.FileName(a, now)+"\"")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("audit pdf write failed", "err", err, "audit_id", a.ID)
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (audit.Audit, bool) {
	reqID := middleware.GetRequestID(r.Context())
	a, err := h.Service.Get(r.Context(), chi.URLParam(r, "auditID"))
	if err != nil {
		if errors.Is(err, audit.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "audit not found", reqID)
			return audit.Audit{}, false
		}
		slog.Error("audit load failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "audit_get_failed", "failed to load audit", reqID)
		return audit.Audit{}, false
	}
	return a, true
}
