package chathandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/coach"
	"aisg/internal/transport/http/api"
	"aisg/internal/transport/http/middleware"
	"aisg/internal/transport/http/shared"
)

const maxMessageLength = 2000

type Handler struct {
	Service *coach.Service
}

func NewHandler(service *coach.Service) *Handler {
	return &Handler{Service: service}
}

type askPayload struct {
	Message string `json:"message"`
}

type askResponse struct {
	Response string `json:"response"`
}

// RegisterRoutes mounts the chat routes under an audit. mutate wraps the
// write endpoints.
func (h *Handler) RegisterRoutes(r chi.Router, mutate func(http.Handler) http.Handler) {
	r.Route("/audits/{auditID}/chat", func(r chi.Router) {
		r.Get("/", h.handleHistory)
		r.With(mutate).Post("/", h.handleAsk)
		r.With(mutate).Delete("/", h.handleClear)
	})
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload askPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("message", payload.Message, "is required")
	v.MaxLength("message", payload.Message, maxMessageLength, "is too long")
	if v.Reject(w, reqID) {
		return
	}

	reply, err := h.Service.Ask(r.Context(), chi.URLParam(r, "auditID"), payload.Message)
	if err != nil {
		failAsk(w, err, reqID)
		return
	}
	api.Success(w, askResponse{Response: reply}, reqID)
}

func failAsk(w http.ResponseWriter, err error, reqID string) {
	details := map[string]any{"userMessage": coach.UserMessage(err)}
	switch {
	case errors.Is(err, audit.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "audit not found", reqID)
	case errors.Is(err, coach.ErrEmptyMessage):
		v := shared.NewValidator()
		v.Add("message", "is required")
		v.Reject(w, reqID)
	case errors.Is(err, coach.ErrDisabled):
		api.FailWithDetails(w, http.StatusServiceUnavailable, "ai_disabled", "ai coach is not configured", details, reqID)
	case errors.Is(err, coach.ErrRateLimited):
		api.FailWithDetails(w, http.StatusTooManyRequests, "ai_rate_limited", "ai coach rate limited", details, reqID)
	case errors.Is(err, coach.ErrUnavailable):
		api.FailWithDetails(w, http.StatusBadGateway, "ai_failed", "ai coach request failed", details, reqID)
	default:
		slog.Error("chat ask failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "chat_failed", "failed to process chat message", reqID)
	}
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	messages, err := h.Service.History(r.Context(), chi.URLParam(r, "auditID"))
	if err != nil {
		failLookup(w, err, "chat_history_failed", reqID)
		return
	}
	if messages == nil {
		messages = []audit.ChatMessage{}
	}
	api.Success(w, messages, reqID)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.Clear(r.Context(), chi.URLParam(r, "auditID")); err != nil {
		failLookup(w, err, "chat_clear_failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "cleared"}, reqID)
}

func failLookup(w http.ResponseWriter, err error, code, reqID string) {
	if errors.Is(err, audit.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "audit not found", reqID)
		return
	}
	slog.Error("chat request failed", "err", err, "code", code, "requestId", reqID)
	api.Fail(w, http.StatusInternalServerError, code, "chat request failed", reqID)
}
