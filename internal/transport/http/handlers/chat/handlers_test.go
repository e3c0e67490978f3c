package chathandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/genai"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/audit/audittest"
	"aisg/internal/domain/coach"
	"aisg/internal/transport/http/middleware"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(context.Context, coach.Prompt) (string, error) {
	s.calls++
	return s.reply, s.err
}

type errorBody struct {
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

type fixture struct {
	router  http.Handler
	auditID string
}

func newFixture(t *testing.T, completer coach.Completer, opts ...coach.Option) fixture {
	t.Helper()
	audits := audit.NewService(audittest.NewStore(),
		audit.WithClock(func() time.Time { return time.Date(2025, time.May, 15, 9, 0, 0, 0, time.UTC) }))
	created, err := audits.Create(context.Background(), audittest.ValidInput())
	if err != nil {
		t.Fatalf("create audit: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	NewHandler(coach.NewService(audits, completer, opts...)).
		RegisterRoutes(r, func(next http.Handler) http.Handler { return next })
	return fixture{router: r, auditID: created.ID}
}

func (f fixture) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func (f fixture) chatPath() string {
	return "/audits/" + f.auditID + "/chat"
}

func TestAskReturnsReplyAndStoresHistory(t *testing.T) {
	f := newFixture(t, &stubCompleter{reply: "Perkuat kaderisasi minggu ini."})

	status, env := f.do(t, http.MethodPost, f.chatPath(), `{"message":"Apa fokus saya?"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var resp askResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != "Perkuat kaderisasi minggu ini." {
		t.Fatalf("unexpected reply %q", resp.Response)
	}

	status, env = f.do(t, http.MethodGet, f.chatPath(), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var history []audit.ChatMessage
	if err := json.Unmarshal(env.Data, &history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 2 || history[0].Role != audit.RoleUser || history[1].Role != audit.RoleAssistant {
		t.Fatalf("unexpected history %+v", history)
	}

	status, _ = f.do(t, http.MethodDelete, f.chatPath(), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200 on clear, got %d", status)
	}
	_, env = f.do(t, http.MethodGet, f.chatPath(), "")
	if string(env.Data) != "[]" {
		t.Fatalf("expected empty history after clear, got %s", env.Data)
	}
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	completer := &stubCompleter{reply: "unused"}
	f := newFixture(t, completer)

	status, env := f.do(t, http.MethodPost, f.chatPath(), `{"message":"   "}`)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", env.Error)
	}
	if completer.calls != 0 {
		t.Fatal("completer should not be called")
	}
}

func TestAskErrorMapping(t *testing.T) {
	cases := []struct {
		name      string
		completer coach.Completer
		status    int
		code      string
	}{
		{"disabled", nil, http.StatusServiceUnavailable, "ai_disabled"},
		{"rate limited", &stubCompleter{err: genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"}}, http.StatusTooManyRequests, "ai_rate_limited"},
		{"upstream failure", &stubCompleter{err: errors.New("connection reset by peer")}, http.StatusBadGateway, "ai_failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.completer)
			status, env := f.do(t, http.MethodPost, f.chatPath(), `{"message":"Halo"}`)
			if status != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, status)
			}
			if env.Error == nil || env.Error.Code != tc.code {
				t.Fatalf("expected %s, got %+v", tc.code, env.Error)
			}
			msg, _ := env.Error.Details["userMessage"].(string)
			if !strings.HasPrefix(msg, "Maaf") {
				t.Fatalf("expected user-facing message, got %q", msg)
			}
		})
	}
}

func TestAskUnknownAudit(t *testing.T) {
	f := newFixture(t, &stubCompleter{reply: "ok"})
	status, env := f.do(t, http.MethodPost, "/audits/6f1c1d5e-8c4b-4a55-9a3e-2f1d1c0b9a77/chat", `{"message":"Halo"}`)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected not_found, got %+v", env.Error)
	}

	status, _ = f.do(t, http.MethodGet, "/audits/missing/chat", "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for history, got %d", status)
	}
}
