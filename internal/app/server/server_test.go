package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/audit/audittest"
	"aisg/internal/platform/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>aisg</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	return config.Config{
		Addr:                ":0",
		FrontendDir:         dir,
		Environment:         "test",
		MaxBodyBytes:        1 << 20,
		RateLimitPerMinute:  100,
		MetricsEnabled:      true,
		AIRequestsPerMinute: 15,
		AITimeout:           time.Second,
	}
}

func newTestServer(t *testing.T, store *audittest.Store) *httptest.Server {
	t.Helper()
	app, err := NewWithStore(context.Background(), testConfig(t), store)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(app.Close)
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHealthAndReadiness(t *testing.T) {
	store := audittest.NewStore()
	ts := newTestServer(t, store)

	if status, body := get(t, ts.Client(), ts.URL+"/healthz"); status != http.StatusOK || body != "ok" {
		t.Fatalf("healthz: %d %q", status, body)
	}
	if status, _ := get(t, ts.Client(), ts.URL+"/readyz"); status != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d", status)
	}

	store.PingErr = errors.New("connection refused")
	if status, _ := get(t, ts.Client(), ts.URL+"/readyz"); status != http.StatusServiceUnavailable {
		t.Fatalf("readyz: expected 503, got %d", status)
	}
}

func TestAuditJourney(t *testing.T) {
	ts := newTestServer(t, audittest.NewStore())
	client := ts.Client()

	raw, err := json.Marshal(audit.SubmissionOf(audittest.ValidInput()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := client.Post(ts.URL+"/api/v1/audits", "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" || resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected request id and security headers")
	}
	var env struct {
		Data audit.Summary `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}

	status, _ := get(t, client, ts.URL+"/api/v1/audits/"+env.Data.AuditID+"/pdf")
	if status != http.StatusOK {
		t.Fatalf("pdf: expected 200, got %d", status)
	}

	chatResp, err := client.Post(ts.URL+"/api/v1/audits/"+env.Data.AuditID+"/chat", "application/json", strings.NewReader(`{"message":"Halo"}`))
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	chatResp.Body.Close()
	if chatResp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("chat without api key: expected 503, got %d", chatResp.StatusCode)
	}

	status, body := get(t, client, ts.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", status)
	}
	for _, want := range []string{
		`aisg_audits_created_total{zone=`,
		`aisg_http_requests_total{route="/api/v1/audits`,
		`status="201"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

func TestSPAFallback(t *testing.T) {
	ts := newTestServer(t, audittest.NewStore())

	status, body := get(t, ts.Client(), ts.URL+"/history/123")
	if status != http.StatusOK || !strings.Contains(body, "aisg") {
		t.Fatalf("expected index fallback, got %d %q", status, body)
	}

	resp, err := ts.Client().Post(ts.URL+"/history", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for non-GET, got %d", resp.StatusCode)
	}
}
