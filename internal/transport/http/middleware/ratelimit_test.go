package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func postFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/audits", bytes.NewBufferString(`{"nama":"Rina"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = addr
	return req
}

func TestRateLimitKeysByIP(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(noContent))

	firstRec := httptest.NewRecorder()
	limited.ServeHTTP(firstRec, postFrom("203.0.113.10:4444"))
	if firstRec.Code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", firstRec.Code)
	}

	secondRec := httptest.NewRecorder()
	limited.ServeHTTP(secondRec, postFrom("203.0.113.10:5555"))
	if secondRec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled by ip key, got %d", secondRec.Code)
	}

	otherRec := httptest.NewRecorder()
	limited.ServeHTTP(otherRec, postFrom("203.0.113.11:5555"))
	if otherRec.Code != http.StatusNoContent {
		t.Fatalf("expected other client to pass, got %d", otherRec.Code)
	}
}

func TestRateLimitPrefersForwardedFor(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(noContent))

	first := postFrom("10.0.0.1:1000")
	first.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	limited.ServeHTTP(httptest.NewRecorder(), first)

	second := postFrom("10.0.0.2:1000")
	second.Header.Set("X-Forwarded-For", "198.51.100.7")
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, second)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected forwarded client to be throttled, got %d", rec.Code)
	}
}

func TestRateLimitWindowReset(t *testing.T) {
	rl := newRateLimiter(1, time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.enforce(httptest.NewRecorder(), postFrom("192.0.2.20:1111")) {
		t.Fatal("expected first request to pass")
	}
	if rl.enforce(httptest.NewRecorder(), postFrom("192.0.2.20:1111")) {
		t.Fatal("expected second request to be throttled")
	}

	now = now.Add(61 * time.Second)
	if !rl.enforce(httptest.NewRecorder(), postFrom("192.0.2.20:1111")) {
		t.Fatal("expected request after window reset to pass")
	}
}

func TestRateLimitReturnsRetryMetadata(t *testing.T) {
	limited := RateLimit(1, time.Minute)(http.HandlerFunc(noContent))

	limited.ServeHTTP(httptest.NewRecorder(), postFrom("192.0.2.30:1234"))
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, postFrom("192.0.2.30:1234"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected throttled response, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("expected remaining 0, got %q", got)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != strconv.Itoa(1) {
		t.Fatalf("expected limit header 1, got %q", got)
	}
}

func TestRateLimitDisabledWhenLimitZero(t *testing.T) {
	limited := RateLimit(0, time.Minute)(http.HandlerFunc(noContent))
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, postFrom("192.0.2.40:1"))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected pass, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimitSweepDropsExpiredBuckets(t *testing.T) {
	rl := newRateLimiter(5, time.Second)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	for i := 0; i <= sweepThreshold; i++ {
		rl.enforce(httptest.NewRecorder(), postFrom("192.0.2."+strconv.Itoa(i%250)+":"+strconv.Itoa(1000+i)))
		rl.clients["synthetic-"+strconv.Itoa(i)] = &rateBucket{count: 1, reset: now.Add(time.Second)}
	}

	now = now.Add(2 * time.Second)
	rl.enforce(httptest.NewRecorder(), postFrom("198.51.100.1:1"))
	if len(rl.clients) != 1 {
		t.Fatalf("expected only the fresh bucket to remain, got %d", len(rl.clients))
	}
}
