package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorTruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Test", "1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("a", 2048)))
	}))
	defer srv.Close()

	exec := NewExecutor(WithMaxBodyBytes(1024))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	res, err := exec.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected 2xx, got %d", res.Status)
	}
	if !res.Truncated || len(res.BodyBytes) != 1024 {
		t.Fatalf("expected truncated 1024-byte body, got truncated=%v len=%d", res.Truncated, len(res.BodyBytes))
	}
	if res.Headers.Get("X-Test") != "1" {
		t.Fatalf("expected header X-Test=1")
	}
}

func TestResponseDataOK(t *testing.T) {
	for status, want := range map[int]bool{199: false, 200: true, 204: true, 299: true, 300: false, 422: false} {
		if got := (ResponseData{Status: status}).OK(); got != want {
			t.Errorf("OK() for %d = %v, want %v", status, got, want)
		}
	}
}
