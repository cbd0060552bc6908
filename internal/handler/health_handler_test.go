package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "resume-filter/pkg/errors"
)

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Ready(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("readiness check without deadline")
	}
	return m.err
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{err: errors.New("db down")})

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"service":"resume-filter","status":"ok"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestReady(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{})

	rr := httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if strings.TrimSpace(rr.Body.String()) != `{"status":"ready"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestReady_NotReady(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{err: errors.New("ping: connection refused")})

	rr := httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"Service not ready"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestReady_UnavailableError(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{err: apperrors.NewUnavailableError("Service not ready", errors.New("record_store: ping"))})

	rr := httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
}
