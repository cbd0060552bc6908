package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger_PassesThrough(t *testing.T) {
	logger := NewMockHandlerLogger()
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/resumes", nil))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}
	if rr.Body.String() != "done" {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if logger.infoCount() != 1 {
		t.Fatalf("expected one access log entry, got %d", logger.infoCount())
	}
}

func TestRecoverer(t *testing.T) {
	logger := NewMockHandlerLogger()
	h := Recoverer(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("extractor exploded")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/upload", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"Error processing PDFs"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if logger.errorCount() != 1 {
		t.Fatalf("expected the panic to be logged")
	}
}

func TestRecoverer_NoPanic(t *testing.T) {
	h := Recoverer(NewMockHandlerLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
}

func TestRecoverer_MessagePerRoute(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/upload", `{"error":"Error processing PDFs"}`},
		{http.MethodGet, "/resumes", `{"error":"Database error"}`},
		{http.MethodGet, "/ready", `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h := Recoverer(NewMockHandlerLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
			}
			if strings.TrimSpace(rr.Body.String()) != tt.want {
				t.Fatalf("unexpected response body: %s", rr.Body.String())
			}
		})
	}
}
