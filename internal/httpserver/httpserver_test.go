package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travel-planner/config"
	"travel-planner/internal/packing"
	"travel-planner/internal/session"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
)

type fakeProvider struct{}

func (fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Text: "Day 1\nFort", ProviderName: "fake", ModelName: "fake-1"}, nil
}
func (fakeProvider) Name() string  { return "fake" }
func (fakeProvider) Model() string { return "fake-1" }

func newTestServer(t *testing.T, rl config.RateLimitConfig) http.Handler {
	t.Helper()
	l := log.NewNop()
	manager := llmprovider.NewManager([]llmprovider.Provider{fakeProvider{}}, &llmprovider.Config{RetryAttempts: 1}, l)

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		RateLimit:   rl,
		LLM:         manager,
		Sessions:    session.New(l, time.Minute, 10),
		IDs:         packing.NewULIDSource(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h, err := srv.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	return h
}

func request(h http.Handler, method, path, body string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w.Code
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()
	if _, err := New(l, Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without domain dependencies")
	}
	if _, err := New(l, Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port")
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			if code := request(h, http.MethodGet, path, ""); code != http.StatusOK {
				t.Errorf("expected 200, got %d", code)
			}
		})
	}
}

func TestDomainRoutes(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{})

	if code := request(h, http.MethodPost, "/api/v1/itineraries",
		`{"name":"A","starting_place":"B","destination":"C","duration_days":1,"budget":100}`); code != http.StatusOK {
		t.Errorf("itineraries: expected 200, got %d", code)
	}
	if code := request(h, http.MethodPost, "/api/v1/itineraries/parse", `{"text":"Day 1\nx"}`); code != http.StatusOK {
		t.Errorf("parse: expected 200, got %d", code)
	}
	if code := request(h, http.MethodPost, "/api/v1/packing/sessions", `{"raw_text":"- hat"}`); code != http.StatusCreated {
		t.Errorf("packing: expected 201, got %d", code)
	}
}

func TestDomainRoutes_RateLimited(t *testing.T) {
	h := newTestServer(t, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})

	if code := request(h, http.MethodPost, "/api/v1/itineraries/parse", `{"text":""}`); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := request(h, http.MethodPost, "/api/v1/itineraries/parse", `{"text":""}`); code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", code)
	}
	if code := request(h, http.MethodGet, "/health", ""); code != http.StatusOK {
		t.Errorf("health must not be rate limited, got %d", code)
	}
}
