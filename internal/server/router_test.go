package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hsinghweb/eag-v2-s13/internal/automation"
	"github.com/hsinghweb/eag-v2-s13/internal/calculator"
	"github.com/hsinghweb/eag-v2-s13/internal/observability"
	"github.com/hsinghweb/eag-v2-s13/internal/registry"
	"github.com/hsinghweb/eag-v2-s13/internal/testutil"
	"github.com/hsinghweb/eag-v2-s13/internal/window"
)

type stubLocator struct{}

func (stubLocator) Frame(ctx context.Context) (window.Frame, error) {
	return window.Frame{X: 0, Y: 0, Visible: true}, nil
}

func (stubLocator) EnsureOpen(ctx context.Context) error { return nil }

type stubClicker struct{}

func (stubClicker) Click(x, y int) error { return nil }

func testController(t *testing.T) *calculator.Controller {
	t.Helper()

	if err := calculator.InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	reg, err := registry.Load(filepath.Join("..", "registry", "testdata", "fdom.json"))
	if err != nil {
		t.Fatalf("loading fixture registry: %v", err)
	}

	return &calculator.Controller{
		Locator: stubLocator{},
		Executor: &automation.Executor{
			Registry: reg,
			Locator:  stubLocator{},
			Clicker:  stubClicker{},
			Logger:   zap.NewNop(),
		},
	}
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	observability.Logger = zap.NewNop()
	router := NewRouter(testController(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterMetricsEndpoint(t *testing.T) {
	observability.Logger = zap.NewNop()
	router := NewRouter(testController(t))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestNewRouterRunSetsRequestIDHeader(t *testing.T) {
	observability.Logger = zap.NewNop()
	router := NewRouter(testController(t))

	body := []byte(`{"instruction":"Add 2 and 3"}`)
	req := httptest.NewRequest(http.MethodPost, "/calculator/run", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	testutil.DecodeJSONBody(t, w.Result().Body, &payload)

	if got, ok := payload["failed_index"].(float64); !ok || got != -1 {
		t.Fatalf("expected failed_index -1, got %#v", payload["failed_index"])
	}
}
