package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"billomat-invoicing/internal/middleware"
	"billomat-invoicing/pkg/log"
	"billomat-invoicing/pkg/response"
)

type stubInvoiceHandler struct{}

func (stubInvoiceHandler) Preview(c *gin.Context)            { c.Status(http.StatusNoContent) }
func (stubInvoiceHandler) Create(c *gin.Context)             { c.Status(http.StatusNoContent) }
func (stubInvoiceHandler) ListClientContacts(c *gin.Context) { c.Status(http.StatusNoContent) }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "production",
		Middleware:     middleware.New(l, 0),
		InvoiceHandler: stubInvoiceHandler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Missing Mode", Config{Port: 8080, InvoiceHandler: stubInvoiceHandler{}}},
		{"Missing Port", Config{Mode: gin.TestMode, InvoiceHandler: stubInvoiceHandler{}}},
		{"Missing Invoice Handler", Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Data.(map[string]interface{})["service"] != ServiceName {
				t.Errorf("unexpected body %s", w.Body.String())
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected request id header")
			}
		})
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/invoices/preview", "/api/v1/invoices", "/api/v1/billomat/client-contacts"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		if w.Code != http.StatusNoContent {
			t.Errorf("%s: expected 204, got %d", path, w.Code)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}

func TestReadiness(t *testing.T) {
	ready := func(srv *HTTPServer) (int, map[string]interface{}) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return w.Code, resp.Data.(map[string]interface{})
	}

	newServer := func(t *testing.T, checks map[string]ReadinessCheck) *HTTPServer {
		t.Helper()
		l := log.NewNop()
		srv, err := New(l, Config{
			Logger:          l,
			Port:            8080,
			Mode:            gin.TestMode,
			Middleware:      middleware.New(l, 0),
			ReadinessChecks: checks,
			InvoiceHandler:  stubInvoiceHandler{},
		})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return srv
	}

	t.Run("Checks Pass", func(t *testing.T) {
		srv := newServer(t, map[string]ReadinessCheck{
			"billomat_account": func(context.Context) error { return nil },
		})
		code, data := ready(srv)
		if code != http.StatusOK || data["status"] != "ready" {
			t.Fatalf("expected ready, got %d %v", code, data)
		}
		if data["checks"].(map[string]interface{})["billomat_account"] != "ok" {
			t.Errorf("unexpected checks %v", data["checks"])
		}
	})

	t.Run("Check Fails", func(t *testing.T) {
		srv := newServer(t, map[string]ReadinessCheck{
			"billomat_account": func(context.Context) error { return errors.New("account id rejected") },
			"other":            func(context.Context) error { return nil },
		})
		code, data := ready(srv)
		if code != http.StatusServiceUnavailable || data["status"] != "not_ready" {
			t.Fatalf("expected 503 not_ready, got %d %v", code, data)
		}
		checks := data["checks"].(map[string]interface{})
		if checks["billomat_account"] != "account id rejected" || checks["other"] != "ok" {
			t.Errorf("unexpected checks %v", checks)
		}
	})

	t.Run("Draining", func(t *testing.T) {
		srv := newServer(t, nil)
		srv.draining.Store(true)
		code, data := ready(srv)
		if code != http.StatusServiceUnavailable || data["draining"] != true {
			t.Errorf("expected 503 while draining, got %d %v", code, data)
		}
	})
}
