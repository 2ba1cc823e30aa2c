package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sevakart/marketplace/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

var (
	up   = &stubChecker{}
	down = &stubChecker{err: errors.New("conn refused")}
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks httpx.HealthChecks
		code   int
		want   map[string]string
	}{
		{
			name:   "all healthy, temporal disabled",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: up},
			code:   http.StatusOK,
			want:   map[string]string{"status": "ok", "database": "ok", "redis": "ok", "event_bus": "ok", "temporal": "disabled"},
		},
		{
			name:   "all healthy with temporal",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: up, Temporal: up},
			code:   http.StatusOK,
			want:   map[string]string{"status": "ok", "temporal": "ok"},
		},
		{
			name:   "database down",
			checks: httpx.HealthChecks{Database: down, Redis: up, EventBus: up},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "database": "unreachable", "redis": "ok"},
		},
		{
			name:   "redis down",
			checks: httpx.HealthChecks{Database: up, Redis: down, EventBus: up},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "redis": "unreachable"},
		},
		{
			name:   "event bus down",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: down},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "event_bus": "unreachable"},
		},
		{
			name:   "temporal down",
			checks: httpx.HealthChecks{Database: up, Redis: up, EventBus: up, Temporal: down},
			code:   http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "temporal": "unreachable", "database": "ok"},
		},
		{
			name:   "everything down",
			checks: httpx.HealthChecks{Database: down, Redis: down, EventBus: down, Temporal: down},
			code:   http.StatusServiceUnavailable,
			want: map[string]string{
				"status": "degraded", "database": "unreachable", "redis": "unreachable",
				"event_bus": "unreachable", "temporal": "unreachable",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tt.checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rr.Code != tt.code {
				t.Fatalf("status code = %d, want %d", rr.Code, tt.code)
			}
			var resp map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for k, v := range tt.want {
				if resp[k] != v {
					t.Errorf("%s = %q, want %q", k, resp[k], v)
				}
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	h := httpx.HealthHandler(httpx.HealthChecks{Database: up, Redis: up, EventBus: up})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}
