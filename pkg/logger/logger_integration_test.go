package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func setupTracer(t *testing.T) {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("parse log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		t.Fatal("no log lines written")
	}
	return out
}

func last(t *testing.T, buf *bytes.Buffer) map[string]any {
	lines := decodeLines(t, buf)
	return lines[len(lines)-1]
}

func TestTraceHandler_SpanFields(t *testing.T) {
	setupTracer(t)

	tests := []struct {
		name      string
		withSpan  bool
		logFn     func(Logger, context.Context)
		wantTrace bool
		wantAttrs map[string]any
	}{
		{
			name:     "info inside checkout span",
			withSpan: true,
			logFn: func(l Logger, ctx context.Context) {
				l.InfoContext(ctx, "order placed", "order_id", "o-1")
			},
			wantTrace: true,
			wantAttrs: map[string]any{"order_id": "o-1"},
		},
		{
			name: "info without span",
			logFn: func(l Logger, ctx context.Context) {
				l.InfoContext(ctx, "cart cleared")
			},
		},
		{
			name:     "error keeps key-value pairs",
			withSpan: true,
			logFn: func(l Logger, ctx context.Context) {
				l.ErrorContext(ctx, "checkout failed", "error", errors.New("boom"), "vendor_id", "v-1")
			},
			wantTrace: true,
			wantAttrs: map[string]any{"error": "boom", "vendor_id": "v-1"},
		},
		{
			name:     "bound attributes survive With",
			withSpan: true,
			logFn: func(l Logger, ctx context.Context) {
				l.With("supplier_id", "s-1").WarnContext(ctx, "order rejected")
			},
			wantTrace: true,
			wantAttrs: map[string]any{"supplier_id": "s-1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, "debug")

			ctx := context.Background()
			if tt.withSpan {
				c, s := otel.Tracer("test").Start(ctx, "checkout")
				defer s.End()
				ctx = c
			}
			tt.logFn(log, ctx)

			entry := last(t, &buf)
			_, hasTrace := entry["trace_id"]
			_, hasSpan := entry["span_id"]
			if hasTrace != tt.wantTrace || hasSpan != tt.wantTrace {
				t.Errorf("trace_id present=%v span_id present=%v, want %v", hasTrace, hasSpan, tt.wantTrace)
			}
			for k, v := range tt.wantAttrs {
				if entry[k] != v {
					t.Errorf("%s = %v, want %v", k, entry[k], v)
				}
			}
		})
	}
}

func TestMiddleware_LogsRequestWithRequestID(t *testing.T) {
	setupTracer(t)

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(log))
	r.Post("/api/cart/items", func(w http.ResponseWriter, req *http.Request) {
		_, span := otel.Tracer("test").Start(req.Context(), "add-to-cart")
		defer span.End()
		w.WriteHeader(http.StatusCreated)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/cart/items", http.NoBody))

	entry := last(t, &buf)
	if _, ok := entry["request_id"]; !ok {
		t.Error("expected request_id in request log")
	}
	if entry["method"] != "POST" {
		t.Errorf("method = %v", entry["method"])
	}
}

func TestRecovery_Returns500AndLogsPanic(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	h := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("inventory exploded")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(buf.String(), "inventory exploded") {
		t.Errorf("panic value not logged: %s", buf.String())
	}
}

func TestNestedSpans_ShareTraceID(t *testing.T) {
	setupTracer(t)

	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	tracer := otel.Tracer("test")

	ctx, parent := tracer.Start(context.Background(), "checkout")
	log.InfoContext(ctx, "checkout started")
	ctx, child := tracer.Start(ctx, "save-order")
	log.InfoContext(ctx, "order saved")
	child.End()
	parent.End()

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["trace_id"] != lines[1]["trace_id"] {
		t.Errorf("trace ids differ: %v vs %v", lines[0]["trace_id"], lines[1]["trace_id"])
	}
	if lines[0]["span_id"] == lines[1]["span_id"] {
		t.Error("expected different span ids for parent and child")
	}
}
