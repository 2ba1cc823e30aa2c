package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.Database, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Temporal is optional and reported as "disabled" when nil.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
	Temporal HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
	Temporal string `json:"temporal"`
}

func probe(ctx context.Context, c HealthChecker, field *string, status *string) {
	if err := c.Ping(ctx); err != nil {
		*status = "degraded"
		*field = "unreachable"
	}
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   "ok",
			Database: "ok",
			Redis:    "ok",
			EventBus: "ok",
			Temporal: "disabled",
		}

		probe(ctx, checks.Database, &resp.Database, &resp.Status)
		probe(ctx, checks.Redis, &resp.Redis, &resp.Status)
		probe(ctx, checks.EventBus, &resp.EventBus, &resp.Status)
		if checks.Temporal != nil {
			resp.Temporal = "ok"
			probe(ctx, checks.Temporal, &resp.Temporal, &resp.Status)
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
