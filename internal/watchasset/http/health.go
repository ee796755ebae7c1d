package http

import (
	"net/http"
	"time"

	"github.com/watchasset/watchasset/internal/watchasset/store"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/watchasset/watchasset/pkg/watchsdk"
)

// HealthzHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning service status, uptime and version.
//	@Description	Always returns 200 OK while the service is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	watchsdk.HealthResponse	"status, uptime, version"
//	@Router			/healthz [get].
func HealthzHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := watchsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking critical dependencies (database).
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	watchsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	watchsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &watchsdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := watchsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
