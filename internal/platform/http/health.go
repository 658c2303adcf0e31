package http

import (
	"net/http"
	"time"

	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/harvestnet/platform/pkg/slogx"
)

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Reports whether the service can reach its database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	platformsdk.HealthResponse	"status, database, timestamp, version"
//	@Failure		500	{object}	platformsdk.HealthResponse	"status, error, timestamp"
//	@Router			/api/health [get].
func HealthHandler(version string, st store.Store, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := now().UTC()

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("health check failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, platformsdk.HealthResponse{
				Status:    "unhealthy",
				Error:     err.Error(),
				Timestamp: ts,
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, platformsdk.HealthResponse{
			Status:    "healthy",
			Database:  "connected",
			Timestamp: ts,
			Version:   version,
		})
	}
}
