package http

import (
	"net/http"

	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/harvestnet/platform/pkg/slogx"
)

type DashboardHandler struct {
	AnalyticsService *service.AnalyticsService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard counters
//	@Description	Live counts of active users, farmers and data ambassadors plus growth captions.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.DashboardResponse	"total_users, active_farmers, data_ambassadors, growth_metrics"
//	@Failure		401	{object}	platformsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		500	{object}	platformsdk.ErrorResponse		"Internal server error"
//	@Router			/api/analytics/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sum, err := h.AnalyticsService.Dashboard(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to build dashboard", "err", err)
		platformsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.DashboardResponse{
		TotalUsers:      sum.TotalUsers,
		ActiveFarmers:   sum.ActiveFarmers,
		DataAmbassadors: sum.DataAmbassadors,
		GrowthMetrics: platformsdk.GrowthMetrics{
			UsersGrowth:       sum.GrowthMetrics.UsersGrowth,
			FarmersGrowth:     sum.GrowthMetrics.FarmersGrowth,
			AmbassadorsGrowth: sum.GrowthMetrics.AmbassadorsGrowth,
		},
	})
}
