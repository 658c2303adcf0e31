package http

import (
	"errors"
	"net/http"

	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/internal/platform/weather"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/harvestnet/platform/pkg/slogx"
)

type WeatherHandler struct {
	WeatherService *service.WeatherService
}

// ServeHTTP godoc
//
//	@Summary		Weather forecast
//	@Description	Returns the met.no compact forecast for a coordinate pair. Answers come from the cache for an hour after the last fetch.
//	@Tags			Weather
//	@Security		BearerAuth
//	@Produce		json
//	@Param			lat	query		number						false	"Latitude (default -1.2921)"
//	@Param			lon	query		number						false	"Longitude (default 36.8219)"
//	@Success		200	{object}	object						"Upstream forecast document"
//	@Failure		400	{object}	platformsdk.ErrorResponse	"Coordinates are not numbers or out of range"
//	@Failure		401	{object}	platformsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		503	{object}	platformsdk.ErrorResponse	"Weather service unavailable"
//	@Failure		500	{object}	platformsdk.ErrorResponse	"Internal server error"
//	@Router			/api/weather [get].
func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	lat, lon, err := weather.ParseCoordinates(q.Get("lat"), q.Get("lon"))
	if err != nil {
		platformsdk.ErrInvalidRequest.WithDescription("lat and lon must be valid coordinates").WriteError(w)
		return
	}

	payload, err := h.WeatherService.GetWeather(ctx, lat, lon)
	switch {
	case errors.Is(err, weather.ErrUnavailable):
		log.Warn("weather upstream unavailable", "err", err)
		platformsdk.ErrUpstreamUnavailable.WriteError(w)
		return
	case err != nil:
		log.Error("weather lookup failed", "err", err)
		platformsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
