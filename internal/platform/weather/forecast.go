package weather

import (
	"encoding/json"
	"errors"
)

var ErrInvalidForecast = errors.New("weather: forecast missing timeseries data")

// forecastShape is the part of a locationforecast document we check.
type forecastShape struct {
	Properties *struct {
		Timeseries []struct {
			Time string          `json:"time"`
			Data json.RawMessage `json:"data"`
		} `json:"timeseries"`
	} `json:"properties"`
}

// ValidateForecast checks that payload looks like a usable forecast: a
// properties.timeseries array whose first entry has time and data.
func ValidateForecast(payload []byte) error {
	var f forecastShape
	if err := json.Unmarshal(payload, &f); err != nil {
		return ErrDecode
	}
	if f.Properties == nil || len(f.Properties.Timeseries) == 0 {
		return ErrInvalidForecast
	}
	first := f.Properties.Timeseries[0]
	if first.Time == "" || len(first.Data) == 0 || string(first.Data) == "null" {
		return ErrInvalidForecast
	}
	return nil
}
