package weather

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Nairobi, used when a request omits a coordinate.
const (
	DefaultLatitude  = -1.2921
	DefaultLongitude = 36.8219
)

const quantScale = 1e4

var ErrInvalidCoordinates = errors.New("weather: invalid coordinates")

// Quantize maps a coordinate to an integer key with four decimal places, so
// "-1.2921" and "-1.29210" hit the same cache row.
func Quantize(coord float64) int64 {
	return int64(math.Round(coord * quantScale))
}

// ParseCoordinates parses query values, applying the defaults for empty
// strings and rejecting anything outside the valid lat/lon ranges.
func ParseCoordinates(latStr, lonStr string) (lat, lon float64, err error) {
	lat, err = parseCoord(latStr, DefaultLatitude, 90)
	if err != nil {
		return 0, 0, err
	}
	lon, err = parseCoord(lonStr, DefaultLongitude, 180)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func parseCoord(s string, def, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, ErrInvalidCoordinates
	}
	return v, nil
}
