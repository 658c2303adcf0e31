package domain

import "time"

// WeatherCacheEntry is one cached upstream forecast. Rows are append-only;
// the newest row for a key inside the cache window wins.
type WeatherCacheEntry struct {
	ID        string
	Latitude  float64
	Longitude float64
	LatKey    int64
	LonKey    int64
	Payload   []byte
	CachedAt  time.Time
}
