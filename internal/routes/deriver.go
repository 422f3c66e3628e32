// Package routes turns each day's ordered stops into a drivable route via
// the Google Maps Directions API.
package routes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"tripcomposer/internal/itinerary"
)

// 地圖上每一天路線的顏色，依天數循環
var routeColors = []string{"#FF0000", "#0000FF", "#00AA00", "#FF00FF", "#00FFFF"}

// DirectionsAPI is the slice of *maps.Client the deriver needs.
type DirectionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// Route is the renderable result for one day. A day with fewer than two
// stops, or whose directions request failed, simply has no Route.
type Route struct {
	DayIndex        int    `json:"day_index"`
	Polyline        string `json:"polyline"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	Color           string `json:"color"`
}

// routeData is a fetched route before a day index and color are assigned,
// cached by content fingerprint so an unchanged day is never re-fetched.
type routeData struct {
	polyline        string
	distanceMeters  int
	durationSeconds int
}

// Deriver recomputes per-day routes whenever the itinerary changes.
// Requests fan out one goroutine per day; every result is applied against
// the fingerprint the day had when the request was issued, so a late reply
// for a superseded day is discarded instead of landing on whatever is
// current.
type Deriver struct {
	api DirectionsAPI
	log *zap.Logger

	mu       sync.Mutex
	memo     map[string]routeData // fingerprint → fetched route
	table    map[int]*Route       // day index → current route (nil = none)
	expected map[int]string       // day index → fingerprint the table entry must match
	dayCount int
}

func NewDeriver(api DirectionsAPI, log *zap.Logger) *Deriver {
	return &Deriver{
		api:      api,
		log:      log,
		memo:     make(map[string]routeData),
		table:    make(map[int]*Route),
		expected: make(map[int]string),
	}
}

// Fingerprint identifies a day by its ordered stop texts.
func Fingerprint(stops []string) string {
	h := sha256.Sum256([]byte(strings.Join(stops, "\x1f")))
	return hex.EncodeToString(h[:])
}

// Recompute derives routes for every day of the snapshot. It blocks until
// all directions requests resolve; callers that must not wait run it on a
// goroutine. A failure on one day only clears that day's route.
func (d *Deriver) Recompute(ctx context.Context, it itinerary.Itinerary) {
	type job struct {
		dayIndex    int
		fingerprint string
		stops       []string
	}
	var jobs []job

	d.mu.Lock()
	d.dayCount = len(it.Days)
	// drop entries for days that no longer exist
	for idx := range d.table {
		if idx >= len(it.Days) {
			delete(d.table, idx)
			delete(d.expected, idx)
		}
	}
	for i, day := range it.Days {
		stops := day.StopTexts()
		fp := Fingerprint(stops)
		if d.expected[i] == fp && len(stops) >= 2 {
			continue // unchanged, keep whatever the table has
		}
		d.expected[i] = fp

		if len(stops) < 2 {
			d.table[i] = nil
			continue
		}
		if data, ok := d.memo[fp]; ok {
			d.table[i] = data.route(i)
			continue
		}
		d.table[i] = nil // pending
		jobs = append(jobs, job{dayIndex: i, fingerprint: fp, stops: stops})
	}
	d.mu.Unlock()

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			d.fetch(ctx, j.dayIndex, j.fingerprint, j.stops)
		}(j)
	}
	wg.Wait()
}

func (d *Deriver) fetch(ctx context.Context, dayIndex int, fingerprint string, stops []string) {
	req := &maps.DirectionsRequest{
		Origin:      stops[0],
		Destination: stops[len(stops)-1],
		Waypoints:   stops[1 : len(stops)-1],
		Mode:        maps.TravelModeDriving,
	}

	found, _, err := d.api.Directions(ctx, req)
	if err != nil || len(found) == 0 {
		d.log.Warn("directions request failed",
			zap.Int("day", dayIndex), zap.Error(err))
		return
	}

	r := found[0]
	data := routeData{polyline: r.OverviewPolyline.Points}
	for _, leg := range r.Legs {
		data.distanceMeters += leg.Distance.Meters
		data.durationSeconds += int(leg.Duration.Seconds())
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.memo[fingerprint] = data
	// the day may have changed (or moved) while the request was in flight
	if d.expected[dayIndex] != fingerprint {
		return
	}
	d.table[dayIndex] = data.route(dayIndex)
}

func (data routeData) route(dayIndex int) *Route {
	return &Route{
		DayIndex:        dayIndex,
		Polyline:        data.polyline,
		DistanceMeters:  data.distanceMeters,
		DurationSeconds: data.durationSeconds,
		Color:           routeColors[dayIndex%len(routeColors)],
	}
}

// Routes returns the current per-day route table, one slot per day of the
// last snapshot seen. Slots without a route are nil.
func (d *Deriver) Routes() []*Route {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Route, d.dayCount)
	for i := range out {
		if r, ok := d.table[i]; ok && r != nil {
			cp := *r
			out[i] = &cp
		}
	}
	return out
}
