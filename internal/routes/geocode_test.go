package routes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

type fakeGeocoding struct {
	results []maps.GeocodingResult
	err     error
	queried string
}

func (f *fakeGeocoding) Geocode(_ context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	f.queried = r.Address
	return f.results, f.err
}

func TestCenterUsesFirstStop(t *testing.T) {
	f := &fakeGeocoding{results: []maps.GeocodingResult{{}}}
	f.results[0].Geometry.Location = maps.LatLng{Lat: 48.86, Lng: 2.35}
	g := NewGeocoder(f, zap.NewNop())

	center := g.Center(context.Background(), itin([]string{}, []string{"Louvre, Paris", "Eiffel Tower"}))

	assert.Equal(t, "Louvre, Paris", f.queried, "first stop across days, empty day skipped")
	assert.Equal(t, LatLng{Lat: 48.86, Lng: 2.35}, center)
}

func TestCenterFailureFallsBack(t *testing.T) {
	g := NewGeocoder(&fakeGeocoding{err: errors.New("quota")}, zap.NewNop())
	center := g.Center(context.Background(), itin([]string{"Somewhere"}))
	assert.Equal(t, DefaultCenter, center)
}

func TestCenterEmptyItinerary(t *testing.T) {
	f := &fakeGeocoding{}
	g := NewGeocoder(f, zap.NewNop())
	center := g.Center(context.Background(), itin([]string{}))
	assert.Equal(t, DefaultCenter, center)
	assert.Empty(t, f.queried, "no geocode request without a stop")
}
