package routes

import (
	"context"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"tripcomposer/internal/itinerary"
)

// DefaultCenter is where the map points before any stop is geocoded.
var DefaultCenter = LatLng{Lat: 20.5937, Lng: 78.9629}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodingAPI is the slice of *maps.Client the geocoder needs.
type GeocodingAPI interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Geocoder recenters the map on the itinerary's first stop.
type Geocoder struct {
	api GeocodingAPI
	log *zap.Logger
}

func NewGeocoder(api GeocodingAPI, log *zap.Logger) *Geocoder {
	return &Geocoder{api: api, log: log}
}

// Center geocodes the first stop. Any failure falls back to DefaultCenter;
// recentering is purely cosmetic and never surfaces an error.
func (g *Geocoder) Center(ctx context.Context, it itinerary.Itinerary) LatLng {
	first, ok := it.FirstStop()
	if !ok {
		return DefaultCenter
	}

	results, err := g.api.Geocode(ctx, &maps.GeocodingRequest{Address: first.Text})
	if err != nil || len(results) == 0 {
		g.log.Debug("geocoding failed, keeping default center",
			zap.String("stop", first.Text), zap.Error(err))
		return DefaultCenter
	}

	loc := results[0].Geometry.Location
	return LatLng{Lat: loc.Lat, Lng: loc.Lng}
}
