package main

import (
	"log"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"tripcomposer/internal/config"
	"tripcomposer/internal/conversation"
	"tripcomposer/internal/gemini"
	"tripcomposer/internal/images"
	"tripcomposer/internal/itinerary"
	"tripcomposer/internal/logger"
	"tripcomposer/internal/routes"
	"tripcomposer/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.AppEnv, cfg.LogLevel)
	defer zlog.Sync()

	store := itinerary.NewStore()
	gen := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	sessions := conversation.NewManager(gen, store, zlog)
	imgs := images.NewService(cfg.UnsplashAccessKey, zlog)

	var (
		deriver  *routes.Deriver
		geocoder *routes.Geocoder
	)
	if cfg.MapsAPIKey != "" {
		mapsClient, err := maps.NewClient(maps.WithAPIKey(cfg.MapsAPIKey))
		if err != nil {
			zlog.Fatal("create maps client", zap.Error(err))
		}
		deriver = routes.NewDeriver(mapsClient, zlog)
		geocoder = routes.NewGeocoder(mapsClient, zlog)
	} else {
		zlog.Warn("GOOGLE_MAPS_API_KEY not set, routes and map center disabled")
	}

	srv := server.New(zlog, store, sessions, gen, deriver, geocoder, imgs)
	r := srv.Router()

	addr := ":" + cfg.Port
	zlog.Info("server running", zap.String("addr", "http://localhost"+addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
