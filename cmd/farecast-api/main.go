// README: Entry point; loads config, wires module services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/maps"
	"farecast/internal/modules/estimate"
	"farecast/internal/modules/favorites"
	"farecast/internal/modules/history"
	"farecast/internal/modules/location"
	"farecast/internal/modules/prefs"
	"farecast/internal/modules/profile"
	"farecast/internal/modules/quote"
	"farecast/internal/modules/reports"
	"farecast/internal/modules/routecache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	if err := infra.InitSchema(ctx, dbPool); err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	// Geocoding is optional: without an API key the resolver still serves
	// autocomplete and coordinate-formatted reverse lookups.
	var geocoder location.Geocoder
	if cfg.Geocode.APIKey != "" {
		geo, err := maps.NewGeocodeService(cfg.Geocode.APIKey, cfg.Geocode.Country)
		if err != nil {
			log.Fatalf("geocoder init: %v", err)
		}
		geocoder = geo
	} else {
		log.Println("MAPS_API_KEY not set; forward geocoding disabled")
	}
	locationSvc := location.NewService(geocoder)

	reportsStore := reports.NewStore(dbPool)
	reportsSvc := reports.NewService(reportsStore, estimate.DefaultCatalog())

	engine := estimate.NewEngine(cfg.Sim, estimate.DefaultCatalog(), reportsSvc)

	cacheStore := routecache.NewStore(redisClient, cfg.RouteCache.TTL, cfg.RouteCache.MaxEntries)

	historyStore := history.NewStore(dbPool)
	historySvc := history.NewService(historyStore, cfg.HistoryCap)

	quoteSvc := quote.NewService(engine, cacheStore, historySvc)

	favoritesSvc := favorites.NewService(favorites.NewStore(dbPool))
	prefsSvc := prefs.NewService(prefs.NewStore(dbPool))
	profileSvc := profile.NewService(profile.NewStore(dbPool))

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Quotes:    quoteSvc,
		Locations: locationSvc,
		Favorites: favoritesSvc,
		History:   historySvc,
		Prefs:     prefsSvc,
		Profile:   profileSvc,
		Reports:   reportsSvc,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("Server listening addr=%s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
