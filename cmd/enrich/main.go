// Command enrich backfills trail coordinates and current weather through
// the public geocoding and weather APIs. It can optionally import a CSV
// trail dataset into the database first.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/jengzang/trek-backend-go/internal/config"
	"github.com/jengzang/trek-backend-go/internal/database"
	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/geo"
	"github.com/jengzang/trek-backend-go/internal/repository"
	"github.com/jengzang/trek-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "path to the trails database")
	csvPath := flag.String("import", "", "optional CSV dataset to import before enriching")
	flag.Parse()

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	trailRepo := repository.NewTrailRepository(db)

	if *csvPath != "" {
		count, err := dataset.ImportCSV(*csvPath, trailRepo)
		if err != nil {
			log.Fatal("Failed to import dataset:", err)
		}
		log.Printf("Imported %d trails from %s", count, *csvPath)
	}

	geocoder := geo.NewGeocodeClient(cfg.NominatimURL, cfg.GeoUserAgent, cfg.GeoTimeout)
	weather := geo.NewWeatherClient(cfg.OpenMeteoURL, cfg.GeoTimeout)
	taskRepo := repository.NewEnrichmentTaskRepository(db)

	enricher := service.NewEnrichmentService(
		trailRepo, taskRepo, geocoder, weather, 1/cfg.EnrichInterval.Seconds())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processed, failed, err := enricher.Backfill(ctx, func(processed, failed int) {
		log.Printf("Progress: %d processed, %d failed", processed, failed)
	})
	if err != nil {
		log.Fatal("Backfill failed:", err)
	}

	log.Printf("Done: %d trails processed, %d failed", processed, failed)
}
