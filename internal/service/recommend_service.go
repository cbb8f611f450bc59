package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/models"
	"github.com/jengzang/trek-backend-go/internal/recommender"
	"github.com/jengzang/trek-backend-go/internal/spatial"
)

// Nearby-trail defaults
const (
	NearbyRadiusKm = 50.0
	NearbyLimit    = 5
)

// ValidationError indicates a request that fails boundary validation
// before the pipeline runs
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Geocoder resolves free-text locations to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*models.Coordinates, error)
}

// WeatherSource fetches current weather for a coordinate pair
type WeatherSource interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error)
}

// RecommendService runs the recommendation pipeline: validate, assemble
// features, rank, then best-effort enrichment
type RecommendService struct {
	data      *dataset.Dataset
	assembler *recommender.Assembler
	ranker    *recommender.Ranker
	geocoder  Geocoder
	weather   WeatherSource
}

// NewRecommendService creates a recommendation service
func NewRecommendService(
	data *dataset.Dataset,
	assembler *recommender.Assembler,
	ranker *recommender.Ranker,
	geocoder Geocoder,
	weather WeatherSource,
) *RecommendService {
	return &RecommendService{
		data:      data,
		assembler: assembler,
		ranker:    ranker,
		geocoder:  geocoder,
		weather:   weather,
	}
}

// Recommend runs the full pipeline for one query. Enrichment failures are
// logged and never fail the recommendation.
func (s *RecommendService) Recommend(ctx context.Context, q *models.TrekQuery) (*models.Recommendation, error) {
	if !s.data.HasState(q.State) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown state: %s", q.State)}
	}
	if !s.data.HasDifficulty(q.Difficulty) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown difficulty: %s", q.Difficulty)}
	}

	features, err := s.assembler.Assemble(q)
	if err != nil {
		return nil, err
	}

	rec, err := s.ranker.Recommend(q, features)
	if err != nil {
		return nil, err
	}

	s.enrich(ctx, rec)
	return rec, nil
}

// enrich adds coordinates, live weather, and nearby trails to a
// recommendation, best-effort
func (s *RecommendService) enrich(ctx context.Context, rec *models.Recommendation) {
	if rec.City == "" {
		return
	}

	location := fmt.Sprintf("%s, %s, %s", rec.City, rec.State, rec.Country)
	coords, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		log.Printf("Geocoding failed for %q: %v", location, err)
		return
	}
	if coords == nil {
		return
	}

	rec.Latitude = &coords.Latitude
	rec.Longitude = &coords.Longitude
	rec.Nearby = s.NearbyTrails(coords.Latitude, coords.Longitude, NearbyRadiusKm, rec.TrailName)

	weather, err := s.weather.CurrentWeather(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		log.Printf("Weather fetch failed for (%f, %f): %v", coords.Latitude, coords.Longitude, err)
		return
	}
	rec.Weather = weather
}

// WeatherForLocation geocodes a free-text location and fetches its current
// weather. Used by the weather lookup endpoint.
func (s *RecommendService) WeatherForLocation(ctx context.Context, location string) (*models.Coordinates, *models.CurrentWeather, error) {
	coords, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, nil, fmt.Errorf("geocoding failed: %w", err)
	}
	if coords == nil {
		return nil, nil, nil
	}

	weather, err := s.weather.CurrentWeather(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return coords, nil, fmt.Errorf("weather fetch failed: %w", err)
	}

	return coords, weather, nil
}

// NearbyTrails lists geocoded trails within radiusKm of a point, closest
// first, excluding the named trail
func (s *RecommendService) NearbyTrails(lat, lon, radiusKm float64, exclude string) []models.NearbyTrail {
	var nearby []models.NearbyTrail

	for _, t := range s.data.Trails() {
		if !t.HasCoordinates() || t.Name == exclude {
			continue
		}
		d := spatial.DistanceKm(lat, lon, *t.Latitude, *t.Longitude)
		if d > radiusKm {
			continue
		}
		nearby = append(nearby, models.NearbyTrail{
			Name:       t.Name,
			State:      t.State,
			Difficulty: t.Difficulty,
			LengthKm:   t.LengthKm,
			DistanceKm: d,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if len(nearby) > NearbyLimit {
		nearby = nearby[:NearbyLimit]
	}

	return nearby
}
