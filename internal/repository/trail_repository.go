package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/trek-backend-go/internal/models"
)

const trailColumns = `
	id, trail_name, state, city, country, difficulty, length_km,
	best_season, est_time, number_of_reviews, tags, description,
	latitude, longitude, current_temperature, current_windspeed,
	current_winddirection, current_weather_code
`

// TrailRepository handles database operations for trails
type TrailRepository struct {
	db *sql.DB
}

// NewTrailRepository creates a new trail repository
func NewTrailRepository(db *sql.DB) *TrailRepository {
	return &TrailRepository{db: db}
}

func scanTrail(scanner interface{ Scan(...interface{}) error }) (*models.Trail, error) {
	t := &models.Trail{}
	err := scanner.Scan(
		&t.ID,
		&t.Name,
		&t.State,
		&t.City,
		&t.Country,
		&t.Difficulty,
		&t.LengthKm,
		&t.BestSeason,
		&t.EstTime,
		&t.ReviewCount,
		&t.Tags,
		&t.Description,
		&t.Latitude,
		&t.Longitude,
		&t.Temperature,
		&t.Windspeed,
		&t.WindDirection,
		&t.WeatherCode,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListAll retrieves every trail in the dataset
func (r *TrailRepository) ListAll() ([]*models.Trail, error) {
	query := "SELECT " + trailColumns + " FROM trails ORDER BY id"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trails: %w", err)
	}
	defer rows.Close()

	var trails []*models.Trail
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trail: %w", err)
		}
		trails = append(trails, t)
	}

	return trails, rows.Err()
}

// GetByName retrieves the first trail with the given name
func (r *TrailRepository) GetByName(name string) (*models.Trail, error) {
	query := "SELECT " + trailColumns + " FROM trails WHERE trail_name = ? LIMIT 1"

	t, err := scanTrail(r.db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trail not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trail: %w", err)
	}

	return t, nil
}

// Insert inserts a new trail and sets its ID
func (r *TrailRepository) Insert(t *models.Trail) error {
	query := `
		INSERT INTO trails (
			trail_name, state, city, country, difficulty, length_km,
			best_season, est_time, number_of_reviews, tags, description,
			latitude, longitude, current_temperature, current_windspeed,
			current_winddirection, current_weather_code
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		t.Name, t.State, t.City, t.Country, t.Difficulty, t.LengthKm,
		t.BestSeason, t.EstTime, t.ReviewCount, t.Tags, t.Description,
		t.Latitude, t.Longitude, t.Temperature, t.Windspeed,
		t.WindDirection, t.WeatherCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trail: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	t.ID = int(id)
	return nil
}

// ListUnenriched retrieves trails that have not been geocoded yet
func (r *TrailRepository) ListUnenriched() ([]*models.Trail, error) {
	query := "SELECT " + trailColumns + " FROM trails WHERE latitude IS NULL OR longitude IS NULL ORDER BY id"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unenriched trails: %w", err)
	}
	defer rows.Close()

	var trails []*models.Trail
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trail: %w", err)
		}
		trails = append(trails, t)
	}

	return trails, rows.Err()
}

// CountUnenriched counts trails without coordinates
func (r *TrailRepository) CountUnenriched() (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM trails WHERE latitude IS NULL OR longitude IS NULL",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unenriched trails: %w", err)
	}
	return count, nil
}

// UpdateCoordinates stores geocoded coordinates for a trail
func (r *TrailRepository) UpdateCoordinates(id int, lat, lon float64) error {
	_, err := r.db.Exec(
		"UPDATE trails SET latitude = ?, longitude = ? WHERE id = ?",
		lat, lon, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update coordinates: %w", err)
	}
	return nil
}

// UpdateWeather stores a current weather snapshot for a trail
func (r *TrailRepository) UpdateWeather(id int, w *models.CurrentWeather) error {
	query := `
		UPDATE trails
		SET current_temperature = ?, current_windspeed = ?,
			current_winddirection = ?, current_weather_code = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		w.Temperature, w.Windspeed, w.WindDirection, float64(w.WeatherCode), id)
	if err != nil {
		return fmt.Errorf("failed to update weather: %w", err)
	}
	return nil
}
