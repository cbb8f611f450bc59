package models

import "strings"

// Trail represents one trek route from the static trail dataset
type Trail struct {
	ID            int      `json:"id" db:"id"`
	Name          string   `json:"trail_name" db:"trail_name"`
	State         string   `json:"state" db:"state"`
	City          string   `json:"city" db:"city"`
	Country       string   `json:"country" db:"country"`
	Difficulty    string   `json:"difficulty" db:"difficulty"`
	LengthKm      float64  `json:"length_km" db:"length_km"`
	BestSeason    string   `json:"best_season" db:"best_season"`
	EstTime       *float64 `json:"est_time,omitempty" db:"est_time"`
	ReviewCount   *float64 `json:"number_of_reviews,omitempty" db:"number_of_reviews"`
	Tags          string   `json:"tags" db:"tags"`
	Description   string   `json:"description" db:"description"`
	Latitude      *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64 `json:"longitude,omitempty" db:"longitude"`
	Temperature   float64  `json:"current_temperature" db:"current_temperature"`
	Windspeed     float64  `json:"current_windspeed" db:"current_windspeed"`
	WindDirection float64  `json:"current_winddirection" db:"current_winddirection"`
	WeatherCode   *float64 `json:"current_weather_code,omitempty" db:"current_weather_code"`
}

// Location returns the "City, State, Country" composite used for geocoding
func (t *Trail) Location() string {
	return strings.Join([]string{t.City, t.State, t.Country}, ", ")
}

// HasCoordinates returns true if the trail has been geocoded
func (t *Trail) HasCoordinates() bool {
	return t.Latitude != nil && t.Longitude != nil
}
