package models

// TrekQuery is one recommendation request from the client
type TrekQuery struct {
	State       string   `json:"state" binding:"required"`
	Difficulty  string   `json:"difficulty" binding:"required"`
	LengthKm    *float64 `json:"length" binding:"required"`
	Temperature *float64 `json:"temperature" binding:"required"`
	Windspeed   *float64 `json:"windspeed" binding:"required"`
	Tags        []string `json:"tags" binding:"required"`
}

// Recommendation is the populated result of a successful prediction
type Recommendation struct {
	TrailName   string          `json:"trail_name"`
	Difficulty  string          `json:"difficulty"`
	LengthKm    float64         `json:"length_km"`
	BestSeason  string          `json:"best_season"`
	State       string          `json:"state"`
	City        string          `json:"city"`
	Country     string          `json:"country"`
	Tags        string          `json:"tags"`
	Windspeed   float64         `json:"windspeed"`
	Temperature float64         `json:"temperature"`
	Description string          `json:"description"`
	Confidence  float64         `json:"confidence"`
	Warnings    []string        `json:"warnings"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Weather     *CurrentWeather `json:"current_weather,omitempty"`
	Nearby      []NearbyTrail   `json:"nearby_trails,omitempty"`
}

// NearbyTrail is a trail within a given radius of a reference point
type NearbyTrail struct {
	Name       string  `json:"trail_name"`
	State      string  `json:"state"`
	Difficulty string  `json:"difficulty"`
	LengthKm   float64 `json:"length_km"`
	DistanceKm float64 `json:"distance_km"`
}
