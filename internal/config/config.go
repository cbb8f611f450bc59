package config

import (
	"os"
	"time"
)

// Config 应用配置
type Config struct {
	Port           string
	DBPath         string
	ModelDir       string
	JWTSecret      string
	GeoUserAgent   string
	GeoTimeout     time.Duration
	NominatimURL   string
	OpenMeteoURL   string
	EnrichInterval time.Duration
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/trails/trails.db"
	}

	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = "./data/model"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	userAgent := os.Getenv("GEO_USER_AGENT")
	if userAgent == "" {
		userAgent = "TrekWeatherApp/1.0"
	}

	nominatimURL := os.Getenv("NOMINATIM_URL")
	if nominatimURL == "" {
		nominatimURL = "https://nominatim.openstreetmap.org"
	}

	openMeteoURL := os.Getenv("OPEN_METEO_URL")
	if openMeteoURL == "" {
		openMeteoURL = "https://api.open-meteo.com"
	}

	// Nominatim 限制每秒一次请求
	enrichInterval := time.Second
	if raw := os.Getenv("ENRICH_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			enrichInterval = d
		}
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		ModelDir:       modelDir,
		JWTSecret:      jwtSecret,
		GeoUserAgent:   userAgent,
		GeoTimeout:     10 * time.Second,
		NominatimURL:   nominatimURL,
		OpenMeteoURL:   openMeteoURL,
		EnrichInterval: enrichInterval,
	}
}
