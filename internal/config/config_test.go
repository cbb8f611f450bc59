package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "MODEL_DIR", "ENRICH_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "./data/trails/trails.db", cfg.DBPath)
	assert.Equal(t, "./data/model", cfg.ModelDir)
	assert.Equal(t, time.Second, cfg.EnrichInterval)
	assert.Equal(t, 10*time.Second, cfg.GeoTimeout)
}

func TestLoad_EnrichInterval(t *testing.T) {
	t.Setenv("ENRICH_INTERVAL", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, Load().EnrichInterval)
}

func TestLoad_EnrichIntervalInvalid(t *testing.T) {
	t.Setenv("ENRICH_INTERVAL", "fast")
	assert.Equal(t, time.Second, Load().EnrichInterval)

	t.Setenv("ENRICH_INTERVAL", "-2s")
	assert.Equal(t, time.Second, Load().EnrichInterval)
}
