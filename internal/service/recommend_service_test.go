package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trek-backend-go/internal/database"
	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/ml"
	"github.com/jengzang/trek-backend-go/internal/models"
	"github.com/jengzang/trek-backend-go/internal/recommender"
	"github.com/jengzang/trek-backend-go/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedTrails(t *testing.T, repo *repository.TrailRepository, trails []*models.Trail) {
	t.Helper()
	for _, trail := range trails {
		require.NoError(t, repo.Insert(trail))
	}
}

func f64(v float64) *float64 { return &v }

func testTrails() []*models.Trail {
	vlat, vlon := 30.74, 79.56
	klat, klon := 31.02, 78.17
	return []*models.Trail{
		{
			Name: "Valley of Flowers", State: "Uttarakhand", City: "Joshimath",
			Country: "India", Difficulty: "Moderate", LengthKm: 12.5,
			BestSeason: "March - June, September - November",
			EstTime:    f64(6), ReviewCount: f64(100), Tags: "hiking, views",
			Windspeed: 5.0, Temperature: 15, WeatherCode: f64(2),
			Latitude: &vlat, Longitude: &vlon,
		},
		{
			Name: "Kedarkantha", State: "Uttarakhand", City: "Sankri",
			Country: "India", Difficulty: "Moderate", LengthKm: 20,
			BestSeason: "March - June, September - November",
			EstTime:    f64(12), ReviewCount: f64(60), Tags: "snow",
			Windspeed: 9.0, Temperature: 5, WeatherCode: f64(3),
			Latitude: &klat, Longitude: &klon,
		},
		{
			Name: "Dudhsagar Trail", State: "Goa", City: "Mollem",
			Country: "India", Difficulty: "Easy", LengthKm: 9.1,
			BestSeason: "November - February",
			EstTime:    f64(4), ReviewCount: f64(80), Tags: "waterfall",
			Windspeed: 11.0, Temperature: 28, WeatherCode: f64(1),
		},
	}
}

// Fitted artifacts whose intercepts strongly favor Valley of Flowers
func testArtifacts() *ml.Artifacts {
	columns := []string{
		"Length (in km)", "current_windspeed", "current_temperature",
		"number_of_reviews", "Est_time", "current_weather_code",
		"Difficulty_Easy", "Difficulty_Moderate",
		"Best_Season_March - June, September - November",
		"Best_Season_November - February",
		"State_Goa", "State_Uttarakhand",
		"hiking", "views",
	}

	classes := []string{"Valley of Flowers", "Kedarkantha", "Dudhsagar Trail"}
	coef := make([][]float64, len(classes))
	for i := range coef {
		coef[i] = make([]float64, len(columns))
	}

	return &ml.Artifacts{
		Model: &ml.LinearClassifier{
			ClassLabels:  classes,
			Coefficients: coef,
			Intercepts:   []float64{3, 1, 0},
		},
		Encoder: &ml.OneHotEncoder{
			Features: []ml.EncoderFeature{
				{Name: "Difficulty", Categories: []string{"Easy", "Moderate"}},
				{Name: "Best_Season", Categories: []string{
					"March - June, September - November",
					"November - February",
				}},
				{Name: "State", Categories: []string{"Goa", "Uttarakhand"}},
			},
		},
		TagEncoder: &ml.MultiLabelEncoder{Classes: []string{"hiking", "views"}},
		Columns:    columns,
	}
}

type fakeGeocoder struct {
	coords *models.Coordinates
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, location string) (*models.Coordinates, error) {
	f.calls++
	return f.coords, f.err
}

type fakeWeather struct {
	weather *models.CurrentWeather
	err     error
}

func (f *fakeWeather) CurrentWeather(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	return f.weather, f.err
}

func newTestService(t *testing.T, geocoder Geocoder, weather WeatherSource) *RecommendService {
	t.Helper()

	repo := repository.NewTrailRepository(newTestDB(t))
	seedTrails(t, repo, testTrails())

	data, err := dataset.Load(repo)
	require.NoError(t, err)

	artifacts := testArtifacts()
	assembler := recommender.NewAssembler(data, artifacts)
	ranker := recommender.NewRanker(data, artifacts.Model)

	return NewRecommendService(data, assembler, ranker, geocoder, weather)
}

func uttarakhandQuery() *models.TrekQuery {
	length, temp, wind := 12.0, 18.0, 6.0
	return &models.TrekQuery{
		State:       "Uttarakhand",
		Difficulty:  "Moderate",
		LengthKm:    &length,
		Temperature: &temp,
		Windspeed:   &wind,
		Tags:        []string{"hiking", "views"},
	}
}

func TestRecommendService_EndToEnd(t *testing.T) {
	geocoder := &fakeGeocoder{coords: &models.Coordinates{Latitude: 30.74, Longitude: 79.56}}
	weather := &fakeWeather{weather: &models.CurrentWeather{Temperature: 14, Windspeed: 6, WeatherCode: 2}}
	svc := newTestService(t, geocoder, weather)

	rec, err := svc.Recommend(context.Background(), uttarakhandQuery())
	require.NoError(t, err)

	assert.Equal(t, "Valley of Flowers", rec.TrailName)
	assert.Equal(t, "Uttarakhand", rec.State)
	// Length 12 vs 12.5, windspeed 6 vs 5, difficulty equal: no warnings
	assert.Empty(t, rec.Warnings)
	assert.Greater(t, rec.Confidence, 0.0)
	assert.LessOrEqual(t, rec.Confidence, 100.0)

	require.NotNil(t, rec.Latitude)
	require.NotNil(t, rec.Longitude)
	require.NotNil(t, rec.Weather)
	assert.InDelta(t, 14.0, rec.Weather.Temperature, 1e-9)

	// Nearby trails never include the recommended trail itself and stay
	// within the default radius
	for _, nearby := range rec.Nearby {
		assert.NotEqual(t, rec.TrailName, nearby.Name)
		assert.LessOrEqual(t, nearby.DistanceKm, NearbyRadiusKm)
	}
}

func TestRecommendService_UnknownStateIsValidationError(t *testing.T) {
	svc := newTestService(t, &fakeGeocoder{}, &fakeWeather{})

	q := uttarakhandQuery()
	q.State = "Uttarakand" // misspelled

	_, err := svc.Recommend(context.Background(), q)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestRecommendService_UnknownDifficultyIsValidationError(t *testing.T) {
	svc := newTestService(t, &fakeGeocoder{}, &fakeWeather{})

	q := uttarakhandQuery()
	q.Difficulty = "Impossible"

	_, err := svc.Recommend(context.Background(), q)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestRecommendService_GeocodeFailureDoesNotFailRecommendation(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("network down")}
	svc := newTestService(t, geocoder, &fakeWeather{})

	rec, err := svc.Recommend(context.Background(), uttarakhandQuery())
	require.NoError(t, err)
	assert.Equal(t, "Valley of Flowers", rec.TrailName)
	assert.Nil(t, rec.Latitude)
	assert.Nil(t, rec.Longitude)
	assert.Nil(t, rec.Weather)
}

func TestRecommendService_WeatherFailureKeepsCoordinates(t *testing.T) {
	geocoder := &fakeGeocoder{coords: &models.Coordinates{Latitude: 30.74, Longitude: 79.56}}
	weather := &fakeWeather{err: errors.New("timeout")}
	svc := newTestService(t, geocoder, weather)

	rec, err := svc.Recommend(context.Background(), uttarakhandQuery())
	require.NoError(t, err)
	require.NotNil(t, rec.Latitude)
	assert.Nil(t, rec.Weather)
}

func TestRecommendService_GeocodeNoMatchOmitsCoordinates(t *testing.T) {
	svc := newTestService(t, &fakeGeocoder{}, &fakeWeather{})

	rec, err := svc.Recommend(context.Background(), uttarakhandQuery())
	require.NoError(t, err)
	assert.Nil(t, rec.Latitude)
}

func TestRecommendService_WeatherForLocation(t *testing.T) {
	geocoder := &fakeGeocoder{coords: &models.Coordinates{Latitude: 15.3, Longitude: 74.2}}
	weather := &fakeWeather{weather: &models.CurrentWeather{Temperature: 29}}
	svc := newTestService(t, geocoder, weather)

	coords, got, err := svc.WeatherForLocation(context.Background(), "Mollem, Goa, India")
	require.NoError(t, err)
	require.NotNil(t, coords)
	require.NotNil(t, got)
	assert.InDelta(t, 29.0, got.Temperature, 1e-9)
}

func TestRecommendService_WeatherForLocationNotFound(t *testing.T) {
	svc := newTestService(t, &fakeGeocoder{}, &fakeWeather{})

	coords, weather, err := svc.WeatherForLocation(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, coords)
	assert.Nil(t, weather)
}

func TestRecommendService_NearbyTrails(t *testing.T) {
	svc := newTestService(t, &fakeGeocoder{}, &fakeWeather{})

	// From Valley of Flowers: Kedarkantha is ~135 km away, Dudhsagar has
	// no coordinates at all
	nearby := svc.NearbyTrails(30.74, 79.56, 200, "Valley of Flowers")
	require.Len(t, nearby, 1)
	assert.Equal(t, "Kedarkantha", nearby[0].Name)
	assert.Greater(t, nearby[0].DistanceKm, 0.0)

	assert.Empty(t, svc.NearbyTrails(30.74, 79.56, 10, "Valley of Flowers"))
}
