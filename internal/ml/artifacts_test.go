package ml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func writeTestArtifacts(t *testing.T, dir string) {
	t.Helper()

	writeArtifact(t, dir, encoderFile, &OneHotEncoder{
		Features: []EncoderFeature{
			{Name: "Difficulty", Categories: []string{"Easy", "Moderate"}},
			{Name: "Best_Season", Categories: []string{"All Year"}},
			{Name: "State", Categories: []string{"Goa", "Uttarakhand"}},
		},
	})
	writeArtifact(t, dir, tagEncoderFile, &MultiLabelEncoder{
		Classes: []string{"forest", "hiking"},
	})

	// 6 numeric + 5 one-hot + 2 tag columns
	columns := []string{
		"Length (in km)", "current_windspeed", "current_temperature",
		"number_of_reviews", "Est_time", "current_weather_code",
		"Difficulty_Easy", "Difficulty_Moderate", "Best_Season_All Year",
		"State_Goa", "State_Uttarakhand",
		"forest", "hiking",
	}
	writeArtifact(t, dir, columnsFile, columns)

	coef := make([][]float64, 2)
	for i := range coef {
		coef[i] = make([]float64, len(columns))
	}
	writeArtifact(t, dir, modelFile, &LinearClassifier{
		ClassLabels:  []string{"Trail A", "Trail B"},
		Coefficients: coef,
		Intercepts:   []float64{0, 0},
	})
}

func TestLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)

	a, err := LoadArtifacts(dir)
	require.NoError(t, err)

	assert.Len(t, a.Columns, 13)
	assert.Equal(t, []string{"Trail A", "Trail B"}, a.Model.Classes())
	assert.Equal(t, 13, a.Model.NumFeatures())
	assert.Len(t, a.Encoder.Features, 3)
	assert.Equal(t, []string{"forest", "hiking"}, a.TagEncoder.Classes)
}

func TestLoadArtifacts_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, modelFile)))

	_, err := LoadArtifacts(dir)
	assert.Error(t, err)
}

func TestLoadArtifacts_WidthMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)

	// Model trained on a different column count than columns.json
	writeArtifact(t, dir, modelFile, &LinearClassifier{
		ClassLabels:  []string{"Trail A"},
		Coefficients: [][]float64{{1, 2}},
		Intercepts:   []float64{0},
	})

	_, err := LoadArtifacts(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent model artifacts")
}

func TestLoadArtifacts_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, columnsFile), []byte("{not json"), 0o644))

	_, err := LoadArtifacts(dir)
	assert.Error(t, err)
}
