package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearClassifier_PredictProba(t *testing.T) {
	model := &LinearClassifier{
		ClassLabels: []string{"Trail A", "Trail B", "Trail C"},
		Coefficients: [][]float64{
			{1, 0},
			{0, 1},
			{-1, -1},
		},
		Intercepts: []float64{0, 0, 0},
	}

	probs, err := model.PredictProba([]float64{2, 0})
	require.NoError(t, err)
	require.Len(t, probs, 3)

	var sum float64
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// The first class has the highest score for this input
	assert.Greater(t, probs[0], probs[1])
	assert.Greater(t, probs[1], probs[2])
}

func TestLinearClassifier_PredictProbaWidthMismatch(t *testing.T) {
	model := &LinearClassifier{
		ClassLabels:  []string{"Trail A"},
		Coefficients: [][]float64{{1, 2, 3}},
		Intercepts:   []float64{0},
	}

	_, err := model.PredictProba([]float64{1})
	assert.Error(t, err)
}

func TestLinearClassifier_SingleClass(t *testing.T) {
	model := &LinearClassifier{
		ClassLabels:  []string{"Only Trail"},
		Coefficients: [][]float64{{0, 0}},
		Intercepts:   []float64{0},
	}

	probs, err := model.PredictProba([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, probs)
}

func TestLinearClassifier_PredictProbaIsDeterministic(t *testing.T) {
	model := &LinearClassifier{
		ClassLabels: []string{"A", "B"},
		Coefficients: [][]float64{
			{0.5, -0.25, 1.5},
			{-0.5, 0.25, -1.5},
		},
		Intercepts: []float64{0.1, -0.1},
	}

	x := []float64{1, 2, 3}
	first, err := model.PredictProba(x)
	require.NoError(t, err)
	second, err := model.PredictProba(x)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLinearClassifier_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   *LinearClassifier
		wantErr bool
	}{
		{
			name: "valid",
			model: &LinearClassifier{
				ClassLabels:  []string{"A", "B"},
				Coefficients: [][]float64{{1, 2}, {3, 4}},
				Intercepts:   []float64{0, 0},
			},
		},
		{
			name:    "no classes",
			model:   &LinearClassifier{},
			wantErr: true,
		},
		{
			name: "coefficient rows mismatch",
			model: &LinearClassifier{
				ClassLabels:  []string{"A", "B"},
				Coefficients: [][]float64{{1, 2}},
				Intercepts:   []float64{0, 0},
			},
			wantErr: true,
		},
		{
			name: "ragged coefficients",
			model: &LinearClassifier{
				ClassLabels:  []string{"A", "B"},
				Coefficients: [][]float64{{1, 2}, {3}},
				Intercepts:   []float64{0, 0},
			},
			wantErr: true,
		},
		{
			name: "intercepts mismatch",
			model: &LinearClassifier{
				ClassLabels:  []string{"A", "B"},
				Coefficients: [][]float64{{1, 2}, {3, 4}},
				Intercepts:   []float64{0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
