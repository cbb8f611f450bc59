package ml

import (
	"fmt"
	"math"
)

// LinearClassifier is a fitted multinomial linear model. Prediction is
// softmax(xW^T + b); the weights are an opaque training artifact.
type LinearClassifier struct {
	ClassLabels  []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"` // classes x features
	Intercepts   []float64   `json:"intercepts"`
}

// Classes returns the ordered class labels the model was trained on
func (m *LinearClassifier) Classes() []string {
	return m.ClassLabels
}

// NumFeatures returns the expected feature vector width
func (m *LinearClassifier) NumFeatures() int {
	if len(m.Coefficients) == 0 {
		return 0
	}
	return len(m.Coefficients[0])
}

// PredictProba returns a probability for every class, aligned to Classes()
func (m *LinearClassifier) PredictProba(x []float64) ([]float64, error) {
	if len(x) != m.NumFeatures() {
		return nil, fmt.Errorf("model expects %d features, got %d", m.NumFeatures(), len(x))
	}

	if len(m.ClassLabels) == 1 {
		return []float64{1}, nil
	}

	scores := make([]float64, len(m.ClassLabels))
	maxScore := math.Inf(-1)
	for i, coef := range m.Coefficients {
		s := m.Intercepts[i]
		for j, w := range coef {
			s += w * x[j]
		}
		scores[i] = s
		if s > maxScore {
			maxScore = s
		}
	}

	// Softmax, shifted by the max score for numerical stability
	var sum float64
	probs := make([]float64, len(scores))
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	return probs, nil
}

// validate checks internal consistency of the fitted model
func (m *LinearClassifier) validate() error {
	if len(m.ClassLabels) == 0 {
		return fmt.Errorf("model has no classes")
	}
	if len(m.Coefficients) != len(m.ClassLabels) {
		return fmt.Errorf("model has %d coefficient rows for %d classes",
			len(m.Coefficients), len(m.ClassLabels))
	}
	if len(m.Intercepts) != len(m.ClassLabels) {
		return fmt.Errorf("model has %d intercepts for %d classes",
			len(m.Intercepts), len(m.ClassLabels))
	}
	width := m.NumFeatures()
	for i, row := range m.Coefficients {
		if len(row) != width {
			return fmt.Errorf("coefficient row %d has width %d, expected %d", i, len(row), width)
		}
	}
	return nil
}
