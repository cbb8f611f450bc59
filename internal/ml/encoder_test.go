package ml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEncoder() *OneHotEncoder {
	return &OneHotEncoder{
		Features: []EncoderFeature{
			{Name: "Difficulty", Categories: []string{"Easy", "Hard", "Moderate"}},
			{Name: "State", Categories: []string{"Goa", "Uttarakhand"}},
		},
	}
}

func TestOneHotEncoder_FeatureNames(t *testing.T) {
	names := testEncoder().FeatureNames()
	assert.Equal(t, []string{
		"Difficulty_Easy", "Difficulty_Hard", "Difficulty_Moderate",
		"State_Goa", "State_Uttarakhand",
	}, names)
}

func TestOneHotEncoder_Transform(t *testing.T) {
	enc := testEncoder()

	row, err := enc.Transform([]string{"Moderate", "Uttarakhand"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 0, 1}, row)
}

func TestOneHotEncoder_TransformOutOfVocabulary(t *testing.T) {
	enc := testEncoder()

	_, err := enc.Transform([]string{"Impossible", "Uttarakhand"})
	require.Error(t, err)

	var encodingErr *EncodingError
	require.True(t, errors.As(err, &encodingErr))
	assert.Equal(t, "Difficulty", encodingErr.Feature)
	assert.Equal(t, "Impossible", encodingErr.Value)
}

func TestOneHotEncoder_TransformWrongArity(t *testing.T) {
	_, err := testEncoder().Transform([]string{"Easy"})
	assert.Error(t, err)
}

func TestMultiLabelEncoder_Transform(t *testing.T) {
	enc := &MultiLabelEncoder{Classes: []string{"forest", "hiking", "views"}}

	tests := []struct {
		name     string
		tags     []string
		expected []float64
	}{
		{"known tags", []string{"hiking", "views"}, []float64{0, 1, 1}},
		{"unknown tags ignored", []string{"hiking", "caving"}, []float64{0, 1, 0}},
		{"empty list", nil, []float64{0, 0, 0}},
		{"duplicates collapse", []string{"forest", "forest"}, []float64{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, enc.Transform(tt.tags))
		})
	}
}
