package ml

import "fmt"

// EncodingError indicates a categorical value outside the encoder's
// training vocabulary. Request-scoped; never fatal.
type EncodingError struct {
	Feature string
	Value   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("value %q is outside the trained vocabulary for %s", e.Value, e.Feature)
}

// EncoderFeature is one input field of the one-hot encoder with its
// ordered training-time category vocabulary
type EncoderFeature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// OneHotEncoder is a fitted categorical encoder. It is transform-only at
// request time; the vocabulary is fixed at training time.
type OneHotEncoder struct {
	Features []EncoderFeature `json:"features"`
}

// FeatureNames returns the output column names in encoding order,
// formatted as "<Field>_<category>"
func (e *OneHotEncoder) FeatureNames() []string {
	var names []string
	for _, f := range e.Features {
		for _, c := range f.Categories {
			names = append(names, f.Name+"_"+c)
		}
	}
	return names
}

// Transform one-hot encodes one row of categorical values. The values must
// be given in feature order. An unknown category is an EncodingError.
func (e *OneHotEncoder) Transform(values []string) ([]float64, error) {
	if len(values) != len(e.Features) {
		return nil, fmt.Errorf("encoder expects %d values, got %d", len(e.Features), len(values))
	}

	var row []float64
	for i, f := range e.Features {
		hit := -1
		for j, c := range f.Categories {
			if c == values[i] {
				hit = j
				break
			}
		}
		if hit < 0 {
			return nil, &EncodingError{Feature: f.Name, Value: values[i]}
		}

		block := make([]float64, len(f.Categories))
		block[hit] = 1
		row = append(row, block...)
	}

	return row, nil
}

// MultiLabelEncoder is a fitted multi-label tag encoder. Unknown tags are
// ignored, matching the behavior of the training-time binarizer.
type MultiLabelEncoder struct {
	Classes []string `json:"classes"`
}

// Transform multi-hot encodes a tag list against the trained class list
func (e *MultiLabelEncoder) Transform(tags []string) []float64 {
	row := make([]float64, len(e.Classes))
	for _, tag := range tags {
		for i, c := range e.Classes {
			if c == tag {
				row[i] = 1
				break
			}
		}
	}
	return row
}
