// Package ml loads and evaluates the fitted model artifacts produced by the
// offline training pipeline. The artifacts are opaque: they are loaded once
// at startup and used transform-only afterwards.
package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the model directory
const (
	modelFile      = "model.json"
	encoderFile    = "ohe.json"
	tagEncoderFile = "mlb.json"
	columnsFile    = "columns.json"
)

// Artifacts bundles the fitted model, encoders, and the canonical feature
// column list captured at training time
type Artifacts struct {
	Model      *LinearClassifier
	Encoder    *OneHotEncoder
	TagEncoder *MultiLabelEncoder
	Columns    []string
}

// LoadArtifacts loads all fitted artifacts from a model directory. Any
// missing or inconsistent artifact is a startup-fatal error.
func LoadArtifacts(dir string) (*Artifacts, error) {
	a := &Artifacts{
		Model:      &LinearClassifier{},
		Encoder:    &OneHotEncoder{},
		TagEncoder: &MultiLabelEncoder{},
	}

	if err := loadJSON(filepath.Join(dir, modelFile), a.Model); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, encoderFile), a.Encoder); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, tagEncoderFile), a.TagEncoder); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, columnsFile), &a.Columns); err != nil {
		return nil, err
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("inconsistent model artifacts in %s: %w", dir, err)
	}

	return a, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	return nil
}

func (a *Artifacts) validate() error {
	if err := a.Model.validate(); err != nil {
		return err
	}
	if len(a.Columns) == 0 {
		return fmt.Errorf("canonical column list is empty")
	}
	if a.Model.NumFeatures() != len(a.Columns) {
		return fmt.Errorf("model expects %d features but column list has %d",
			a.Model.NumFeatures(), len(a.Columns))
	}
	if len(a.Encoder.Features) == 0 {
		return fmt.Errorf("categorical encoder has no features")
	}
	if len(a.TagEncoder.Classes) == 0 {
		return fmt.Errorf("tag encoder has no classes")
	}
	return nil
}
