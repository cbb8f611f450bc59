// Package recommender implements the prediction pipeline: assembling the
// model feature row from a user query and ranking the classifier output
// into a single trail recommendation.
package recommender

import (
	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/ml"
	"github.com/jengzang/trek-backend-go/internal/models"
)

// defaultTags is substituted for an empty tag list
var defaultTags = []string{"hiking"}

// Assembler builds model feature rows from user queries. Dataset-wide means
// fill the numeric features the user cannot supply.
type Assembler struct {
	data       *dataset.Dataset
	encoder    *ml.OneHotEncoder
	tagEncoder *ml.MultiLabelEncoder
	columns    []string
}

// NewAssembler creates an assembler bound to the loaded dataset and the
// fitted encoding artifacts
func NewAssembler(data *dataset.Dataset, artifacts *ml.Artifacts) *Assembler {
	return &Assembler{
		data:       data,
		encoder:    artifacts.Encoder,
		tagEncoder: artifacts.TagEncoder,
		columns:    artifacts.Columns,
	}
}

// Assemble builds the feature row for one query. The returned row has
// exactly the canonical trained columns, in canonical order: canonical
// columns missing from the assembled values are zero-filled, anything else
// is dropped. Returns an *ml.EncodingError for out-of-vocabulary
// categorical input.
func (a *Assembler) Assemble(q *models.TrekQuery) ([]float64, error) {
	values := make(map[string]float64, len(a.columns))

	values["Length (in km)"] = *q.LengthKm
	values["current_windspeed"] = *q.Windspeed
	values["current_temperature"] = *q.Temperature
	values["number_of_reviews"] = a.data.MeanReviews()
	values["Est_time"] = a.data.MeanEstTime()
	values["current_weather_code"] = a.data.MeanWeatherCode()

	// Categorical sub-row order is fixed: Difficulty, Best_Season, State
	season := dataset.SeasonFor(q.State)
	encoded, err := a.encoder.Transform([]string{q.Difficulty, season, q.State})
	if err != nil {
		return nil, err
	}
	for i, name := range a.encoder.FeatureNames() {
		values[name] = encoded[i]
	}

	tags := q.Tags
	if len(tags) == 0 {
		tags = defaultTags
	}
	tagRow := a.tagEncoder.Transform(tags)
	for i, class := range a.tagEncoder.Classes {
		values[class] = tagRow[i]
	}

	row := make([]float64, len(a.columns))
	for i, col := range a.columns {
		row[i] = values[col] // absent canonical columns stay 0
	}

	return row, nil
}

// Columns returns the canonical trained column list
func (a *Assembler) Columns() []string {
	return a.columns
}
