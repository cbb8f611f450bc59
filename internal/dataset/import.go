package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jengzang/trek-backend-go/internal/models"
	"github.com/jengzang/trek-backend-go/internal/repository"
)

// requiredColumns are the dataset columns an import file must carry
var requiredColumns = []string{
	"Trail_name", "State", "City", "Country", "Difficulty",
	"Length (in km)", "Best_Season", "Est_time", "number_of_reviews",
	"Tags", "description",
}

// ImportCSV loads the tabular trail dataset file into the trails table and
// returns the number of imported rows. A missing file or missing expected
// column is a load error.
func ImportCSV(path string, repo *repository.TrailRepository) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("dataset file is missing column %q", col)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	numeric := func(record []string, name string) float64 {
		v, err := strconv.ParseFloat(field(record, name), 64)
		if err != nil {
			return 0
		}
		return v
	}
	// optional keeps blank or unparseable cells as NULL so they stay out
	// of the dataset means
	optional := func(record []string, name string) *float64 {
		v, err := strconv.ParseFloat(field(record, name), 64)
		if err != nil {
			return nil
		}
		return &v
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read dataset row: %w", err)
		}

		trail := &models.Trail{
			Name:          field(record, "Trail_name"),
			State:         field(record, "State"),
			City:          field(record, "City"),
			Country:       field(record, "Country"),
			Difficulty:    field(record, "Difficulty"),
			LengthKm:      numeric(record, "Length (in km)"),
			BestSeason:    field(record, "Best_Season"),
			EstTime:       optional(record, "Est_time"),
			ReviewCount:   optional(record, "number_of_reviews"),
			Tags:          field(record, "Tags"),
			Description:   field(record, "description"),
			Latitude:      optional(record, "latitude"),
			Longitude:     optional(record, "longitude"),
			Temperature:   numeric(record, "current_temperature"),
			Windspeed:     numeric(record, "current_windspeed"),
			WindDirection: numeric(record, "current_winddirection"),
			WeatherCode:   optional(record, "current_weather_code"),
		}

		if err := repo.Insert(trail); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
