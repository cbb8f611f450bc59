// Package dataset holds the in-memory trail dataset and the derived
// statistics the recommendation pipeline needs. The dataset is loaded once
// at startup and is read-only afterwards, so it is safe for concurrent use.
package dataset

import (
	"fmt"
	"math"
	"sort"

	"github.com/jengzang/trek-backend-go/internal/models"
	"github.com/jengzang/trek-backend-go/internal/repository"
	"github.com/jengzang/trek-backend-go/internal/stats"
)

// TagOptions is the fixed tag vocabulary offered to clients
var TagOptions = []string{
	"hiking", "forest", "views", "waterfall", "wildlife",
	"snow", "sunset", "lake", "nature", "photography",
}

// Range is a rounded numeric min/max pair for input hints
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Dataset is the loaded trail dataset plus cached derived statistics
type Dataset struct {
	trails       []*models.Trail
	byName       map[string]*models.Trail
	states       []string
	difficulties []string
	lengthRange  Range
	windRange    Range

	meanReviews     float64
	meanEstTime     float64
	meanWeatherCode float64
}

// Load reads all trails through the repository and computes the derived
// statistics. An empty or unreadable dataset is a startup-fatal error.
func Load(repo *repository.TrailRepository) (*Dataset, error) {
	trails, err := repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load trail dataset: %w", err)
	}
	if len(trails) == 0 {
		return nil, fmt.Errorf("trail dataset is empty")
	}

	d := &Dataset{
		trails: trails,
		byName: make(map[string]*models.Trail, len(trails)),
	}

	stateSet := make(map[string]bool)
	difficultySet := make(map[string]bool)

	var lengths, winds, reviews, estTimes, weatherCodes []float64

	for _, t := range trails {
		// First occurrence wins for duplicate names
		if _, ok := d.byName[t.Name]; !ok {
			d.byName[t.Name] = t
		}

		if t.State != "" {
			stateSet[t.State] = true
		}
		if t.Difficulty != "" {
			difficultySet[t.Difficulty] = true
		}

		lengths = append(lengths, t.LengthKm)
		winds = append(winds, t.Windspeed)

		// Means are taken over present values only; missing cells must
		// not drag the filler features toward zero
		if t.ReviewCount != nil {
			reviews = append(reviews, *t.ReviewCount)
		}
		if t.EstTime != nil {
			estTimes = append(estTimes, *t.EstTime)
		}
		if t.WeatherCode != nil {
			weatherCodes = append(weatherCodes, *t.WeatherCode)
		}
	}

	for s := range stateSet {
		d.states = append(d.states, s)
	}
	sort.Strings(d.states)

	for diff := range difficultySet {
		d.difficulties = append(d.difficulties, diff)
	}
	sort.Strings(d.difficulties)

	d.lengthRange = roundedRange(lengths)
	d.windRange = roundedRange(winds)

	d.meanReviews = stats.Mean(reviews)
	d.meanEstTime = stats.Mean(estTimes)
	d.meanWeatherCode = stats.Mean(weatherCodes)

	return d, nil
}

func roundedRange(values []float64) Range {
	min, max := stats.MinMax(values)
	return Range{
		Min: math.Round(min*10) / 10,
		Max: math.Round(max*10) / 10,
	}
}

// States returns the sorted distinct states in the dataset
func (d *Dataset) States() []string {
	return d.states
}

// HasState reports whether the state appears in the dataset
func (d *Dataset) HasState(state string) bool {
	i := sort.SearchStrings(d.states, state)
	return i < len(d.states) && d.states[i] == state
}

// Difficulties returns the sorted distinct difficulties in the dataset
func (d *Dataset) Difficulties() []string {
	return d.difficulties
}

// HasDifficulty reports whether the difficulty appears in the dataset
func (d *Dataset) HasDifficulty(difficulty string) bool {
	i := sort.SearchStrings(d.difficulties, difficulty)
	return i < len(d.difficulties) && d.difficulties[i] == difficulty
}

// LengthRange returns the dataset min/max trail length, rounded to 1 decimal
func (d *Dataset) LengthRange() Range {
	return d.lengthRange
}

// WindspeedRange returns the dataset min/max windspeed, rounded to 1 decimal
func (d *Dataset) WindspeedRange() Range {
	return d.windRange
}

// MeanReviews returns the dataset-wide mean review count
func (d *Dataset) MeanReviews() float64 {
	return d.meanReviews
}

// MeanEstTime returns the dataset-wide mean estimated time
func (d *Dataset) MeanEstTime() float64 {
	return d.meanEstTime
}

// MeanWeatherCode returns the dataset-wide mean weather code
func (d *Dataset) MeanWeatherCode() float64 {
	return d.meanWeatherCode
}

// LookupTrail returns the first trail with the given name, or nil
func (d *Dataset) LookupTrail(name string) *models.Trail {
	return d.byName[name]
}

// Trails returns all trails in dataset order
func (d *Dataset) Trails() []*models.Trail {
	return d.trails
}

// Combos returns the distinct state/difficulty/location combinations,
// used by the form front-end to narrow its dropdowns.
func (d *Dataset) Combos() []map[string]string {
	seen := make(map[string]bool)
	var combos []map[string]string

	for _, t := range d.trails {
		if t.State == "" || t.Difficulty == "" {
			continue
		}
		loc := t.Location()
		key := t.State + "|" + t.Difficulty + "|" + loc
		if seen[key] {
			continue
		}
		seen[key] = true
		combos = append(combos, map[string]string{
			"state":      t.State,
			"difficulty": t.Difficulty,
			"location":   loc,
		})
	}

	return combos
}
