package recommender

import (
	"fmt"
	"math"
	"sort"

	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/models"
)

// Tunable ranking constants
const (
	// DefaultTopK bounds how many ranked candidates are considered
	DefaultTopK = 10

	// LengthWarningKm is the input-vs-trail length difference that
	// triggers a warning
	LengthWarningKm = 5.0

	// WindspeedWarningKmh is the input-vs-trail windspeed difference that
	// triggers a warning
	WindspeedWarningKmh = 5.0
)

// Classifier is the probability-ranking capability of the fitted model
type Classifier interface {
	Classes() []string
	PredictProba(x []float64) ([]float64, error)
}

// Ranker turns classifier probabilities into a single trail recommendation
type Ranker struct {
	data  *dataset.Dataset
	model Classifier
	topK  int
}

// NewRanker creates a ranker with the default top-K cutoff
func NewRanker(data *dataset.Dataset, model Classifier) *Ranker {
	return &Ranker{data: data, model: model, topK: DefaultTopK}
}

// WithTopK overrides the candidate cutoff (tests and tuning)
func (r *Ranker) WithTopK(k int) *Ranker {
	r.topK = k
	return r
}

// Recommend ranks the classifier output for the given feature row and
// returns the best-matching trail in the requested state. Returns a
// *NotFoundError when none of the top candidates matches.
func (r *Ranker) Recommend(q *models.TrekQuery, features []float64) (*models.Recommendation, error) {
	probs, err := r.model.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	classes := r.model.Classes()
	if len(probs) != len(classes) {
		return nil, fmt.Errorf("model returned %d probabilities for %d classes", len(probs), len(classes))
	}

	// Descending probability; stable sort keeps classifier class order
	// for ties
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return probs[order[i]] > probs[order[j]]
	})

	if len(order) > r.topK {
		order = order[:r.topK]
	}

	for _, idx := range order {
		trail := r.data.LookupTrail(classes[idx])
		if trail == nil || trail.State != q.State {
			continue
		}
		return r.buildResult(q, trail, probs[idx]), nil
	}

	return nil, &NotFoundError{State: q.State}
}

func (r *Ranker) buildResult(q *models.TrekQuery, trail *models.Trail, proba float64) *models.Recommendation {
	warnings := []string{}
	if math.Abs(*q.LengthKm-trail.LengthKm) > LengthWarningKm {
		warnings = append(warnings, fmt.Sprintf("Length differs significantly (%g km)", trail.LengthKm))
	}
	if math.Abs(*q.Windspeed-trail.Windspeed) > WindspeedWarningKmh {
		warnings = append(warnings, fmt.Sprintf("Windspeed differs significantly (%g km/h)", trail.Windspeed))
	}
	if q.Difficulty != trail.Difficulty {
		warnings = append(warnings, fmt.Sprintf("Difficulty differs (%s)", trail.Difficulty))
	}

	return &models.Recommendation{
		TrailName:   trail.Name,
		Difficulty:  trail.Difficulty,
		LengthKm:    trail.LengthKm,
		BestSeason:  trail.BestSeason,
		State:       trail.State,
		City:        trail.City,
		Country:     trail.Country,
		Tags:        trail.Tags,
		Windspeed:   trail.Windspeed,
		Temperature: trail.Temperature,
		Description: trail.Description,
		Confidence:  math.Round(proba*100*100) / 100,
		Warnings:    warnings,
	}
}
