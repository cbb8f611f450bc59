package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/time/rate"

	"github.com/jengzang/trek-backend-go/internal/models"
	"github.com/jengzang/trek-backend-go/internal/repository"
)

// TaskStore persists enrichment tasks and their progress
type TaskStore interface {
	Create(task *models.EnrichmentTask) error
	GetByID(id int) (*models.EnrichmentTask, error)
	List(status string, limit, offset int) ([]*models.EnrichmentTask, error)
	UpdateProgress(id int, processed, failed int) error
	MarkAsRunning(id int) error
	MarkAsCompleted(id int) error
	MarkAsFailed(id int, message string) error
}

// EnrichmentService runs geocoding and weather backfill over the trails
// table, tracked as background tasks
type EnrichmentService struct {
	trails   *repository.TrailRepository
	tasks    TaskStore
	geocoder Geocoder
	weather  WeatherSource
	limiter  *rate.Limiter

	mu      sync.Mutex
	cancels map[int]context.CancelFunc
}

// NewEnrichmentService creates an enrichment service. requestsPerSec bounds
// the outbound geocoding rate (Nominatim allows one request per second).
func NewEnrichmentService(
	trails *repository.TrailRepository,
	tasks TaskStore,
	geocoder Geocoder,
	weather WeatherSource,
	requestsPerSec float64,
) *EnrichmentService {
	return &EnrichmentService{
		trails:   trails,
		tasks:    tasks,
		geocoder: geocoder,
		weather:  weather,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		cancels:  make(map[int]context.CancelFunc),
	}
}

// CreateTask creates a backfill task and starts it in the background
func (s *EnrichmentService) CreateTask(createdBy string) (*models.EnrichmentTask, error) {
	count, err := s.trails.CountUnenriched()
	if err != nil {
		return nil, fmt.Errorf("failed to count unenriched trails: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no unenriched trails found")
	}

	task := &models.EnrichmentTask{
		Status:      models.TaskStatusPending,
		TotalTrails: count,
		CreatedBy:   createdBy,
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancels[task.ID] = cancel
	s.mu.Unlock()

	go s.run(ctx, task.ID)

	return task, nil
}

func (s *EnrichmentService) run(ctx context.Context, taskID int) {
	defer func() {
		s.mu.Lock()
		delete(s.cancels, taskID)
		s.mu.Unlock()
	}()

	log.Printf("Starting enrichment task %d", taskID)

	if err := s.tasks.MarkAsRunning(taskID); err != nil {
		log.Printf("Failed to mark task %d as running: %v", taskID, err)
		return
	}

	processed, failed, err := s.Backfill(ctx, func(processed, failed int) {
		if err := s.tasks.UpdateProgress(taskID, processed, failed); err != nil {
			log.Printf("Failed to update progress for task %d: %v", taskID, err)
		}
	})

	if err != nil {
		log.Printf("Enrichment task %d failed: %v", taskID, err)
		if markErr := s.tasks.MarkAsFailed(taskID, err.Error()); markErr != nil {
			log.Printf("Failed to mark task %d as failed: %v", taskID, markErr)
		}
		return
	}

	log.Printf("Enrichment task %d completed: %d processed, %d failed", taskID, processed, failed)
	if err := s.tasks.MarkAsCompleted(taskID); err != nil {
		log.Printf("Failed to mark task %d as completed: %v", taskID, err)
	}
}

// Backfill geocodes every unenriched trail and stores its coordinates and
// current weather. Used by background tasks and the offline enrich tool.
// A trail that cannot be geocoded counts as failed and is skipped.
func (s *EnrichmentService) Backfill(ctx context.Context, onProgress func(processed, failed int)) (int, int, error) {
	trails, err := s.trails.ListUnenriched()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list unenriched trails: %w", err)
	}

	var processed, failed int
	for _, t := range trails {
		if err := s.limiter.Wait(ctx); err != nil {
			return processed, failed, err
		}

		coords, err := s.geocoder.Geocode(ctx, t.Location())
		if err != nil || coords == nil {
			if err != nil {
				log.Printf("Geocoding failed for %q: %v", t.Location(), err)
			}
			failed++
			processed++
			if onProgress != nil {
				onProgress(processed, failed)
			}
			continue
		}

		if err := s.trails.UpdateCoordinates(t.ID, coords.Latitude, coords.Longitude); err != nil {
			return processed, failed, err
		}

		weather, err := s.weather.CurrentWeather(ctx, coords.Latitude, coords.Longitude)
		if err != nil {
			log.Printf("Weather fetch failed for %q: %v", t.Location(), err)
		} else if weather != nil {
			if err := s.trails.UpdateWeather(t.ID, weather); err != nil {
				return processed, failed, err
			}
		}

		processed++
		if onProgress != nil {
			onProgress(processed, failed)
		}
	}

	return processed, failed, nil
}

// GetTask retrieves a task by ID
func (s *EnrichmentService) GetTask(id int) (*models.EnrichmentTask, error) {
	return s.tasks.GetByID(id)
}

// ListTasks retrieves tasks with optional status filter
func (s *EnrichmentService) ListTasks(status string, limit, offset int) ([]*models.EnrichmentTask, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.tasks.List(status, limit, offset)
}

// CancelTask cancels a running task
func (s *EnrichmentService) CancelTask(id int) error {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return err
	}
	if task.IsTerminal() {
		return fmt.Errorf("task is already in terminal state: %s", task.Status)
	}

	s.mu.Lock()
	cancel, ok := s.cancels[id]
	s.mu.Unlock()
	if ok {
		cancel()
	}

	return s.tasks.MarkAsFailed(id, "Task cancelled by user")
}
