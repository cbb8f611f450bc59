package models

import "time"

// EnrichmentTask represents a weather/geocoding backfill batch task
type EnrichmentTask struct {
	ID              int        `json:"id" db:"id"`
	Status          string     `json:"status" db:"status"` // pending, running, completed, failed
	TotalTrails     int        `json:"total_trails" db:"total_trails"`
	ProcessedTrails int        `json:"processed_trails" db:"processed_trails"`
	FailedTrails    int        `json:"failed_trails" db:"failed_trails"`
	StartTime       *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty" db:"end_time"`
	ErrorMessage    *string    `json:"error_message,omitempty" db:"error_message"`
	CreatedBy       string     `json:"created_by" db:"created_by"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// TaskStatus constants
const (
	TaskStatusPending   = "pending"
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

// IsTerminal returns true if the task is in a terminal state
func (t *EnrichmentTask) IsTerminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed
}

// Progress returns the completion percentage (0-100)
func (t *EnrichmentTask) Progress() float64 {
	if t.TotalTrails == 0 {
		return 0
	}
	return float64(t.ProcessedTrails) / float64(t.TotalTrails) * 100
}
