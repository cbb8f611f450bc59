package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/trek-backend-go/internal/models"
)

// EnrichmentTaskRepository handles database operations for enrichment tasks
type EnrichmentTaskRepository struct {
	db *sql.DB
}

// NewEnrichmentTaskRepository creates a new enrichment task repository
func NewEnrichmentTaskRepository(db *sql.DB) *EnrichmentTaskRepository {
	return &EnrichmentTaskRepository{db: db}
}

// Create creates a new enrichment task
func (r *EnrichmentTaskRepository) Create(task *models.EnrichmentTask) error {
	query := `
		INSERT INTO enrichment_tasks (
			status, total_trails, processed_trails, failed_trails,
			start_time, end_time, error_message, created_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		task.Status,
		task.TotalTrails,
		task.ProcessedTrails,
		task.FailedTrails,
		task.StartTime,
		task.EndTime,
		task.ErrorMessage,
		task.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create enrichment task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	task.ID = int(id)
	return nil
}

// GetByID retrieves an enrichment task by ID
func (r *EnrichmentTaskRepository) GetByID(id int) (*models.EnrichmentTask, error) {
	query := `
		SELECT id, status, total_trails, processed_trails, failed_trails,
			   start_time, end_time, error_message, created_by,
			   created_at, updated_at
		FROM enrichment_tasks
		WHERE id = ?
	`

	task := &models.EnrichmentTask{}
	err := r.db.QueryRow(query, id).Scan(
		&task.ID,
		&task.Status,
		&task.TotalTrails,
		&task.ProcessedTrails,
		&task.FailedTrails,
		&task.StartTime,
		&task.EndTime,
		&task.ErrorMessage,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("enrichment task not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrichment task: %w", err)
	}

	return task, nil
}

// List retrieves all enrichment tasks with optional status filter
func (r *EnrichmentTaskRepository) List(status string, limit int, offset int) ([]*models.EnrichmentTask, error) {
	query := `
		SELECT id, status, total_trails, processed_trails, failed_trails,
			   start_time, end_time, error_message, created_by,
			   created_at, updated_at
		FROM enrichment_tasks
	`

	args := []interface{}{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrichment tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.EnrichmentTask
	for rows.Next() {
		task := &models.EnrichmentTask{}
		err := rows.Scan(
			&task.ID,
			&task.Status,
			&task.TotalTrails,
			&task.ProcessedTrails,
			&task.FailedTrails,
			&task.StartTime,
			&task.EndTime,
			&task.ErrorMessage,
			&task.CreatedBy,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrichment task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// UpdateProgress updates the progress counters of a task
func (r *EnrichmentTaskRepository) UpdateProgress(id int, processed, failed int) error {
	query := `
		UPDATE enrichment_tasks
		SET processed_trails = ?, failed_trails = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, processed, failed, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update task progress: %w", err)
	}
	return nil
}

// MarkAsRunning marks a task as running
func (r *EnrichmentTaskRepository) MarkAsRunning(id int) error {
	now := time.Now()
	query := `
		UPDATE enrichment_tasks
		SET status = ?, start_time = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, models.TaskStatusRunning, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as running: %w", err)
	}
	return nil
}

// MarkAsCompleted marks a task as completed
func (r *EnrichmentTaskRepository) MarkAsCompleted(id int) error {
	now := time.Now()
	query := `
		UPDATE enrichment_tasks
		SET status = ?, end_time = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, models.TaskStatusCompleted, now, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as completed: %w", err)
	}
	return nil
}

// MarkAsFailed marks a task as failed with an error message
func (r *EnrichmentTaskRepository) MarkAsFailed(id int, message string) error {
	now := time.Now()
	query := `
		UPDATE enrichment_tasks
		SET status = ?, end_time = ?, error_message = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, models.TaskStatusFailed, now, message, now, id)
	if err != nil {
		return fmt.Errorf("failed to mark task as failed: %w", err)
	}
	return nil
}
