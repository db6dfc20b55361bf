package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/backend/internal/models"
)

// TaskFilter narrows List and Count to tasks in a given state and/or due on a
// given calendar day. Nil fields are ignored.
type TaskFilter struct {
	StateID *int64
	DueDate *time.Time
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) applyFilter(query *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.StateID != nil {
		query = query.Where("state_id = ?", *filter.StateID)
	}
	if filter.DueDate != nil {
		// Date-only equality: match the whole calendar day, time-of-day ignored.
		d := *filter.DueDate
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		query = query.Where("due_date >= ? AND due_date < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}
	return query
}

// List returns one page of tasks, newest-created first, with their states
// preloaded.
func (r *TaskRepository) List(page, pageSize int, filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task
	query := r.applyFilter(r.db.Model(&models.Task{}), filter)
	err := query.
		Preload("State").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Count returns the total number of tasks matching the filter, regardless of
// pagination.
func (r *TaskRepository) Count(filter TaskFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.Model(&models.Task{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// GetByID returns the task with its state preloaded, or nil when absent.
func (r *TaskRepository) GetByID(id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("State").First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) Create(task *models.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(task *models.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes the task and reports whether a row existed.
func (r *TaskRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete task: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
