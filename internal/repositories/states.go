package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskboard/backend/internal/models"
)

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

// List returns all states sorted by name ascending.
func (r *StateRepository) List() ([]models.State, error) {
	var states []models.State
	if err := r.db.Order("name ASC").Find(&states).Error; err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

// GetByID returns the state, or nil when absent.
func (r *StateRepository) GetByID(id int64) (*models.State, error) {
	var state models.State
	err := r.db.First(&state, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find state: %w", err)
	}
	return &state, nil
}

func (r *StateRepository) Create(state *models.State) error {
	if err := r.db.Create(state).Error; err != nil {
		return fmt.Errorf("failed to create state: %w", err)
	}
	return nil
}

func (r *StateRepository) Update(state *models.State) error {
	if err := r.db.Save(state).Error; err != nil {
		return fmt.Errorf("failed to update state: %w", err)
	}
	return nil
}

// Delete removes the state and reports whether a row existed.
func (r *StateRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&models.State{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete state: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// NameExists reports whether a state with the given name exists, compared
// case-insensitively.
func (r *StateRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.State{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check state name: %w", err)
	}
	return count > 0, nil
}

// HasTasks reports whether any task still references the state.
func (r *StateRepository) HasTasks(stateID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("state_id = ?", stateID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check state usage: %w", err)
	}
	return count > 0, nil
}
