package services

import (
	"strings"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

type StateService interface {
	ListStates() ([]models.State, error)
	GetState(id int64) (*models.State, error)
	CreateState(name string) (*models.State, error)
	UpdateState(id int64, name string) (*models.State, error)
	DeleteState(id int64) (bool, error)
}

type StateServiceImpl struct {
	states *repositories.StateRepository
}

func NewStateService(states *repositories.StateRepository) *StateServiceImpl {
	return &StateServiceImpl{states: states}
}

func (s *StateServiceImpl) ListStates() ([]models.State, error) {
	return s.states.List()
}

func (s *StateServiceImpl) GetState(id int64) (*models.State, error) {
	state, err := s.states.GetByID(id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}
	return state, nil
}

func (s *StateServiceImpl) CreateState(name string) (*models.State, error) {
	taken, err := s.states.NameExists(name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrStateNameTaken
	}

	state := &models.State{Name: name}
	if err := s.states.Create(state); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrStateNameTaken
		}
		return nil, err
	}
	return state, nil
}

func (s *StateServiceImpl) UpdateState(id int64, name string) (*models.State, error) {
	state, err := s.states.GetByID(id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}

	// Renaming to a case variant of the current name is allowed; only another
	// state owning the name is a conflict.
	if !strings.EqualFold(state.Name, name) {
		taken, err := s.states.NameExists(name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrStateNameTaken
		}
	}

	state.Name = name
	if err := s.states.Update(state); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrStateNameTaken
		}
		return nil, err
	}
	return state, nil
}

// DeleteState returns false when the state is absent, and fails when tasks
// still reference it.
func (s *StateServiceImpl) DeleteState(id int64) (bool, error) {
	state, err := s.states.GetByID(id)
	if err != nil {
		return false, err
	}
	if state == nil {
		return false, nil
	}

	inUse, err := s.states.HasTasks(id)
	if err != nil {
		return false, err
	}
	if inUse {
		return false, ErrStateInUse
	}

	return s.states.Delete(id)
}
