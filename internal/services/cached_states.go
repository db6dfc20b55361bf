package services

import (
	"taskboard/backend/internal/cache"
	"taskboard/backend/internal/models"
)

// CachedStateService invalidates the shared state and task-page keys on every
// state mutation, since cached task pages embed state names.
type CachedStateService struct {
	inner StateService
	cache *cache.RedisCache
}

var _ StateService = (*CachedStateService)(nil)

func NewCachedStateService(inner StateService, cacheInstance *cache.RedisCache) *CachedStateService {
	return &CachedStateService{inner: inner, cache: cacheInstance}
}

func (s *CachedStateService) invalidate() {
	s.cache.Delete("task_states")
	s.cache.DeletePattern("tasks_page:*")
	s.cache.DeletePattern("task:*")
}

func (s *CachedStateService) ListStates() ([]models.State, error) {
	return s.inner.ListStates()
}

func (s *CachedStateService) GetState(id int64) (*models.State, error) {
	return s.inner.GetState(id)
}

func (s *CachedStateService) CreateState(name string) (*models.State, error) {
	state, err := s.inner.CreateState(name)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return state, nil
}

func (s *CachedStateService) UpdateState(id int64, name string) (*models.State, error) {
	state, err := s.inner.UpdateState(id, name)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return state, nil
}

func (s *CachedStateService) DeleteState(id int64) (bool, error) {
	deleted, err := s.inner.DeleteState(id)
	if err != nil {
		return deleted, err
	}
	if deleted {
		s.invalidate()
	}
	return deleted, nil
}
