package services

import (
	"fmt"
	"time"

	"taskboard/backend/internal/cache"
	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

const (
	taskTTL     = 30 * time.Minute
	taskPageTTL = 5 * time.Minute
	stateTTL    = 10 * time.Minute
)

// CachedTaskService decorates a TaskService with a redis read cache. Reads
// go through the cache; every mutation invalidates the affected keys plus
// all list pages, so the listing never serves a deleted or stale task.
type CachedTaskService struct {
	inner TaskService
	cache *cache.RedisCache
}

var _ TaskService = (*CachedTaskService)(nil)

func NewCachedTaskService(inner TaskService, cacheInstance *cache.RedisCache) *CachedTaskService {
	return &CachedTaskService{inner: inner, cache: cacheInstance}
}

func taskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

func pageKey(page, pageSize int, filter repositories.TaskFilter) string {
	stateID := int64(0)
	if filter.StateID != nil {
		stateID = *filter.StateID
	}
	due := ""
	if filter.DueDate != nil {
		due = filter.DueDate.Format("2006-01-02")
	}
	return fmt.Sprintf("tasks_page:%d:%d:%d:%s", page, pageSize, stateID, due)
}

func (s *CachedTaskService) ListTasks(page, pageSize int, filter repositories.TaskFilter) (*TaskPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	key := pageKey(page, pageSize, filter)

	var cached TaskPage
	if err := s.cache.Get(key, &cached); err == nil {
		return &cached, nil
	}

	result, err := s.inner.ListTasks(page, pageSize, filter)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, result, taskPageTTL)
	return result, nil
}

func (s *CachedTaskService) GetTask(id int64) (*models.Task, error) {
	key := taskKey(id)

	var cached models.Task
	if err := s.cache.Get(key, &cached); err == nil {
		return &cached, nil
	}

	task, err := s.inner.GetTask(id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, task, taskTTL)
	return task, nil
}

func (s *CachedTaskService) CreateTask(input TaskInput) (*models.Task, error) {
	task, err := s.inner.CreateTask(input)
	if err != nil {
		return nil, err
	}
	s.cache.Set(taskKey(task.ID), task, taskTTL)
	s.cache.DeletePattern("tasks_page:*")
	return task, nil
}

func (s *CachedTaskService) UpdateTask(id int64, input TaskInput) (*models.Task, error) {
	task, err := s.inner.UpdateTask(id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Set(taskKey(id), task, taskTTL)
	s.cache.DeletePattern("tasks_page:*")
	return task, nil
}

func (s *CachedTaskService) DeleteTask(id int64) (bool, error) {
	deleted, err := s.inner.DeleteTask(id)
	if err != nil {
		return deleted, err
	}
	if deleted {
		s.cache.Delete(taskKey(id))
		s.cache.DeletePattern("tasks_page:*")
	}
	return deleted, nil
}

func (s *CachedTaskService) ListStates() ([]models.State, error) {
	key := "task_states"

	var cached []models.State
	if err := s.cache.Get(key, &cached); err == nil {
		return cached, nil
	}

	states, err := s.inner.ListStates()
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, states, stateTTL)
	return states, nil
}
