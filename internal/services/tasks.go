package services

import (
	"time"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TaskInput is the full replacement payload for create and update.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	StateID     int64
}

// TaskPage is the envelope returned by paginated listings. TotalCount comes
// from a separate count query with the same filters; the two are not
// cross-validated, so a concurrent mutation between them is visible as a
// small mismatch and accepted.
type TaskPage struct {
	Items      []models.Task `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}

type TaskService interface {
	ListTasks(page, pageSize int, filter repositories.TaskFilter) (*TaskPage, error)
	GetTask(id int64) (*models.Task, error)
	CreateTask(input TaskInput) (*models.Task, error)
	UpdateTask(id int64, input TaskInput) (*models.Task, error)
	DeleteTask(id int64) (bool, error)
	ListStates() ([]models.State, error)
}

type TaskServiceImpl struct {
	tasks  *repositories.TaskRepository
	states *repositories.StateRepository
}

func NewTaskService(tasks *repositories.TaskRepository, states *repositories.StateRepository) *TaskServiceImpl {
	return &TaskServiceImpl{tasks: tasks, states: states}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func (s *TaskServiceImpl) ListTasks(page, pageSize int, filter repositories.TaskFilter) (*TaskPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	items, err := s.tasks.List(page, pageSize, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.tasks.Count(filter)
	if err != nil {
		return nil, err
	}

	return &TaskPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *TaskServiceImpl) GetTask(id int64) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) CreateTask(input TaskInput) (*models.Task, error) {
	state, err := s.states.GetByID(input.StateID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		StateID:     input.StateID,
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}

	task.State = state
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(id int64, input TaskInput) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	state, err := s.states.GetByID(input.StateID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}

	// Full replacement: every input field overwrites the stored value.
	task.Title = input.Title
	task.Description = input.Description
	task.DueDate = input.DueDate
	task.StateID = input.StateID
	task.State = nil
	if err := s.tasks.Update(task); err != nil {
		return nil, err
	}

	task.State = state
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(id int64) (bool, error) {
	return s.tasks.Delete(id)
}

// ListStates mirrors the state service listing for the /tasks/states alias.
func (s *TaskServiceImpl) ListStates() ([]models.State, error) {
	return s.states.List()
}
