package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/backend/internal/repositories"
	"taskboard/backend/internal/services"
)

type TaskHandler struct {
	taskService services.TaskService
	log         *logrus.Logger
}

func NewTaskHandler(taskService services.TaskService, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, log: log}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		respondValidationErrors(c, []FieldError{{Field: "page", Message: "page must be an integer"}})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		respondValidationErrors(c, []FieldError{{Field: "pageSize", Message: "pageSize must be an integer"}})
		return
	}

	var filter repositories.TaskFilter
	if raw := c.Query("stateId"); raw != "" {
		stateID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondValidationErrors(c, []FieldError{{Field: "stateId", Message: "stateId must be an integer"}})
			return
		}
		filter.StateID = &stateID
	}
	if raw := c.Query("dueDate"); raw != "" {
		dueDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondValidationErrors(c, []FieldError{{Field: "dueDate", Message: "dueDate must be formatted as YYYY-MM-DD"}})
			return
		}
		filter.DueDate = &dueDate
	}

	result, err := h.taskService.ListTasks(page, pageSize, filter)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toTaskPageResponse(result))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondValidationErrors(c, fieldErrors)
		return
	}

	task, err := h.taskService.CreateTask(services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		StateID:     req.StateID,
	})
	if err != nil {
		// A missing referenced state on create is a bad request, not a 404.
		if errors.Is(err, services.ErrStateNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondValidationErrors(c, fieldErrors)
		return
	}

	task, err := h.taskService.UpdateTask(id, services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		StateID:     req.StateID,
	})
	if err != nil {
		if errors.Is(err, services.ErrStateNotFound) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTask(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListStates serves the /tasks/states alias.
func (h *TaskHandler) ListStates(c *gin.Context) {
	states, err := h.taskService.ListStates()
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toStateResponses(states))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
