package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/backend/internal/services"
)

type StateHandler struct {
	stateService services.StateService
	log          *logrus.Logger
}

func NewStateHandler(stateService services.StateService, log *logrus.Logger) *StateHandler {
	return &StateHandler{stateService: stateService, log: log}
}

func (h *StateHandler) ListStates(c *gin.Context) {
	states, err := h.stateService.ListStates()
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toStateResponses(states))
}

func (h *StateHandler) GetState(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	state, err := h.stateService.GetState(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *StateHandler) CreateState(c *gin.Context) {
	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondValidationErrors(c, fieldErrors)
		return
	}

	state, err := h.stateService.CreateState(req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toStateResponse(state))
}

func (h *StateHandler) UpdateState(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondValidationErrors(c, fieldErrors)
		return
	}

	state, err := h.stateService.UpdateState(id, req.Name)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(state))
}

func (h *StateHandler) DeleteState(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.stateService.DeleteState(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "state not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
