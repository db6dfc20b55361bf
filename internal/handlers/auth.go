package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService services.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondValidationErrors(c, fieldErrors)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		respondValidationErrors(c, fieldErrors)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	session, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// CheckEmail is the existence probe used for client-side pre-validation.
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	if email == "" || !validEmail(email) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "email is not a valid address"})
		return
	}

	exists, err := h.authService.UserExists(email)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
