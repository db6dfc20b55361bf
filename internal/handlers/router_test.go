package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/backend/internal/config"
	"taskboard/backend/internal/handlers"
	"taskboard/backend/internal/models"
	"taskboard/backend/internal/monitoring"
	"taskboard/backend/internal/repositories"
	"taskboard/backend/internal/services"
)

// setupFullRouter wires the complete router over real services and an
// in-memory SQLite database, so the tests below exercise every layer at
// once the way a deployed instance would.
func setupFullRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.State{}, &models.Task{}, &models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tokens, err := services.NewTokenManager(services.TokenConfig{
		Secret:   "0123456789abcdef0123456789abcdef",
		Issuer:   "test-issuer",
		Audience: "test-audience",
		TTL:      time.Hour,
	})
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	taskRepo := repositories.NewTaskRepository(db)
	stateRepo := repositories.NewStateRepository(db)
	userRepo := repositories.NewUserRepository(db)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "development"},
		CORS:   config.CORSConfig{AllowOrigins: []string{"*"}},
	}

	return handlers.NewRouter(handlers.RouterDeps{
		Config:       cfg,
		Log:          log,
		TaskService:  services.NewTaskService(taskRepo, stateRepo),
		StateService: services.NewStateService(stateRepo),
		AuthService:  services.NewAuthService(userRepo, services.NewPasswordHasher(services.DefaultBCryptCost), tokens),
		Tokens:       tokens,
		Metrics:      monitoring.NewMetrics(),
		Health:       monitoring.NewHealthChecker(),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterEndToEnd(t *testing.T) {
	router := setupFullRouter(t)

	// Anonymous requests never reach the task routes.
	w := doJSON(t, router, "GET", "/tasks", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status %d for anonymous request, got %d", http.StatusUnauthorized, w.Code)
	}

	w = doJSON(t, router, "POST", "/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct horse battery",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d from register, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var session handlers.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a non-empty token from register")
	}
	token := session.Token

	w = doJSON(t, router, "POST", "/states", token, gin.H{"name": "Pendiente"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d from create state, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var state handlers.StateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode state: %v", err)
	}

	// Name uniqueness ignores case.
	w = doJSON(t, router, "POST", "/states", token, gin.H{"name": "pendiente"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d for duplicate state name, got %d", http.StatusConflict, w.Code)
	}

	w = doJSON(t, router, "POST", "/tasks", token, gin.H{
		"title":    "Write quarterly report",
		"state_id": state.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d from create task, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var task handlers.TaskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if task.StateName != "Pendiente" {
		t.Errorf("Expected state_name %q, got %q", "Pendiente", task.StateName)
	}

	w = doJSON(t, router, "POST", "/tasks", token, gin.H{
		"title":    "Orphan task",
		"state_id": 9999,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d for unknown state, got %d", http.StatusBadRequest, w.Code)
	}

	w = doJSON(t, router, "GET", "/tasks", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d from list tasks, got %d", http.StatusOK, w.Code)
	}
	var page handlers.TaskPageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode task page: %v", err)
	}
	if page.TotalCount != 1 || len(page.Items) != 1 {
		t.Errorf("Expected one task in the page, got total %d with %d items", page.TotalCount, len(page.Items))
	}

	// The state is referenced, so it cannot be deleted yet.
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/states/%d", state.ID), token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d for deleting a referenced state, got %d", http.StatusConflict, w.Code)
	}

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/tasks/%d", task.ID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status %d from delete task, got %d", http.StatusNoContent, w.Code)
	}

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/states/%d", state.ID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d from delete state after task removal, got %d", http.StatusNoContent, w.Code)
	}

	// The registered user can come back through login.
	w = doJSON(t, router, "POST", "/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "correct horse battery",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d from login, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestRouterHealthIsPublic(t *testing.T) {
	router := setupFullRouter(t)

	w := doJSON(t, router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d from health, got %d", http.StatusOK, w.Code)
	}
}

func TestRouterUpdateReplacesWholeTask(t *testing.T) {
	router := setupFullRouter(t)

	w := doJSON(t, router, "POST", "/auth/register", "", gin.H{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "secret-enough",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}
	var session handlers.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	token := session.Token

	w = doJSON(t, router, "POST", "/states", token, gin.H{"name": "Open"})
	var state handlers.StateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode state: %v", err)
	}

	w = doJSON(t, router, "POST", "/tasks", token, gin.H{
		"title":       "Draft",
		"description": "first pass",
		"due_date":    "2026-09-15T00:00:00Z",
		"state_id":    state.ID,
	})
	var task handlers.TaskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}

	// PUT is a full replacement, so omitted fields reset.
	w = doJSON(t, router, "PUT", fmt.Sprintf("/tasks/%d", task.ID), token, gin.H{
		"title":    "Final",
		"state_id": state.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d from update, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var updated handlers.TaskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode task: %v", err)
	}
	if updated.Title != "Final" {
		t.Errorf("Expected title %q, got %q", "Final", updated.Title)
	}
	if updated.Description != "" {
		t.Errorf("Expected description cleared, got %q", updated.Description)
	}
	if updated.DueDate != nil {
		t.Errorf("Expected due_date cleared, got %v", updated.DueDate)
	}
	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Errorf("Expected created_at preserved, got %v and %v", task.CreatedAt, updated.CreatedAt)
	}
}
