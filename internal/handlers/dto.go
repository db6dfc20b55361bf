package handlers

import (
	"time"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/services"
)

type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	StateID     int64      `json:"state_id"`
	StateName   string     `json:"state_name"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type StateResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TaskPageResponse struct {
	Items      []TaskResponse `json:"items"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toTaskResponse(task *models.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		StateID:     task.StateID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.State != nil {
		resp.StateName = task.State.Name
	}
	return resp
}

func toStateResponse(state *models.State) StateResponse {
	return StateResponse{
		ID:        state.ID,
		Name:      state.Name,
		CreatedAt: state.CreatedAt,
		UpdatedAt: state.UpdatedAt,
	}
}

func toStateResponses(states []models.State) []StateResponse {
	resp := make([]StateResponse, 0, len(states))
	for i := range states {
		resp = append(resp, toStateResponse(&states[i]))
	}
	return resp
}

func toTaskPageResponse(page *services.TaskPage) TaskPageResponse {
	items := make([]TaskResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toTaskResponse(&page.Items[i]))
	}
	return TaskPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}

func toSessionResponse(session *services.Session) SessionResponse {
	return SessionResponse{
		Token:     session.Token,
		Username:  session.Username,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}
}
