package handlers

import (
	"net/mail"
	"strings"
	"time"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
	maxStateNameLength   = 100
	maxUsernameLength    = 100
	maxEmailLength       = 255
	minPasswordLength    = 8
)

// FieldError is one entry in a validation failure's details list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	StateID     int64      `json:"state_id"`
}

func (r *TaskRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > maxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title must be at most 200 characters"})
	}
	if len(r.Description) > maxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description must be at most 1000 characters"})
	}
	if r.StateID <= 0 {
		errs = append(errs, FieldError{Field: "state_id", Message: "state_id is required"})
	}
	return errs
}

type StateRequest struct {
	Name string `json:"name"`
}

func (r *StateRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > maxStateNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 100 characters"})
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	} else if len(r.Username) > maxUsernameLength {
		errs = append(errs, FieldError{Field: "username", Message: "username must be at most 100 characters"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if len(r.Email) > maxEmailLength {
		errs = append(errs, FieldError{Field: "email", Message: "email must be at most 255 characters"})
	} else if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email is not a valid address"})
	}
	if len(r.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	return errs
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
