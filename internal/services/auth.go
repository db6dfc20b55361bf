package services

import (
	"time"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/repositories"
)

// Session is the bundle returned on successful authentication.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthService interface {
	Login(email, password string) (*Session, error)
	Register(username, email, password string) (*Session, error)
	UserExists(email string) (bool, error)
}

type AuthServiceImpl struct {
	users  *repositories.UserRepository
	hasher *PasswordHasher
	tokens *TokenManager
}

func NewAuthService(users *repositories.UserRepository, hasher *PasswordHasher, tokens *TokenManager) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, hasher: hasher, tokens: tokens}
}

// Login collapses unknown email and wrong password into the same error so
// responses carry no user-enumeration signal.
func (s *AuthServiceImpl) Login(email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(user)
}

func (s *AuthServiceImpl) Register(username, email, password string) (*Session, error) {
	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueSession(user)
}

func (s *AuthServiceImpl) UserExists(email string) (bool, error) {
	return s.users.ExistsByEmail(email)
}

func (s *AuthServiceImpl) issueSession(user *models.User) (*Session, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
