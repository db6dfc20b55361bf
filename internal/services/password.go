package services

import "golang.org/x/crypto/bcrypt"

// DefaultBCryptCost balances hashing time against brute-force resistance.
const DefaultBCryptCost = 10

// PasswordHasher wraps bcrypt hashing and verification. The hash embeds its
// own salt and cost factor; verification never leaks timing beyond bcrypt's
// own comparison.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBCryptCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
