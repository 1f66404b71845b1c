package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrWrongPassword      = errors.New("wrong username or password")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	minUsernameLength = 3
	maxUsernameLength = 150
	minPasswordLength = 6
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Credentials) Validate() error {
	c.Username = strings.TrimSpace(c.Username)
	if l := len(c.Username); l < minUsernameLength || l > maxUsernameLength {
		return fmt.Errorf("%w: username must be between %d and %d characters", ErrInvalidCredentials, minUsernameLength, maxUsernameLength)
	}
	if len(c.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidCredentials, minPasswordLength)
	}
	return nil
}
