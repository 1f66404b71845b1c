package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL           = 24 * 7 * time.Hour
	sessionKeyPrefix     = "fitplan-session||"
	userSessionKeyPrefix = "fitplan-user-session||"
	tokensSetKey         = "fitplan-sessions"
	tokenLength          = 40
)

type LoginSession struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func userSessionKey(userID int) string {
	return userSessionKeyPrefix + strconv.Itoa(userID)
}

// sessionValue encodes a session as "<user id>:<created at unix>".
func sessionValue(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d:%d", userID, createdAt.Unix())
}

func parseSession(token, value string) (*LoginSession, error) {
	userIDStr, createdAtStr, found := strings.Cut(value, ":")
	if !found {
		return nil, errors.New("malformed session value")
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("session created at: %w", err)
	}
	return &LoginSession{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

func (s *LoginSession) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}
