package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type LoginChecker struct {
	sessions *sessions
	now      func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		sessions: &sessions{
			redisClient: redisClient,
			ttl:         ttl,
		},
		now: time.Now,
	}
}

// UserID resolves the token to its user. An expired session is deleted
// and reported as ErrSessionExpired.
func (c *LoginChecker) UserID(ctx context.Context, token string) (int, error) {
	session, err := c.sessions.get(ctx, token)
	if err != nil {
		return 0, err
	}

	if session.expired(c.sessions.ttl, c.now()) {
		if err := c.sessions.end(ctx, token, session.UserID); err != nil {
			log.Errorf("login checker, delete expired session of user %d: %s", session.UserID, err)
		}
		return 0, ErrSessionExpired
	}

	return session.UserID, nil
}
