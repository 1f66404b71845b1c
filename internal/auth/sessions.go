package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// sessions keeps login sessions in redis: one key per token, one key per
// user pointing at the current token, and a set of all live tokens.
type sessions struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func (s *sessions) get(ctx context.Context, token string) (*LoginSession, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return parseSession(token, val)
}

func (s *sessions) userToken(ctx context.Context, userID int) (string, error) {
	token, err := s.redisClient.Get(ctx, userSessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *sessions) create(ctx context.Context, token string, userID int, createdAt time.Time) error {
	if err := s.redisClient.Set(ctx, sessionKey(token), sessionValue(userID, createdAt), s.ttl).Err(); err != nil {
		return err
	}
	if err := s.redisClient.Set(ctx, userSessionKey(userID), token, s.ttl).Err(); err != nil {
		return err
	}
	// add token to the set of sessions
	return s.redisClient.SAdd(ctx, tokensSetKey, token).Err()
}

func (s *sessions) end(ctx context.Context, token string, userID int) error {
	if err := s.redisClient.Del(ctx, sessionKey(token), userSessionKey(userID)).Err(); err != nil {
		return err
	}
	return s.redisClient.SRem(ctx, tokensSetKey, token).Err()
}
