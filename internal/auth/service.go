package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth

type usersStore interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type Service struct {
	users    usersStore
	sessions *sessions
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	hashPassword   func(password string) (string, error)
	now            func() time.Time
}

func NewAuthService(
	users usersStore,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users: users,
		sessions: &sessions{
			redisClient: redisClient,
			ttl:         ttl,
		},
		RandStringFunc: pkg.GenerateRandomString,
		hashPassword:   pkg.HashPassword,
		now:            time.Now,
	}
}

// Register creates the user and logs it in right away.
func (as *Service) Register(ctx context.Context, credentials Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := credentials.Validate(); err != nil {
		return "", err
	}

	passwordHash, err := as.hashPassword(credentials.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := as.users.Add(ctx, User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	})
	if err != nil {
		return "", err
	}

	log.Debugf("auth service, new user registered: %s [%d]", user.Username, user.ID)
	return as.startSession(ctx, user.ID, createdAt)
}

// Login returns the current token of the user while it is still valid,
// otherwise the old session is dropped and a new token is issued.
func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := as.users.GetByUsername(ctx, credentials.Username)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrWrongPassword
	}
	if err != nil {
		return "", err
	}

	if !pkg.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return "", ErrWrongPassword
	}

	return as.startSession(ctx, user.ID, createdAt)
}

func (as *Service) startSession(ctx context.Context, userID int, createdAt time.Time) (string, error) {
	currentToken, err := as.sessions.userToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get user session: %w", err)
	}

	if currentToken != "" {
		current, err := as.sessions.get(ctx, currentToken)
		switch {
		case err == nil && !current.expired(as.sessions.ttl, createdAt):
			return currentToken, nil
		case err != nil && !errors.Is(err, ErrSessionNotFound):
			return "", fmt.Errorf("get session: %w", err)
		}
		if err := as.sessions.end(ctx, currentToken, userID); err != nil {
			return "", fmt.Errorf("end expired session: %w", err)
		}
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}
	if err := as.sessions.create(ctx, token, userID, createdAt); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := as.sessions.get(ctx, token)
	if err != nil {
		return err
	}

	return as.sessions.end(ctx, token, session.UserID)
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.sessions.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := as.now()
	for _, token := range sessionTokens {
		session, err := as.sessions.get(ctx, token)
		if errors.Is(err, ErrSessionNotFound) {
			// the key already expired in redis, only the set member is left
			if err := as.sessions.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
				log.Errorf("=> auth service, clean token %s: %s", token, err)
			}
			continue
		}
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if !session.expired(as.sessions.ttl, now) {
			continue
		}

		log.Debugf("=>\twill clean the session of user %d", session.UserID)
		if err := as.sessions.end(ctx, token, session.UserID); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}
