package bodycomp

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=bodycomp

const (
	megabyte = 1024 * 1024

	latestWeightCacheSize   = 1 * megabyte
	latestWeightCacheExpire = 10 * 60 // seconds
)

type bodyCompStore interface {
	Add(ctx context.Context, bc BodyComposition) (*BodyComposition, error)
	Latest(ctx context.Context, userID int) (*BodyComposition, error)
}

// Service records body measurements and serves the latest weight of a user,
// which the calorie pipeline reads on every exercise write.
type Service struct {
	store bodyCompStore
	cache *freecache.Cache
	now   func() time.Time

	// writes counts the committed measurements per user. A weight read from
	// the store is cached only if no measurement landed meanwhile.
	writesMu sync.Mutex
	writes   map[int]uint64
}

func NewService(store bodyCompStore) *Service {
	return &Service{
		store:  store,
		cache:  freecache.NewCache(latestWeightCacheSize),
		now:    time.Now,
		writes: make(map[int]uint64),
	}
}

func (s *Service) writeCount(userID int) uint64 {
	s.writesMu.Lock()
	defer s.writesMu.Unlock()
	return s.writes[userID]
}

// invalidateWeight bumps the write count before dropping the cached weight,
// so a read that started earlier cannot put the old value back.
func (s *Service) invalidateWeight(userID int) {
	s.writesMu.Lock()
	s.writes[userID]++
	s.cache.Del(weightCacheKey(userID))
	s.writesMu.Unlock()
}

// cacheWeight stores value unless a measurement was added after seen was read.
func (s *Service) cacheWeight(userID int, seen uint64, value []byte) {
	s.writesMu.Lock()
	defer s.writesMu.Unlock()
	if s.writes[userID] != seen {
		log.Tracef("bodycomp: weight of user %d changed during read, not caching", userID)
		return
	}
	if err := s.cache.Set(weightCacheKey(userID), value, latestWeightCacheExpire); err != nil {
		log.Errorf("failed to cache latest weight for user %d: %s", userID, err)
	}
}

func (s *Service) Add(ctx context.Context, userID int, bc BodyComposition) (*BodyComposition, error) {
	bc.ID = 0
	bc.UserID = userID
	if err := bc.Validate(); err != nil {
		return nil, err
	}
	bc.CalculateBMI()
	if bc.MeasuredAt.IsZero() {
		bc.MeasuredAt = s.now()
	}

	added, err := s.store.Add(ctx, bc)
	if err != nil {
		return nil, err
	}

	s.invalidateWeight(userID)
	return added, nil
}

// Latest returns the most recent measurement, or nil when there is none.
func (s *Service) Latest(ctx context.Context, userID int) (*BodyComposition, error) {
	bc, err := s.store.Latest(ctx, userID)
	if errors.Is(err, ErrBodyCompositionNotFound) {
		return nil, nil
	}
	return bc, err
}

// LatestWeight returns the most recently measured weight of the user.
// found is false when the user has no measurements.
func (s *Service) LatestWeight(ctx context.Context, userID int) (weightKg float64, found bool, err error) {
	if cached, err := s.cache.Get(weightCacheKey(userID)); err == nil {
		if len(cached) == 0 {
			return 0, false, nil
		}
		return math.Float64frombits(binary.BigEndian.Uint64(cached)), true, nil
	}

	seen := s.writeCount(userID)
	bc, err := s.store.Latest(ctx, userID)
	if err != nil && !errors.Is(err, ErrBodyCompositionNotFound) {
		return 0, false, fmt.Errorf("latest body composition: %w", err)
	}

	var value []byte
	if bc != nil {
		value = binary.BigEndian.AppendUint64(nil, math.Float64bits(bc.Weight))
		weightKg, found = bc.Weight, true
	}
	s.cacheWeight(userID, seen, value)

	return weightKg, found, nil
}

func weightCacheKey(userID int) []byte {
	return []byte(fmt.Sprintf("weight::%d", userID))
}
