// Package oauthstate keeps the single-use state values of in-flight Strava authorizations.
package oauthstate

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"bpaml/config"
	"bpaml/internal/domain/service"
	"bpaml/internal/errors"

	gocache "github.com/patrickmn/go-cache"
)

const stateBytes = 32

type memoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

// NewMemoryStore creates an in-process state store. States expire after the configured TTL.
func NewMemoryStore(cfg *config.Config) service.OAuthStateStore {
	return newMemoryStore(cfg.Strava.StateTTL)
}

func newMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{cache: gocache.New(ttl, time.Minute)}
}

func (s *memoryStore) Issue(_ context.Context) (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}

	state := base64.RawURLEncoding.EncodeToString(buf)
	s.cache.SetDefault(state, struct{}{})

	return state, nil
}

func (s *memoryStore) Consume(_ context.Context, state string) bool {
	if state == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(state); !ok {
		return false
	}
	s.cache.Delete(state)

	return true
}
