package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Used where no config file is wanted.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := valueAs[string](s, key)
	return v
}

// GetInt accepts int and int64, the two integer types TOML decoding produces.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := valueAs[int64](s, key); ok {
		return int(v)
	}
	v, _ := valueAs[int](s, key)
	return v
}

func (s *ConfigStore) GetBool(key string) bool {
	v, _ := valueAs[bool](s, key)
	return v
}

func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func valueAs[T any](s *ConfigStore, key string) (T, bool) {
	v, _ := s.Get(key)
	t, ok := v.(T)
	return t, ok
}
