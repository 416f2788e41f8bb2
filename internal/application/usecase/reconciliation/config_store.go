package reconciliation

import (
	"sync"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ConfigStore holds the current matching configuration for the process. Reads
// return a value copy, so a running reconciliation that snapshotted the config
// at entry is not affected by concurrent updates.
type ConfigStore struct {
	mu      sync.RWMutex
	current valueobject.MatchingConfig
}

// NewConfigStore creates a ConfigStore initialized to the documented defaults.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		current: valueobject.DefaultMatchingConfig(),
	}
}

// NewConfigStoreWithInitial creates a ConfigStore seeded from the given
// configuration. Reset still restores the documented defaults, not the seed.
func NewConfigStoreWithInitial(initial valueobject.MatchingConfig) (*ConfigStore, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &ConfigStore{current: initial}, nil
}

// Get returns a snapshot of the current configuration.
func (s *ConfigStore) Get() valueobject.MatchingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update merges the patch into the current configuration and validates the
// result. On validation failure the prior configuration is kept unchanged and
// the error is returned. On success the merged configuration is returned.
func (s *ConfigStore) Update(patch valueobject.MatchingConfigPatch) (valueobject.MatchingConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.current.Apply(patch)
	if err := merged.Validate(); err != nil {
		return s.current, err
	}

	s.current = merged
	return merged, nil
}

// Reset restores the documented defaults and returns them.
func (s *ConfigStore) Reset() valueobject.MatchingConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = valueobject.DefaultMatchingConfig()
	return s.current
}
