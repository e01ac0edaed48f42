// Package settings persists the player's preferences.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the gdata application directory
	AppName = "sharkie"

	settingsObject = "preferences"
	// SoundEnabledKey is the storage key of the sound flag
	SoundEnabledKey = "sharkie-sound-enabled"
)

// Store holds the sound preference. A nil manager keeps the value in
// memory only.
type Store struct {
	manager      *gdata.Manager
	soundEnabled bool
}

// Open opens the gdata store for AppName. On failure it logs and returns
// an in-memory store.
func Open() *Store {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("Failed to open settings storage: %v (settings will not persist)", err)
		m = nil
	}
	return NewStore(m)
}

// NewStore creates a store and loads the saved values
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m, soundEnabled: true}
	if err := s.Load(); err != nil {
		log.Printf("Failed to load settings: %v (using defaults)", err)
	}
	return s
}

// Load reads the saved flag. A missing value keeps the default.
func (s *Store) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, SoundEnabledKey) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, SoundEnabledKey)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", SoundEnabledKey, err)
	}

	var enabled bool
	if err := yaml.Unmarshal(data, &enabled); err != nil {
		return fmt.Errorf("failed to parse %s: %w", SoundEnabledKey, err)
	}
	s.soundEnabled = enabled
	return nil
}

// SoundEnabled reports the sound preference
func (s *Store) SoundEnabled() bool { return s.soundEnabled }

// SetSoundEnabled updates and saves the flag.
func (s *Store) SetSoundEnabled(enabled bool) error {
	s.soundEnabled = enabled
	return s.save()
}

// ToggleSound flips the flag and returns the new value
func (s *Store) ToggleSound() (bool, error) {
	err := s.SetSoundEnabled(!s.soundEnabled)
	return s.soundEnabled, err
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.soundEnabled)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", SoundEnabledKey, err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, SoundEnabledKey, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", SoundEnabledKey, err)
	}
	return nil
}
