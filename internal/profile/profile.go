// Package profile persists named Git identities and applies them to the
// global configuration.
//
// Profiles live in a single TOML document mapping profile name to a
// name/email pair, by default ~/.git_profiles.toml. The file is the sole
// source of truth: every read re-parses it and every write rewrites it
// whole. No locking is performed; two concurrent writers race and the last
// full-file overwrite wins. Callers needing atomicity must compose their
// own locking around Load/Save.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the profile store dotfile under the home directory.
const DefaultFileName = ".git_profiles.toml"

var (
	// ErrNotFound reports a lookup of a profile name that was never created.
	ErrNotFound = errors.New("profile not found")

	// ErrCorrupt reports a store file that exists but cannot be decoded.
	// A corrupt store is never treated as empty.
	ErrCorrupt = errors.New("profile store is corrupt")
)

// Profile is a named Git identity: the user.name and user.email values to
// apply when the profile is selected.
type Profile struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// ConfigWriter is the slice of the git config bridge the store needs to
// apply a profile. Implemented by gitconfig.Client.
type ConfigWriter interface {
	Set(key, value string) error
}

// Store reads and writes the profile document at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath resolves the conventional store location in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load parses the whole store. A missing file is an empty store, not an
// error; an existing file that fails to decode is ErrCorrupt.
func (s *Store) Load() (map[string]Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Profile{}, nil
		}
		return nil, fmt.Errorf("reading profile store %s: %w", s.path, err)
	}

	profiles := map[string]Profile{}
	if err := toml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return profiles, nil
}

// Save serializes the entire mapping and overwrites the store file.
func (s *Store) Save(profiles map[string]Profile) error {
	data, err := toml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encoding profile store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing profile store %s: %w", s.path, err)
	}
	return nil
}

// Create inserts or replaces the profile stored under profileName. Creating
// under an existing name overwrites the previous entry; the store never
// holds duplicates.
func (s *Store) Create(profileName, name, email string) error {
	profiles, err := s.Load()
	if err != nil {
		return err
	}
	profiles[profileName] = Profile{Name: name, Email: email}
	return s.Save(profiles)
}

// Get looks up a single profile by name.
func (s *Store) Get(profileName string) (Profile, error) {
	profiles, err := s.Load()
	if err != nil {
		return Profile{}, err
	}
	p, ok := profiles[profileName]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, profileName)
	}
	return p, nil
}

// Use applies the named profile to the global git configuration through cfg,
// setting user.name and user.email. Bridge failures propagate unchanged.
func (s *Store) Use(profileName string, cfg ConfigWriter) error {
	p, err := s.Get(profileName)
	if err != nil {
		return err
	}
	if err := cfg.Set("user.name", p.Name); err != nil {
		return err
	}
	return cfg.Set("user.email", p.Email)
}

// Names returns all profile names in sorted order.
func (s *Store) Names() ([]string, error) {
	profiles, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
