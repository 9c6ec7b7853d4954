// Package config loads gitup's own settings file.
//
// The settings document is optional YAML; a missing file yields defaults so
// the tool works with zero setup. It only customizes where things live, not
// what the tool does.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gitup/internal/profile"
)

// DefaultFileName is the settings dotfile under the home directory.
const DefaultFileName = ".gitup.yaml"

// Settings customizes file locations and the git binary used by the tool.
type Settings struct {
	// ProfilesFile is the path of the profile store document.
	// Defaults to ~/.git_profiles.toml.
	ProfilesFile string `yaml:"profiles_file"`

	// BackupFile is the backup path used when the backup/restore commands
	// are given none. Defaults to ~/.gitconfig.backup.
	BackupFile string `yaml:"backup_file"`

	// GitBinary is the git executable to invoke. Defaults to "git".
	GitBinary string `yaml:"git_binary"`
}

// DefaultPath resolves the conventional settings location in the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the settings file at path. A missing file is not an error: the
// returned Settings carry the defaults. A present but malformed file is
// reported rather than silently ignored.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}

	if err := s.applyDefaults(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() error {
	if s.GitBinary == "" {
		s.GitBinary = "git"
	}
	if s.ProfilesFile == "" {
		p, err := profile.DefaultPath()
		if err != nil {
			return err
		}
		s.ProfilesFile = p
	}
	if s.BackupFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		s.BackupFile = filepath.Join(home, ".gitconfig.backup")
	}
	return nil
}
