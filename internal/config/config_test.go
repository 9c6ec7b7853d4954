package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)

	assert.Equal(t, "git", s.GitBinary)
	assert.True(t, strings.HasSuffix(s.ProfilesFile, ".git_profiles.toml"))
	assert.True(t, strings.HasSuffix(s.BackupFile, ".gitconfig.backup"))
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `profiles_file: /tmp/profiles.toml
backup_file: /tmp/backup.txt
git_binary: /opt/git/bin/git
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/profiles.toml", s.ProfilesFile)
	assert.Equal(t, "/tmp/backup.txt", s.BackupFile)
	assert.Equal(t, "/opt/git/bin/git", s.GitBinary)
}

func TestLoadPartialOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("git_binary: git2\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "git2", s.GitBinary)
	assert.NotEmpty(t, s.ProfilesFile)
	assert.NotEmpty(t, s.BackupFile)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("profiles_file: [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings")
}
