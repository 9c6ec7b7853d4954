package installer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitup/internal/execx"
)

// fakeRunner scripts per-command results and records every invocation, so
// each row of the decision table can be exercised without touching the host.
type fakeRunner struct {
	errs  map[string]error
	calls []string
}

func newFakeRunner(failing ...string) *fakeRunner {
	f := &fakeRunner{errs: map[string]error{}}
	for _, cmd := range failing {
		f.errs[cmd] = errors.New("exit status 1")
	}
	return f
}

func (f *fakeRunner) Run(name string, args ...string) error {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmd)
	return f.errs[cmd]
}

func (f *fakeRunner) Output(name string, args ...string) (string, error) {
	return "", f.Run(name, args...)
}

func TestInstalled(t *testing.T) {
	t.Parallel()

	assert.True(t, NewForOS(newFakeRunner(), "", "linux").Installed())
	assert.False(t, NewForOS(newFakeRunner("git --version"), "", "linux").Installed())
}

func TestInstallNoOpWhenAlreadyInstalled(t *testing.T) {
	t.Parallel()

	run := newFakeRunner()
	require.NoError(t, NewForOS(run, "", "darwin").Install())

	// Only the git probe may run; no package manager is touched.
	assert.Equal(t, []string{"git --version"}, run.calls)
}

func TestInstallDarwinViaBrew(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version")
	require.NoError(t, NewForOS(run, "", "darwin").Install())
	assert.Equal(t, []string{
		"git --version",
		"brew --version",
		"brew install git",
	}, run.calls)
}

func TestInstallDarwinWithoutBrew(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version", "brew --version")
	err := NewForOS(run, "", "darwin").Install()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Homebrew")
	assert.NotContains(t, strings.Join(run.calls, "\n"), "brew install")
}

func TestInstallLinuxViaPacman(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version")
	require.NoError(t, NewForOS(run, "", "linux").Install())
	assert.Equal(t, []string{
		"git --version",
		"pacman -V",
		"sudo pacman -S --noconfirm git",
	}, run.calls)
}

func TestInstallLinuxFallsBackToApt(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version", "pacman -V")
	require.NoError(t, NewForOS(run, "", "linux").Install())
	assert.Equal(t, []string{
		"git --version",
		"pacman -V",
		"sudo apt-get install -y git",
	}, run.calls)
}

func TestInstallWindowsViaChoco(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version")
	require.NoError(t, NewForOS(run, "", "windows").Install())
	assert.Equal(t, []string{
		"git --version",
		"choco --version",
		"choco install git -y",
	}, run.calls)
}

func TestInstallWindowsFallsBackToWinget(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version", "choco --version")
	require.NoError(t, NewForOS(run, "", "windows").Install())
	assert.Equal(t, []string{
		"git --version",
		"choco --version",
		"winget --version",
		"winget install --id Git.Git --silent",
	}, run.calls)
}

func TestInstallWindowsWithoutAnyManager(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version", "choco --version", "winget --version")
	err := NewForOS(run, "", "windows").Install()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Chocolatey")
	assert.Contains(t, err.Error(), "Winget")
}

func TestInstallUnsupportedOS(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version")
	err := NewForOS(run, "", "plan9").Install()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OS not supported")

	var cmdErr *execx.CommandError
	assert.ErrorAs(t, err, &cmdErr)
}

func TestInstallPropagatesManagerFailure(t *testing.T) {
	t.Parallel()

	run := newFakeRunner("git --version", "brew install git")
	err := NewForOS(run, "", "darwin").Install()
	require.Error(t, err)
}

func TestInstallCustomGitBinary(t *testing.T) {
	t.Parallel()

	run := newFakeRunner()
	require.NoError(t, NewForOS(run, "/usr/local/bin/git", "linux").Install())
	assert.Equal(t, []string{"/usr/local/bin/git --version"}, run.calls)
}
