// Package installer detects whether git is present and, when it is not,
// drives the host OS package manager to install it.
//
// The OS/manager branching is kept as an explicit decision table rather than
// nested conditionals: each OS maps to an ordered list of candidate steps,
// where a step pairs an availability probe with the install command to run
// when that probe succeeds. Probes and installs go through an injectable
// runner, so every branch is testable without touching the host.
package installer

import (
	"fmt"
	"runtime"

	"gitup/internal/execx"
	"gitup/internal/logger"
)

// command is one subprocess invocation, argv[0] included.
type command []string

// step is one row of the decision table: run install when probe succeeds.
// An empty probe means the step applies unconditionally (a default).
type step struct {
	probe   command
	install command
}

// plan is the per-OS install strategy. missing is the error text when every
// probed step is unavailable; it names the manager(s) the user must install
// first.
type plan struct {
	steps   []step
	missing string
}

// plans maps runtime.GOOS values to their install strategy. Success of any
// command is judged purely by exit status.
var plans = map[string]plan{
	"darwin": {
		steps: []step{
			{
				probe:   command{"brew", "--version"},
				install: command{"brew", "install", "git"},
			},
		},
		missing: "Homebrew is not installed. Please install Homebrew first.",
	},
	"linux": {
		steps: []step{
			{
				probe:   command{"pacman", "-V"},
				install: command{"sudo", "pacman", "-S", "--noconfirm", "git"},
			},
			{
				// No probe: apt-get is the default on non-Arch systems.
				install: command{"sudo", "apt-get", "install", "-y", "git"},
			},
		},
	},
	"windows": {
		steps: []step{
			{
				probe:   command{"choco", "--version"},
				install: command{"choco", "install", "git", "-y"},
			},
			{
				probe:   command{"winget", "--version"},
				install: command{"winget", "install", "--id", "Git.Git", "--silent"},
			},
		},
		missing: "Neither Chocolatey nor Winget is installed. Please install one of them first.",
	},
}

// Installer probes for git and installs it via the OS package manager.
type Installer struct {
	run  execx.Runner
	goos string
	git  string
}

// New returns an Installer for the current OS. An empty git binary name
// falls back to "git".
func New(run execx.Runner, gitBinary string) *Installer {
	return NewForOS(run, gitBinary, runtime.GOOS)
}

// NewForOS is New with an explicit GOOS value, used by tests to exercise
// every branch of the decision table.
func NewForOS(run execx.Runner, gitBinary, goos string) *Installer {
	if gitBinary == "" {
		gitBinary = "git"
	}
	return &Installer{run: run, goos: goos, git: gitBinary}
}

// Installed reports whether the git binary is callable, probed with
// `git --version`.
func (i *Installer) Installed() bool {
	return i.run.Run(i.git, "--version") == nil
}

// Install installs git through the first available package manager for the
// host OS. It is a no-op success when git is already installed; no package
// manager subprocess is spawned in that case. Each install runs as a single
// subprocess with no retries and no output parsing.
func (i *Installer) Install() error {
	if i.Installed() {
		logger.Debug("[DEBUG] %s already installed, skipping\n", i.git)
		return nil
	}

	p, ok := plans[i.goos]
	if !ok {
		return &execx.CommandError{
			Cmd: "install " + i.git,
			Err: fmt.Errorf("OS not supported: %s", i.goos),
		}
	}

	for _, st := range p.steps {
		if st.probe != nil {
			if err := i.run.Run(st.probe[0], st.probe[1:]...); err != nil {
				logger.Debug("[DEBUG] %s unavailable: %v\n", st.probe[0], err)
				continue
			}
		}
		logger.Info("[INFO] Installing %s via %s...\n", i.git, st.install[0])
		return i.run.Run(st.install[0], st.install[1:]...)
	}

	return &execx.CommandError{
		Cmd: "install " + i.git,
		Err: fmt.Errorf("%s", p.missing),
	}
}
