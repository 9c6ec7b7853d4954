// Package gitconfig bridges into Git's global configuration scope. Every
// Get/Set is exactly one `git config --global` subprocess invocation; the
// external config store is the single source of truth and is never cached.
package gitconfig

import (
	"errors"
	"fmt"

	"gitup/internal/execx"
	"gitup/internal/logger"
)

// Client reads and writes keys in Git's global configuration.
type Client struct {
	run execx.Runner
	git string // binary name, normally "git"
}

// NewClient returns a Client that shells out to the given git binary.
// An empty binary name falls back to "git".
func NewClient(run execx.Runner, gitBinary string) *Client {
	if gitBinary == "" {
		gitBinary = "git"
	}
	return &Client{run: run, git: gitBinary}
}

// Get returns the global configuration value for key. ok is false when the
// key is unset, which is not an error. An error is returned only when git
// itself could not be invoked.
func (c *Client) Get(key string) (value string, ok bool, err error) {
	out, err := c.run.Output(c.git, "config", "--global", key)
	if err != nil {
		if errors.Is(err, execx.ErrNotStarted) {
			return "", false, fmt.Errorf("reading git config %s: %w", key, err)
		}
		// git ran but exited non-zero; for `git config` that means the
		// key is unset, not a failure.
		logger.Debug("[DEBUG] git config %s: unset (%v)\n", key, err)
	}
	if out == "" {
		return "", false, nil
	}
	return out, true, nil
}

// Set writes key=value into the global configuration scope.
func (c *Client) Set(key, value string) error {
	if err := c.run.Run(c.git, "config", "--global", key, value); err != nil {
		return fmt.Errorf("setting git config %s: %w", key, err)
	}
	logger.Debug("[DEBUG] git config --global %s %s\n", key, value)
	return nil
}

// Configure sets the two identity keys in one call, the common path for
// applying a profile or the --user/--email flags.
func (c *Client) Configure(name, email string) error {
	if err := c.Set("user.name", name); err != nil {
		return err
	}
	return c.Set("user.email", email)
}
