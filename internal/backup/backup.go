// Package backup snapshots selected global git configuration keys to a flat
// key=value text file and applies such a file back.
//
// The format is deliberately minimal: one `key=value` pair per line, no
// escaping, no quoting, no comments. A value containing '=' cannot
// round-trip; restore treats any line without exactly one '=' as malformed
// and skips it without touching the configuration.
package backup

import (
	"fmt"
	"os"
	"strings"

	"gitup/internal/logger"
)

// Keys are the configuration keys covered by a backup, written in this
// order.
var Keys = []string{"user.name", "user.email"}

// Config is the slice of the git config bridge the codec needs.
// Implemented by gitconfig.Client.
type Config interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Backup reads the covered keys from cfg and writes one key=value line per
// key that is currently set. Unset keys produce no line. The file at path is
// overwritten if it exists.
func Backup(path string, cfg Config) error {
	var sb strings.Builder
	for _, key := range Keys {
		value, ok, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			logger.Debug("[DEBUG] %s unset, omitting from backup\n", key)
			continue
		}
		fmt.Fprintf(&sb, "%s=%s\n", key, value)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing backup %s: %w", path, err)
	}
	return nil
}

// Restore reads the backup at path and applies each well-formed line through
// cfg.Set, in file order (later duplicates win). A line is well-formed only
// when it contains exactly one '='; any other line is skipped without
// mutating anything. Bridge failures propagate.
func Restore(path string, cfg Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading backup %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.Count(line, "=") != 1 {
			if line != "" {
				logger.Debug("[DEBUG] skipping malformed backup line %q\n", line)
			}
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		if err := cfg.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}
