package main

import (
	"gitup/cmd"
)

// main delegates to cmd.Execute(), which parses the command line and runs
// the selected subcommand.
//
// gitup is a Git identity management tool that:
//   - Detects whether Git is installed and, if not, installs it through the
//     host OS package manager (Homebrew, pacman/apt-get, Chocolatey/Winget)
//   - Sets and shows the global user.name / user.email configuration by
//     shelling out to `git config --global`
//   - Stores named identity profiles in a TOML dotfile and applies them on
//     demand, so switching between work and personal identities is one command
//   - Snapshots the identity keys to a flat key=value backup file and
//     restores them from it
//
// Error handling strategy: every core operation returns a typed error which
// the commands surface to the user; nothing is retried and no failure
// terminates the process beyond the current command.
func main() {
	cmd.Execute()
}
