package cmd

import (
	"github.com/spf13/cobra"

	"gitup/internal/config"
	"gitup/internal/execx"
	"gitup/internal/gitconfig"
	"gitup/internal/logger"
	"gitup/internal/profile"
)

// debug toggles debug logging via the global `--debug` flag.
var debug bool

// settingsPath overrides the settings file location via `--config`.
var settingsPath string

// rootCmd is the base command for the `gitup` CLI.
var rootCmd = &cobra.Command{
	Use:   "gitup",
	Short: "Git identity and configuration manager",
	Long: `gitup manages your Git identity: it stores named profiles (name/email
pairs), applies them to the global Git configuration, snapshots and restores
that configuration, and installs Git itself when missing.`,

	// Initialize the logger before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute runs the CLI. Errors are handled by cobra and the subcommands
// themselves.
func Execute() {
	_ = rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "config", "c", "", "Path to settings file (default ~/"+config.DefaultFileName+")")
}

// loadSettings resolves the settings file path (flag override or the home
// dotfile) and loads it, falling back to defaults when the file is absent.
func loadSettings() (config.Settings, error) {
	path := settingsPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Settings{}, err
		}
		path = p
	}
	return config.Load(path)
}

// newBridge builds the git config client for the configured binary.
func newBridge(s config.Settings) *gitconfig.Client {
	return gitconfig.NewClient(execx.System{}, s.GitBinary)
}

// newStore builds the profile store at the configured location.
func newStore(s config.Settings) *profile.Store {
	return profile.NewStore(s.ProfilesFile)
}
