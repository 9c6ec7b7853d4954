package cmd

import (
	"github.com/spf13/cobra"

	"gitup/internal/logger"
)

// userName and userEmail back the --user and --email flags shared by the
// config and profile-create commands.
var (
	userName  string
	userEmail string
)

// configCmd writes the given identity into the global git configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Set the global Git user.name and user.email",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		if err := newBridge(settings).Configure(userName, userEmail); err != nil {
			logger.Error("[ERROR] Failed to configure Git: %v\n", err)
			return
		}
		logger.Info("Git configured successfully.\n")
	},
}

// showCmd prints the current global identity, marking unset keys explicitly.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current global Git identity",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}
		bridge := newBridge(settings)

		for _, key := range []string{"user.name", "user.email"} {
			value, ok, err := bridge.Get(key)
			if err != nil {
				logger.Error("[ERROR] Failed to read %s: %v\n", key, err)
				return
			}
			if ok {
				logger.Info("Git %s: %s\n", key, value)
			} else {
				logger.Warn("Git %s is not set.\n", key)
			}
		}
	},
}

func init() {
	configCmd.Flags().StringVar(&userName, "user", "", "Git user.name to set")
	configCmd.Flags().StringVar(&userEmail, "email", "", "Git user.email to set")
	_ = configCmd.MarkFlagRequired("user")
	_ = configCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(showCmd)
}
