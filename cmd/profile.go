package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"gitup/internal/logger"
	"gitup/internal/profile"
)

// profileCmd groups the profile subcommands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named Git identity profiles",
}

// profileCreateCmd creates or overwrites a named profile in the store.
var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create (or overwrite) a profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		if err := newStore(settings).Create(args[0], userName, userEmail); err != nil {
			logger.Error("[ERROR] Failed to create profile '%s': %v\n", args[0], err)
			return
		}
		logger.Info("Profile '%s' created successfully.\n", args[0])
	},
}

// profileUseCmd applies a stored profile to the global git configuration.
var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Apply a profile to the global Git configuration",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		err = newStore(settings).Use(args[0], newBridge(settings))
		switch {
		case errors.Is(err, profile.ErrNotFound):
			logger.Error("[ERROR] Profile not found: '%s'\n", args[0])
		case err != nil:
			logger.Error("[ERROR] Failed to switch to profile '%s': %v\n", args[0], err)
		default:
			logger.Info("Switched to profile '%s'.\n", args[0])
		}
	},
}

// profileListCmd prints the stored profile names.
var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		names, err := newStore(settings).Names()
		if err != nil {
			logger.Error("[ERROR] Failed to load profiles: %v\n", err)
			return
		}
		if len(names) == 0 {
			logger.Warn("No profiles stored yet.\n")
			return
		}
		for _, name := range names {
			logger.Info("%s\n", name)
		}
	},
}

func init() {
	profileCreateCmd.Flags().StringVar(&userName, "user", "", "Git user.name for the profile")
	profileCreateCmd.Flags().StringVar(&userEmail, "email", "", "Git user.email for the profile")
	_ = profileCreateCmd.MarkFlagRequired("user")
	_ = profileCreateCmd.MarkFlagRequired("email")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileListCmd)
	rootCmd.AddCommand(profileCmd)
}
