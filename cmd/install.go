package cmd

import (
	"github.com/spf13/cobra"

	"gitup/internal/execx"
	"gitup/internal/installer"
	"gitup/internal/logger"
)

// installCmd checks for git and installs it via the OS package manager when
// it is missing.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Git if it is not already present",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		inst := installer.New(execx.System{}, settings.GitBinary)
		if inst.Installed() {
			logger.Info("Git is already installed.\n")
			return
		}
		if err := inst.Install(); err != nil {
			logger.Error("[ERROR] Failed to install Git: %v\n", err)
			return
		}
		logger.Info("Git installed successfully.\n")
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
