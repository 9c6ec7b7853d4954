package cmd

import (
	"github.com/spf13/cobra"

	"gitup/internal/backup"
	"gitup/internal/logger"
)

// backupCmd snapshots the global git identity keys to a flat file.
var backupCmd = &cobra.Command{
	Use:   "backup [path]",
	Short: "Back up the global Git identity to a file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		path := settings.BackupFile
		if len(args) == 1 {
			path = args[0]
		}
		if err := backup.Backup(path, newBridge(settings)); err != nil {
			logger.Error("[ERROR] Failed to back up configuration: %v\n", err)
			return
		}
		logger.Info("Configuration backed up to '%s'.\n", path)
	},
}

// restoreCmd applies a backup file back into the global git configuration.
var restoreCmd = &cobra.Command{
	Use:   "restore [path]",
	Short: "Restore the global Git identity from a backup file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return
		}

		path := settings.BackupFile
		if len(args) == 1 {
			path = args[0]
		}
		if err := backup.Restore(path, newBridge(settings)); err != nil {
			logger.Error("[ERROR] Failed to restore configuration: %v\n", err)
			return
		}
		logger.Info("Configuration restored from '%s'.\n", path)
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
