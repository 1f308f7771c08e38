package cmd

import (
	"github.com/Lumos-Labs-HQ/seedling/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default seedling.config.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}
		color.Green("✅ Created %s", config.FileName)
		color.Cyan("Set your database connection in the DATABASE_URL environment variable, then run 'seedling sync'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
