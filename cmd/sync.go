package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncModules []string

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create missing database tables for registered record types",
	Long: `Create the physical table of every registered record type that does
not have one yet. Existing tables are left untouched; single record
types have no table and are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := st.SyncTables(modulesOrDefault(syncModules, cfg))
		if err != nil {
			return err
		}

		for _, name := range report.Created {
			color.Green("✅ created %s", name)
		}
		for _, name := range report.Skipped {
			color.Yellow("   skipped %s", name)
		}
		for name, msg := range report.Errors {
			color.Red("❌ %s: %s", name, msg)
		}

		fmt.Printf("\n%d created, %d skipped, %d errors\n",
			len(report.Created), len(report.Skipped), len(report.Errors))
		if len(report.Errors) > 0 {
			return fmt.Errorf("%d tables failed to sync", len(report.Errors))
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringSliceVarP(&syncModules, "modules", "m", nil, "Modules to sync (default: all)")
	rootCmd.AddCommand(syncCmd)
}
