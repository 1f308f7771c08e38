package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a full demo scenario",
	Long: `Bootstrap the master data (territories, groups, items, warehouses,
price lists) and generate complete buying and selling document chains
against the configured database.

Individual flow failures are logged in the store's error log and do not
abort the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		summary, err := newSeeder(st, cfg).Run()
		if err != nil {
			return err
		}

		color.Green("✅ %s", summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
