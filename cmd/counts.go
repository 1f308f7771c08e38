package cmd

import (
	"os"

	"github.com/Lumos-Labs-HQ/seedling/internal/report"
	"github.com/spf13/cobra"
)

var countsModules []string

// countsCmd represents the counts command
var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Report record counts per record type",
	Long:  `Print the current row count of every record type, grouped by module.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		return report.Counts(st, modulesOrDefault(countsModules, cfg), os.Stdout)
	},
}

func init() {
	countsCmd.Flags().StringSliceVarP(&countsModules, "modules", "m", nil, "Modules to report (default: all)")
	rootCmd.AddCommand(countsCmd)
}
