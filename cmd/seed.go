package cmd

import (
	"os"

	"github.com/Lumos-Labs-HQ/seedling/internal/seeder"
	"github.com/spf13/cobra"
)

var (
	seedModules []string
	seedPolicy  string
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed one record per empty record type",
	Long: `Walk every record type of the selected modules and create one record
with synthesized field values wherever the type is empty. With
--policy sparse, types with a single record are seeded too.

Child tables and singles are skipped; individual failures never halt the
sweep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := seeder.ParsePolicy(seedPolicy)
		if err != nil {
			return err
		}

		st, cfg, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		_, err = newSeeder(st, cfg).Sweep(policy, modulesOrDefault(seedModules, cfg), os.Stdout)
		return err
	},
}

func init() {
	seedCmd.Flags().StringSliceVarP(&seedModules, "modules", "m", nil, "Modules to sweep (default: all)")
	seedCmd.Flags().StringVar(&seedPolicy, "policy", "empty", "Seeding policy: empty or sparse")
	rootCmd.AddCommand(seedCmd)
}
