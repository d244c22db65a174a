package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edsim/edsim/sim/compare"
)

var (
	compareScenarioFile string   // Optional YAML scenario
	comparePolicies     []string // Policy list override
)

// compareCmd runs the comparison harness: every listed policy under an
// identical seed-controlled workload.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare queue policies under an identical patient load",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := compare.DefaultScenario()
		if compareScenarioFile != "" {
			loaded, err := compare.LoadScenario(compareScenarioFile)
			if err != nil {
				return err
			}
			sc = loaded
		}
		if len(comparePolicies) > 0 {
			sc.Policies = comparePolicies
		}

		result, err := compare.Run(sc)
		if err != nil {
			return err
		}
		fmt.Print(compare.Render(result))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareScenarioFile, "scenario", "c", "", "Path to a YAML scenario file")
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", nil, "Comma-separated policy names (overrides the scenario)")

	rootCmd.AddCommand(compareCmd)
}
