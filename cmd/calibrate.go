package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edsim/edsim/sim/calibrate"
)

var (
	calibrateFiles    []string // Dataset CSV paths
	calibrateFacility string   // Facility name substring
)

// calibrateCmd derives simulation parameters from occupancy records.
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Derive capacity, service time, and arrival rate from occupancy records",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := calibrate.LoadDataset(calibrateFiles, calibrate.DefaultColumns())
		if err != nil {
			return err
		}
		params, err := calibrate.Calibrate(records, calibrateFacility)
		if err != nil {
			return err
		}

		fmt.Println("=== Calibration ===")
		fmt.Printf("Facility match       : %q\n", calibrateFacility)
		fmt.Printf("Usable records       : %d (%d dropped)\n", params.MatchedRecords, params.SkippedRecords)
		fmt.Printf("Capacity (beds)      : %d\n", params.Capacity)
		fmt.Printf("Median service time  : %.2f hours\n", params.MeanServiceHours)
		fmt.Printf("Arrival rate         : %.2f patients/hour (Little's Law)\n", params.ArrivalRatePerHour)

		thresholds, err := calibrate.DurationThresholds(records, calibrateFacility)
		if err != nil {
			return err
		}
		fmt.Printf("SHORT threshold (p33): %.2f hours\n", thresholds.Short)
		fmt.Printf("LONG threshold (p66) : %.2f hours\n", thresholds.Long)
		return nil
	},
}

func init() {
	calibrateCmd.Flags().StringSliceVar(&calibrateFiles, "data", nil, "Occupancy dataset CSV file(s)")
	calibrateCmd.Flags().StringVar(&calibrateFacility, "facility", "ROYAL VICTORIA", "Facility name substring (case-insensitive)")
	_ = calibrateCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(calibrateCmd)
}
