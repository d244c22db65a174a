package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edsim/edsim/sim/calibrate"
)

var analyzeFiles []string // Dataset CSV paths

// analyzeCmd prints the occupancy-vs-stay-duration binning: the descriptive
// "tipping point" view of how stays stretch once occupancy passes capacity.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Bin occupancy rates and report the median stay per bin",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := calibrate.LoadDataset(analyzeFiles, calibrate.DefaultColumns())
		if err != nil {
			return err
		}
		bins := calibrate.OccupancyBins(records)

		fmt.Println("=== Median Stay by Occupancy Level ===")
		fmt.Printf("%-10s %8s %14s\n", "Occupancy", "Records", "Median Stay")
		for _, b := range bins {
			fmt.Printf("%-10s %8d %12.2fh\n", b.Label, b.Count, b.MedianStayHours)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeFiles, "data", nil, "Occupancy dataset CSV file(s)")
	_ = analyzeCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(analyzeCmd)
}
