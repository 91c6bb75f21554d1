package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Live smoke tests for the stats API gateway",
	Long: `smoke posts a catalogue of canned commands to a running gateway and
checks each answer's status code and envelope shape.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every case as it finishes")
}
