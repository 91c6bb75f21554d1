package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/riskibarqy/statsapi-gateway/internal/smoke"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the smoke case catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMETHOD\tSTATUS\tDESCRIPTION")
		for _, c := range smoke.DefaultCases() {
			method := c.Method
			if method == "" {
				method = "POST"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.Name, method, c.WantStatus, c.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
