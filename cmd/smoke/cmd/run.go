package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/smoke"
	"github.com/spf13/cobra"
)

var (
	runURL         string
	runConcurrency int
	runTimeout     time.Duration
	runOnly        []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run smoke cases against a gateway",
	Args:  cobra.NoArgs,
	RunE:  runSmoke,
}

func init() {
	runCmd.Flags().StringVar(&runURL, "url", "http://localhost:8080", "gateway base URL")
	runCmd.Flags().IntVar(&runConcurrency, "concurrency", 4, "number of cases in flight")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Second, "per-request timeout")
	runCmd.Flags().StringSliceVar(&runOnly, "only", nil, "run only the named cases (comma separated)")
	rootCmd.AddCommand(runCmd)
}

func runSmoke(cmd *cobra.Command, _ []string) error {
	cases, err := smoke.Filter(smoke.DefaultCases(), runOnly)
	if err != nil {
		return err
	}

	logger := logging.NewNop()
	if verbose {
		logger = logging.NewJSONWriter(cmd.ErrOrStderr(), logging.LevelInfo)
		defer func() { _ = logger.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := smoke.NewRunner(smoke.RunnerConfig{
		BaseURL:     runURL,
		Concurrency: runConcurrency,
		Timeout:     runTimeout,
		Logger:      logger,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running %d smoke case(s) against %s\n\n", len(cases), runURL)

	summary, err := runner.Run(ctx, cases)
	if err != nil {
		return err
	}

	for _, row := range summary.Results {
		mark := "PASS"
		if !row.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(out, "%s  %-20s %3d  %5dms", mark, row.Name, row.Status, row.DurationMs)
		if row.Message != "" {
			fmt.Fprintf(out, "  %s", row.Message)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%d passed, %d failed\n", summary.Passed, summary.Failed)

	if !summary.OK() {
		return fmt.Errorf("%d smoke case(s) failed", summary.Failed)
	}
	return nil
}
