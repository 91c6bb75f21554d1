package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
)

const defaultConcurrency = 4

type RunnerConfig struct {
	BaseURL     string
	Concurrency int
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *logging.Logger
}

// Runner posts smoke cases to a gateway on a bounded worker pool.
type Runner struct {
	baseURL     string
	concurrency int
	httpClient  *http.Client
	logger      *logging.Logger
}

type CaseResult struct {
	Name       string `json:"name"`
	Status     int    `json:"status"`
	Passed     bool   `json:"passed"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type Summary struct {
	Results []CaseResult `json:"results"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
}

func (s Summary) OK() bool {
	return s.Failed == 0
}

func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Runner{
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/",
		concurrency: concurrency,
		httpClient:  httpClient,
		logger:      logger,
	}
}

// Run executes every case and returns the results sorted by case name.
func (r *Runner) Run(ctx context.Context, cases []Case) (Summary, error) {
	var summary Summary
	if len(cases) == 0 {
		return summary, nil
	}

	pool, err := ants.NewPool(r.concurrency)
	if err != nil {
		return Summary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan CaseResult, len(cases))

	var workers sync.WaitGroup
	for _, c := range cases {
		c := c
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- r.runCase(ctx, c)
		}); err != nil {
			workers.Done()
			return Summary{}, fmt.Errorf("submit smoke case to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		if row.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, row)
	}
	sort.SliceStable(summary.Results, func(i, j int) bool {
		return summary.Results[i].Name < summary.Results[j].Name
	})

	return summary, nil
}

func (r *Runner) runCase(ctx context.Context, c Case) (row CaseResult) {
	start := time.Now()
	row.Name = c.Name
	defer func() {
		row.DurationMs = time.Since(start).Milliseconds()
	}()

	status, body, err := r.send(ctx, c)
	row.Status = status
	if err != nil {
		row.Message = err.Error()
		r.logger.WarnContext(ctx, "smoke case errored", "case", c.Name, "error", err)
		return row
	}

	if msg := check(c, status, body); msg != "" {
		row.Message = msg
		r.logger.WarnContext(ctx, "smoke case failed", "case", c.Name, "status", status, "reason", msg)
		return row
	}

	row.Passed = true
	r.logger.InfoContext(ctx, "smoke case passed", "case", c.Name, "status", status)
	return row
}

func (r *Runner) send(ctx context.Context, c Case) (int, []byte, error) {
	var body io.Reader
	if c.Body != "" {
		body = strings.NewReader(c.Body)
	}

	req, err := http.NewRequestWithContext(ctx, c.method(), r.baseURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", "smoke-"+c.Name)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// check returns an empty string when the response matches c.
func check(c Case, status int, body []byte) string {
	if status != c.WantStatus {
		return fmt.Sprintf("expected status %d, got %d", c.WantStatus, status)
	}
	if status == http.StatusNoContent {
		return ""
	}

	var envelope map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return fmt.Sprintf("response is not a JSON envelope: %v", err)
	}

	if c.WantResult {
		if _, ok := envelope["result"]; !ok {
			return "expected result key in envelope"
		}
		if _, ok := envelope["error"]; ok {
			return "unexpected error key in success envelope"
		}
		return ""
	}

	rawErr, ok := envelope["error"]
	if !ok {
		return "expected error key in envelope"
	}
	var msg string
	if err := sonic.Unmarshal(rawErr, &msg); err != nil {
		return fmt.Sprintf("error value is not a string: %v", err)
	}
	if c.WantErrorContains != "" && !strings.Contains(msg, c.WantErrorContains) {
		return fmt.Sprintf("expected error containing %q, got %q", c.WantErrorContains, msg)
	}
	return ""
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
