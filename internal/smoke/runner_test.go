package smoke

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCases_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range DefaultCases() {
		require.NotEmpty(t, c.Name)
		assert.False(t, seen[c.Name], "duplicate case %q", c.Name)
		seen[c.Name] = true
	}
}

func TestFilter(t *testing.T) {
	cases := DefaultCases()

	all, err := Filter(cases, nil)
	require.NoError(t, err)
	assert.Len(t, all, len(cases))

	picked, err := Filter(cases, []string{"invalid_command", " teams_2024 "})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "teams_2024", picked[0].Name)
	assert.Equal(t, "invalid_command", picked[1].Name)

	_, err = Filter(cases, []string{"teams_2024", "nope", "also_nope"})
	require.Error(t, err)
	assert.Equal(t, "unknown smoke case(s): also_nope, nope", err.Error())
}

func TestCheck(t *testing.T) {
	ok := Case{Name: "ok", WantStatus: http.StatusOK, WantResult: true}
	miss := Case{Name: "miss", WantStatus: http.StatusBadRequest, WantErrorContains: "did you mean"}
	preflight := Case{Name: "preflight", WantStatus: http.StatusNoContent}

	assert.Empty(t, check(ok, http.StatusOK, []byte(`{"result":{"teams":[]}}`)))
	assert.Contains(t, check(ok, http.StatusBadGateway, []byte(`{"error":"x"}`)), "expected status 200")
	assert.Equal(t, "expected result key in envelope", check(ok, http.StatusOK, []byte(`{}`)))
	assert.Contains(t, check(ok, http.StatusOK, []byte(`<html>`)), "not a JSON envelope")

	assert.Empty(t, check(miss, http.StatusBadRequest, []byte(`{"error":"Team not found: \"boston sox\", did you mean: boston red sox?"}`)))
	assert.Contains(t, check(miss, http.StatusBadRequest, []byte(`{"error":"nope"}`)), "expected error containing")
	assert.Equal(t, "expected error key in envelope", check(miss, http.StatusBadRequest, []byte(`{"result":1}`)))

	assert.Empty(t, check(preflight, http.StatusNoContent, nil))
}

func TestRunner_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("X-Request-ID"), "smoke-"))
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"result":{"ok":true}}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(`{"error":"Only POST requests are allowed"}`))
		}
	}))
	defer server.Close()

	runner := NewRunner(RunnerConfig{BaseURL: server.URL, Concurrency: 2, Logger: logging.NewNop()})
	cases := []Case{
		{Name: "b_post", Body: `{"command":"getSeasons"}`, WantStatus: http.StatusOK, WantResult: true},
		{Name: "a_get", Method: http.MethodGet, WantStatus: http.StatusMethodNotAllowed, WantErrorContains: "Only POST"},
		{Name: "c_wrong", Body: `{"command":"x"}`, WantStatus: http.StatusBadRequest},
		{Name: "d_preflight", Method: http.MethodOptions, WantStatus: http.StatusNoContent},
	}

	summary, err := runner.Run(context.Background(), cases)
	require.NoError(t, err)
	require.Len(t, summary.Results, 4)
	assert.Equal(t, 3, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.OK())

	assert.Equal(t, "a_get", summary.Results[0].Name)
	assert.True(t, summary.Results[0].Passed)
	assert.Equal(t, "c_wrong", summary.Results[2].Name)
	assert.False(t, summary.Results[2].Passed)
	assert.Equal(t, http.StatusOK, summary.Results[2].Status)
}

func TestRunner_UnreachableGateway(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	runner := NewRunner(RunnerConfig{BaseURL: server.URL, Logger: logging.NewNop()})
	summary, err := runner.Run(context.Background(), []Case{{Name: "teams", Body: `{}`, WantStatus: http.StatusOK}})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.False(t, summary.Results[0].Passed)
	assert.Contains(t, summary.Results[0].Message, "send request")
}

func TestRunner_EmptyCatalogue(t *testing.T) {
	summary, err := NewRunner(RunnerConfig{BaseURL: "http://localhost"}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, summary.OK())
	assert.Empty(t, summary.Results)
}
