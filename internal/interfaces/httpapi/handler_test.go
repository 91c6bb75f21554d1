package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/statsapi-gateway/internal/domain/command"
	"github.com/riskibarqy/statsapi-gateway/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/statsapi-gateway/internal/mocks/usecase"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type responseBody struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func newTestRouter(t *testing.T, provider usecase.StatsProvider) http.Handler {
	t.Helper()

	resolver := usecase.NewResolverService(
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
	)
	dispatcher := usecase.NewDispatchService(command.DefaultRegistry(), resolver, provider, logging.NewNop())

	return NewRouter(NewHandler(dispatcher, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, responseBody) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out responseBody
	if rec.Body.Len() > 0 {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestServeCommand_OptionsReturnsNoContent(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, _ := doRequest(t, router, http.MethodOptions, "/", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

func TestServeCommand_RejectsNonPost(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec, body := doRequest(t, router, method, "/", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "Only POST requests are allowed", body.Error)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestServeCommand_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	for _, payload := range []string{`not json{`, ``, `null`, `[1,2]`, `"getTeamInfo"`, `{"command":`} {
		rec, body := doRequest(t, router, http.MethodPost, "/", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Contains(t, body.Error, "Invalid JSON", payload)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestServeCommand_BodyTooLarge(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	payload := `{"command":"getTeamInfo","params":{"name":"` + strings.Repeat("a", maxRequestBodyBytes) + `"}}`
	rec, body := doRequest(t, router, http.MethodPost, "/", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body.Error, "exceeds")
}

func TestServeCommand_MissingCommand(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, body := doRequest(t, router, http.MethodPost, "/", `{"params":{"queryParams":{"season":"2024"}}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing 'command' parameter", body.Error)
}

func TestServeCommand_UnknownCommand(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, body := doRequest(t, router, http.MethodPost, "/", `{"command":"xyz"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body.Error, "Unknown command")
	assert.Contains(t, body.Error, "Available commands")
}

func TestServeCommand_ProxiesUpstreamPayload(t *testing.T) {
	provider := usecasemock.NewStatsProvider(t)
	payload := json.RawMessage(`{"teams":[{"id":147,"name":"New York Yankees"}]}`)
	provider.
		On("Fetch", mock.Anything, "teams", "sportId=1&season=2024").
		Return(payload, nil).
		Once()

	router := newTestRouter(t, provider)
	rec, body := doRequest(t, router, http.MethodPost, "/any/path",
		`{"command":"getTeamInfo","params":{"queryParams":{"sportId":1,"season":"2024"}}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Error)
	assert.JSONEq(t, string(payload), string(body.Result))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServeCommand_UpstreamNotFoundMapsToBadGateway(t *testing.T) {
	provider := usecasemock.NewStatsProvider(t)
	provider.
		On("Fetch", mock.Anything, "people/0", "").
		Return(nil, &usecase.UpstreamStatusError{StatusCode: http.StatusNotFound, StatusText: "Not Found"}).
		Once()

	router := newTestRouter(t, provider)
	rec, body := doRequest(t, router, http.MethodPost, "/", `{"command":"getPlayerInfo","params":{"pathParams":{"playerId":0}}}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream returned 404: Not Found", body.Error)
}

func TestServeCommand_TransportFailureMapsToInternal(t *testing.T) {
	provider := usecasemock.NewStatsProvider(t)
	provider.
		On("Fetch", mock.Anything, "venues", "").
		Return(nil, errors.New("connection reset by peer")).
		Once()

	router := newTestRouter(t, provider)
	rec, body := doRequest(t, router, http.MethodPost, "/", `{"command":"getVenues"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error: connection reset by peer", body.Error)
}

func TestServeCommand_ResolveTeam(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, body := doRequest(t, router, http.MethodPost, "/", `{"command":"resolve_team","params":{"team":"Yankees"}}`)
	require.Equal(t, http.StatusOK, rec.Code, body.Error)
	assert.JSONEq(t,
		`{"id":147,"name":"New York Yankees","abbreviation":"NYY","query":"Yankees","resolved":true}`,
		string(body.Result))
}

func TestServeCommand_ResolvePlayerMiss(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, body := doRequest(t, router, http.MethodPost, "/", `{"command":"resolve_player","params":{"playerName":"aaron judgee"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body.Error, "did you mean: aaron judge, judge?")
	assert.Contains(t, body.Error, `"aaron judgee"`)
}

func TestServeCommand_ResolveMissingName(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, body := doRequest(t, router, http.MethodPost, "/", `{"command":"resolve_player","params":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing name parameter", body.Error)
}

func TestServeCommand_Idempotent(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))
	payload := `{"command":"resolve_team","params":{"name":"boston sox"}}`

	first, _ := doRequest(t, router, http.MethodPost, "/", payload)
	second, _ := doRequest(t, router, http.MethodPost, "/", payload)

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewStatsProvider(t))

	rec, body := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Result))
}

func TestRecoverPanic_WritesInternalEnvelope(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil registry")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error: nil registry"}`, rec.Body.String())
}
