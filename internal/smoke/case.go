package smoke

import (
	"fmt"
	"net/http"
	"strings"
)

// Case is one canned request against a running gateway and the answer it
// should produce.
type Case struct {
	Name        string
	Description string
	Method      string
	Body        string
	WantStatus  int
	// WantResult requires a "result" key in the envelope. When false and
	// WantStatus is not 204, an "error" key is required instead.
	WantResult        bool
	WantErrorContains string
}

func (c Case) method() string {
	if c.Method == "" {
		return http.MethodPost
	}
	return c.Method
}

// DefaultCases is the live catalogue run by `smoke run`.
func DefaultCases() []Case {
	return []Case{
		{
			Name:        "teams_2024",
			Description: "MLB teams for the 2024 season",
			Body:        `{"command":"getTeamInfo","params":{"queryParams":{"season":"2024","sportId":"1"}}}`,
			WantStatus:  http.StatusOK,
			WantResult:  true,
		},
		{
			Name:        "judge_info",
			Description: "Aaron Judge player info",
			Body:        `{"command":"getPlayerInfo","params":{"pathParams":{"playerId":"592450"}}}`,
			WantStatus:  http.StatusOK,
			WantResult:  true,
		},
		{
			Name:        "yankees_roster",
			Description: "Yankees active roster",
			Body:        `{"command":"getRoster","params":{"pathParams":{"teamId":147},"queryParams":{"rosterType":"active"}}}`,
			WantStatus:  http.StatusOK,
			WantResult:  true,
		},
		{
			Name:        "schedule",
			Description: "MLB schedule for a fixed date",
			Body:        `{"command":"getSchedule","params":{"queryParams":{"sportId":1,"date":"2024-07-04"}}}`,
			WantStatus:  http.StatusOK,
			WantResult:  true,
		},
		{
			Name:        "standings",
			Description: "AL and NL standings for 2024",
			Body:        `{"command":"getStandings","params":{"queryParams":{"leagueId":"103,104","season":"2024"}}}`,
			WantStatus:  http.StatusOK,
			WantResult:  true,
		},
		{
			Name:        "resolve_team_hit",
			Description: "resolve a team nickname",
			Body:        `{"command":"resolve_team","params":{"name":"yankees"}}`,
			WantStatus:  http.StatusOK,
			WantResult:  true,
		},
		{
			Name:              "resolve_team_miss",
			Description:       "unknown team name yields suggestions",
			Body:              `{"command":"resolve_team","params":{"name":"boston sox"}}`,
			WantStatus:        http.StatusBadRequest,
			WantErrorContains: "did you mean",
		},
		{
			Name:              "invalid_command",
			Description:       "unknown command lists the vocabulary",
			Body:              `{"command":"invalidCommand","params":{}}`,
			WantStatus:        http.StatusBadRequest,
			WantErrorContains: "Available commands",
		},
		{
			Name:              "missing_command",
			Description:       "body without a command",
			Body:              `{"params":{}}`,
			WantStatus:        http.StatusBadRequest,
			WantErrorContains: "Missing 'command' parameter",
		},
		{
			Name:              "invalid_json",
			Description:       "malformed request body",
			Body:              `{"command":`,
			WantStatus:        http.StatusBadRequest,
			WantErrorContains: "Invalid JSON",
		},
		{
			Name:              "method_not_allowed",
			Description:       "GET on the command endpoint",
			Method:            http.MethodGet,
			WantStatus:        http.StatusMethodNotAllowed,
			WantErrorContains: "Only POST",
		},
		{
			Name:        "cors_preflight",
			Description: "OPTIONS preflight",
			Method:      http.MethodOptions,
			WantStatus:  http.StatusNoContent,
		},
	}
}

// Filter keeps the cases named in only, in catalogue order. An empty only
// keeps everything.
func Filter(cases []Case, only []string) ([]Case, error) {
	if len(only) == 0 {
		return cases, nil
	}

	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		name = strings.TrimSpace(name)
		if name != "" {
			wanted[name] = false
		}
	}

	out := make([]Case, 0, len(wanted))
	for _, c := range cases {
		if _, ok := wanted[c.Name]; ok {
			wanted[c.Name] = true
			out = append(out, c)
		}
	}

	var unknown []string
	for name, seen := range wanted {
		if !seen {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown smoke case(s): %s", strings.Join(sortedCopy(unknown), ", "))
	}

	return out, nil
}
