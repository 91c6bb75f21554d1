package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_LookupEveryUpstreamCommand(t *testing.T) {
	r := DefaultRegistry()

	want := map[string]string{
		GetTeamInfo:     "teams",
		GetRoster:       "teams/{teamId}/roster",
		GetPlayerStats:  "people/{playerId}/stats",
		GetSchedule:     "schedule",
		GetLiveGame:     "game/{gamePk}/feed/live",
		GetStandings:    "standings",
		GetGameBoxscore: "game/{gamePk}/boxscore",
		GetPlayerInfo:   "people/{playerId}",
		GetSeasons:      "seasons",
		GetVenues:       "venues",
	}
	for name, template := range want {
		spec, ok := r.Lookup(name)
		require.True(t, ok, "missing command %s", name)
		assert.Equal(t, name, spec.Name)
		assert.Equal(t, template, spec.PathTemplate)

		_, isResolver := r.LookupResolver(name)
		assert.False(t, isResolver, "%s must not be a resolver", name)
	}
}

func TestDefaultRegistry_ResolverCommands(t *testing.T) {
	r := DefaultRegistry()

	kind, ok := r.LookupResolver(ResolveTeam)
	require.True(t, ok)
	assert.Equal(t, ResolverTeam, kind)

	kind, ok = r.LookupResolver(ResolvePlayer)
	require.True(t, ok)
	assert.Equal(t, ResolverPlayer, kind)

	_, ok = r.Lookup(ResolveTeam)
	assert.False(t, ok)
}

func TestDefaultRegistry_NamesInDeclarationOrder(t *testing.T) {
	names := DefaultRegistry().Names()

	assert.Equal(t, []string{
		"getTeamInfo", "getRoster", "getPlayerStats", "getSchedule", "getLiveGame",
		"getStandings", "getGameBoxscore", "getPlayerInfo", "getSeasons", "getVenues",
		"resolve_team", "resolve_player",
	}, names)

	names[0] = "mutated"
	assert.Equal(t, "getTeamInfo", DefaultRegistry().Names()[0])
}

func TestRegistry_UnknownCommand(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Lookup("xyz")
	assert.False(t, ok)
	_, ok = r.LookupResolver("xyz")
	assert.False(t, ok)
	_, ok = r.Lookup("GETTEAMINFO")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry([]Spec{{Name: "a", PathTemplate: "x"}}, []ResolverCommand{{Name: "a", Kind: ResolverTeam}})
	})
}

func TestResolverKind_Title(t *testing.T) {
	assert.Equal(t, "Team", ResolverTeam.Title())
	assert.Equal(t, "Player", ResolverPlayer.Title())
}
