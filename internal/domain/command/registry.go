package command

// Upstream command names.
const (
	GetTeamInfo     = "getTeamInfo"
	GetRoster       = "getRoster"
	GetPlayerStats  = "getPlayerStats"
	GetSchedule     = "getSchedule"
	GetLiveGame     = "getLiveGame"
	GetStandings    = "getStandings"
	GetGameBoxscore = "getGameBoxscore"
	GetPlayerInfo   = "getPlayerInfo"
	GetSeasons      = "getSeasons"
	GetVenues       = "getVenues"
)

// Resolver command names.
const (
	ResolveTeam   = "resolve_team"
	ResolvePlayer = "resolve_player"
)

var upstreamCommands = []Spec{
	{Name: GetTeamInfo, PathTemplate: "teams"},
	{Name: GetRoster, PathTemplate: "teams/{teamId}/roster"},
	{Name: GetPlayerStats, PathTemplate: "people/{playerId}/stats"},
	{Name: GetSchedule, PathTemplate: "schedule"},
	{Name: GetLiveGame, PathTemplate: "game/{gamePk}/feed/live"},
	{Name: GetStandings, PathTemplate: "standings"},
	{Name: GetGameBoxscore, PathTemplate: "game/{gamePk}/boxscore"},
	{Name: GetPlayerInfo, PathTemplate: "people/{playerId}"},
	{Name: GetSeasons, PathTemplate: "seasons"},
	{Name: GetVenues, PathTemplate: "venues"},
}

var resolverCommands = []ResolverCommand{
	{Name: ResolveTeam, Kind: ResolverTeam},
	{Name: ResolvePlayer, Kind: ResolverPlayer},
}

// ResolverCommand maps a command name to an in-process resolver.
type ResolverCommand struct {
	Name string
	Kind ResolverKind
}

// Registry is the read-only command vocabulary. Build one with DefaultRegistry
// or NewRegistry.
type Registry struct {
	specs     map[string]Spec
	resolvers map[string]ResolverKind
	names     []string
}

// DefaultRegistry returns the gateway's fixed command vocabulary.
func DefaultRegistry() *Registry {
	return NewRegistry(upstreamCommands, resolverCommands)
}

// NewRegistry builds a registry listing upstream commands first, then resolver
// commands, each in the given order. Duplicate names panic: the vocabulary is
// static.
func NewRegistry(specs []Spec, resolvers []ResolverCommand) *Registry {
	r := &Registry{
		specs:     make(map[string]Spec, len(specs)),
		resolvers: make(map[string]ResolverKind, len(resolvers)),
		names:     make([]string, 0, len(specs)+len(resolvers)),
	}

	for _, spec := range specs {
		r.add(spec.Name)
		r.specs[spec.Name] = spec
	}
	for _, item := range resolvers {
		r.add(item.Name)
		r.resolvers[item.Name] = item.Kind
	}

	return r
}

func (r *Registry) add(name string) {
	if name == "" {
		panic("command: empty command name")
	}
	if _, ok := r.specs[name]; ok {
		panic("command: duplicate command " + name)
	}
	if _, ok := r.resolvers[name]; ok {
		panic("command: duplicate command " + name)
	}
	r.names = append(r.names, name)
}

// Lookup returns the upstream spec registered for name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// LookupResolver returns the resolver kind registered for name.
func (r *Registry) LookupResolver(name string) (ResolverKind, bool) {
	kind, ok := r.resolvers[name]
	return kind, ok
}

// Names lists every command, upstream commands first, in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
