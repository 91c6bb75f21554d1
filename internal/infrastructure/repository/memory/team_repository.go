package memory

import (
	"context"

	"github.com/riskibarqy/statsapi-gateway/internal/domain/team"
)

// TeamSeed is a club together with every alias that should resolve to it.
type TeamSeed struct {
	Team    team.Team
	Aliases []string
}

// TeamRepository is a read-only alias dictionary of MLB clubs.
type TeamRepository struct {
	index *aliasIndex[team.Team]
}

func NewTeamRepository(seeds []TeamSeed) *TeamRepository {
	index := newAliasIndex[team.Team]()
	for _, seed := range seeds {
		if err := seed.Team.Validate(); err != nil {
			panic("memory: invalid team seed: " + err.Error())
		}
		index.add("team", seed.Team, seed.Aliases)
	}

	return &TeamRepository{index: index}
}

func (r *TeamRepository) GetByAlias(_ context.Context, alias string) (team.Team, bool, error) {
	item, ok := r.index.get(alias)
	return item, ok, nil
}

func (r *TeamRepository) ListAliases(_ context.Context) ([]string, error) {
	return r.index.list(), nil
}
