package memory

import (
	"context"

	"github.com/riskibarqy/statsapi-gateway/internal/domain/player"
)

// PlayerSeed is a player together with every alias that should resolve to them.
type PlayerSeed struct {
	Player  player.Player
	Aliases []string
}

// PlayerRepository is a read-only alias dictionary of MLB players.
type PlayerRepository struct {
	index *aliasIndex[player.Player]
}

func NewPlayerRepository(seeds []PlayerSeed) *PlayerRepository {
	index := newAliasIndex[player.Player]()
	for _, seed := range seeds {
		if err := seed.Player.Validate(); err != nil {
			panic("memory: invalid player seed: " + err.Error())
		}
		index.add("player", seed.Player, seed.Aliases)
	}

	return &PlayerRepository{index: index}
}

func (r *PlayerRepository) GetByAlias(_ context.Context, alias string) (player.Player, bool, error) {
	item, ok := r.index.get(alias)
	return item, ok, nil
}

func (r *PlayerRepository) ListAliases(_ context.Context) ([]string, error) {
	return r.index.list(), nil
}
