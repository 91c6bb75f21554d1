package player

import "context"

// Repository looks players up by normalized alias.
type Repository interface {
	GetByAlias(ctx context.Context, alias string) (Player, bool, error)
	ListAliases(ctx context.Context) ([]string, error)
}
