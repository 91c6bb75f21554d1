package team

import "context"

// Repository looks teams up by normalized alias.
type Repository interface {
	GetByAlias(ctx context.Context, alias string) (Team, bool, error)
	ListAliases(ctx context.Context) ([]string, error)
}
