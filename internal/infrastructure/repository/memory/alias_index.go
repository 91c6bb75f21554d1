package memory

import (
	"fmt"
	"strings"
)

// NormalizeAlias lowercases and trims an alias or lookup key.
func NormalizeAlias(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// aliasIndex is an immutable many-to-one alias dictionary that remembers
// declaration order for suggestion scans.
type aliasIndex[T any] struct {
	aliases []string
	byAlias map[string]T
}

func newAliasIndex[T any]() *aliasIndex[T] {
	return &aliasIndex[T]{byAlias: make(map[string]T)}
}

// add registers record under every alias. It panics on an empty or duplicate
// alias since seeds are compiled in.
func (idx *aliasIndex[T]) add(kind string, record T, aliases []string) {
	for _, raw := range aliases {
		alias := NormalizeAlias(raw)
		if alias == "" {
			panic(fmt.Sprintf("memory: empty %s alias", kind))
		}
		if _, exists := idx.byAlias[alias]; exists {
			panic(fmt.Sprintf("memory: duplicate %s alias %q", kind, alias))
		}
		idx.byAlias[alias] = record
		idx.aliases = append(idx.aliases, alias)
	}
}

func (idx *aliasIndex[T]) get(alias string) (T, bool) {
	record, ok := idx.byAlias[NormalizeAlias(alias)]
	return record, ok
}

func (idx *aliasIndex[T]) list() []string {
	out := make([]string, len(idx.aliases))
	copy(out, idx.aliases)
	return out
}
