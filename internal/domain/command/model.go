package command

import "strings"

// Spec maps a command name to the upstream path template it proxies.
type Spec struct {
	Name         string
	PathTemplate string
}

// ResolverKind selects which alias dictionary a resolver command consults.
type ResolverKind string

const (
	ResolverTeam   ResolverKind = "team"
	ResolverPlayer ResolverKind = "player"
)

func (k ResolverKind) String() string {
	return string(k)
}

// Title is the kind as used at the start of a sentence.
func (k ResolverKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
