package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/statsapi-gateway/internal/domain/command"
	"github.com/riskibarqy/statsapi-gateway/internal/domain/player"
	"github.com/riskibarqy/statsapi-gateway/internal/domain/team"
)

const maxSuggestions = 3

// TeamResolution is returned when a team name resolves.
type TeamResolution struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Query        string `json:"query"`
	Resolved     bool   `json:"resolved"`
}

// PlayerResolution is returned when a player name resolves.
type PlayerResolution struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Query    string `json:"query"`
	Resolved bool   `json:"resolved"`
}

type ResolverService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewResolverService(teamRepo team.Repository, playerRepo player.Repository) *ResolverService {
	return &ResolverService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// Resolve dispatches to the resolver for kind and returns its record.
func (s *ResolverService) Resolve(ctx context.Context, kind command.ResolverKind, rawName string) (any, error) {
	switch kind {
	case command.ResolverTeam:
		return s.ResolveTeam(ctx, rawName)
	case command.ResolverPlayer:
		return s.ResolvePlayer(ctx, rawName)
	default:
		return nil, fmt.Errorf("unsupported resolver kind %q", kind)
	}
}

func (s *ResolverService) ResolveTeam(ctx context.Context, rawName string) (TeamResolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResolveTeam")
	defer span.End()

	query := normalizeName(rawName)
	if query == "" {
		return TeamResolution{}, invalidInput("missing name parameter")
	}

	item, ok, err := s.teamRepo.GetByAlias(ctx, query)
	if err != nil {
		return TeamResolution{}, fmt.Errorf("get team by alias: %w", err)
	}
	if !ok {
		aliases, err := s.teamRepo.ListAliases(ctx)
		if err != nil {
			return TeamResolution{}, fmt.Errorf("list team aliases: %w", err)
		}
		return TeamResolution{}, &ResolutionMissError{
			Kind:        command.ResolverTeam.Title(),
			Query:       rawName,
			Suggestions: suggestAliases(query, aliases),
		}
	}

	return TeamResolution{
		ID:           item.ID,
		Name:         item.Name,
		Abbreviation: item.Abbreviation,
		Query:        rawName,
		Resolved:     true,
	}, nil
}

func (s *ResolverService) ResolvePlayer(ctx context.Context, rawName string) (PlayerResolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.ResolvePlayer")
	defer span.End()

	query := normalizeName(rawName)
	if query == "" {
		return PlayerResolution{}, invalidInput("missing name parameter")
	}

	item, ok, err := s.playerRepo.GetByAlias(ctx, query)
	if err != nil {
		return PlayerResolution{}, fmt.Errorf("get player by alias: %w", err)
	}
	if !ok {
		aliases, err := s.playerRepo.ListAliases(ctx)
		if err != nil {
			return PlayerResolution{}, fmt.Errorf("list player aliases: %w", err)
		}
		return PlayerResolution{}, &ResolutionMissError{
			Kind:        command.ResolverPlayer.Title(),
			Query:       rawName,
			Suggestions: suggestAliases(query, aliases),
		}
	}

	return PlayerResolution{
		ID:       item.ID,
		Name:     item.Name,
		Team:     item.Team,
		Query:    rawName,
		Resolved: true,
	}, nil
}

func normalizeName(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// suggestAliases picks up to maxSuggestions aliases, in dictionary order, that
// either contain the first token of query or whose own first token occurs in
// query. query must already be normalized and non-empty.
func suggestAliases(query string, aliases []string) []string {
	token := firstToken(query)
	if token == "" {
		return nil
	}

	var out []string
	for _, alias := range aliases {
		head := firstToken(alias)
		if head == "" {
			continue
		}
		if strings.Contains(alias, token) || strings.Contains(query, head) {
			out = append(out, alias)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

func firstToken(v string) string {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
