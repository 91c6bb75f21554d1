package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/statsapi-gateway/internal/domain/command"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/urlbuilder"
)

// StatsProvider issues a single GET against the statistics API. path is
// relative to the provider's base URL and rawQuery is already encoded.
type StatsProvider interface {
	Fetch(ctx context.Context, path, rawQuery string) (json.RawMessage, error)
}

// UpstreamStatusError is a non-2xx answer from the statistics API.
type UpstreamStatusError struct {
	StatusCode int
	StatusText string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.StatusText)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstream
}

// CommandRequest is the body accepted by the gateway.
type CommandRequest struct {
	Command string        `json:"command" validate:"required"`
	Params  CommandParams `json:"params"`
}

type CommandParams struct {
	PathParams  urlbuilder.Params `json:"pathParams"`
	QueryParams urlbuilder.Params `json:"queryParams"`
	Name        string            `json:"name"`
	Team        string            `json:"team"`
	TeamName    string            `json:"teamName"`
	Player      string            `json:"player"`
	PlayerName  string            `json:"playerName"`
}

// ResolverName picks the first non-empty name field accepted by kind.
func (p CommandParams) ResolverName(kind command.ResolverKind) string {
	var candidates []string
	switch kind {
	case command.ResolverTeam:
		candidates = []string{p.Name, p.Team, p.TeamName}
	case command.ResolverPlayer:
		candidates = []string{p.Name, p.Player, p.PlayerName}
	}
	for _, v := range candidates {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

type DispatchService struct {
	registry *command.Registry
	resolver *ResolverService
	provider StatsProvider
	logger   *logging.Logger
}

func NewDispatchService(
	registry *command.Registry,
	resolver *ResolverService,
	provider StatsProvider,
	logger *logging.Logger,
) *DispatchService {
	if registry == nil {
		registry = command.DefaultRegistry()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DispatchService{
		registry: registry,
		resolver: resolver,
		provider: provider,
		logger:   logger,
	}
}

// Dispatch runs one command. The result is either a resolver record or the raw
// upstream payload, ready to be placed in the success envelope.
func (s *DispatchService) Dispatch(ctx context.Context, req CommandRequest) (any, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DispatchService.Dispatch")
	defer span.End()

	name := strings.TrimSpace(req.Command)
	if name == "" {
		return nil, invalidInput("Missing 'command' parameter")
	}

	if kind, ok := s.registry.LookupResolver(name); ok {
		if s.resolver == nil {
			return nil, fmt.Errorf("%w: resolver is not configured", ErrDependencyUnavailable)
		}
		return s.resolver.Resolve(ctx, kind, req.Params.ResolverName(kind))
	}

	spec, ok := s.registry.Lookup(name)
	if !ok {
		return nil, invalidInput(fmt.Sprintf("Unknown command: %s. Available commands: %s",
			req.Command, strings.Join(s.registry.Names(), ", ")))
	}

	return s.fetch(ctx, spec, req.Params)
}

func (s *DispatchService) fetch(ctx context.Context, spec command.Spec, params CommandParams) (json.RawMessage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DispatchService.fetch")
	defer span.End()

	if s.provider == nil {
		return nil, fmt.Errorf("%w: stats provider is not configured", ErrDependencyUnavailable)
	}

	path := urlbuilder.BuildPath(spec.PathTemplate, params.PathParams)
	if missing := urlbuilder.Unfilled(spec.PathTemplate, params.PathParams); len(missing) > 0 {
		s.logger.DebugContext(ctx, "path placeholders left unfilled",
			"command", spec.Name,
			"placeholders", missing,
		)
	}
	query := urlbuilder.BuildQuery(params.QueryParams)

	payload, err := s.provider.Fetch(ctx, path, query)
	if err != nil {
		var statusErr *UpstreamStatusError
		switch {
		case errors.As(err, &statusErr):
			return nil, statusErr
		case errors.Is(err, ErrUpstream):
			return nil, err
		default:
			return nil, &messageError{
				msg:  "internal server error: " + err.Error(),
				kind: ErrInternal,
				err:  err,
			}
		}
	}

	return payload, nil
}
