package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/statsapi-gateway/external/mlbstats"
	"github.com/riskibarqy/statsapi-gateway/internal/config"
	"github.com/riskibarqy/statsapi-gateway/internal/domain/command"
	"github.com/riskibarqy/statsapi-gateway/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/statsapi-gateway/internal/interfaces/httpapi"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	resolverSvc := usecase.NewResolverService(teamRepo, playerRepo)

	statsClient := mlbstats.NewClient(mlbstats.ClientConfig{
		BaseURL:        cfg.UpstreamBaseURL,
		UserAgent:      cfg.UpstreamUserAgent,
		Timeout:        cfg.UpstreamTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.UpstreamCircuitBreaker(),
	})

	dispatchSvc := usecase.NewDispatchService(command.DefaultRegistry(), resolverSvc, statsClient, logger)

	handler := httpapi.NewHandler(dispatchSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
