package app

import (
	"fmt"
	"net/http"

	"github.com/portalwatch/portal-api/external/cfbd"
	"github.com/portalwatch/portal-api/internal/config"
	"github.com/portalwatch/portal-api/internal/interfaces/httpapi"
	"github.com/portalwatch/portal-api/internal/platform/cache"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/ratelimit"
	"github.com/portalwatch/portal-api/internal/platform/resilience"
	"github.com/portalwatch/portal-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	client := cfbd.NewClient(cfbd.ClientConfig{
		BaseURL:    cfg.CFBDBaseURL,
		Token:      cfg.CFBDToken,
		Timeout:    cfg.CFBDTimeout,
		MaxRetries: cfg.CFBDMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CFBDCircuitEnabled,
			FailureThreshold: cfg.CFBDCircuitFailureCount,
			OpenTimeout:      cfg.CFBDCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CFBDCircuitHalfOpenMax,
		},
	})

	// One pacer shared by every upstream flow so roster probes and career
	// searches never burst past the CFBD rate limit together.
	limiter := ratelimit.NewPacer(cfg.FetchInterval)

	rosterSvc := usecase.NewRosterIndexService(client, limiter, cache.NewStore(cfg.RosterCacheTTL), logger)
	careerSvc := usecase.NewCareerService(client, limiter, cache.NewStore(cfg.CareerCacheTTL), logger)
	transferSvc := usecase.NewTransferService(client, rosterSvc, careerSvc, cache.NewStore(cfg.TransferCacheTTL), logger)
	statsSvc := usecase.NewStatsService(client, limiter, cache.NewStore(cfg.StatsCacheTTL), logger)

	handler := httpapi.NewHandler(transferSvc, rosterSvc, careerSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
