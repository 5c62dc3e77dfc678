package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"wayfare.openjourney.org/internal/app"
	"wayfare.openjourney.org/internal/appconf"
	"wayfare.openjourney.org/internal/geo"
	"wayfare.openjourney.org/internal/gtfs"
	"wayfare.openjourney.org/internal/logging"
	"wayfare.openjourney.org/internal/planner"
	"wayfare.openjourney.org/internal/provider"
	"wayfare.openjourney.org/internal/restapi"
	"wayfare.openjourney.org/internal/stream"
	"wayfare.openjourney.org/internal/webui"
)

func main() {
	logger := buildLogger()

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func buildLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return logging.NewStructuredLogger(os.Stdout, level)
}

func run(logger *slog.Logger) error {
	// .env is optional; flags and real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	application, err := buildApplication(cfg, logger)
	if err != nil {
		return err
	}
	if application.GtfsManager != nil {
		defer application.GtfsManager.Shutdown()
	}

	broker := stream.NewBroker(64)
	defer broker.Close()
	queryService := stream.NewQueryService(broker, broker, application.Planner, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go queryService.Run(ctx)

	api := restapi.NewRestAPI(application)
	defer api.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      buildHandler(application, api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func loadConfig() (app.Config, error) {
	var cfg app.Config
	var envFlag, apiKeysFlag, flightKeysFlag, configFile string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 10, "Requests per second allowed per API key")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging of data imports")
	flag.StringVar(&configFile, "config", "", "Path to a YAML config file")
	flag.StringVar(&cfg.GazetteerPath, "gazetteer", "", "Path to the city gazetteer YAML file")
	flag.StringVar(&cfg.GTFSStaticSource, "gtfs-source", "", "URL or local path for a static GTFS zip file")
	flag.StringVar(&cfg.GTFSDataPath, "gtfs-data-path", ":memory:", "Path for the GTFS sqlite database")
	flag.StringVar(&cfg.FlightCatalogPath, "flight-catalog", "", "Path to the flight catalog JSON file")
	flag.StringVar(&flightKeysFlag, "flight-api-keys", "", "Comma separated flight provider credentials")
	flag.Parse()

	cfg.Env = appconf.EnvFromString(envFlag)
	cfg.ApiKeys = splitAndTrim(apiKeysFlag)
	cfg.FlightAPIKeys = splitAndTrim(flightKeysFlag)

	if configFile != "" {
		fileConfig, err := app.LoadFileConfig(configFile)
		if err != nil {
			return cfg, fmt.Errorf("loading config file: %w", err)
		}
		flagged := cfg
		fileConfig.Apply(&cfg)
		restoreSetFlags(&cfg, flagged)
	}
	return cfg, nil
}

// restoreSetFlags re-applies values for flags the user passed explicitly, so
// the precedence is flags over config file over flag defaults.
func restoreSetFlags(cfg *app.Config, flagged app.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = flagged.Port
		case "rate-limit":
			cfg.RateLimit = flagged.RateLimit
		case "gazetteer":
			cfg.GazetteerPath = flagged.GazetteerPath
		case "gtfs-source":
			cfg.GTFSStaticSource = flagged.GTFSStaticSource
		case "gtfs-data-path":
			cfg.GTFSDataPath = flagged.GTFSDataPath
		case "flight-catalog":
			cfg.FlightCatalogPath = flagged.FlightCatalogPath
		case "flight-api-keys":
			cfg.FlightAPIKeys = flagged.FlightAPIKeys
		}
	})
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func buildApplication(cfg app.Config, logger *slog.Logger) (*app.Application, error) {
	var gazetteer []geo.GazetteerEntry
	if cfg.GazetteerPath != "" {
		entries, err := geo.LoadGazetteer(cfg.GazetteerPath)
		if err != nil {
			return nil, fmt.Errorf("loading gazetteer: %w", err)
		}
		gazetteer = entries
	}
	resolver := geo.NewResolver(gazetteer, logger, geo.ResolverOptions{})

	var gtfsManager *gtfs.Manager
	var providers []provider.Provider

	if cfg.GTFSStaticSource != "" {
		manager, err := gtfs.InitGTFSManager(gtfs.Config{
			StaticSource: cfg.GTFSStaticSource,
			DBPath:       cfg.GTFSDataPath,
			Env:          cfg.Env,
			Verbose:      cfg.Verbose,
		}, resolver.NearestCityName)
		if err != nil {
			return nil, fmt.Errorf("initializing GTFS manager: %w", err)
		}
		gtfsManager = manager

		providers = append(providers, provider.NewBusScheduleProvider("gtfs-bus", manager, provider.Tariff{
			BaseFare: cfg.BusTariffBase,
			PerKm:    cfg.BusTariffPerKm,
		}))
	}

	if cfg.FlightCatalogPath != "" {
		credentials := provider.NewCredentialPool(cfg.FlightAPIKeys)
		var flights provider.Provider = provider.NewFlightCatalogProvider("catalog-flights", cfg.FlightCatalogPath, credentials)
		if cfg.FlightRatePerSec > 0 {
			flights = provider.NewRateLimitedProvider(flights, rate.Limit(cfg.FlightRatePerSec), 1)
		}
		providers = append(providers, flights)
	}

	pool := provider.NewPool(providers, provider.DefaultProviderTimeout)

	tripPlanner := planner.New(resolver, pool, logger, planner.Options{
		MaxHops:  cfg.MaxHops,
		TopN:     cfg.TopN,
		Currency: cfg.Currency,
	})

	return &app.Application{
		Config:      cfg,
		Logger:      logger,
		Gazetteer:   gazetteer,
		Resolver:    resolver,
		GtfsManager: gtfsManager,
		Providers:   pool,
		Planner:     tripPlanner,
	}, nil
}

func buildHandler(application *app.Application, api *restapi.RestAPI) http.Handler {
	mux := http.NewServeMux()

	api.SetRoutes(mux)
	webui.NewWebUI(application).SetRoutes(mux)

	var handler http.Handler = mux
	handler = restapi.CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = api.WithRateLimit(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	return handler
}
