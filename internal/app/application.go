package app

import (
	"log/slog"

	"wayfare.openjourney.org/internal/appconf"
	"wayfare.openjourney.org/internal/geo"
	"wayfare.openjourney.org/internal/gtfs"
	"wayfare.openjourney.org/internal/planner"
	"wayfare.openjourney.org/internal/provider"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: the configuration, the gazetteer resolver, the provider pool,
// and the planner assembled on top of them.
type Application struct {
	Config      Config
	Logger      *slog.Logger
	Gazetteer   []geo.GazetteerEntry
	Resolver    *geo.Resolver
	GtfsManager *gtfs.Manager
	Providers   *provider.Pool
	Planner     *planner.Planner
}

// Config holds all the runtime settings for our Application. Network and
// environment settings come from command-line flags; the data-source settings
// come from the YAML config file, with flags taking precedence.
type Config struct {
	Port      int
	Env       appconf.Environment
	ApiKeys   []string
	RateLimit int
	Verbose   bool

	GazetteerPath     string
	GTFSStaticSource  string
	GTFSDataPath      string
	FlightCatalogPath string
	FlightAPIKeys     []string
	FlightRatePerSec  float64

	BusTariffBase  float64
	BusTariffPerKm float64

	MaxHops  int
	TopN     int
	Currency string
}
