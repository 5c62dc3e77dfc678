package app

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the YAML config file. Every section is optional; absent
// values keep the defaults baked into the flags.
type FileConfig struct {
	Server struct {
		Port      int `yaml:"port" validate:"gte=0"`
		RateLimit int `yaml:"rateLimit" validate:"gte=0"`
	} `yaml:"server"`
	Gazetteer struct {
		Path string `yaml:"path"`
	} `yaml:"gazetteer"`
	GTFS struct {
		StaticSource string `yaml:"staticSource"`
		DataPath     string `yaml:"dataPath"`
	} `yaml:"gtfs"`
	Flights struct {
		CatalogPath   string   `yaml:"catalogPath"`
		APIKeys       []string `yaml:"apiKeys"`
		RatePerSecond float64  `yaml:"ratePerSecond" validate:"gte=0"`
	} `yaml:"flights"`
	Bus struct {
		TariffBase  float64 `yaml:"tariffBase" validate:"gte=0"`
		TariffPerKm float64 `yaml:"tariffPerKm" validate:"gte=0"`
	} `yaml:"bus"`
	Search struct {
		MaxHops  int    `yaml:"maxHops" validate:"gte=0"`
		TopN     int    `yaml:"topN" validate:"gte=0"`
		Currency string `yaml:"currency"`
	} `yaml:"search"`
}

// LoadFileConfig reads and validates the YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}
	return &cfg, nil
}

// Apply copies the file settings onto the Config, leaving fields the file does
// not set untouched so flag values survive.
func (f *FileConfig) Apply(cfg *Config) {
	if f.Server.Port > 0 {
		cfg.Port = f.Server.Port
	}
	if f.Server.RateLimit > 0 {
		cfg.RateLimit = f.Server.RateLimit
	}
	if f.Gazetteer.Path != "" {
		cfg.GazetteerPath = f.Gazetteer.Path
	}
	if f.GTFS.StaticSource != "" {
		cfg.GTFSStaticSource = f.GTFS.StaticSource
	}
	if f.GTFS.DataPath != "" {
		cfg.GTFSDataPath = f.GTFS.DataPath
	}
	if f.Flights.CatalogPath != "" {
		cfg.FlightCatalogPath = f.Flights.CatalogPath
	}
	if len(f.Flights.APIKeys) > 0 {
		cfg.FlightAPIKeys = f.Flights.APIKeys
	}
	if f.Flights.RatePerSecond > 0 {
		cfg.FlightRatePerSec = f.Flights.RatePerSecond
	}
	if f.Bus.TariffBase > 0 {
		cfg.BusTariffBase = f.Bus.TariffBase
	}
	if f.Bus.TariffPerKm > 0 {
		cfg.BusTariffPerKm = f.Bus.TariffPerKm
	}
	if f.Search.MaxHops > 0 {
		cfg.MaxHops = f.Search.MaxHops
	}
	if f.Search.TopN > 0 {
		cfg.TopN = f.Search.TopN
	}
	if f.Search.Currency != "" {
		cfg.Currency = f.Search.Currency
	}
}
