package gtfs

import (
	"time"

	"wayfare.openjourney.org/internal/appconf"
)

type Config struct {
	StaticSource    string
	DBPath          string
	Env             appconf.Environment
	Verbose         bool
	RefreshInterval time.Duration
}

func (config Config) refreshInterval() time.Duration {
	if config.RefreshInterval <= 0 {
		return 24 * time.Hour
	}
	return config.RefreshInterval
}
