package gtfs

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jamespfennell/gtfs"

	"wayfare.openjourney.org/gtfsdb"
)

// CityAssigner maps a stop's coordinates to a gazetteer city name. It returns
// the empty string when no city claims the location.
type CityAssigner func(lat, lon float64) string

// Manager loads a GTFS static feed into the schedule store and answers
// city-level queries against it.
type Manager struct {
	source       string
	isLocalFile  bool
	gtfsData     *gtfs.Static
	GtfsDB       *gtfsdb.Client
	assignCity   CityAssigner
	lastUpdated  time.Time
	dataMutex    sync.RWMutex
	config       Config
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitGTFSManager initializes the Manager with the GTFS data from the given
// source. The source can be either a URL or a local file path.
func InitGTFSManager(config Config, assignCity CityAssigner) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.StaticSource, "http://") && !strings.HasPrefix(config.StaticSource, "https://")

	staticData, err := loadGTFSData(config.StaticSource, isLocalFile)
	if err != nil {
		return nil, err
	}

	gtfsDB, err := gtfsdb.NewClient(gtfsdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error building GTFS database: %w", err)
	}

	manager := &Manager{
		source:       config.StaticSource,
		isLocalFile:  isLocalFile,
		GtfsDB:       gtfsDB,
		assignCity:   assignCity,
		config:       config,
		shutdownChan: make(chan struct{}),
	}
	if err := manager.setStaticGTFS(staticData); err != nil {
		_ = gtfsDB.Close()
		return nil, err
	}

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.updateStaticGTFS()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.GtfsDB != nil {
			_ = manager.GtfsDB.Close()
		}
	})
}

func (manager *Manager) setStaticGTFS(staticData *gtfs.Static) error {
	if err := manager.GtfsDB.ImportStatic(staticData, manager.assignCity); err != nil {
		return err
	}

	manager.dataMutex.Lock()
	manager.gtfsData = staticData
	manager.lastUpdated = time.Now()
	manager.dataMutex.Unlock()

	if manager.config.Verbose {
		slog.Info("GTFS data updated",
			"source", manager.source,
			"stops", len(staticData.Stops),
			"trips", len(staticData.Trips),
			"import_runtime", manager.GtfsDB.ImportRuntime(),
		)
	}
	return nil
}

func (manager *Manager) GetStaticData() *gtfs.Static {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.gtfsData
}

func (manager *Manager) LastUpdated() time.Time {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.lastUpdated
}

// StopsForCity returns the stops the feed places inside the given city.
func (manager *Manager) StopsForCity(cityName string) ([]gtfsdb.Stop, error) {
	return manager.GtfsDB.StopsForCity(cityName)
}

// ConnectionsForDate returns the direct trips between two cities running on
// the given service date.
func (manager *Manager) ConnectionsForDate(fromCity, toCity string, date time.Time) ([]gtfsdb.Connection, error) {
	return manager.GtfsDB.DirectConnections(fromCity, toCity, date)
}
