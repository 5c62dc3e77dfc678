package gtfs

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jamespfennell/gtfs"

	"wayfare.openjourney.org/internal/logging"
)

func rawGtfsData(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer logging.SafeCloseWithLogging(resp.Body, slog.Default(), "download_gtfs_feed")

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
	}
	return b, nil
}

// loadGTFSData loads and parses GTFS data from either a URL or a local file
func loadGTFSData(source string, isLocalFile bool) (*gtfs.Static, error) {
	b, err := rawGtfsData(source, isLocalFile)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return staticData, nil
}

// updateStaticGTFS re-downloads the feed on a regular schedule. Local file
// sources are never refreshed.
func (manager *Manager) updateStaticGTFS() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.refreshInterval())
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			staticData, err := loadGTFSData(manager.source, false)
			if err != nil {
				slog.Error("error updating GTFS data", "source", manager.source, "error", err)
				continue
			}

			if err := manager.setStaticGTFS(staticData); err != nil {
				slog.Error("error storing updated GTFS data", "source", manager.source, "error", err)
			}
		case <-manager.shutdownChan:
			slog.Info("shutting down static GTFS updates")
			return
		}
	}
}
