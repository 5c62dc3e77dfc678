package geo

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// GazetteerEntry is one known city with its coordinates.
type GazetteerEntry struct {
	Name    string  `yaml:"name" validate:"required"`
	Country string  `yaml:"country"`
	Lat     float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `yaml:"lon" validate:"gte=-180,lte=180"`
}

type gazetteerFile struct {
	Cities []GazetteerEntry `yaml:"cities"`
}

// LoadGazetteer reads and validates the city gazetteer from a YAML file.
// An empty city list is valid; every listed entry must carry a name and
// in-range coordinates.
func LoadGazetteer(path string) ([]GazetteerEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gazetteer: %w", err)
	}

	var file gazetteerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing gazetteer: %w", err)
	}

	v := validator.New()
	for i, entry := range file.Cities {
		if err := v.Struct(entry); err != nil {
			return nil, fmt.Errorf("gazetteer entry %d (%q): %w", i, entry.Name, err)
		}
	}

	return file.Cities, nil
}
