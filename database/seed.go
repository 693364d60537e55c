package database

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedMenuItem struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    int64  `yaml:"price"`
	Image    string `yaml:"image"`
}

type SeedRoom struct {
	RoomNo        string `yaml:"room_no"`
	RoomType      string `yaml:"room_type"`
	PricePerNight int64  `yaml:"price_per_night"`
}

// SeedCatalog is the reference data written by InitSchema.
type SeedCatalog struct {
	Menu       []SeedMenuItem `yaml:"menu"`
	Rooms      []SeedRoom     `yaml:"rooms"`
	Categories []string       `yaml:"categories"`
}

// LoadSeedCatalog parses the catalog at path, or the embedded default when
// path is empty.
func LoadSeedCatalog(path string) (*SeedCatalog, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = raw
	}

	var catalog SeedCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *SeedCatalog) validate() error {
	for _, item := range c.Menu {
		if item.Name == "" || item.Category == "" {
			return fmt.Errorf("seed menu item needs a name and a category: %+v", item)
		}
		if item.Price < 0 {
			return fmt.Errorf("seed menu item %q has a negative price", item.Name)
		}
	}
	for _, room := range c.Rooms {
		if room.RoomNo == "" || room.RoomType == "" {
			return fmt.Errorf("seed room needs a number and a type: %+v", room)
		}
	}
	for _, name := range c.Categories {
		if name == "" {
			return fmt.Errorf("seed category names must not be empty")
		}
	}
	return nil
}

// ImageHints maps each seeded menu item name to its image hint.
func (c *SeedCatalog) ImageHints() map[string]string {
	hints := make(map[string]string, len(c.Menu))
	for _, item := range c.Menu {
		if item.Image != "" {
			hints[item.Name] = item.Image
		}
	}
	return hints
}
