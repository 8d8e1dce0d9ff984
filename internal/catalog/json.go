package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gloriatan/ANI/data"
)

// catalogFile mirrors the on-disk JSON layout: the pilgrimage records plus
// the per-city day-pass price table that ships alongside them.
type catalogFile struct {
	Pilgrimages []Anime        `json:"pilgrimages"`
	DayPasses   map[string]int `json:"day_passes"`
}

// Load reads a catalog from JSON. Strongly-typed unmarshalling means missing
// numeric fields default to 0 here, at the loading boundary — use sites never
// check field presence.
func Load(r io.Reader, log *slog.Logger) (*Catalog, error) {
	var f catalogFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("catalog.Load: decode: %w", err)
	}
	return New(f.Pilgrimages, f.DayPasses, log), nil
}

// LoadFile reads a catalog from a JSON file on disk.
func LoadFile(path string, log *slog.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %w", err)
	}
	defer f.Close()

	c, err := Load(f, log)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %s: %w", path, err)
	}
	return c, nil
}

// LoadEmbedded builds the catalog from the dataset compiled into the binary.
// This is the default source when neither DATABASE_URL nor CATALOG_PATH is set.
func LoadEmbedded(log *slog.Logger) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data.PilgrimagesJSON, &f); err != nil {
		return nil, fmt.Errorf("catalog.LoadEmbedded: decode: %w", err)
	}
	return New(f.Pilgrimages, f.DayPasses, log), nil
}
