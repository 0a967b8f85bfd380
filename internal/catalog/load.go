package catalog

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrNoSource is returned by Load when neither a catalog file nor a scan
// directory is configured.
var ErrNoSource = errors.New("no catalog source configured")

// fileLayout mirrors the TOML catalog file:
//
//	[artists]
//	alex-bainter = "Alex Bainter"
//
//	[[pieces]]
//	id = "drones"
//	title = "Drones"
//	artist = "alex-bainter"
type fileLayout struct {
	Artists map[string]string `koanf:"artists"`
	Pieces  []Piece           `koanf:"pieces"`
}

// LoadFile reads a TOML catalog file.
func LoadFile(path string) (Catalog, error) {
	// Piece ids are free-form, so keys are never split on dots.
	k := koanf.New("\x00")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var layout fileLayout
	if err := k.Unmarshal("", &layout); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	c := Catalog{
		Pieces:  layout.Pieces,
		Artists: Artists(layout.Artists),
	}
	if c.Artists == nil {
		c.Artists = Artists{}
	}
	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load builds the catalog from the configured sources. Pieces from the
// catalog file come first, followed by scanned pieces whose id is not
// already present. The merged catalog is validated.
func Load(path, scanDir string) (Catalog, error) {
	if path == "" && scanDir == "" {
		return Catalog{}, ErrNoSource
	}

	c := Catalog{Artists: Artists{}}
	if path != "" {
		fromFile, err := LoadFile(path)
		if err != nil {
			return Catalog{}, err
		}
		c = fromFile
	}

	if scanDir != "" {
		scanned, err := ScanDir(scanDir)
		if err != nil {
			return Catalog{}, err
		}
		c = c.merge(scanned)
	}

	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

func (c Catalog) merge(other Catalog) Catalog {
	seen := make(map[string]bool, len(c.Pieces))
	for _, p := range c.Pieces {
		seen[p.ID] = true
	}
	for _, p := range other.Pieces {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		c.Pieces = append(c.Pieces, p)
	}
	for id, name := range other.Artists {
		if _, ok := c.Artists[id]; !ok {
			c.Artists[id] = name
		}
	}
	return c
}

func (c Catalog) validate() error {
	seen := make(map[string]bool, len(c.Pieces))
	for i, p := range c.Pieces {
		if p.ID == "" {
			return fmt.Errorf("piece %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate piece id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
