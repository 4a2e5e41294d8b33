package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/litescript/ls-starfield/internal/astro"
)

var (
	// ErrMissingID is returned when a catalog entry has no id.
	ErrMissingID = errors.New("star has no id")

	// ErrDuplicateID is returned when two catalog entries share an id.
	ErrDuplicateID = errors.New("duplicate star id")

	// ErrNoPosition is returned when an entry has neither ra/dec/dist nor x/y/z.
	ErrNoPosition = errors.New("star has no position")
)

// fileEntry is one [[star]] table in a catalog file. Position is given
// either equatorially (ra, dec, dist) or as cartesian x, y, z in parsecs.
type fileEntry struct {
	ID   *int     `toml:"id"`
	Name string   `toml:"name,omitempty"`
	Mag  float64  `toml:"mag"`
	RA   *float64 `toml:"ra,omitempty"`
	Dec  *float64 `toml:"dec,omitempty"`
	Dist *float64 `toml:"dist,omitempty"`
	X    *float64 `toml:"x,omitempty"`
	Y    *float64 `toml:"y,omitempty"`
	Z    *float64 `toml:"z,omitempty"`
}

type catalogFile struct {
	Stars []fileEntry `toml:"star"`
}

// LoadFile reads and parses a TOML catalog file.
func LoadFile(path string) ([]Star, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	stars, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return stars, nil
}

// Parse decodes a TOML catalog document. Entries keep file order.
func Parse(data []byte) ([]Star, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	stars := make([]Star, 0, len(f.Stars))
	seen := make(map[int]bool, len(f.Stars))

	for i, e := range f.Stars {
		if e.ID == nil {
			return nil, fmt.Errorf("star #%d (%q): %w", i+1, e.Name, ErrMissingID)
		}
		id := *e.ID
		if seen[id] {
			return nil, fmt.Errorf("star #%d id %d: %w", i+1, id, ErrDuplicateID)
		}
		seen[id] = true

		pos, err := e.position()
		if err != nil {
			return nil, fmt.Errorf("star #%d id %d: %w", i+1, id, err)
		}

		stars = append(stars, Star{
			ID:       id,
			Position: pos,
			Mag:      e.Mag,
			Name:     e.Name,
		})
	}

	return stars, nil
}

func (e fileEntry) position() (astro.Vec3, error) {
	switch {
	case e.X != nil && e.Y != nil && e.Z != nil:
		return astro.Vec3{X: *e.X, Y: *e.Y, Z: *e.Z}, nil
	case e.RA != nil && e.Dec != nil && e.Dist != nil:
		return astro.EquatorialToCartesian(*e.RA, *e.Dec, *e.Dist), nil
	default:
		return astro.Vec3{}, ErrNoPosition
	}
}

// Marshal encodes stars as a TOML catalog document using cartesian positions.
func Marshal(stars []Star) ([]byte, error) {
	f := catalogFile{Stars: make([]fileEntry, 0, len(stars))}
	for _, s := range stars {
		id := s.ID
		x, y, z := s.Position.X, s.Position.Y, s.Position.Z
		f.Stars = append(f.Stars, fileEntry{
			ID:   &id,
			Name: s.Name,
			Mag:  s.Mag,
			X:    &x,
			Y:    &y,
			Z:    &z,
		})
	}
	return toml.Marshal(f)
}
