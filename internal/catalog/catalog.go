// Package catalog provides the star catalog queried by the renderer:
// nearest-first subsets, full listings, and lookups by id.
package catalog

import (
	"sort"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Star is a single catalog record. Records are immutable; every query
// returns copies.
type Star struct {
	ID       int        // Stable catalog identifier (HIP number where known)
	Position astro.Vec3 // Heliocentric equatorial position in parsecs
	Mag      float64    // Apparent visual magnitude (lower = brighter)
	Name     string     // Proper name, empty if the star has none
}

// Distance returns the distance from the origin in parsecs.
func (s Star) Distance() float64 {
	return s.Position.Norm()
}

// HasName reports whether the star carries a proper name.
func (s Star) HasName() bool {
	return s.Name != ""
}

// Accessor is the read-only query surface of a catalog.
type Accessor interface {
	// StarsByProximity returns up to maxCount stars ordered by distance from
	// the origin, nearest first. Equal distances keep catalog order.
	StarsByProximity(maxCount int) []Star

	// AllStars returns every star in catalog order.
	AllStars() []Star

	// StarByID looks up a star by catalog id.
	StarByID(id int) (Star, bool)
}

// Memory is an immutable in-memory catalog.
type Memory struct {
	stars   []Star
	nearest []Star
	byID    map[int]int // id -> index into stars
}

// NewMemory builds a catalog from a slice of stars. The input is copied.
// When ids repeat, lookups resolve to the first occurrence.
func NewMemory(stars []Star) *Memory {
	m := &Memory{
		stars: make([]Star, len(stars)),
		byID:  make(map[int]int, len(stars)),
	}
	copy(m.stars, stars)

	for i, s := range m.stars {
		if _, dup := m.byID[s.ID]; !dup {
			m.byID[s.ID] = i
		}
	}

	m.nearest = make([]Star, len(m.stars))
	copy(m.nearest, m.stars)
	sort.SliceStable(m.nearest, func(i, j int) bool {
		return m.nearest[i].Distance() < m.nearest[j].Distance()
	})

	return m
}

// StarsByProximity implements Accessor.
func (m *Memory) StarsByProximity(maxCount int) []Star {
	if maxCount <= 0 || len(m.nearest) == 0 {
		return []Star{}
	}
	if maxCount > len(m.nearest) {
		maxCount = len(m.nearest)
	}
	out := make([]Star, maxCount)
	copy(out, m.nearest[:maxCount])
	return out
}

// AllStars implements Accessor.
func (m *Memory) AllStars() []Star {
	out := make([]Star, len(m.stars))
	copy(out, m.stars)
	return out
}

// StarByID implements Accessor.
func (m *Memory) StarByID(id int) (Star, bool) {
	idx, ok := m.byID[id]
	if !ok {
		return Star{}, false
	}
	return m.stars[idx], true
}

// Len returns the number of stars in the catalog.
func (m *Memory) Len() int {
	return len(m.stars)
}
