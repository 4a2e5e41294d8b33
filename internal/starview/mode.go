// Package starview derives render-ready star descriptors from the catalog,
// the current selection, and the highlighted set.
package starview

import "strings"

// Mode selects the rendering path.
type Mode int

const (
	// ModeClassic renders a bounded, proximity-selected subset with full interaction.
	ModeClassic Mode = iota
	// ModeInstanced renders the whole catalog in bulk with picking disabled.
	ModeInstanced
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeInstanced:
		return "instanced"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string. Unknown values map to classic.
func ParseMode(s string) Mode {
	switch strings.ToLower(s) {
	case "instanced":
		return ModeInstanced
	default:
		return ModeClassic
	}
}

// ValidMode reports whether s names a known mode.
func ValidMode(s string) bool {
	switch strings.ToLower(s) {
	case "classic", "instanced":
		return true
	default:
		return false
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeInstanced {
		return ModeClassic
	}
	return ModeInstanced
}
