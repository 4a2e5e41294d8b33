package starview

// Tier is the visual emphasis applied to a star. Exactly one applies per star.
type Tier int

const (
	TierRegular Tier = iota
	TierHighlighted
	TierSelected
)

func (t Tier) String() string {
	switch t {
	case TierRegular:
		return "regular"
	case TierHighlighted:
		return "highlighted"
	case TierSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// TierStyle is the fixed visual configuration for one tier.
type TierStyle struct {
	SizeMultiplier float64 `json:"size"`
	GlowMultiplier float64 `json:"glow"`
	Color          string  `json:"color"` // hex "#rrggbb" or ANSI 256 index
}

// Styles holds the per-tier configuration.
type Styles struct {
	Regular     TierStyle `json:"regular"`
	Highlighted TierStyle `json:"highlighted"`
	Selected    TierStyle `json:"selected"`
}

// DefaultStyles returns the stock palette: white regular stars, gold
// highlights, and a cyan selection.
func DefaultStyles() Styles {
	return Styles{
		Regular:     TierStyle{SizeMultiplier: 1.0, GlowMultiplier: 1.0, Color: "#ffffff"},
		Highlighted: TierStyle{SizeMultiplier: 1.5, GlowMultiplier: 2.0, Color: "#ffd700"},
		Selected:    TierStyle{SizeMultiplier: 2.0, GlowMultiplier: 3.0, Color: "#00ffff"},
	}
}

// For returns the style of a tier. Unknown tiers use the regular style.
func (s Styles) For(t Tier) TierStyle {
	switch t {
	case TierSelected:
		return s.Selected
	case TierHighlighted:
		return s.Highlighted
	default:
		return s.Regular
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
