package starview

import (
	"strconv"
	"strings"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
)

// VisualState is the render-ready descriptor of one visible star.
// It is recomputed from scratch whenever inputs change.
type VisualState struct {
	ID        string     `json:"id"` // string form of CatalogID, used by pick events
	CatalogID int        `json:"catalog_id"`
	Position  astro.Vec3 `json:"position"`
	Mag       float64    `json:"mag"`
	Name      string     `json:"name,omitempty"`

	Highlighted    bool    `json:"highlighted"`
	Tier           Tier    `json:"tier"`
	SizeMultiplier float64 `json:"size"`
	GlowMultiplier float64 `json:"glow"`
	Color          string  `json:"color"`
	ShowLabel      bool    `json:"show_label"`
}

// FormatID returns the visual id for a catalog id.
func FormatID(id int) string {
	return strconv.Itoa(id)
}

// ParseID converts a visual id back to a catalog id.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Subset returns the stars a mode renders: the maxCount stars nearest the
// origin in classic mode, the whole catalog in instanced mode.
// A nil accessor yields no stars.
func Subset(acc catalog.Accessor, mode Mode, maxCount int) []catalog.Star {
	if acc == nil {
		return nil
	}
	if mode == ModeInstanced {
		return acc.AllStars()
	}
	return acc.StarsByProximity(maxCount)
}

// TierFor returns the tier of a star. Selected beats highlighted beats regular.
func TierFor(id int, selected *int, highlighted IDSet) Tier {
	switch {
	case selected != nil && *selected == id:
		return TierSelected
	case highlighted.Has(id):
		return TierHighlighted
	default:
		return TierRegular
	}
}

// Derive maps stars to visual states, preserving input order.
//
// A label is shown only for highlighted stars with a proper name; a star that
// is selected but not highlighted gets no label.
func Derive(stars []catalog.Star, selected *int, highlighted IDSet, styles Styles) []VisualState {
	out := make([]VisualState, 0, len(stars))
	for _, s := range stars {
		tier := TierFor(s.ID, selected, highlighted)
		style := styles.For(tier)
		isHighlighted := highlighted.Has(s.ID)

		out = append(out, VisualState{
			ID:             FormatID(s.ID),
			CatalogID:      s.ID,
			Position:       s.Position,
			Mag:            s.Mag,
			Name:           s.Name,
			Highlighted:    isHighlighted,
			Tier:           tier,
			SizeMultiplier: style.SizeMultiplier,
			GlowMultiplier: style.GlowMultiplier,
			Color:          style.Color,
			ShowLabel:      isHighlighted && s.HasName(),
		})
	}
	return out
}

// Frame selects the subset for mode and derives its visual states.
func Frame(acc catalog.Accessor, mode Mode, maxCount int, selected *int, highlighted IDSet, styles Styles) []VisualState {
	return Derive(Subset(acc, mode, maxCount), selected, highlighted, styles)
}

// Counts summarizes how many states fall in each tier and how many show labels.
type Counts struct {
	Total       int
	Selected    int
	Highlighted int
	Labeled     int
}

// Count tallies a derived frame.
func Count(states []VisualState) Counts {
	c := Counts{Total: len(states)}
	for _, s := range states {
		switch s.Tier {
		case TierSelected:
			c.Selected++
		case TierHighlighted:
			c.Highlighted++
		}
		if s.ShowLabel {
			c.Labeled++
		}
	}
	return c
}
