package camera

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Request is an external camera command as it arrives from a script or a
// caller: a tag plus optional fields. Apply validates it into a Command.
type Request struct {
	Kind       string      `json:"kind"`
	StarID     *int        `json:"star_id,omitempty"`
	Position   *astro.Vec3 `json:"position,omitempty"`
	LookAt     *astro.Vec3 `json:"look_at,omitempty"`
	DurationMs *int        `json:"duration_ms,omitempty"`
}

// ParseRequest decodes a JSON request.
func ParseRequest(data []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return Request{}, fmt.Errorf("decoding camera request: %w", err)
	}
	return r, nil
}

// Apply validates r and issues the matching command. Unknown tags, missing
// required fields, and unresolvable star ids are ignored and return false.
//
// Required fields: focusStar needs star_id; moveTo needs position
// (look_at defaults to the origin, duration_ms to the focus duration).
func (m *Machine) Apply(r Request) bool {
	switch Kind(r.Kind) {
	case KindFocusStar:
		if r.StarID == nil {
			return false
		}
		return m.Focus(*r.StarID)

	case KindResetView:
		m.Reset()
		return true

	case KindCenterView:
		m.Center()
		return true

	case KindOrbit:
		m.Orbit()
		return true

	case KindMoveTo:
		if r.Position == nil {
			return false
		}
		lookAt := astro.Origin
		if r.LookAt != nil {
			lookAt = *r.LookAt
		}
		var d time.Duration
		if r.DurationMs != nil {
			if *r.DurationMs < 0 {
				return false
			}
			d = time.Duration(*r.DurationMs) * time.Millisecond
		}
		m.MoveTo(*r.Position, lookAt, d)
		return true

	default:
		m.log.Debug("ignoring camera request with unknown kind %q", r.Kind)
		return false
	}
}
