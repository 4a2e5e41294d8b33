package camera

import (
	"math"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/starview"
)

// State is the machine state.
type State int

const (
	StateIdle State = iota
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Config holds the timing and orbit policy.
type Config struct {
	FocusDuration  time.Duration
	CenterFactor   float64 // center transitions take FocusDuration * CenterFactor
	OrbitSpeed     float64 // rad/s
	OrbitRadius    float64 // parsecs
	OrbitElevation float64 // radians
}

// DefaultConfig returns the stock camera policy.
func DefaultConfig() Config {
	return Config{
		FocusDuration:  1000 * time.Millisecond,
		CenterFactor:   1.33,
		OrbitSpeed:     0.1,
		OrbitRadius:    8,
		OrbitElevation: 0.2,
	}
}

// CenterDuration returns round(FocusDuration_ms * CenterFactor) milliseconds.
func (c Config) CenterDuration() time.Duration {
	ms := float64(c.FocusDuration.Milliseconds()) * c.CenterFactor
	return time.Duration(math.Round(ms)) * time.Millisecond
}

// Active is the command currently owned by the machine. Seq identifies it
// so late completion signals for superseded commands are ignored.
type Active struct {
	Seq     uint64
	Command Command
}

// Machine holds at most one animation command. It is not safe for
// concurrent use; one owner serializes all transitions.
type Machine struct {
	acc catalog.Accessor
	cfg Config

	active *Active
	seq    uint64

	// Last observed application inputs, for edge detection.
	primed      bool
	selected    *int
	highlighted starview.IDSet

	onCommand  func(Active)
	onComplete func(Active)
	log        *logging.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// OnCommand is called whenever a new command becomes active.
func OnCommand(fn func(Active)) Option {
	return func(m *Machine) {
		m.onCommand = fn
	}
}

// OnComplete is called once for each command that runs to completion.
func OnComplete(fn func(Active)) Option {
	return func(m *Machine) {
		m.onComplete = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Machine) {
		m.log = l
	}
}

// NewMachine creates an idle machine resolving star ids against acc.
func NewMachine(acc catalog.Accessor, cfg Config, opts ...Option) *Machine {
	m := &Machine{acc: acc, cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	m.log = logging.OrDiscard(m.log).Named("camera")
	return m
}

// Config returns the machine's policy.
func (m *Machine) Config() Config {
	return m.cfg
}

// State returns Idle or Animating.
func (m *Machine) State() State {
	if m.active == nil {
		return StateIdle
	}
	return StateAnimating
}

// Pending returns the active command, if any.
func (m *Machine) Pending() (Active, bool) {
	if m.active == nil {
		return Active{}, false
	}
	return *m.active, true
}

// issue replaces any active command. The replaced command never completes.
func (m *Machine) issue(cmd Command) Active {
	if m.active != nil {
		m.log.Debug("superseding #%d %s", m.active.Seq, m.active.Command)
	}
	m.seq++
	a := Active{Seq: m.seq, Command: cmd}
	m.active = &a
	m.log.Debug("issued #%d %s", a.Seq, cmd)
	if m.onCommand != nil {
		m.onCommand(a)
	}
	return a
}

// Focus approaches a catalog star. Unknown ids are dropped without a
// state change.
func (m *Machine) Focus(id int) bool {
	if m.acc == nil {
		return false
	}
	star, ok := m.acc.StarByID(id)
	if !ok {
		m.log.Debug("focus on unknown star %d dropped", id)
		return false
	}
	m.FocusStar(star)
	return true
}

// FocusStar approaches a resolved star. The position is copied.
func (m *Machine) FocusStar(star catalog.Star) Active {
	return m.issue(FocusStar{
		StarID: star.ID,
		Target: star.Position,
		Length: m.cfg.FocusDuration,
	})
}

// Reset returns the camera to its home pose.
func (m *Machine) Reset() Active {
	return m.issue(ResetView{Length: m.cfg.FocusDuration})
}

// Center recenters the view on the origin.
func (m *Machine) Center() Active {
	return m.issue(CenterView{Target: astro.Origin, Length: m.cfg.CenterDuration()})
}

// Orbit starts the idle orbit around the origin.
func (m *Machine) Orbit() Active {
	return m.issue(Orbit{
		Center:    astro.Origin,
		Radius:    m.cfg.OrbitRadius,
		Speed:     m.cfg.OrbitSpeed,
		Elevation: m.cfg.OrbitElevation,
	})
}

// MoveTo places the camera explicitly. A non-positive d uses FocusDuration.
func (m *Machine) MoveTo(pos, lookAt astro.Vec3, d time.Duration) Active {
	if d <= 0 {
		d = m.cfg.FocusDuration
	}
	return m.issue(MoveTo{Position: pos, LookAt: lookAt, Length: d})
}

// Inputs observes the application's selection and highlighted set after an
// update and applies the automatic transitions:
//
//   - with no selection, a non-empty highlighted set recenters the view
//   - with no selection, an empty highlighted set starts the idle orbit
//
// Nothing happens when neither input changed. When the selection changed in
// the same update it takes precedence: a new selection suppresses highlight
// transitions (the pick path has already requested a focus), and a cleared
// selection re-evaluates the highlight rules. The first call always
// evaluates. While the catalog reports it is not ready the inputs are
// ignored, so the first call after the load is treated as the first.
func (m *Machine) Inputs(selected *int, highlighted starview.IDSet) {
	if !m.ready() {
		m.log.Debug("catalog not ready, inputs ignored")
		return
	}

	selChanged := !m.primed || !sameSelection(m.selected, selected)
	hlChanged := !m.primed || !m.highlighted.Equal(highlighted)

	m.primed = true
	m.selected = copySelection(selected)
	m.highlighted = highlighted.Clone()

	if !selChanged && !hlChanged {
		return
	}
	if selected != nil {
		return
	}

	if highlighted.Empty() {
		m.Orbit()
	} else {
		m.Center()
	}
}

// Complete reports that the executor finished the command with seq. It
// returns false, and notifies nobody, when seq is not the active command,
// when the active command is an orbit, or when the machine is idle.
func (m *Machine) Complete(seq uint64) bool {
	if m.active == nil || m.active.Seq != seq {
		return false
	}
	if !m.active.Command.Completes() {
		return false
	}

	done := *m.active
	m.active = nil
	m.log.Debug("completed #%d %s", done.Seq, done.Command)
	if m.onComplete != nil {
		m.onComplete(done)
	}
	return true
}

// ready reports whether the accessor has a catalog. Accessors without a
// readiness notion are always ready.
func (m *Machine) ready() bool {
	r, ok := m.acc.(interface{ Ready() bool })
	return !ok || r.Ready()
}

func sameSelection(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copySelection(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
