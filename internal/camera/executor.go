package camera

import (
	"math"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Pose is a camera placement.
type Pose struct {
	Position astro.Vec3
	LookAt   astro.Vec3
}

// Lerp interpolates both position and look-at point.
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		Position: p.Position.Lerp(to.Position, t),
		LookAt:   p.LookAt.Lerp(to.LookAt, t),
	}
}

// ExecutorConfig configures the interpolating executor.
type ExecutorConfig struct {
	Home          Pose          // pose restored by resetView
	FocusStandoff float64       // distance kept from a focused star, parsecs
	OrbitBlend    time.Duration // time to ease from the current pose onto the orbit path
}

// DefaultExecutorConfig returns a home pose 12 pc out, slightly above the
// equatorial plane, looking at the Sun.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		Home: Pose{
			Position: astro.Vec3{X: 0, Y: -12, Z: 3},
			LookAt:   astro.Origin,
		},
		FocusStandoff: 1.5,
		OrbitBlend:    time.Second,
	}
}

// Executor realizes commands by interpolating the camera pose over time.
// It owns the pose; the Machine only owns the intent.
type Executor struct {
	cfg  ExecutorConfig
	pose Pose

	active  Active
	running bool
	start   time.Time
	from    Pose
	to      Pose
	length  time.Duration

	// Orbit state
	angle    float64
	lastStep time.Time
}

// NewExecutor creates an executor resting at the home pose.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{cfg: cfg, pose: cfg.Home}
}

// Pose returns the current camera pose.
func (e *Executor) Pose() Pose {
	return e.pose
}

// Running reports whether a command is being realized.
func (e *Executor) Running() bool {
	return e.running
}

// Current returns the command being realized.
func (e *Executor) Current() (Active, bool) {
	return e.active, e.running
}

// Sync starts the machine's pending command if it differs from the one
// being realized. It returns true when a new command was started.
func (e *Executor) Sync(pending Active, ok bool, now time.Time) bool {
	if !ok {
		return false
	}
	// Same command: either still running or finished and awaiting Complete.
	if e.active.Command != nil && e.active.Seq == pending.Seq {
		return false
	}
	e.Start(pending, now)
	return true
}

// Start begins realizing a command from the current pose, abandoning any
// command in progress.
func (e *Executor) Start(a Active, now time.Time) {
	e.active = a
	e.running = true
	e.start = now
	e.lastStep = now
	e.from = e.pose
	e.length = a.Command.Duration()

	switch c := a.Command.(type) {
	case FocusStar:
		e.to = e.focusPose(c.Target)
	case ResetView:
		e.to = e.cfg.Home
	case CenterView:
		offset := e.pose.Position.Sub(e.pose.LookAt)
		e.to = Pose{Position: c.Target.Add(offset), LookAt: c.Target}
	case MoveTo:
		e.to = Pose{Position: c.Position, LookAt: c.LookAt}
	case Orbit:
		rel := e.pose.Position.Sub(c.Center)
		e.angle = math.Atan2(rel.Y, rel.X)
	}
}

// focusPose keeps the current viewing direction and stops FocusStandoff
// short of the target.
func (e *Executor) focusPose(target astro.Vec3) Pose {
	dir := e.pose.Position.Sub(target).Normalized()
	if dir == (astro.Vec3{}) {
		dir = astro.Vec3{Z: 1}
	}
	return Pose{
		Position: target.Add(dir.Scale(e.cfg.FocusStandoff)),
		LookAt:   target,
	}
}

// Step advances the animation to now. done is true exactly once, on the
// step that finishes a completing command; the caller forwards a.Seq to
// Machine.Complete. Orbits never finish.
func (e *Executor) Step(now time.Time) (pose Pose, a Active, done bool) {
	if !e.running {
		return e.pose, e.active, false
	}

	if orbit, ok := e.active.Command.(Orbit); ok {
		e.stepOrbit(orbit, now)
		return e.pose, e.active, false
	}

	t := 1.0
	if e.length > 0 {
		t = float64(now.Sub(e.start)) / float64(e.length)
	}
	if t >= 1.0 {
		e.pose = e.to
		e.running = false
		return e.pose, e.active, true
	}
	if t < 0 {
		t = 0
	}

	e.pose = e.from.Lerp(e.to, easeOutCubic(t))
	return e.pose, e.active, false
}

func (e *Executor) stepOrbit(o Orbit, now time.Time) {
	dt := now.Sub(e.lastStep).Seconds()
	e.lastStep = now
	if dt > 0 {
		e.angle += o.Speed * dt
	}

	onPath := Pose{Position: orbitPoint(o, e.angle), LookAt: o.Center}

	blend := 1.0
	if e.cfg.OrbitBlend > 0 {
		blend = float64(now.Sub(e.start)) / float64(e.cfg.OrbitBlend)
	}
	if blend >= 1 {
		e.pose = onPath
		return
	}
	if blend < 0 {
		blend = 0
	}
	e.pose = e.from.Lerp(onPath, easeOutCubic(blend))
}

// orbitPoint returns the position on an orbit at the given azimuth.
func orbitPoint(o Orbit, angle float64) astro.Vec3 {
	cosE := math.Cos(o.Elevation)
	return o.Center.Add(astro.Vec3{
		X: o.Radius * cosE * math.Cos(angle),
		Y: o.Radius * cosE * math.Sin(angle),
		Z: o.Radius * math.Sin(o.Elevation),
	})
}

// easeOutCubic decelerates toward the target.
func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
