// Package camera holds the camera animation state machine: at most one
// animation command is active, every new command replaces the previous one,
// and an external executor reports completion.
package camera

import (
	"fmt"
	"time"

	"github.com/litescript/ls-starfield/internal/astro"
)

// Kind tags a command variant.
type Kind string

const (
	KindFocusStar  Kind = "focusStar"
	KindResetView  Kind = "resetView"
	KindCenterView Kind = "centerView"
	KindOrbit      Kind = "orbit"
	KindMoveTo     Kind = "moveTo"
)

// Command is a camera animation intent. The set of variants is closed.
type Command interface {
	Kind() Kind
	// Duration is the advisory transition time; zero for Orbit.
	Duration() time.Duration
	// Completes is false for commands that run until superseded.
	Completes() bool
	String() string

	sealed()
}

// FocusStar approaches a star. Target is copied from the catalog record.
type FocusStar struct {
	StarID int
	Target astro.Vec3
	Length time.Duration
}

// ResetView returns the camera to its home pose.
type ResetView struct {
	Length time.Duration
}

// CenterView recenters the view on Target without approaching it.
type CenterView struct {
	Target astro.Vec3
	Length time.Duration
}

// Orbit circles Center continuously. Speed is in rad/s; Elevation is the
// angle in radians above the orbital plane.
type Orbit struct {
	Center    astro.Vec3
	Radius    float64
	Speed     float64
	Elevation float64
}

// MoveTo places the camera at Position looking at LookAt.
type MoveTo struct {
	Position astro.Vec3
	LookAt   astro.Vec3
	Length   time.Duration
}

func (FocusStar) Kind() Kind  { return KindFocusStar }
func (ResetView) Kind() Kind  { return KindResetView }
func (CenterView) Kind() Kind { return KindCenterView }
func (Orbit) Kind() Kind      { return KindOrbit }
func (MoveTo) Kind() Kind     { return KindMoveTo }

func (c FocusStar) Duration() time.Duration  { return c.Length }
func (c ResetView) Duration() time.Duration  { return c.Length }
func (c CenterView) Duration() time.Duration { return c.Length }
func (Orbit) Duration() time.Duration        { return 0 }
func (c MoveTo) Duration() time.Duration     { return c.Length }

func (FocusStar) Completes() bool  { return true }
func (ResetView) Completes() bool  { return true }
func (CenterView) Completes() bool { return true }
func (Orbit) Completes() bool      { return false }
func (MoveTo) Completes() bool     { return true }

func (c FocusStar) String() string {
	return fmt.Sprintf("focusStar(%d @ %s, %s)", c.StarID, c.Target, c.Length)
}

func (c ResetView) String() string {
	return fmt.Sprintf("resetView(%s)", c.Length)
}

func (c CenterView) String() string {
	return fmt.Sprintf("centerView(%s, %s)", c.Target, c.Length)
}

func (c Orbit) String() string {
	return fmt.Sprintf("orbit(%s, r=%.2f, %.2f rad/s, elev=%.2f)", c.Center, c.Radius, c.Speed, c.Elevation)
}

func (c MoveTo) String() string {
	return fmt.Sprintf("moveTo(%s -> %s, %s)", c.Position, c.LookAt, c.Length)
}

func (FocusStar) sealed()  {}
func (ResetView) sealed()  {}
func (CenterView) sealed() {}
func (Orbit) sealed()      {}
func (MoveTo) sealed()     {}
