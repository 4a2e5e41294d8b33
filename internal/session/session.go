// Package session owns the interactive state of one star view: the current
// selection, the highlighted set, the rendering mode, and the single camera
// command cell. All transitions run on the caller's goroutine.
package session

import (
	"strings"
	"time"

	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/selection"
	"github.com/litescript/ls-starfield/internal/starview"
)

// Config holds configuration for a session.
type Config struct {
	Mode      starview.Mode
	MaxStars  int // classic-mode render budget
	Styles    starview.Styles
	Camera    camera.Config
	MaxEvents int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Mode:      starview.ModeClassic,
		MaxStars:  500,
		Styles:    starview.DefaultStyles(),
		Camera:    camera.DefaultConfig(),
		MaxEvents: 50,
	}
}

// Session coordinates the selection controller and the camera machine.
type Session struct {
	acc    catalog.Accessor
	cfg    Config
	log    *logging.Logger
	clock  func() time.Time
	camera *camera.Machine
	picker *selection.Controller

	selected    *int
	highlighted starview.IDSet
	detail      *catalog.Star // last clicked star

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int
}

// New creates a session over acc and primes the camera with the initial
// inputs, which starts the idle orbit.
func New(acc catalog.Accessor, cfg Config, logger *logging.Logger) *Session {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	if acc == nil {
		acc = catalog.NewStore()
	}

	s := &Session{
		acc:         acc,
		cfg:         cfg,
		log:         logging.OrDiscard(logger),
		clock:       time.Now,
		highlighted: starview.NewIDSet(),
		maxEvents:   maxEvents,
		events:      make([]Event, 0, maxEvents),
	}

	s.camera = camera.NewMachine(acc, cfg.Camera,
		camera.WithLogger(s.log),
		camera.OnCommand(func(a camera.Active) {
			s.addEvent(Event{Type: EventCommand, Seq: a.Seq, Command: a.Command.String()})
		}),
		camera.OnComplete(func(a camera.Active) {
			s.addEvent(Event{Type: EventComplete, Seq: a.Seq, Command: a.Command.String()})
		}),
	)

	s.picker = selection.New(acc,
		selection.WithMode(cfg.Mode),
		selection.WithLogger(s.log),
		selection.OnSelect(s.onSelect),
		selection.OnClick(s.onClick),
		selection.OnFocusRequest(func(star catalog.Star) {
			s.camera.FocusStar(star)
		}),
	)

	s.sync()
	return s
}

// sync feeds the current inputs to the camera. Called once per update,
// after the selection has been applied.
func (s *Session) sync() {
	s.camera.Inputs(s.selected, s.highlighted)
}

// Refresh re-evaluates the automatic camera transitions. Call it after the
// catalog is loaded or reloaded; inputs observed while it was not ready
// were ignored.
func (s *Session) Refresh() {
	s.sync()
}

func (s *Session) onSelect(star *catalog.Star, id *int) {
	if star == nil {
		if s.selected == nil {
			return
		}
		s.addEvent(Event{Type: EventDeselect, StarID: *s.selected})
		s.selected = nil
		return
	}
	v := *id
	s.selected = &v
	s.addEvent(Event{Type: EventSelect, StarID: v, StarName: star.Name})
}

func (s *Session) onClick(star catalog.Star) {
	s.detail = &star
	s.addEvent(Event{Type: EventClick, StarID: star.ID, StarName: star.Name})
}

// Pick handles a pointer pick by visual id.
func (s *Session) Pick(id string) bool {
	ok := s.picker.Pick(id)
	s.sync()
	return ok
}

// Click handles a detail click by visual id.
func (s *Session) Click(id string) bool {
	return s.picker.Click(id)
}

// Miss handles a pointer event that hit no star.
func (s *Session) Miss() {
	s.picker.Miss()
	s.sync()
}

// Select programmatically selects a star and focuses it, as a pick would.
// Unknown ids are ignored, as is any selection in instanced mode where a
// miss could not clear it.
func (s *Session) Select(id int) bool {
	if s.cfg.Mode == starview.ModeInstanced {
		return false
	}
	star, ok := s.acc.StarByID(id)
	if !ok {
		return false
	}
	s.onSelect(&star, &star.ID)
	s.camera.FocusStar(star)
	s.sync()
	return true
}

// Highlight replaces the highlighted set.
func (s *Session) Highlight(ids starview.IDSet) {
	s.highlighted = ids.Clone()
	s.sync()
}

// ClearHighlight empties the highlighted set.
func (s *Session) ClearHighlight() {
	s.Highlight(nil)
}

// Search highlights every star whose name contains query, case-insensitive,
// and returns the match count. An empty query clears the highlight.
func (s *Session) Search(query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		s.ClearHighlight()
		return 0
	}

	ids := starview.NewIDSet()
	for _, star := range s.acc.AllStars() {
		if star.HasName() && strings.Contains(strings.ToLower(star.Name), q) {
			ids[star.ID] = struct{}{}
		}
	}
	s.Highlight(ids)
	return ids.Len()
}

// SetMode switches the rendering mode. Entering instanced mode drops the
// selection, since picking is unavailable there.
func (s *Session) SetMode(m starview.Mode) {
	if m == s.cfg.Mode {
		return
	}
	s.cfg.Mode = m
	s.picker.SetMode(m)
	if m == starview.ModeInstanced && s.selected != nil {
		s.addEvent(Event{Type: EventDeselect, StarID: *s.selected})
		s.selected = nil
	}
	s.log.Info("mode set to %s", m)
	s.sync()
}

// Mode returns the rendering mode.
func (s *Session) Mode() starview.Mode {
	return s.cfg.Mode
}

// Command applies an external camera command.
func (s *Session) Command(req camera.Request) bool {
	return s.camera.Apply(req)
}

// FocusSelected focuses the camera on the current selection.
func (s *Session) FocusSelected() bool {
	if s.selected == nil {
		return false
	}
	return s.camera.Focus(*s.selected)
}

// Complete forwards an executor completion signal.
func (s *Session) Complete(seq uint64) bool {
	return s.camera.Complete(seq)
}

// Camera returns the camera machine.
func (s *Session) Camera() *camera.Machine {
	return s.camera
}

// Selected returns the selected star, if it still resolves.
func (s *Session) Selected() (catalog.Star, bool) {
	if s.selected == nil {
		return catalog.Star{}, false
	}
	return s.acc.StarByID(*s.selected)
}

// Detail returns the last clicked star.
func (s *Session) Detail() (catalog.Star, bool) {
	if s.detail == nil {
		return catalog.Star{}, false
	}
	return *s.detail, true
}

// CloseDetail dismisses the detail view.
func (s *Session) CloseDetail() {
	s.detail = nil
}

// Highlighted returns a copy of the highlighted set.
func (s *Session) Highlighted() starview.IDSet {
	return s.highlighted.Clone()
}

// Visuals derives the current frame.
func (s *Session) Visuals() []starview.VisualState {
	return starview.Frame(s.acc, s.cfg.Mode, s.cfg.MaxStars, s.selected, s.highlighted, s.cfg.Styles)
}
