package session

import (
	"time"

	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/starview"
)

// EventType represents the type of session event.
type EventType string

const (
	EventSelect   EventType = "SELECT"
	EventDeselect EventType = "DESELECT"
	EventClick    EventType = "CLICK"
	EventCommand  EventType = "COMMAND"
	EventComplete EventType = "COMPLETE"
)

// Event records one interaction or camera transition.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	StarID    int       `json:"star_id,omitempty"`
	StarName  string    `json:"star_name,omitempty"`
	Seq       uint64    `json:"seq,omitempty"`
	Command   string    `json:"command,omitempty"`
}

// addEvent adds an event to the ring buffer.
func (s *Session) addEvent(e Event) {
	e.Timestamp = s.clock()
	s.log.Debug("%s star=%d seq=%d %s", e.Type, e.StarID, e.Seq, e.Command)

	if len(s.events) < s.maxEvents {
		s.events = append(s.events, e)
	} else {
		s.events[s.eventWriteAt] = e
		s.eventWriteAt = (s.eventWriteAt + 1) % s.maxEvents
	}
}

// eventsOrdered returns events in chronological order.
func (s *Session) eventsOrdered() []Event {
	if len(s.events) == 0 {
		return nil
	}

	if len(s.events) < s.maxEvents {
		result := make([]Event, len(s.events))
		copy(result, s.events)
		return result
	}

	result := make([]Event, s.maxEvents)
	for i := 0; i < s.maxEvents; i++ {
		result[i] = s.events[(s.eventWriteAt+i)%s.maxEvents]
	}
	return result
}

// RecentEvents returns the last n events. A non-positive n returns none.
func (s *Session) RecentEvents(n int) []Event {
	if n <= 0 {
		return nil
	}
	all := s.eventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Snapshot is an immutable copy of session state.
type Snapshot struct {
	Mode        starview.Mode
	Selected    *int
	Highlighted []int
	State       camera.State
	Pending     *camera.Active
	Visuals     []starview.VisualState
	Events      []Event
}

// Snapshot returns a consistent copy of the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:        s.cfg.Mode,
		Highlighted: s.highlighted.Sorted(),
		State:       s.camera.State(),
		Visuals:     s.Visuals(),
		Events:      s.eventsOrdered(),
	}
	if s.selected != nil {
		v := *s.selected
		snap.Selected = &v
	}
	if a, ok := s.camera.Pending(); ok {
		snap.Pending = &a
	}
	return snap
}
