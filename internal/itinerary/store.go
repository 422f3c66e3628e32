package itinerary

import (
	"strings"
	"sync"
)

// Store owns the itinerary. All mutation goes through its methods; readers
// only ever get snapshots. The itinerary always keeps at least one day,
// even if every stop is removed.
type Store struct {
	mu      sync.RWMutex
	days    []Day
	version uint64
}

func NewStore() *Store {
	return &Store{days: []Day{{}}}
}

// AddStop appends a stop to the last day. Blank input is ignored.
func (s *Store) AddStop(text string) (Stop, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Stop{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 正常情況下不會發生，但保險起見
	if len(s.days) == 0 {
		s.days = []Day{{}}
	}

	stop := newStop(text)
	last := len(s.days) - 1
	s.days[last].Stops = append(s.days[last].Stops, stop)
	s.version++
	return stop, true
}

// RemoveStop deletes the stop at the given position. Out-of-range indices
// are a no-op; callers only issue indices taken from rendered state.
func (s *Store) RemoveStop(dayIndex, stopIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dayIndex < 0 || dayIndex >= len(s.days) {
		return
	}
	stops := s.days[dayIndex].Stops
	if stopIndex < 0 || stopIndex >= len(stops) {
		return
	}
	s.days[dayIndex].Stops = append(stops[:stopIndex], stops[stopIndex+1:]...)
	s.version++
}

// AddDay appends a new empty day.
func (s *Store) AddDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = append(s.days, Day{})
	s.version++
}

// ReorderStops moves the stop identified by fromID to the position of the
// stop identified by toID within one day, shifting the stops in between.
// Same semantics as dnd-kit's arrayMove on the frontend. Unknown ids or
// equal ids are a no-op.
func (s *Store) ReorderStops(dayIndex int, fromID, toID string) {
	if fromID == toID {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dayIndex < 0 || dayIndex >= len(s.days) {
		return
	}
	stops := s.days[dayIndex].Stops
	from, to := -1, -1
	for i, st := range stops {
		if st.ID == fromID {
			from = i
		}
		if st.ID == toID {
			to = i
		}
	}
	if from == -1 || to == -1 {
		return
	}

	moved := stops[from]
	stops = append(stops[:from], stops[from+1:]...)
	stops = append(stops[:to], append([]Stop{moved}, stops[to:]...)...)
	s.days[dayIndex].Stops = stops
	s.version++
}

// Import replaces the whole itinerary with the given per-day stop texts,
// assigning fresh stop ids. Used after a successful conversational
// generation; it never merges with the previous state. Blank stop texts
// are dropped. An empty import still leaves one empty day.
func (s *Store) Import(days [][]string) {
	fresh := make([]Day, 0, len(days))
	for _, stops := range days {
		day := Day{}
		for _, text := range stops {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			day.Stops = append(day.Stops, newStop(text))
		}
		fresh = append(fresh, day)
	}
	if len(fresh) == 0 {
		fresh = []Day{{}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = fresh
	s.version++
}

// Snapshot returns a deep copy of the itinerary and the current version.
// The version bumps on every mutation; route derivation uses it to detect
// that a snapshot went stale while a request was in flight.
func (s *Store) Snapshot() (Itinerary, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Itinerary{Days: s.days}.Clone(), s.version
}

// Version returns the current mutation counter.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
