// Package availability keeps an in-memory read replica of per-technician
// per-day availability overrides. The source of truth is the database; the
// store is replaced wholesale on refetch and patched on single updates so
// subscribers only re-read the slice they care about.
package availability

import "sync"

// Status is a closed enumeration of availability overrides. Absence of an
// entry means "no override recorded" (available), which is distinct from an
// explicit StatusUnavailable.
type Status string

const (
	StatusVacation    Status = "vacation"
	StatusTravel      Status = "travel"
	StatusSick        Status = "sick"
	StatusDayOff      Status = "day_off"
	StatusUnavailable Status = "unavailable"
	StatusWarehouse   Status = "warehouse"
)

func (s Status) Valid() bool {
	switch s {
	case StatusVacation, StatusTravel, StatusSick, StatusDayOff, StatusUnavailable, StatusWarehouse:
		return true
	}
	return false
}

// Key builds the store key for a technician on an ISO date (yyyy-MM-dd).
func Key(technicianID, isoDate string) string {
	return technicianID + "-" + isoDate
}

// Store is a keyed map of overrides with subscriber notification. Construct
// one per process with NewStore and inject it; tests get isolated instances.
//
// Mutations swap the backing map reference before notifying, so every
// listener observes a fully-updated snapshot and Snapshot stays
// reference-stable across unmutated reads. Notification is synchronous;
// listeners may mutate the store re-entrantly. Listeners subscribed during a
// notify cycle are first invoked on the next mutation.
type Store struct {
	mu        sync.Mutex
	entries   map[string]Status
	listeners map[int]func()
	nextID    int
}

func NewStore() *Store {
	return &Store{
		entries:   map[string]Status{},
		listeners: map[int]func(){},
	}
}

// SetAll replaces the whole map, e.g. after a bulk refetch. Subscribers are
// notified unconditionally.
func (s *Store) SetAll(entries map[string]Status) {
	next := make(map[string]Status, len(entries))
	for k, v := range entries {
		next[k] = v
	}
	s.mu.Lock()
	s.entries = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// SetOne upserts a single key.
func (s *Store) SetOne(key string, status Status) {
	s.mu.Lock()
	next := cloneEntries(s.entries)
	next[key] = status
	s.entries = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// Remove deletes a single key, returning it to the "no override" state.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	next := cloneEntries(s.entries)
	delete(next, key)
	s.entries = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners)
}

// Subscribe registers a listener invoked after every mutation and returns
// its unsubscribe function.
func (s *Store) Subscribe(listener func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current backing map. The reference is stable until
// the next mutation; callers must treat it as read-only.
func (s *Store) Snapshot() map[string]Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

// Get returns the override for a technician on a date. The second return
// value is false when no override is recorded.
func (s *Store) Get(technicianID, isoDate string) (Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.entries[Key(technicianID, isoDate)]
	return status, ok
}

func (s *Store) snapshotListeners() []func() {
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

func cloneEntries(entries map[string]Status) map[string]Status {
	next := make(map[string]Status, len(entries)+1)
	for k, v := range entries {
		next[k] = v
	}
	return next
}

func notify(listeners []func()) {
	for _, l := range listeners {
		l()
	}
}
