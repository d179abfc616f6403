/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package session holds the client's view of the connected server: instance
// metadata, authentication configuration, and the signed-in user. The state
// is an immutable snapshot replaced as a whole; readers never see a partial
// update. Snapshots are persisted atomically so a crash cannot leave a
// half-written session file.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	"github.com/PartDesk/PartDesk/common/schema"
)

// State is one immutable snapshot of the session. The generation counter
// increases with every replacement, so two snapshots can be ordered and a
// stale write detected.
type State struct {
	Generation    uint64            `json:"generation"`
	ServerURL     string            `json:"server_url,omitempty"`
	Server        schema.ServerInfo `json:"server,omitempty"`
	Auth          schema.AuthConfig `json:"auth,omitempty"`
	User          schema.UserMeta   `json:"user,omitempty"`
	Authenticated bool              `json:"authenticated"`
	FetchedAt     time.Time         `json:"fetched_at,omitempty"`
}

// Store manages the current State, its persistence, and its subscribers
type Store struct {
	mu    sync.RWMutex
	path  string // "" disables persistence
	state State
	subs  map[int]chan State
	subID int
}

// New creates a store. If path is not empty, a previously persisted state
// is loaded; a missing or unreadable file starts the store empty.
func New(path string) *Store {
	s := &Store{
		path: path,
		subs: make(map[int]chan State),
	}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var state State
			if json.Unmarshal(data, &state) == nil {
				s.state = state
			}
		}
	}

	return s
}

// DefaultPath returns the persisted session file location, or "" when no
// home directory is available (persistence is then disabled)
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".pdesk-session.json")
}

// Get returns the current snapshot
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Generation returns the current snapshot's generation counter
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Generation
}

// Replace applies fn to the current snapshot and installs the result as the
// new state. The generation counter is advanced by the store, not by fn, so
// concurrent replacements are strictly ordered. Subscribers are notified
// after the state is persisted.
func (s *Store) Replace(fn func(State) State) State {
	state, _ := s.replace(fn, 0, false)
	return state
}

// ReplaceFrom installs fn's result only if the store's generation still
// equals from. A replacement computed against a snapshot that has since
// been superseded is discarded, and the current state is returned with
// installed false.
func (s *Store) ReplaceFrom(from uint64, fn func(State) State) (State, bool) {
	return s.replace(fn, from, true)
}

func (s *Store) replace(fn func(State) State, from uint64, conditional bool) (State, bool) {
	s.mu.Lock()

	if conditional && s.state.Generation != from {
		current := s.state
		s.mu.Unlock()
		return current, false
	}

	next := fn(s.state)
	next.Generation = s.state.Generation + 1
	s.state = next

	if s.path != "" {
		s.persistLocked()
	}

	// Collect subscribers while still holding the lock
	channels := make([]chan State, 0, len(s.subs))
	for _, ch := range s.subs {
		channels = append(channels, ch)
	}
	s.mu.Unlock()

	// Notify without blocking: a subscriber that has not consumed the
	// previous snapshot misses intermediate states, never the lock
	for _, ch := range channels {
		select {
		case ch <- next:
		default:
		}
	}

	return next, true
}

// Subscribe returns a channel that receives each new snapshot and a cancel
// function that releases it. The channel is buffered; slow consumers skip
// intermediate snapshots rather than block writers.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subID++
	id := s.subID
	ch := make(chan State, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// persistLocked writes the state atomically. Must be called with the lock
// held. Write failures are deliberately ignored: persistence is an
// optimization, the in-memory state remains authoritative.
func (s *Store) persistLocked() {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return
	}
	_ = renameio.WriteFile(s.path, data, 0600)
}
