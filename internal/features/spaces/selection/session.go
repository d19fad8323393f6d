// Package spaces_selection tracks which space a signed-in user is
// currently working in. It is consumed by client session shells, not by
// request handlers: the dashboard shell constructs one Session per
// signed-in profile, usually as
//
//	session := spaces_selection.NewSession(
//		spaces_selection.NewFileStorage(config.GetEnv().DataFolder),
//	)
//
// and attaches a View per open panel. Server request paths never
// construct a Session; they only mutate spaces, and shells converge via
// Restore and HandleSpaceDeleted.
package spaces_selection

import (
	"sync"

	"github.com/google/uuid"
)

// SelectedSpace is the payload broadcast to subscribers on every
// selection change. It carries enough data to render the active space
// without an extra lookup.
type SelectedSpace struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Session holds the active space selection for a signed-in user and
// fans out changes to all subscribed views. Persisting and broadcasting
// happen together so views never disagree with storage.
type Session struct {
	storage Storage

	mu             sync.RWMutex
	current        *SelectedSpace
	subscribers    map[int]func(*SelectedSpace)
	nextSubscriber int
}

func NewSession(storage Storage) *Session {
	return &Session{
		storage:     storage,
		subscribers: map[int]func(*SelectedSpace){},
	}
}

// Subscribe registers a handler called on every selection change.
// The handler is invoked immediately with the current selection so a
// late subscriber starts in sync. The returned function cancels the
// subscription.
func (s *Session) Subscribe(handler func(*SelectedSpace)) func() {
	s.mu.Lock()
	id := s.nextSubscriber
	s.nextSubscriber++
	s.subscribers[id] = handler
	current := s.current
	s.mu.Unlock()

	handler(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Select makes the given space the active one, persists the choice and
// notifies all subscribers.
func (s *Session) Select(space SelectedSpace) error {
	if err := s.storage.SaveSelectedSpaceID(space.ID); err != nil {
		return err
	}

	s.broadcast(&space)
	return nil
}

// Current returns the active selection, or nil when none is set.
func (s *Session) Current() *SelectedSpace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Restore re-establishes the persisted selection against the spaces the
// user can currently see. A persisted space that no longer exists falls
// back to the first available space; with no spaces at all the
// selection is cleared.
func (s *Session) Restore(available []SelectedSpace) error {
	if len(available) == 0 {
		if err := s.storage.ClearSelectedSpaceID(); err != nil {
			return err
		}

		s.broadcast(nil)
		return nil
	}

	persistedID, err := s.storage.LoadSelectedSpaceID()
	if err != nil {
		return err
	}

	if persistedID != nil {
		for _, space := range available {
			if space.ID == *persistedID {
				s.broadcast(&space)
				return nil
			}
		}
	}

	return s.Select(available[0])
}

// HandleSpaceDeleted reacts to a space deletion. If the deleted space
// was the active one, the selection falls back to the first remaining
// space, or is cleared when none remain.
func (s *Session) HandleSpaceDeleted(deletedID uuid.UUID, remaining []SelectedSpace) error {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil || current.ID != deletedID {
		return nil
	}

	if len(remaining) == 0 {
		if err := s.storage.ClearSelectedSpaceID(); err != nil {
			return err
		}

		s.broadcast(nil)
		return nil
	}

	return s.Select(remaining[0])
}

func (s *Session) broadcast(space *SelectedSpace) {
	s.mu.Lock()
	s.current = space
	handlers := make([]func(*SelectedSpace), 0, len(s.subscribers))
	for _, handler := range s.subscribers {
		handlers = append(handlers, handler)
	}
	s.mu.Unlock()

	for _, handler := range handlers {
		handler(space)
	}
}
