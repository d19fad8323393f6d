package spaces_selection

import (
	"sync"

	"github.com/google/uuid"
)

// SpaceFetcher loads a space's display data when a view observes a
// selection it has not seen before.
type SpaceFetcher interface {
	FetchSpace(spaceID uuid.UUID) (*SelectedSpace, error)
}

// View mirrors the session's selection for one UI surface. Spaces seen
// once are cached, so a selection change only hits the fetcher for
// spaces the view has never observed.
type View struct {
	session *Session
	fetcher SpaceFetcher

	mu     sync.RWMutex
	known  map[uuid.UUID]SelectedSpace
	active *SelectedSpace

	cancel func()
}

func NewView(session *Session, fetcher SpaceFetcher) *View {
	view := &View{
		session: session,
		fetcher: fetcher,
		known:   map[uuid.UUID]SelectedSpace{},
	}

	view.cancel = session.Subscribe(view.onSelectionChanged)

	return view
}

// ActiveSpace returns the space this view currently displays, or nil.
func (v *View) ActiveSpace() *SelectedSpace {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.active
}

// Close detaches the view from the session.
func (v *View) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *View) onSelectionChanged(space *SelectedSpace) {
	if space == nil {
		v.mu.Lock()
		v.active = nil
		v.mu.Unlock()
		return
	}

	v.mu.Lock()
	v.known[space.ID] = *space
	resolved := v.known[space.ID]
	v.active = &resolved
	v.mu.Unlock()
}

// ShowSpace resolves a space by ID and makes it active for the whole
// session. Unknown spaces are loaded through the fetcher first.
func (v *View) ShowSpace(spaceID uuid.UUID) error {
	v.mu.RLock()
	space, ok := v.known[spaceID]
	v.mu.RUnlock()

	if !ok {
		fetched, err := v.fetcher.FetchSpace(spaceID)
		if err != nil {
			return err
		}

		space = *fetched

		v.mu.Lock()
		v.known[spaceID] = space
		v.mu.Unlock()
	}

	return v.session.Select(space)
}
