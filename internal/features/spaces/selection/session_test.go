package spaces_selection

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	spaces     map[uuid.UUID]SelectedSpace
	fetchCount int
}

func (f *countingFetcher) FetchSpace(spaceID uuid.UUID) (*SelectedSpace, error) {
	f.fetchCount++

	space, ok := f.spaces[spaceID]
	if !ok {
		return nil, errors.New("space not found")
	}

	return &space, nil
}

func Test_Select_MultipleViewsSubscribed_AllViewsConvergeWithoutRefetch(t *testing.T) {
	session := NewSession(NewMemoryStorage())
	space := SelectedSpace{ID: uuid.New(), Name: "Marketing"}

	fetcher := &countingFetcher{spaces: map[uuid.UUID]SelectedSpace{space.ID: space}}
	sidebar := NewView(session, fetcher)
	header := NewView(session, fetcher)
	defer sidebar.Close()
	defer header.Close()

	err := sidebar.ShowSpace(space.ID)
	require.NoError(t, err)

	require.NotNil(t, sidebar.ActiveSpace())
	require.NotNil(t, header.ActiveSpace())
	assert.Equal(t, space.ID, sidebar.ActiveSpace().ID)
	assert.Equal(t, space.ID, header.ActiveSpace().ID)
	assert.Equal(t, "Marketing", header.ActiveSpace().Name)

	// The broadcast payload carries the space data, so only the
	// initiating view hits the fetcher
	assert.Equal(t, 1, fetcher.fetchCount)
}

func Test_ShowSpace_SpaceAlreadyKnown_FetcherNotCalledAgain(t *testing.T) {
	session := NewSession(NewMemoryStorage())
	spaceA := SelectedSpace{ID: uuid.New(), Name: "Alpha"}
	spaceB := SelectedSpace{ID: uuid.New(), Name: "Beta"}

	fetcher := &countingFetcher{spaces: map[uuid.UUID]SelectedSpace{
		spaceA.ID: spaceA,
		spaceB.ID: spaceB,
	}}
	view := NewView(session, fetcher)
	defer view.Close()

	require.NoError(t, view.ShowSpace(spaceA.ID))
	require.NoError(t, view.ShowSpace(spaceB.ID))
	require.NoError(t, view.ShowSpace(spaceA.ID))

	assert.Equal(t, 2, fetcher.fetchCount)
	assert.Equal(t, spaceA.ID, view.ActiveSpace().ID)
}

func Test_Subscribe_LateSubscriber_ReceivesCurrentSelectionImmediately(t *testing.T) {
	session := NewSession(NewMemoryStorage())
	space := SelectedSpace{ID: uuid.New(), Name: "Design"}

	require.NoError(t, session.Select(space))

	var received *SelectedSpace
	cancel := session.Subscribe(func(s *SelectedSpace) {
		received = s
	})
	defer cancel()

	require.NotNil(t, received)
	assert.Equal(t, space.ID, received.ID)
}

func Test_Restore_PersistedSpaceStillAvailable_SelectionIsRestored(t *testing.T) {
	storage := NewMemoryStorage()
	spaceA := SelectedSpace{ID: uuid.New(), Name: "Alpha"}
	spaceB := SelectedSpace{ID: uuid.New(), Name: "Beta"}

	require.NoError(t, storage.SaveSelectedSpaceID(spaceB.ID))

	session := NewSession(storage)
	err := session.Restore([]SelectedSpace{spaceA, spaceB})
	require.NoError(t, err)

	require.NotNil(t, session.Current())
	assert.Equal(t, spaceB.ID, session.Current().ID)
}

func Test_Restore_PersistedSpaceGone_FallsBackToFirstAvailable(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SaveSelectedSpaceID(uuid.New()))

	spaceA := SelectedSpace{ID: uuid.New(), Name: "Alpha"}
	spaceB := SelectedSpace{ID: uuid.New(), Name: "Beta"}

	session := NewSession(storage)
	err := session.Restore([]SelectedSpace{spaceA, spaceB})
	require.NoError(t, err)

	require.NotNil(t, session.Current())
	assert.Equal(t, spaceA.ID, session.Current().ID)

	persistedID, err := storage.LoadSelectedSpaceID()
	require.NoError(t, err)
	require.NotNil(t, persistedID)
	assert.Equal(t, spaceA.ID, *persistedID)
}

func Test_Restore_NoSpacesAvailable_SelectionIsCleared(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SaveSelectedSpaceID(uuid.New()))

	session := NewSession(storage)
	err := session.Restore(nil)
	require.NoError(t, err)

	assert.Nil(t, session.Current())

	persistedID, err := storage.LoadSelectedSpaceID()
	require.NoError(t, err)
	assert.Nil(t, persistedID)
}

func Test_HandleSpaceDeleted_ActiveSpaceDeleted_FallsBackToFirstRemaining(t *testing.T) {
	session := NewSession(NewMemoryStorage())
	spaceA := SelectedSpace{ID: uuid.New(), Name: "Alpha"}
	spaceB := SelectedSpace{ID: uuid.New(), Name: "Beta"}

	require.NoError(t, session.Select(spaceA))

	err := session.HandleSpaceDeleted(spaceA.ID, []SelectedSpace{spaceB})
	require.NoError(t, err)

	require.NotNil(t, session.Current())
	assert.Equal(t, spaceB.ID, session.Current().ID)
}

func Test_HandleSpaceDeleted_LastSpaceDeleted_SelectionIsCleared(t *testing.T) {
	storage := NewMemoryStorage()
	session := NewSession(storage)
	space := SelectedSpace{ID: uuid.New(), Name: "Alpha"}

	require.NoError(t, session.Select(space))

	err := session.HandleSpaceDeleted(space.ID, nil)
	require.NoError(t, err)

	assert.Nil(t, session.Current())

	persistedID, err := storage.LoadSelectedSpaceID()
	require.NoError(t, err)
	assert.Nil(t, persistedID)
}

func Test_HandleSpaceDeleted_InactiveSpaceDeleted_SelectionUnchanged(t *testing.T) {
	session := NewSession(NewMemoryStorage())
	spaceA := SelectedSpace{ID: uuid.New(), Name: "Alpha"}
	spaceB := SelectedSpace{ID: uuid.New(), Name: "Beta"}

	require.NoError(t, session.Select(spaceA))

	err := session.HandleSpaceDeleted(spaceB.ID, []SelectedSpace{spaceA})
	require.NoError(t, err)

	require.NotNil(t, session.Current())
	assert.Equal(t, spaceA.ID, session.Current().ID)
}

func Test_FileStorage_SaveAndLoad_RoundTripsSelection(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	spaceID := uuid.New()

	require.NoError(t, storage.SaveSelectedSpaceID(spaceID))

	loadedID, err := storage.LoadSelectedSpaceID()
	require.NoError(t, err)
	require.NotNil(t, loadedID)
	assert.Equal(t, spaceID, *loadedID)

	require.NoError(t, storage.ClearSelectedSpaceID())

	loadedID, err = storage.LoadSelectedSpaceID()
	require.NoError(t, err)
	assert.Nil(t, loadedID)
}
