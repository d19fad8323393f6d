package spaces_selection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Storage persists the selected space across sessions.
type Storage interface {
	LoadSelectedSpaceID() (*uuid.UUID, error)
	SaveSelectedSpaceID(spaceID uuid.UUID) error
	ClearSelectedSpaceID() error
}

type persistedSelection struct {
	SelectedSpaceID uuid.UUID `json:"selectedSpaceId"`
}

// FileStorage keeps the selected space in a JSON file under the data folder.
type FileStorage struct {
	filePath string
	mu       sync.Mutex
}

func NewFileStorage(dataFolder string) *FileStorage {
	return &FileStorage{
		filePath: filepath.Join(dataFolder, "selected_space.json"),
	}
}

func (s *FileStorage) LoadSelectedSpaceID() (*uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}

	var selection persistedSelection
	if err := json.Unmarshal(data, &selection); err != nil {
		// A corrupted file behaves like an absent one
		return nil, nil
	}

	if selection.SelectedSpaceID == uuid.Nil {
		return nil, nil
	}

	return &selection.SelectedSpaceID, nil
}

func (s *FileStorage) SaveSelectedSpaceID(spaceID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(persistedSelection{SelectedSpaceID: spaceID})
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create selection directory: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}

	return nil
}

func (s *FileStorage) ClearSelectedSpaceID() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear selection file: %w", err)
	}

	return nil
}

// MemoryStorage is an in-memory Storage used in tests.
type MemoryStorage struct {
	mu         sync.Mutex
	selectedID *uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) LoadSelectedSpaceID() (*uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == nil {
		return nil, nil
	}

	id := *s.selectedID
	return &id, nil
}

func (s *MemoryStorage) SaveSelectedSpaceID(spaceID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = &spaceID
	return nil
}

func (s *MemoryStorage) ClearSelectedSpaceID() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = nil
	return nil
}
