package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/srgjo27/openspace/internal/core/domain"
)

const DefaultFileName = "openspace.json"

// Store keeps the latest arrangement in a single JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Save(ctx context.Context, a *domain.Arrangement) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode arrangement: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	return os.Rename(tmp, s.path)
}

func (s *Store) Load(ctx context.Context) (*domain.Arrangement, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrArrangementNotFound
		}
		return nil, err
	}

	var a domain.Arrangement
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	return &a, nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Arrangement, error) {
	a, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if a.ID != id {
		return nil, domain.ErrArrangementNotFound
	}

	return a, nil
}
