// Package fileslot persists the todo collection as a pretty-printed
// JSON file. Single file, human-readable, portable.
package fileslot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ganot/ticklist/internal/domain/todo"
	"github.com/ganot/ticklist/internal/repository"
)

// SlotRepository implements repository.SlotRepository over a JSON file.
type SlotRepository struct {
	path string
}

// New creates a file-backed slot repository at path.
func New(path string) *SlotRepository {
	return &SlotRepository{path: path}
}

func (r *SlotRepository) Load(_ context.Context) ([]todo.Item, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []todo.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}
	return items, nil
}

func (r *SlotRepository) Save(_ context.Context, items []todo.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (r *SlotRepository) Clear(_ context.Context) error {
	if err := os.Remove(r.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
